package forecast

import "time"

// Opportunity is a single open deal entering the simulation. The name is
// advisory only; the math uses amount, probability and close date.
type Opportunity struct {
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Probability float64   `json:"probability"`
	CloseDate   time.Time `json:"close_date"`
}

// Request carries one simulation invocation. Zero values mean "use the
// configured default" for Trials and Targets, and "no filter" for HorizonDays.
type Request struct {
	Opportunities []Opportunity
	Trials        int
	HorizonDays   int
	Targets       []float64
}

// Metadata describes the run itself, not the distribution.
type Metadata struct {
	Trials                int       `json:"num_simulations"`
	OpportunitiesIncluded int       `json:"opportunities_included"`
	OpportunitiesExcluded int       `json:"opportunities_filtered_out"`
	ComputeTimeMs         float64   `json:"compute_time_ms"`
	Timestamp             time.Time `json:"timestamp"`
	HorizonDays           int       `json:"time_horizon_days,omitempty"`
}

// Result is the complete simulation output. It is assembled once by the
// simulator and never mutated afterwards.
type Result struct {
	Summary   SummaryStatistics `json:"summary_statistics"`
	Targets   []TargetAnalysis  `json:"target_analysis"`
	Histogram []HistogramBucket `json:"histogram_buckets"`
	Metadata  Metadata          `json:"metadata"`
}
