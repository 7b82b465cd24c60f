package forecast

import (
	"math"
	"slices"
)

// SummaryStatistics describes the outcome distribution plus the two analytic
// pipeline aggregates. The weighted pipeline value is computed straight from
// the opportunity data, independent of trial count, and serves as a sanity
// check against the simulated mean.
type SummaryStatistics struct {
	Mean                  float64 `json:"mean"`
	Median                float64 `json:"median"`
	StdDev                float64 `json:"std_dev"`
	P10                   float64 `json:"p10"`
	P25                   float64 `json:"p25"`
	P75                   float64 `json:"p75"`
	P90                   float64 `json:"p90"`
	MinOutcome            float64 `json:"min_outcome"`
	MaxOutcome            float64 `json:"max_outcome"`
	TotalPipelineValue    float64 `json:"total_pipeline_value"`
	WeightedPipelineValue float64 `json:"weighted_pipeline_value"`
}

// ComputeSummary derives descriptive statistics from the outcome
// distribution. The standard deviation is the population form, not
// sample-corrected.
func ComputeSummary(outcomes []float64, opps []Opportunity) SummaryStatistics {
	var total, weighted float64
	for _, o := range opps {
		total += o.Amount
		weighted += o.Amount * o.Probability
	}

	s := SummaryStatistics{
		TotalPipelineValue:    round2(total),
		WeightedPipelineValue: round2(weighted),
	}
	if len(outcomes) == 0 {
		return s
	}

	// Sort a copy once, all percentiles read from it.
	sorted := make([]float64, len(outcomes))
	copy(sorted, outcomes)
	slices.Sort(sorted)

	n := float64(len(outcomes))
	var sum float64
	for _, v := range outcomes {
		sum += v
	}
	mean := sum / n

	var variance float64
	for _, v := range outcomes {
		d := v - mean
		variance += d * d
	}
	variance /= n

	s.Mean = mean
	s.Median = percentileSorted(sorted, 50)
	s.StdDev = math.Sqrt(variance)
	s.P10 = percentileSorted(sorted, 10)
	s.P25 = percentileSorted(sorted, 25)
	s.P75 = percentileSorted(sorted, 75)
	s.P90 = percentileSorted(sorted, 90)
	s.MinOutcome = sorted[0]
	s.MaxOutcome = sorted[len(sorted)-1]
	return s
}

// percentileSorted interpolates linearly between the two closest ranks, the
// same method the service has always reported (even-length medians land
// halfway between the middle values).
func percentileSorted(sorted []float64, p float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
