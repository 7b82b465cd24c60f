package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Config carries the simulator's tunables. It is an explicit struct handed to
// NewSimulator instead of a package-level singleton, so tests and transports
// can run with varied settings side by side.
type Config struct {
	DefaultTrials    int
	MinTrials        int
	MaxTrials        int
	MaxOpportunities int
	MaxHorizonDays   int
	MaxAmount        float64
	MaxDraws         int
	HistogramBuckets int
	DefaultTargets   []float64
}

// DefaultConfig mirrors the service defaults: 10k trials balances a smooth
// distribution against latency.
func DefaultConfig() Config {
	return Config{
		DefaultTrials:    10_000,
		MinTrials:        100,
		MaxTrials:        100_000,
		MaxOpportunities: 500,
		MaxHorizonDays:   730,
		MaxAmount:        10_000_000_000,
		MaxDraws:         25_000_000,
		HistogramBuckets: DefaultHistogramBuckets,
		DefaultTargets:   []float64{1_000_000, 5_000_000, 10_000_000, 25_000_000, 50_000_000},
	}
}

// Simulator is the single entry point external collaborators invoke. It is
// stateless across calls: every Run owns its outcome array exclusively and
// frees it on return.
type Simulator struct {
	cfg    Config
	now    func() time.Time
	seedFn func() int64
}

func NewSimulator(cfg Config) *Simulator {
	return &Simulator{
		cfg:    cfg,
		now:    time.Now,
		seedFn: func() int64 { return time.Now().UnixNano() },
	}
}

// NewSeededSimulator pins the RNG seed and the clock. Used by tests and the
// one-shot CLI for reproducible runs; a nil now falls back to time.Now.
func NewSeededSimulator(cfg Config, seed int64, now func() time.Time) *Simulator {
	s := NewSimulator(cfg)
	s.seedFn = func() int64 { return seed }
	if now != nil {
		s.now = now
	}
	return s
}

// Run executes the full pipeline: validate, filter by horizon, simulate,
// then derive statistics, target probabilities and the histogram. It either
// returns a complete Result or a typed error, never a partial result.
func (s *Simulator) Run(ctx context.Context, req Request) (*Result, error) {
	trials := req.Trials
	if trials == 0 {
		trials = s.cfg.DefaultTrials
	}
	if err := s.validate(req, trials); err != nil {
		return nil, err
	}

	start := time.Now()

	included, excluded := FilterByHorizon(req.Opportunities, req.HorizonDays, s.now())

	targets := req.Targets
	if len(targets) == 0 {
		targets = s.cfg.DefaultTargets
	}

	outcomes := NewEngine(s.seedFn()).Run(included, trials)

	// A transport deadline can take effect here, between the hot path and
	// the cheap statistics passes.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Summary:   ComputeSummary(outcomes, included),
		Targets:   AnalyzeTargets(outcomes, targets, trials),
		Histogram: BuildHistogram(outcomes, s.cfg.HistogramBuckets),
		Metadata: Metadata{
			Trials:                trials,
			OpportunitiesIncluded: len(included),
			OpportunitiesExcluded: excluded,
			ComputeTimeMs:         round2(float64(time.Since(start).Microseconds()) / 1000),
			Timestamp:             s.now().UTC(),
			HorizonDays:           req.HorizonDays,
		},
	}

	log.Debug().
		Int("trials", trials).
		Int("included", len(included)).
		Int("excluded", excluded).
		Float64("computeMs", result.Metadata.ComputeTimeMs).
		Msg("Simulation completed")

	return result, nil
}

func (s *Simulator) validate(req Request, trials int) error {
	if trials < s.cfg.MinTrials || trials > s.cfg.MaxTrials {
		return &ValidationError{
			Field:  "num_simulations",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", s.cfg.MinTrials, s.cfg.MaxTrials, trials),
		}
	}
	if req.HorizonDays < 0 || req.HorizonDays > s.cfg.MaxHorizonDays {
		return &ValidationError{
			Field:  "time_horizon_days",
			Reason: fmt.Sprintf("must be between 1 and %d when set, got %d", s.cfg.MaxHorizonDays, req.HorizonDays),
		}
	}
	if len(req.Opportunities) > s.cfg.MaxOpportunities {
		return &ValidationError{
			Field:  "opportunities",
			Reason: fmt.Sprintf("at most %d opportunities per request, got %d", s.cfg.MaxOpportunities, len(req.Opportunities)),
		}
	}
	for i, o := range req.Opportunities {
		if o.Amount <= 0 {
			return &ValidationError{
				Field:  fmt.Sprintf("opportunities[%d].amount", i),
				Reason: fmt.Sprintf("must be positive, got %v", o.Amount),
			}
		}
		if s.cfg.MaxAmount > 0 && o.Amount > s.cfg.MaxAmount {
			return &ValidationError{
				Field:  fmt.Sprintf("opportunities[%d].amount", i),
				Reason: fmt.Sprintf("exceeds %s, likely a data entry error", FormatMoney(s.cfg.MaxAmount)),
			}
		}
		if o.Probability < 0 || o.Probability > 1 {
			return &ValidationError{
				Field:  fmt.Sprintf("opportunities[%d].probability", i),
				Reason: fmt.Sprintf("must be within [0, 1], got %v", o.Probability),
			}
		}
	}
	for i, t := range req.Targets {
		if t <= 0 {
			return &ValidationError{
				Field:  fmt.Sprintf("revenue_targets[%d]", i),
				Reason: fmt.Sprintf("must be positive, got %v", t),
			}
		}
	}

	if s.cfg.MaxDraws > 0 && trials*len(req.Opportunities) > s.cfg.MaxDraws {
		return &ResourceLimitError{
			Trials:        trials,
			Opportunities: len(req.Opportunities),
			MaxDraws:      s.cfg.MaxDraws,
		}
	}
	return nil
}
