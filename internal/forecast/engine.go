package forecast

import (
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// trialChunkSize is the unit of parallel work. Chunk seeds are drawn from the
// parent RNG before any worker starts, so a fixed engine seed produces the
// same distribution regardless of how many workers actually run.
const trialChunkSize = 8192

// Engine performs the Monte-Carlo simulation: one Bernoulli draw per
// opportunity per trial, summing the amounts of won deals into a single
// outcome value per trial.
type Engine struct {
	seed int64
}

func NewEngine(seed int64) *Engine {
	return &Engine{seed: seed}
}

// Run returns the outcome distribution: exactly trials values, each in
// [0, sum of amounts]. An empty opportunity list yields all zeros without
// consuming any randomness.
func (e *Engine) Run(opps []Opportunity, trials int) []float64 {
	outcomes := make([]float64, trials)
	if len(opps) == 0 || trials == 0 {
		return outcomes
	}

	amounts := make([]float64, len(opps))
	probs := make([]float64, len(opps))
	for i, o := range opps {
		amounts[i] = o.Amount
		probs[i] = o.Probability
	}

	parent := rand.New(rand.NewSource(e.seed))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < trials; start += trialChunkSize {
		end := start + trialChunkSize
		if end > trials {
			end = trials
		}
		chunk := outcomes[start:end]
		chunkSeed := parent.Int63()
		g.Go(func() error {
			fillChunk(chunk, amounts, probs, chunkSeed)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return outcomes
}

// fillChunk accumulates column-major: one tight pass over the chunk per
// opportunity, so the hot loop runs over contiguous memory instead of
// re-walking every deal for every trial.
func fillChunk(chunk, amounts, probs []float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for j := range amounts {
		amt, p := amounts[j], probs[j]
		switch {
		case p >= 1.0:
			// Certain deal: contributes to every trial, no draws needed.
			for i := range chunk {
				chunk[i] += amt
			}
		case p <= 0.0:
			// Dead deal: never contributes.
		default:
			for i := range chunk {
				if rng.Float64() < p {
					chunk[i] += amt
				}
			}
		}
	}
}
