package forecast

import (
	"fmt"
	"slices"
)

// TargetAnalysis reports how likely the pipeline is to meet or exceed one
// revenue target.
type TargetAnalysis struct {
	Target         float64 `json:"target"`
	Label          string  `json:"label"`
	Probability    float64 `json:"probability"`
	ProbabilityPct string  `json:"probability_pct"`
}

// AnalyzeTargets computes the empirical hit probability for each target:
// the fraction of trials whose outcome reached the target. Records come back
// sorted ascending by target regardless of input order.
func AnalyzeTargets(outcomes []float64, targets []float64, trials int) []TargetAnalysis {
	sorted := slices.Clone(targets)
	slices.Sort(sorted)

	results := make([]TargetAnalysis, 0, len(sorted))
	for _, target := range sorted {
		hits := 0
		for _, v := range outcomes {
			if v >= target {
				hits++
			}
		}

		p := 0.0
		if trials > 0 {
			p = float64(hits) / float64(trials)
		}

		results = append(results, TargetAnalysis{
			Target:         round2(target),
			Label:          FormatMoney(target),
			Probability:    round4(p),
			ProbabilityPct: fmt.Sprintf("%.1f%%", p*100),
		})
	}
	return results
}
