package forecast

import "testing"

func TestAnalyzeTargets_SortedAndExact(t *testing.T) {
	outcomes := []float64{10, 20, 30, 40}
	results := AnalyzeTargets(outcomes, []float64{35, 5, 25}, 4)

	if len(results) != 3 {
		t.Fatalf("Expected 3 analyses, got %d", len(results))
	}
	if results[0].Target != 5 || results[1].Target != 25 || results[2].Target != 35 {
		t.Errorf("Expected targets sorted ascending, got %f %f %f",
			results[0].Target, results[1].Target, results[2].Target)
	}
	if results[0].Probability != 1.0 {
		t.Errorf("Expected probability 1.0 for target 5, got %f", results[0].Probability)
	}
	if results[1].Probability != 0.5 {
		t.Errorf("Expected probability 0.5 for target 25, got %f", results[1].Probability)
	}
	if results[2].Probability != 0.25 {
		t.Errorf("Expected probability 0.25 for target 35, got %f", results[2].Probability)
	}
}

func TestAnalyzeTargets_MonotonicallyNonIncreasing(t *testing.T) {
	outcomes := NewEngine(11).Run([]Opportunity{
		{Amount: 1_000_000, Probability: 0.7},
		{Amount: 600_000, Probability: 0.4},
	}, 10_000)

	results := AnalyzeTargets(outcomes, []float64{1_500_000, 100_000, 900_000, 500_000}, 10_000)
	for i := 1; i < len(results); i++ {
		if results[i].Probability > results[i-1].Probability {
			t.Errorf("Expected non-increasing probabilities, %f (target %f) > %f (target %f)",
				results[i].Probability, results[i].Target,
				results[i-1].Probability, results[i-1].Target)
		}
	}
}

func TestAnalyzeTargets_Formatting(t *testing.T) {
	outcomes := []float64{7_250_000, 7_250_000, 7_250_000, 0}
	results := AnalyzeTargets(outcomes, []float64{5_000_000}, 4)

	if results[0].ProbabilityPct != "75.0%" {
		t.Errorf("Expected '75.0%%', got %q", results[0].ProbabilityPct)
	}
	if results[0].Label != "$5.0M" {
		t.Errorf("Expected label '$5.0M', got %q", results[0].Label)
	}
}

func TestAnalyzeTargets_Empty(t *testing.T) {
	results := AnalyzeTargets([]float64{1, 2, 3}, nil, 3)
	if len(results) != 0 {
		t.Errorf("Expected no analyses for empty target list, got %d", len(results))
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		value    float64
		expected string
	}{
		{10_000_000, "$10.0M"},
		{1_500_000, "$1.5M"},
		{250_000, "$250K"},
		{5_000, "$5K"},
		{950, "$950"},
		{0, "$0"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.value); got != c.expected {
			t.Errorf("Expected FormatMoney(%f) = %q, got %q", c.value, c.expected, got)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	if got := groupThousands(1234567); got != "1,234,567" {
		t.Errorf("Expected '1,234,567', got %q", got)
	}
	if got := groupThousands(999); got != "999" {
		t.Errorf("Expected '999', got %q", got)
	}
}
