package forecast

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeSummary_KnownDistribution(t *testing.T) {
	outcomes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	s := ComputeSummary(outcomes, nil)

	if !almostEqual(s.Mean, 5.5, 1e-9) {
		t.Errorf("Expected mean 5.5, got %f", s.Mean)
	}
	if !almostEqual(s.Median, 5.5, 1e-9) {
		t.Errorf("Expected median 5.5, got %f", s.Median)
	}
	// Population std dev of 1..10 is sqrt(8.25).
	if !almostEqual(s.StdDev, math.Sqrt(8.25), 1e-9) {
		t.Errorf("Expected std dev %f, got %f", math.Sqrt(8.25), s.StdDev)
	}
	// Linear interpolation: p10 sits 0.9 of the way between ranks 0 and 1.
	if !almostEqual(s.P10, 1.9, 1e-9) {
		t.Errorf("Expected p10 1.9, got %f", s.P10)
	}
	if !almostEqual(s.P25, 3.25, 1e-9) {
		t.Errorf("Expected p25 3.25, got %f", s.P25)
	}
	if !almostEqual(s.P75, 7.75, 1e-9) {
		t.Errorf("Expected p75 7.75, got %f", s.P75)
	}
	if !almostEqual(s.P90, 9.1, 1e-9) {
		t.Errorf("Expected p90 9.1, got %f", s.P90)
	}
	if s.MinOutcome != 1 || s.MaxOutcome != 10 {
		t.Errorf("Expected min 1 and max 10, got %f and %f", s.MinOutcome, s.MaxOutcome)
	}
}

func TestComputeSummary_PercentileOrdering(t *testing.T) {
	outcomes := NewEngine(5).Run([]Opportunity{
		{Amount: 400_000, Probability: 0.6},
		{Amount: 900_000, Probability: 0.35},
		{Amount: 150_000, Probability: 0.85},
	}, 10_000)

	s := ComputeSummary(outcomes, nil)
	if s.P10 > s.P25 || s.P25 > s.Median || s.Median > s.P75 || s.P75 > s.P90 {
		t.Errorf("Expected p10 <= p25 <= median <= p75 <= p90, got %f %f %f %f %f",
			s.P10, s.P25, s.Median, s.P75, s.P90)
	}
	if s.MinOutcome > s.P10 || s.P90 > s.MaxOutcome {
		t.Errorf("Expected percentiles within [min, max], got min=%f p10=%f p90=%f max=%f",
			s.MinOutcome, s.P10, s.P90, s.MaxOutcome)
	}
}

func TestComputeSummary_PipelineAggregates(t *testing.T) {
	opps := []Opportunity{
		{Amount: 1_000_000, Probability: 0.9},
		{Amount: 500_000, Probability: 0.5},
	}
	s := ComputeSummary([]float64{0}, opps)

	if s.TotalPipelineValue != 1_500_000 {
		t.Errorf("Expected total pipeline 1500000, got %f", s.TotalPipelineValue)
	}
	if s.WeightedPipelineValue != 1_150_000 {
		t.Errorf("Expected weighted pipeline 1150000, got %f", s.WeightedPipelineValue)
	}
}

func TestComputeSummary_Empty(t *testing.T) {
	s := ComputeSummary(nil, nil)
	if s.Mean != 0 || s.Median != 0 || s.StdDev != 0 || s.P90 != 0 ||
		s.TotalPipelineValue != 0 || s.WeightedPipelineValue != 0 {
		t.Errorf("Expected all-zero summary for empty inputs, got %+v", s)
	}
}

func TestPercentileSorted_SingleValue(t *testing.T) {
	if v := percentileSorted([]float64{42}, 90); v != 42 {
		t.Errorf("Expected 42 for single-element slice, got %f", v)
	}
}
