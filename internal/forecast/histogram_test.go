package forecast

import (
	"math"
	"testing"
)

func TestBuildHistogram_CountsAndFrequencies(t *testing.T) {
	outcomes := NewEngine(3).Run([]Opportunity{
		{Amount: 800_000, Probability: 0.5},
		{Amount: 300_000, Probability: 0.7},
	}, 10_000)

	buckets := BuildHistogram(outcomes, 12)
	if len(buckets) != 12 {
		t.Fatalf("Expected 12 buckets, got %d", len(buckets))
	}

	totalCount := 0
	totalFreq := 0.0
	for _, b := range buckets {
		totalCount += b.Count
		totalFreq += b.Frequency
	}
	if totalCount != 10_000 {
		t.Errorf("Expected bucket counts to sum to 10000, got %d", totalCount)
	}
	if math.Abs(totalFreq-1.0) > 0.01 {
		t.Errorf("Expected frequencies to sum to 1.0, got %f", totalFreq)
	}
}

func TestBuildHistogram_MaxValueInLastBucket(t *testing.T) {
	outcomes := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	buckets := BuildHistogram(outcomes, 12)

	if buckets[11].Count != 2 {
		// Bucket 11 covers [11, 12] with the upper bound inclusive.
		t.Errorf("Expected last bucket to hold values 11 and 12, got count %d", buckets[11].Count)
	}
}

func TestBuildHistogram_DegenerateRange(t *testing.T) {
	outcomes := []float64{100, 100, 100, 100}
	buckets := BuildHistogram(outcomes, 12)

	if len(buckets) != 12 {
		t.Fatalf("Expected 12 buckets, got %d", len(buckets))
	}
	if buckets[0].RangeLow != 99.5 || buckets[11].RangeHigh != 100.5 {
		t.Errorf("Expected expanded range [99.5, 100.5], got [%f, %f]",
			buckets[0].RangeLow, buckets[11].RangeHigh)
	}

	total := 0
	nonEmpty := 0
	for _, b := range buckets {
		total += b.Count
		if b.Count > 0 {
			nonEmpty++
		}
	}
	if total != 4 || nonEmpty != 1 {
		t.Errorf("Expected all 4 outcomes in a single bucket, got total=%d nonEmpty=%d", total, nonEmpty)
	}
}

func TestBuildHistogram_ContiguousBounds(t *testing.T) {
	outcomes := []float64{0, 25, 50, 75, 100}
	buckets := BuildHistogram(outcomes, 4)

	for i := 1; i < len(buckets); i++ {
		if buckets[i].RangeLow != buckets[i-1].RangeHigh {
			t.Errorf("Expected bucket %d to start where bucket %d ends, got %f vs %f",
				i, i-1, buckets[i].RangeLow, buckets[i-1].RangeHigh)
		}
	}
	if buckets[0].Label == "" {
		t.Errorf("Expected a range label on each bucket")
	}
}

func TestBuildHistogram_NoOutcomes(t *testing.T) {
	buckets := BuildHistogram(nil, 12)
	for i, b := range buckets {
		if b.Count != 0 || b.Frequency != 0 {
			t.Errorf("Expected empty bucket %d, got count=%d frequency=%f", i, b.Count, b.Frequency)
		}
	}
}
