package forecast

// DefaultHistogramBuckets is the bucket count used when the configuration
// does not override it.
const DefaultHistogramBuckets = 12

// HistogramBucket is one bar of the outcome distribution: [RangeLow,
// RangeHigh) with the last bucket's upper bound inclusive so the maximum
// outcome is captured.
type HistogramBucket struct {
	RangeLow  float64 `json:"range_low"`
	RangeHigh float64 `json:"range_high"`
	Label     string  `json:"label"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// BuildHistogram bins the outcomes into numBuckets equal-width buckets over
// the observed [min, max] range. A zero-width range (every outcome
// identical) expands to [v-0.5, v+0.5]; bucket frequency is count/trials,
// defined as 0 when there are no trials.
func BuildHistogram(outcomes []float64, numBuckets int) []HistogramBucket {
	if numBuckets <= 0 {
		numBuckets = DefaultHistogramBuckets
	}

	lo, hi := 0.0, 1.0
	if len(outcomes) > 0 {
		lo, hi = outcomes[0], outcomes[0]
		for _, v := range outcomes {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi == lo {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(numBuckets)
	counts := make([]int, numBuckets)
	for _, v := range outcomes {
		idx := int((v - lo) / width)
		if idx >= numBuckets {
			idx = numBuckets - 1 // the max value belongs to the last bucket
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	trials := len(outcomes)
	buckets := make([]HistogramBucket, numBuckets)
	for i, c := range counts {
		bLo := lo + width*float64(i)
		bHi := lo + width*float64(i+1)

		freq := 0.0
		if trials > 0 {
			freq = round4(float64(c) / float64(trials))
		}

		buckets[i] = HistogramBucket{
			RangeLow:  round2(bLo),
			RangeHigh: round2(bHi),
			Label:     FormatMoney(bLo) + " – " + FormatMoney(bHi),
			Count:     c,
			Frequency: freq,
		}
	}
	return buckets
}
