// SPDX-License-Identifier: MIT

package breaks

import (
	"math"
	"sort"
)

// QuantileBreaks returns [lo, Q(1/q), Q(2/q), ..., Q(1)] where Q is the sample
// quantile with linear interpolation between order statistics: for a fraction
// f the position is f·(m−1) over the sorted samples. Q(1) is the sample
// maximum exactly.
//
// values is not modified; a sorted copy is made.
//
// Errors: ErrInvalidParameters (q < 1), ErrEmptySample, ErrInvalidRange when
// lo is not finite or exceeds the smallest sample.
// Complexity: O(m log m) time, O(m) memory.
func QuantileBreaks(q int, lo float64, values []float64) ([]float64, error) {
	if err := validateCategories(q); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptySample
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	if err := validateRange(lo, sorted[len(sorted)-1]); err != nil {
		return nil, err
	}
	if lo > sorted[0] {
		return nil, ErrInvalidRange
	}

	out := make([]float64, q+1)
	out[0] = lo
	for i := 1; i <= q; i++ {
		out[i] = quantileSorted(sorted, float64(i)/float64(q))
	}

	return out, nil
}

// QuantileOf returns the f-quantile (0 ≤ f ≤ 1) of values with linear
// interpolation. It returns NaN for an empty slice.
func QuantileOf(values []float64, f float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return quantileSorted(sorted, f)
}

// quantileSorted interpolates between sorted[floor(pos)] and sorted[ceil(pos)]
// with pos = f·(len−1).
func quantileSorted(sorted []float64, f float64) float64 {
	n := len(sorted)
	if f <= 0 {
		return sorted[0]
	}
	if f >= 1 {
		return sorted[n-1]
	}
	pos := f * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
