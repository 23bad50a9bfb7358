// SPDX-License-Identifier: MIT

package breaks

import "math"

// ProgressiveBreaks builds intervals whose widths grow geometrically: the
// width of interval i is fp^i·unit with unit = (hi−lo)/Σ_{i<n} fp^i, summed
// cumulatively from lo. fp > 1 widens bins toward the high end, fp < 1
// narrows them, fp = 1 is equidistant.
//
// Weights are scaled by fp^−(n−1) when fp > 1 so that no power exceeds one
// and large category counts stay finite. The running sum only reaches hi up
// to rounding; the last breakpoint is
// pinned to hi (see ProgressiveDrift for the unpinned residue).
//
// Errors: ErrInvalidParameters, ErrInvalidRange.
// Complexity: O(categories).
func ProgressiveBreaks(fp float64, categories int, lo, hi float64) ([]float64, error) {
	out, err := progressiveSum(fp, categories, lo, hi)
	if err != nil {
		return nil, err
	}
	for i := 1; i < categories; i++ {
		out[i] = math.Min(out[i], hi)
	}
	out[categories] = hi

	return out, nil
}

// ProgressiveDrift reports how far the accumulated progressive sequence ends
// from hi before pinning: b[n] − hi. It is zero for exact arithmetic.
func ProgressiveDrift(fp float64, categories int, lo, hi float64) (float64, error) {
	out, err := progressiveSum(fp, categories, lo, hi)
	if err != nil {
		return 0, err
	}

	return out[categories] - hi, nil
}

func progressiveSum(fp float64, categories int, lo, hi float64) ([]float64, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}
	if err := validateFactor(fp); err != nil {
		return nil, err
	}
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}

	w := make([]float64, categories)
	var total float64
	for i := range w {
		w[i] = progressiveWeight(fp, i, categories)
		total += w[i]
	}
	unit := (hi - lo) / total

	out := make([]float64, categories+1)
	out[0] = lo
	for i := 0; i < categories; i++ {
		out[i+1] = out[i] + w[i]*unit
	}

	return out, nil
}

// progressiveWeight is fp^i, rescaled into (0, 1] for widening progressions.
func progressiveWeight(fp float64, i, categories int) float64 {
	if fp > 1 {
		return math.Pow(fp, float64(i-categories+1))
	}
	return math.Pow(fp, float64(i))
}
