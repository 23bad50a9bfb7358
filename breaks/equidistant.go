// SPDX-License-Identifier: MIT

package breaks

// EquidistantBreaks splits [lo, hi] into categories intervals of equal width:
// b[i] = lo + i·(hi−lo)/categories. The last value is pinned to hi so that
// accumulated rounding never leaves max outside the final interval.
//
// Errors: ErrInvalidParameters, ErrInvalidRange.
// Complexity: O(categories).
func EquidistantBreaks(categories int, lo, hi float64) ([]float64, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}

	step := (hi - lo) / float64(categories)
	out := make([]float64, categories+1)
	out[0] = lo
	for i := 1; i < categories; i++ {
		out[i] = lo + step*float64(i)
	}
	out[categories] = hi

	return out, nil
}
