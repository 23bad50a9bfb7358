// SPDX-License-Identifier: MIT

package breaks

import "math"

// WeberFechnerBreaks follows a perceptual progression:
// b[i] = lo + fp^i·unit with unit = (hi−lo)/fp^n, b[0] = lo.
// It is evaluated as lo + (hi−lo)·fp^(i−n), which stays finite for any
// category count. The last value is written as hi directly so that closure is
// exact for any fp.
//
// fp must be ≥ 1: smaller factors make fp^i/fp^n exceed one and overshoot hi.
//
// Errors: ErrInvalidParameters, ErrInvalidRange.
// Complexity: O(categories).
func WeberFechnerBreaks(fp float64, categories int, lo, hi float64) ([]float64, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}
	if err := validateFactor(fp); err != nil {
		return nil, err
	}
	if fp < 1 {
		return nil, ErrInvalidParameters
	}
	if err := validateRange(lo, hi); err != nil {
		return nil, err
	}

	span := hi - lo
	out := make([]float64, categories+1)
	out[0] = lo
	for i := 1; i < categories; i++ {
		out[i] = math.Min(lo+span*math.Pow(fp, float64(i-categories)), hi)
	}
	out[categories] = hi

	return out, nil
}
