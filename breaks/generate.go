// SPDX-License-Identifier: MIT

package breaks

import (
	"fmt"
	"math"
)

// Generate dispatches m over the sample and returns m.Categories+1
// breakpoints spanning [s.Min, s.Max]. Only Quantile reads s.Values.
//
// The result is checked with Validate before it is returned.
//
// Errors: ErrUnknownMethod, ErrInvalidParameters, ErrInvalidRange,
// ErrEmptySample, ErrBrokenSequence.
func Generate(m Method, s Sample) ([]float64, error) {
	b, err := generate(m, s)
	if err != nil {
		return nil, err
	}
	if err := Validate(b, m.Categories, s.Min, s.Max); err != nil {
		return nil, fmt.Errorf("%s: %w", m, err)
	}

	return b, nil
}

func generate(m Method, s Sample) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(s.Values) == 0 {
		return nil, ErrEmptySample
	}

	switch m.Kind {
	case Equidistant:
		return EquidistantBreaks(m.Categories, s.Min, s.Max)
	case Quantile:
		return QuantileBreaks(m.Categories, s.Min, s.Values)
	case Progressive:
		return ProgressiveBreaks(m.Factor, m.Categories, s.Min, s.Max)
	case WeberFechner:
		return WeberFechnerBreaks(m.Factor, m.Categories, s.Min, s.Max)
	default:
		return nil, ErrUnknownMethod
	}
}

// Validate checks that b is a well-formed sequence for n categories over
// [lo, hi]: length n+1, non-decreasing, b[0] = lo and b[n] = hi within Epsilon
// scaled to the range magnitude.
func Validate(b []float64, n int, lo, hi float64) error {
	if len(b) != n+1 {
		return fmt.Errorf("length %d, want %d: %w", len(b), n+1, ErrBrokenSequence)
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("b[%d] = %v: %w", i, v, ErrBrokenSequence)
		}
		if i > 0 && v < b[i-1] {
			return fmt.Errorf("b[%d] = %v < b[%d] = %v: %w", i, v, i-1, b[i-1], ErrBrokenSequence)
		}
	}
	tol := Epsilon * math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))
	if math.Abs(b[0]-lo) > tol {
		return fmt.Errorf("first breakpoint %v, want %v: %w", b[0], lo, ErrBrokenSequence)
	}
	if math.Abs(b[n]-hi) > tol {
		return fmt.Errorf("last breakpoint %v, want %v: %w", b[n], hi, ErrBrokenSequence)
	}

	return nil
}
