// SPDX-License-Identifier: MIT

package breaks

import (
	"math"
)

// Defaults applied by ParseMethod when the caller passes zero values.
const (
	// DefaultCategories is the number of classes when none is given.
	DefaultCategories = 5
	// DefaultFactor is the progression factor when none is given.
	DefaultFactor = 2.0
	// Epsilon is the tolerance used when comparing breakpoints against the range.
	Epsilon = 1e-9
)

// Kind enumerates the breakpoint methods.
type Kind int

const (
	// Equidistant splits [min, max] into equal-width intervals.
	Equidistant Kind = iota + 1
	// Quantile places breakpoints at sample quantiles.
	Quantile
	// Progressive widens each interval geometrically by the factor.
	Progressive
	// WeberFechner follows a perceptual power progression of the factor.
	WeberFechner
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Equidistant:
		return "equidistant"
	case Quantile:
		return "quantile"
	case Progressive:
		return "progressive"
	case WeberFechner:
		return "weber-fechner"
	default:
		return "unknown"
	}
}

// Method is an immutable classification request: the method kind with the
// parameters it consumes. For Quantile, Categories is the quantile count q.
// Factor is ignored by Equidistant and Quantile.
type Method struct {
	Kind       Kind
	Categories int
	Factor     float64
}

// NewEquidistant returns an equal-width method with the given number of classes.
func NewEquidistant(categories int) (Method, error) {
	return newMethod(Method{Kind: Equidistant, Categories: categories})
}

// NewQuantile returns a q-quantile method (4 quartiles, 5 quintiles, 10 deciles).
func NewQuantile(q int) (Method, error) {
	return newMethod(Method{Kind: Quantile, Categories: q})
}

// NewProgressive returns a geometric method with the given factor and classes.
func NewProgressive(factor float64, categories int) (Method, error) {
	return newMethod(Method{Kind: Progressive, Categories: categories, Factor: factor})
}

// NewWeberFechner returns a Weber-Fechner method with the given factor and classes.
func NewWeberFechner(factor float64, categories int) (Method, error) {
	return newMethod(Method{Kind: WeberFechner, Categories: categories, Factor: factor})
}

func newMethod(m Method) (Method, error) {
	if err := m.Validate(); err != nil {
		return Method{}, err
	}
	return m, nil
}

// Validate checks the parameters against the method kind.
func (m Method) Validate() error {
	switch m.Kind {
	case Equidistant, Quantile:
		return validateCategories(m.Categories)
	case Progressive:
		if err := validateCategories(m.Categories); err != nil {
			return err
		}
		return validateFactor(m.Factor)
	case WeberFechner:
		if err := validateCategories(m.Categories); err != nil {
			return err
		}
		if err := validateFactor(m.Factor); err != nil {
			return err
		}
		// fp < 1 makes fp^i/fp^n exceed 1 and the sequence overshoots max.
		if m.Factor < 1 {
			return ErrInvalidParameters
		}
		return nil
	default:
		return ErrUnknownMethod
	}
}

// Sample is the set of valid values drawn from one data source plus the range
// the breakpoints must span. Values may hold duplicates; order is irrelevant.
type Sample struct {
	Min, Max float64
	Values   []float64
}

// NewSample builds a Sample whose range is the observed min/max of values.
// The slice is referenced, not copied.
func NewSample(values []float64) (Sample, error) {
	if len(values) == 0 {
		return Sample{}, ErrEmptySample
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	s := Sample{Min: lo, Max: hi, Values: values}
	if err := validateRange(s.Min, s.Max); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// Degenerate reports whether the range collapses to a single value. Every
// breakpoint then equals min and every sample lands in the last class; this
// is valid but usually worth a warning.
func (s Sample) Degenerate() bool {
	return s.Min == s.Max
}

func validateCategories(n int) error {
	if n < 1 {
		return ErrInvalidParameters
	}
	return nil
}

func validateFactor(fp float64) error {
	if fp <= 0 || math.IsNaN(fp) || math.IsInf(fp, 0) {
		return ErrInvalidParameters
	}
	return nil
}

func validateRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return ErrInvalidRange
	}
	return nil
}
