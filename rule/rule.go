// SPDX-License-Identifier: MIT

package rule

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Unclassified is the label Classify reports alongside ok=false.
const Unclassified = 0

// DefaultBand is the band variable used in formulas.
const DefaultBand = "A"

// Interval is one class of the rule: [Low, High) or [Low, High] when Closed.
type Interval struct {
	Low, High float64
	Closed    bool
	Class     int
}

// Contains reports whether v falls inside the interval.
func (iv Interval) Contains(v float64) bool {
	if v < iv.Low {
		return false
	}
	if iv.Closed {
		return v <= iv.High
	}
	return v < iv.High
}

// Rule classifies scalars against a fixed breakpoint sequence. It is
// immutable once built.
type Rule struct {
	breaks []float64
}

// New validates b and returns a Rule over a private copy of it.
func New(b []float64) (*Rule, error) {
	if len(b) < 2 {
		return nil, ErrTooFewBreaks
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
		if i > 0 && v < b[i-1] {
			return nil, ErrNotSorted
		}
	}
	cp := make([]float64, len(b))
	copy(cp, b)

	return &Rule{breaks: cp}, nil
}

// Categories returns the number of classes, len(breaks)-1.
func (r *Rule) Categories() int {
	return len(r.breaks) - 1
}

// Breaks returns a copy of the breakpoint sequence.
func (r *Rule) Breaks() []float64 {
	out := make([]float64, len(r.breaks))
	copy(out, r.breaks)
	return out
}

// Min returns the lowest classified value.
func (r *Rule) Min() float64 { return r.breaks[0] }

// Max returns the highest classified value.
func (r *Rule) Max() float64 { return r.breaks[len(r.breaks)-1] }

// Classify returns the 1-based class of v, or (Unclassified, false) when v is
// NaN or outside [Min, Max].
// Complexity: O(log n).
func (r *Rule) Classify(v float64) (int, bool) {
	n := len(r.breaks)
	if math.IsNaN(v) {
		return Unclassified, false
	}
	// first index whose breakpoint is strictly greater than v
	idx := sort.Search(n, func(i int) bool { return r.breaks[i] > v })
	switch {
	case idx == 0:
		return Unclassified, false
	case idx == n:
		if v == r.breaks[n-1] {
			return n - 1, true
		}
		return Unclassified, false
	default:
		return idx, true
	}
}

// Intervals lists every class in ascending order; only the last is Closed.
func (r *Rule) Intervals() []Interval {
	n := r.Categories()
	out := make([]Interval, n)
	for i := 0; i < n; i++ {
		out[i] = Interval{
			Low:    r.breaks[i],
			High:   r.breaks[i+1],
			Closed: i == n-1,
			Class:  i + 1,
		}
	}
	return out
}

// Term is one additive indicator of the symbolic form.
type Term = Interval

// Expression returns the symbolic form as a list of additive terms: a value
// evaluates to the Class of the single term that contains it, or 0.
func (r *Rule) Expression() []Term {
	return r.Intervals()
}

// Formula renders the symbolic form for a raster calculator with the band
// bound to variable band (DefaultBand when empty):
//
//	logical_and(A>=0,A<20)*1 + logical_and(A>=20, A<=40)*2
//
// Floats use the shortest representation that parses back to the same value.
func (r *Rule) Formula(band string) string {
	if band == "" {
		band = DefaultBand
	}
	var sb strings.Builder
	for i, t := range r.Expression() {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString("logical_and(")
		sb.WriteString(band)
		sb.WriteString(">=")
		sb.WriteString(formatFloat(t.Low))
		if t.Closed {
			sb.WriteString(", ")
			sb.WriteString(band)
			sb.WriteString("<=")
		} else {
			sb.WriteString(",")
			sb.WriteString(band)
			sb.WriteString("<")
		}
		sb.WriteString(formatFloat(t.High))
		sb.WriteString(")*")
		sb.WriteString(strconv.Itoa(t.Class))
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
