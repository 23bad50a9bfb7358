// SPDX-License-Identifier: MIT

package classify

import (
	"fmt"

	"github.com/katalvlaran/classbreak/breaks"
	"github.com/katalvlaran/classbreak/grid"
	"github.com/katalvlaran/classbreak/rule"
	"github.com/katalvlaran/classbreak/table"
)

// Result describes a finished classification.
type Result struct {
	// Name is the output artifact or field name.
	Name   string
	Method breaks.Method
	Breaks []float64
	// Samples is the number of values the breakpoints were derived from.
	Samples int
	// Degenerate is set when min == max: every value lands in one class.
	Degenerate bool
	// Output is the classified band (grid path only).
	Output *grid.Band
	// Assigned counts labelled features (column path only).
	Assigned int64
}

// Grid classifies band (1-based) of src with m and stores the output under
// the method's short name, or the WithName override.
func Grid(src *grid.Raster, band int, m breaks.Method, opts ...Option) (*Result, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := gatherOptions(opts...)
	if err := checkNoData(o.noData, m.Categories); err != nil {
		return nil, err
	}
	b, err := src.Band(band)
	if err != nil {
		return nil, err
	}
	s, err := grid.ExtractBand(b)
	if err != nil {
		return nil, err
	}
	res, r, err := prepare(m, s, o)
	if err != nil {
		return nil, err
	}
	out, err := applyGrid(b, r, res.Name, o)
	if err != nil {
		return nil, err
	}
	res.Output = out

	return res, nil
}

// Column classifies field of t with m into an integer field named after the
// method's short name, or the WithName override.
func Column(t table.Table, field string, m breaks.Method, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrNilSource
	}
	o := gatherOptions(opts...)
	s, err := table.Extract(t, field)
	if err != nil {
		return nil, err
	}
	res, r, err := prepare(m, s, o)
	if err != nil {
		return nil, err
	}
	n, err := applyColumn(t, field, r, res.Name, o)
	res.Assigned = n
	if err != nil {
		return res, err
	}

	return res, nil
}

// prepare generates the breakpoints and builds the rule.
func prepare(m breaks.Method, s breaks.Sample, o Options) (*Result, *rule.Rule, error) {
	b, err := breaks.Generate(m, s)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", m, err)
	}
	r, err := rule.New(b)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", m, err)
	}
	name := o.name
	if name == "" {
		name = m.ShortName()
	}
	res := &Result{
		Name:       name,
		Method:     m,
		Breaks:     r.Breaks(),
		Samples:    len(s.Values),
		Degenerate: s.Degenerate(),
	}

	ev := o.logger.Info()
	if res.Degenerate {
		ev = o.logger.Warn()
	}
	ev.Str("method", m.Kind.String()).
		Int("categories", m.Categories).
		Float64("min", s.Min).
		Float64("max", s.Max).
		Int("samples", res.Samples).
		Floats64("breaks", res.Breaks).
		Bool("degenerate", res.Degenerate).
		Msg(degenerateMsg(res.Degenerate))

	return res, r, nil
}

func degenerateMsg(d bool) string {
	if d {
		return "range is degenerate, all values fall in one class"
	}
	return "breakpoints generated"
}
