// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr/vm"

	"github.com/katalvlaran/classbreak/grid"
)

// Input binds a band to a formula variable.
type Input struct {
	Var  string
	Band *grid.Band
}

// Calculator evaluates a formula cell-wise over bound bands. Cells where any
// input holds no-data are written as noData instead of being evaluated.
type Calculator interface {
	Calculate(formula string, noData float64, inputs ...Input) (*grid.Band, error)
}

// Normalizer rewrites marker values into a canonical no-data sentinel.
type Normalizer interface {
	SetNull(b *grid.Band, markers []float64, noData float64) (*grid.Band, error)
}

// Engine is the default Calculator and Normalizer.
type Engine struct{}

// NewEngine returns an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

var (
	_ Calculator = (*Engine)(nil)
	_ Normalizer = (*Engine)(nil)
)

// Calculate compiles formula and evaluates it over the inputs. The output
// band declares noData as its sentinel.
// The formula is compiled once and run per cell on a reused VM.
// Complexity: O(W×H×|formula|).
func (e *Engine) Calculate(formula string, noData float64, inputs ...Input) (*grid.Band, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	prog, err := Compile(formula)
	if err != nil {
		return nil, err
	}

	bound := make(map[string]*grid.Band, len(inputs))
	w, h := inputs[0].Band.Width, inputs[0].Band.Height
	for _, in := range inputs {
		if in.Band.Width != w || in.Band.Height != h {
			return nil, ErrShapeMismatch
		}
		bound[in.Var] = in.Band
	}
	bands := make([]*grid.Band, len(prog.vars))
	for i, name := range prog.vars {
		b, ok := bound[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrUnboundVar)
		}
		bands[i] = b
	}

	var machine vm.VM
	env := make(map[string]any, len(bands))
	rows := make([][]float64, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]float64, w)
	cells:
		for x := 0; x < w; x++ {
			for i, b := range bands {
				v, _ := b.At(x, y)
				if b.IsNoData(v) {
					rows[y][x] = noData
					continue cells
				}
				env[prog.vars[i]] = v
			}
			out, err := prog.run(&machine, env)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			rows[y][x] = out
		}
	}

	return grid.NewBand(rows, grid.WithNoData(noData))
}

// SetNull returns a copy of b where cells equal to any marker, NaN cells and
// b's own sentinel are replaced by noData, which the result declares.
func (e *Engine) SetNull(b *grid.Band, markers []float64, noData float64) (*grid.Band, error) {
	return b.Map(func(v float64) float64 {
		if b.IsNoData(v) || math.IsNaN(v) {
			return noData
		}
		for _, m := range markers {
			if v == m {
				return noData
			}
		}
		return v
	}, grid.WithNoData(noData))
}
