// SPDX-License-Identifier: MIT

package classify

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/classbreak/calc"
)

// Defaults.
const (
	// DefaultNoData is the canonical sentinel of classified grids. Labels start
	// at 1, so 0 never collides with a class.
	DefaultNoData = 0.0
	// InvalidValue marks input no-data cells in the intermediate grid.
	InvalidValue = -9999.0
	// IntermediatePrefix prefixes the intermediate artifact name.
	IntermediatePrefix = "tp_"
	// BandVar is the formula variable bound to the classified band.
	BandVar = "A"
)

// Option configures an applicator or flow.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	logger     zerolog.Logger
	calculator calc.Calculator
	normalizer calc.Normalizer
	store      Store
	noData     float64
	name       string
}

// WithLogger sets the logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithCalculator replaces the raster calculator (default calc.Engine).
func WithCalculator(c calc.Calculator) Option {
	return func(o *Options) { o.calculator = c }
}

// WithNormalizer replaces the null normalizer (default calc.Engine).
func WithNormalizer(n calc.Normalizer) Option {
	return func(o *Options) { o.normalizer = n }
}

// WithStore sets where grid artifacts are kept (default a new MemStore).
func WithStore(s Store) Option {
	return func(o *Options) { o.store = s }
}

// WithNoData sets the canonical sentinel of classified grids. NaN cannot be
// matched by value and is rejected by the grid applicator with ErrInvalidNoData.
func WithNoData(v float64) Option {
	return func(o *Options) { o.noData = v }
}

// WithName overrides the output name derived from the method's short name.
func WithName(name string) Option {
	return func(o *Options) { o.name = name }
}

func gatherOptions(opts ...Option) Options {
	engine := calc.NewEngine()
	o := Options{
		logger:     zerolog.Nop(),
		calculator: engine,
		normalizer: engine,
		noData:     DefaultNoData,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = NewMemStore()
	}
	return o
}
