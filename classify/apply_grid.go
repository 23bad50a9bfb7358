// SPDX-License-Identifier: MIT

package classify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/classbreak/calc"
	"github.com/katalvlaran/classbreak/grid"
	"github.com/katalvlaran/classbreak/rule"
)

// ApplyGrid classifies band with r and stores the result under name.
// Cells get labels 1..r.Categories(); no-data and out-of-rule cells get the
// canonical no-data value. The returned band is the stored one.
//
// Sequence: calculate → Put(tp_<name>) → normalize → Put(name) →
// Remove(tp_<name>). The intermediate is removed only once the final band is
// stored.
func ApplyGrid(band *grid.Band, r *rule.Rule, name string, opts ...Option) (*grid.Band, error) {
	o := gatherOptions(opts...)
	return applyGrid(band, r, name, o)
}

func applyGrid(band *grid.Band, r *rule.Rule, name string, o Options) (*grid.Band, error) {
	if band == nil || r == nil {
		return nil, ErrNilSource
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkNoData(o.noData, r.Categories()); err != nil {
		return nil, err
	}
	log := o.logger.With().Str("component", "grid").Str("output", name).Logger()

	formula := r.Formula(BandVar)
	log.Debug().Str("formula", formula).Msg("evaluating rule")

	tmp, err := o.calculator.Calculate(formula, InvalidValue, calc.Input{Var: BandVar, Band: band})
	if err != nil {
		return nil, fmt.Errorf("calculate %s: %w", name, err)
	}
	tmpName := IntermediatePrefix + name
	if err := o.store.Put(tmpName, tmp); err != nil {
		return nil, fmt.Errorf("store %s: %w", tmpName, err)
	}

	final, err := o.normalizer.SetNull(tmp, []float64{0, InvalidValue}, o.noData)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", tmpName, err)
	}
	if err := o.store.Put(name, final); err != nil {
		return nil, fmt.Errorf("store %s: %w", name, err)
	}
	if err := o.store.Remove(tmpName); err != nil {
		log.Warn().Err(err).Str("intermediate", tmpName).Msg("intermediate not removed")
	}

	log.Info().
		Int("classified", final.Stats().Valid).
		Int("cells", final.Len()).
		Msg("grid classified")

	return final, nil
}

// checkNoData rejects a non-finite sentinel and one equal to a label 1..n.
func checkNoData(v float64, n int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%v: %w", v, ErrInvalidNoData)
	}
	if v >= 1 && v <= float64(n) && v == math.Trunc(v) {
		return fmt.Errorf("%v within 1..%d: %w", v, n, ErrNoDataClash)
	}
	return nil
}
