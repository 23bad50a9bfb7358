// SPDX-License-Identifier: MIT

package classify

import (
	"fmt"

	"github.com/katalvlaran/classbreak/rule"
	"github.com/katalvlaran/classbreak/table"
)

// ApplyColumn writes r's class of field into the integer field out for every
// feature, one transaction per interval. out is created when missing and left
// as is otherwise. It returns the number of features assigned.
func ApplyColumn(t table.Table, field string, r *rule.Rule, out string, opts ...Option) (int64, error) {
	o := gatherOptions(opts...)
	return applyColumn(t, field, r, out, o)
}

func applyColumn(t table.Table, field string, r *rule.Rule, out string, o Options) (int64, error) {
	if t == nil || r == nil {
		return 0, ErrNilSource
	}
	if out == "" {
		return 0, ErrEmptyName
	}
	log := o.logger.With().Str("component", "column").Str("field", field).Str("output", out).Logger()

	created, err := table.EnsureField(t, table.Field{Name: out, Type: table.Integer})
	if err != nil {
		return 0, fmt.Errorf("ensure field %q: %w", out, err)
	}
	if created {
		log.Debug().Msg("output field created")
	}

	var total int64
	for _, iv := range r.Intervals() {
		n, err := assignInterval(t, field, out, iv)
		if err != nil {
			log.Error().Err(err).Int("class", iv.Class).Int64("assigned", total).Msg("interval failed")
			return total, err
		}
		log.Debug().Int("class", iv.Class).Float64("low", iv.Low).Float64("high", iv.High).Int64("features", n).Msg("interval committed")
		total += n
	}

	log.Info().Int64("assigned", total).Int("classes", r.Categories()).Msg("column classified")
	return total, nil
}

// assignInterval runs one interval in its own transaction; the transaction is
// finished (commit or rollback) before returning.
func assignInterval(t table.Table, field, out string, iv rule.Interval) (int64, error) {
	tx, err := t.Begin()
	if err != nil {
		return 0, fmt.Errorf("class %d: begin: %w", iv.Class, err)
	}
	n, err := tx.Assign(field, out, iv)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("class %d: %w", iv.Class, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("class %d: commit: %w", iv.Class, err)
	}
	return n, nil
}
