// SPDX-License-Identifier: MIT

// Package classify applies a breakpoint rule to a raster band or to an
// attribute column and runs the end-to-end flows:
//
//	source → extract (min, max, samples) → breaks.Generate → rule.New → apply
//
// Grid path (ApplyGrid, Grid): the rule's symbolic formula is evaluated by a
// calc.Calculator with InvalidValue for no-data cells, the result is stored
// as an intermediate artifact ("tp_<name>"), a calc.Normalizer folds the
// out-of-rule marker 0 and InvalidValue into the canonical no-data value, the
// normalized band is stored as <name>, and only then is the intermediate
// removed. A failure before that point leaves the intermediate in place.
//
// Column path (ApplyColumn, Column): the integer output field is created when
// absent (never altered when present), then each interval is written in its
// own transaction, strictly in order: Begin, Assign, Commit (Rollback and
// stop on error). A mid-loop failure leaves earlier intervals committed and
// later features unset; callers detect it by unset labels.
//
// Both paths use the rule's interval convention: [b[i-1], b[i]) with the last
// interval closed, so boundary values get the same class on grids and columns.
//
// Everything here is synchronous and single-threaded.
package classify
