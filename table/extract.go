// SPDX-License-Identifier: MIT

package table

import (
	"fmt"

	"github.com/katalvlaran/classbreak/breaks"
)

// Extract reads field from every feature and returns the sample with its
// observed min/max. Values are taken as given.
//
// Errors: ErrMissingField, ErrEmptySample, breaks.ErrInvalidRange.
func Extract(t Table, field string) (breaks.Sample, error) {
	ok, err := HasField(t, field)
	if err != nil {
		return breaks.Sample{}, err
	}
	if !ok {
		return breaks.Sample{}, fmt.Errorf("%q: %w", field, ErrMissingField)
	}
	values, err := t.Values(field)
	if err != nil {
		return breaks.Sample{}, err
	}
	return breaks.NewSample(values)
}
