// SPDX-License-Identifier: MIT

package classify

import "errors"

var (
	// ErrNoDataClash indicates the canonical no-data value equals a class label.
	ErrNoDataClash = errors.New("classify: no-data value collides with a class label")
	// ErrInvalidNoData indicates a canonical no-data value that is not finite.
	ErrInvalidNoData = errors.New("classify: no-data value must be finite")
	// ErrNilSource indicates a nil raster, band or table.
	ErrNilSource = errors.New("classify: nil source")
	// ErrEmptyName indicates an empty output name.
	ErrEmptyName = errors.New("classify: empty output name")
)
