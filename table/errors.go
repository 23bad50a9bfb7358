// SPDX-License-Identifier: MIT

package table

import (
	"errors"

	"github.com/katalvlaran/classbreak/breaks"
)

var (
	// ErrMissingField indicates the named field is not in the schema.
	ErrMissingField = errors.New("table: field not found")
	// ErrFieldExists indicates an attempt to add an existing field.
	ErrFieldExists = errors.New("table: field already exists")
	// ErrTxActive indicates a second concurrent edit transaction.
	ErrTxActive = errors.New("table: edit transaction already open")
	// ErrTxDone indicates use of a finished transaction.
	ErrTxDone = errors.New("table: transaction already committed or rolled back")
	// ErrEmptySample is breaks.ErrEmptySample.
	ErrEmptySample = breaks.ErrEmptySample
)
