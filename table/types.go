// SPDX-License-Identifier: MIT

package table

import "github.com/katalvlaran/classbreak/rule"

// FieldType is the storage type of an attribute.
type FieldType int

const (
	// Real holds floating-point values.
	Real FieldType = iota
	// Integer holds integral values; class labels use it.
	Integer
)

// String returns "real" or "integer".
func (ft FieldType) String() string {
	if ft == Integer {
		return "integer"
	}
	return "real"
}

// Field is one attribute of the schema.
type Field struct {
	Name string
	Type FieldType
}

// Table is a vector layer's attribute table.
type Table interface {
	// Fields returns the schema in declaration order.
	Fields() ([]Field, error)
	// AddField appends a field; existing rows hold no value for it.
	AddField(f Field) error
	// Values returns one value per feature that has one, geometry excluded.
	Values(field string) ([]float64, error)
	// Classes returns an integer field per feature in feature order; features
	// without a value report rule.Unclassified.
	Classes(field string) ([]int, error)
	// Begin opens an edit transaction. Only one may be open at a time.
	Begin() (Tx, error)
}

// Tx is an edit transaction on a Table.
type Tx interface {
	// Assign sets dst = iv.Class on every feature whose src value lies in
	// iv, returning the number of features updated.
	Assign(src, dst string, iv rule.Interval) (int64, error)
	Commit() error
	Rollback() error
}

// HasField reports whether t has a field called name.
func HasField(t Table, name string) (bool, error) {
	fields, err := t.Fields()
	if err != nil {
		return false, err
	}
	for _, f := range fields {
		if f.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// EnsureField adds f unless a field of that name exists; the existing field
// is never altered. created reports whether the schema changed.
func EnsureField(t Table, f Field) (created bool, err error) {
	ok, err := HasField(t, f.Name)
	if err != nil || ok {
		return false, err
	}
	if err := t.AddField(f); err != nil {
		return false, err
	}
	return true, nil
}
