// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/classbreak/rule"
)

// Feature is one row of a Memory table. Attrs holds only the fields that
// have a value.
type Feature struct {
	ID    int64
	Attrs map[string]float64
}

// Memory is an in-memory Table.
type Memory struct {
	mu       sync.Mutex
	fields   []Field
	features []Feature
	open     bool
}

var _ Table = (*Memory)(nil)

// NewMemory builds a table with the given schema and features. Features are
// deep-copied.
func NewMemory(fields []Field, features []Feature) *Memory {
	m := &Memory{fields: append([]Field(nil), fields...)}
	for _, f := range features {
		attrs := make(map[string]float64, len(f.Attrs))
		for k, v := range f.Attrs {
			attrs[k] = v
		}
		m.features = append(m.features, Feature{ID: f.ID, Attrs: attrs})
	}
	return m
}

// FromColumn builds a one-field table with a feature per value.
func FromColumn(field string, values []float64) *Memory {
	features := make([]Feature, len(values))
	for i, v := range values {
		features[i] = Feature{ID: int64(i + 1), Attrs: map[string]float64{field: v}}
	}
	return NewMemory([]Field{{Name: field, Type: Real}}, features)
}

// Fields implements Table.
func (m *Memory) Fields() ([]Field, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Field(nil), m.fields...), nil
}

// AddField implements Table.
func (m *Memory) AddField(f Field) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(f.Name) >= 0 {
		return fmt.Errorf("%q: %w", f.Name, ErrFieldExists)
	}
	m.fields = append(m.fields, f)
	return nil
}

// Values implements Table.
func (m *Memory) Values(field string) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(field) < 0 {
		return nil, fmt.Errorf("%q: %w", field, ErrMissingField)
	}
	out := make([]float64, 0, len(m.features))
	for _, f := range m.features {
		if v, ok := f.Attrs[field]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Classes implements Table.
func (m *Memory) Classes(field string) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(field) < 0 {
		return nil, fmt.Errorf("%q: %w", field, ErrMissingField)
	}
	out := make([]int, len(m.features))
	for i, f := range m.features {
		if v, ok := f.Attrs[field]; ok {
			out[i] = int(v)
		} else {
			out[i] = rule.Unclassified
		}
	}
	return out, nil
}

// Begin implements Table.
func (m *Memory) Begin() (Tx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open {
		return nil, ErrTxActive
	}
	m.open = true
	return &memTx{m: m, pending: map[int]map[string]float64{}}, nil
}

func (m *Memory) indexOf(name string) int {
	for i, f := range m.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// memTx buffers edits until Commit.
type memTx struct {
	m       *Memory
	pending map[int]map[string]float64
	done    bool
}

func (tx *memTx) Assign(src, dst string, iv rule.Interval) (int64, error) {
	tx.m.mu.Lock()
	defer tx.m.mu.Unlock()
	if tx.done {
		return 0, ErrTxDone
	}
	if tx.m.indexOf(src) < 0 {
		return 0, fmt.Errorf("%q: %w", src, ErrMissingField)
	}
	if tx.m.indexOf(dst) < 0 {
		return 0, fmt.Errorf("%q: %w", dst, ErrMissingField)
	}
	var n int64
	for i, f := range tx.m.features {
		v, ok := f.Attrs[src]
		if !ok || !iv.Contains(v) {
			continue
		}
		if tx.pending[i] == nil {
			tx.pending[i] = map[string]float64{}
		}
		tx.pending[i][dst] = float64(iv.Class)
		n++
	}
	return n, nil
}

func (tx *memTx) Commit() error {
	tx.m.mu.Lock()
	defer tx.m.mu.Unlock()
	if tx.done {
		return ErrTxDone
	}
	for i, attrs := range tx.pending {
		for k, v := range attrs {
			tx.m.features[i].Attrs[k] = v
		}
	}
	tx.finish()
	return nil
}

func (tx *memTx) Rollback() error {
	tx.m.mu.Lock()
	defer tx.m.mu.Unlock()
	if tx.done {
		return ErrTxDone
	}
	tx.finish()
	return nil
}

func (tx *memTx) finish() {
	tx.done = true
	tx.pending = nil
	tx.m.open = false
}
