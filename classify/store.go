// SPDX-License-Identifier: MIT

package classify

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/katalvlaran/classbreak/grid"
)

// Store keeps named grid artifacts: the layer registry of the grid path.
type Store interface {
	Put(name string, b *grid.Band) error
	Get(name string) (*grid.Band, error)
	Remove(name string) error
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu    sync.Mutex
	items map[string]*grid.Band
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{items: map[string]*grid.Band{}}
}

// Put implements Store.
func (s *MemStore) Put(name string, b *grid.Band) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[name] = b
	return nil
}

// Get implements Store; a missing name wraps os.ErrNotExist.
func (s *MemStore) Get(name string) (*grid.Band, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.items[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, os.ErrNotExist)
	}
	return b, nil
}

// Remove implements Store.
func (s *MemStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, name)
	return nil
}

// Names lists stored names in sorted order.
func (s *MemStore) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.items))
	for k := range s.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
