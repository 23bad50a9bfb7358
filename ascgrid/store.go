// SPDX-License-Identifier: MIT

package ascgrid

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/classbreak/grid"
)

// Ext is the file extension of stored grids.
const Ext = ".asc"

// DirStore keeps named bands as ASCII grid files in Dir, all sharing Header.
type DirStore struct {
	Dir    string
	Header Header
}

// NewDirStore creates dir if needed.
func NewDirStore(dir string, h Header) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating store directory: %w", err)
	}
	return &DirStore{Dir: dir, Header: h}, nil
}

// Path returns the file backing name.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.Dir, name+Ext)
}

// Put writes b under name, replacing any previous file atomically.
func (s *DirStore) Put(name string, b *grid.Band) error {
	tmp, err := os.CreateTemp(s.Dir, name+".*.tmp")
	if err != nil {
		return err
	}
	if err := Write(tmp, b, s.Header); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path(name))
}

// Get reads the band stored under name.
func (s *DirStore) Get(name string) (*grid.Band, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, _, err := Read(f)
	return b, err
}

// Remove deletes name; removing a missing name is not an error.
func (s *DirStore) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads a band and its header from path.
func Load(path string) (*grid.Band, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()
	return Read(f)
}
