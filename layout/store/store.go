// This file is part of Controlmapper.
//
// Controlmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Controlmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Controlmapper.  If not, see <https://www.gnu.org/licenses/>.

package store

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/layout"
)

// Sentinal error patterns.
const (
	StoreError = "store: %v"
	Malformed  = "store: malformed file: %v"
	ListFull   = "store: no more than %d layouts can be saved"
	NotFound   = "store: layout '%s' not found"
	Duplicate  = "store: layout '%s' already exists"
	EmptyName  = "store: layout name is empty"
)

// the extension given to layout files
const layoutExt = ".yaml"

// DefaultDir is the name of the store directory inside the resource path.
const DefaultDir = "layouts"

// Store is a directory of layout files.
type Store struct {
	dir string

	// the list of entries is accessed by the watcher goroutine
	crit    sync.Mutex
	entries []Entry
}

// Open the store in the directory. The directory is created if it does not
// exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	s := &Store{dir: dir}

	var err error
	s.entries, err = readList(s.listPath())
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Dir returns the directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) listPath() string {
	return filepath.Join(s.dir, ListFile)
}

// Entries returns a copy of the list of layouts in the store.
func (s *Store) Entries() []Entry {
	s.crit.Lock()
	defer s.crit.Unlock()
	e := make([]Entry, len(s.entries))
	copy(e, s.entries)
	return e
}

// must be called with the critical section locked
func (s *Store) find(name string) int {
	for i, e := range s.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// entryForFile returns the entry for the file. The file is a base name.
func (s *Store) entryForFile(file string) (Entry, bool) {
	s.crit.Lock()
	defer s.crit.Unlock()
	for _, e := range s.entries {
		if e.File == file {
			return e, true
		}
	}
	return Entry{}, false
}

// Save the layout to the store. If a layout with the same name exists it is
// replaced.
func (s *Store) Save(l *layout.Layout) error {
	name := strings.TrimSpace(l.Name)
	if name == "" {
		return curated.Errorf(EmptyName)
	}

	data, err := Marshal(l)
	if err != nil {
		return err
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	// the entries are only replaced once the layout file and the list file
	// have both been written
	entries := s.entries
	i := s.find(name)
	if i == -1 {
		if len(s.entries) >= MaxLayouts {
			return curated.Errorf(ListFull, MaxLayouts)
		}
		entries = append(slices.Clip(s.entries), Entry{
			Name: name,
			File: uuid.New().String() + layoutExt,
		})
		i = len(entries) - 1
	}

	pth := filepath.Join(s.dir, entries[i].File)
	if err := os.WriteFile(pth, data, 0o600); err != nil {
		return curated.Errorf(StoreError, err)
	}

	if err := writeList(s.listPath(), entries); err != nil {
		if len(entries) != len(s.entries) {
			_ = os.Remove(pth)
		}
		return err
	}
	s.entries = entries

	return nil
}

// Load the named layout from the store.
func (s *Store) Load(name string) (*layout.Layout, error) {
	s.crit.Lock()
	i := s.find(name)
	var e Entry
	if i != -1 {
		e = s.entries[i]
	}
	s.crit.Unlock()

	if i == -1 {
		return nil, curated.Errorf(NotFound, name)
	}

	return s.readLayout(e)
}

func (s *Store) readLayout(e Entry) (*layout.Layout, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, e.File))
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}

	l, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	// the name in the list takes priority over the name in the file
	l.Name = e.Name

	return l, nil
}

// Remove the named layout from the store. The layout file is deleted.
func (s *Store) Remove(name string) error {
	s.crit.Lock()
	defer s.crit.Unlock()

	i := s.find(name)
	if i == -1 {
		return curated.Errorf(NotFound, name)
	}

	err := os.Remove(filepath.Join(s.dir, s.entries[i].File))
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(StoreError, err)
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)

	return writeList(s.listPath(), s.entries)
}

// Rename the layout. The layout file keeps its filename.
func (s *Store) Rename(oldName string, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return curated.Errorf(EmptyName)
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	i := s.find(oldName)
	if i == -1 {
		return curated.Errorf(NotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if s.find(newName) != -1 {
		return curated.Errorf(Duplicate, newName)
	}

	entries := slices.Clone(s.entries)
	entries[i].Name = newName
	if err := writeList(s.listPath(), entries); err != nil {
		return err
	}
	s.entries = entries

	return nil
}
