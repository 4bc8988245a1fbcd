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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates a key from its value on every line of the file.
const keySep = " :: "

// Sentinal error patterns.
const (
	DiskIllegalKey = "prefs: illegal character [%c] in key string [%s]"
	DiskError      = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used as the key in the disk file and should be unique among all
// Disk instances that share the same file.
//
// Keys can contain letters, digits and the period character.
func (dsk *Disk) Add(key string, p pref) error {
	for _, r := range key {
		if !(r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return curated.Errorf(DiskIllegalKey, r, key)
		}
	}

	dsk.entries[key] = p

	return nil
}

// HasEntry returns true if the key has been added to the Disk instance.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// Reset all entries to their default values. This does not effect the file on
// disk.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Save current preference values to disk. Values in the file that belong to
// other Disk instances (ie. keys that have not been added to this instance)
// are preserved. Defunct keys are dropped.
func (dsk *Disk) Save() (rerr error) {
	entries, err := dsk.read()
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	for k, v := range dsk.entries {
		entries[k] = v.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%s\n", WarningBoilerPlate); err != nil {
		return curated.Errorf(DiskError, err)
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", k, keySep, entries[k]); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values in the file that have not been
// added to the Disk instance are ignored.
//
// If saveOnFirstUse is true and the file does not exist then the current
// values are saved to disk.
//
// Once loaded, any values on the top of the command line stack (see
// PushCommandLineStack()) take precedence.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	_, err := os.Stat(dsk.path)
	if errors.Is(err, fs.ErrNotExist) {
		if saveOnFirstUse {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	} else {
		entries, err := dsk.read()
		if err != nil {
			return curated.Errorf(DiskError, err)
		}

		for k, v := range entries {
			if p, ok := dsk.entries[k]; ok {
				if err := p.Set(v); err != nil {
					return curated.Errorf(DiskError, err)
				}
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	return nil
}

// read every entry in the file. a missing file is not an error and returns an
// empty map.
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := scanner.Text()
		if s == WarningBoilerPlate {
			continue
		}

		kv := strings.SplitN(s, keySep, 2)
		if len(kv) != 2 {
			continue
		}

		if r, ok := isDefunct(kv[0]); ok {
			logger.Logf(logger.Allow, "prefs", "%s is defunct. use %s instead", kv[0], r)
			continue
		}

		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
