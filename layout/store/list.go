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
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/logger"
	"github.com/pelletier/go-toml/v2"
)

// ListFile is the name of the file in the store directory that lists the
// layouts.
const ListFile = "layouts.toml"

// MaxLayouts is the maximum number of layouts in the store.
const MaxLayouts = 32

// Entry associates a layout name with the file containing the layout.
type Entry struct {
	Name string `toml:"name"`
	File string `toml:"file"`
}

type listFile struct {
	Layouts []Entry `toml:"layouts"`
}

// readList returns the entries in the list file. A missing list file is not
// an error.
func readList(pth string) ([]Entry, error) {
	data, err := os.ReadFile(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, curated.Errorf(StoreError, err)
	}

	var lf listFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, curated.Errorf(Malformed, err)
	}

	if len(lf.Layouts) > MaxLayouts {
		logger.Logf(logger.Allow, "store", "layout list truncated to %d entries", MaxLayouts)
		lf.Layouts = lf.Layouts[:MaxLayouts]
	}

	return lf.Layouts, nil
}

func writeList(pth string, entries []Entry) error {
	data, err := toml.Marshal(listFile{Layouts: entries})
	if err != nil {
		return curated.Errorf(StoreError, err)
	}
	if err := os.WriteFile(pth, data, 0o600); err != nil {
		return curated.Errorf(StoreError, err)
	}
	return nil
}
