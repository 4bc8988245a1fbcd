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

package bindings

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/logger"
)

// Directives returns the directives that describe the bindings of both
// players. The Null control is not included.
func (t *Table) Directives() []Directive {
	ds := make([]Directive, 0, 2*(controls.NumControls-1))
	for p := range t.players {
		for c := controls.Null + 1; c < controls.NumControls; c++ {
			d := Directive{
				Player:  p,
				Control: c,
				Keys:    t.players[p][c],
				Args:    3,
			}
			if d.Keys[1] != 0 {
				d.Args = 4
			}
			ds = append(ds, d)
		}
	}
	return ds
}

// Save writes a directive for every control of both players to w. Controls
// without a binding are written with an explicit Null key so that loading
// the configuration clears the binding.
func (t *Table) Save(w io.Writer) error {
	for _, d := range t.Directives() {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return curated.Errorf("bindings: %v", err)
		}
	}
	return nil
}

// Load reads directives from r and applies them to the table in order. The
// version is the configuration version that the reader was saved with.
//
// Lines that are not binding directives are ignored. Malformed directives are
// logged and otherwise ignored. An error is returned only if reading fails.
func (t *Table) Load(r io.Reader, version int) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		d, err := ParseDirective(scanner.Text())
		if err != nil {
			if !curated.Is(err, NotDirective) {
				logger.Log(logger.Allow, "bindings", err)
			}
			continue
		}
		t.Apply(d, version)
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf("bindings: %v", err)
	}
	return nil
}
