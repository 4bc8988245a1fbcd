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

package doubleclick

import (
	"github.com/jetsetilly/controlmapper/keys"
)

// family is a contiguous range of physical keys and the range of double-click
// keys that mirror them.
type family struct {
	from    keys.Key
	to      keys.Key
	latches []Latch
}

func newFamily(from keys.Key, to keys.Key, size int) family {
	return family{
		from:    from,
		to:      to,
		latches: make([]Latch, size),
	}
}

// Detector owns a Latch for every button of every family that has a
// double-click equivalent.
type Detector struct {
	families [4]family
}

// joystick buttons and hats are treated as one family because they are
// contiguous in both the physical and double-click ranges
const joyFamilySize = keys.JoyButtons + keys.JoyHats*keys.HatDirections

// NewDetector is the preferred method of initialisation for the Detector type.
func NewDetector() *Detector {
	return &Detector{
		families: [4]family{
			newFamily(keys.Mouse1, keys.DblMouse1, keys.MouseButtons),
			newFamily(keys.Joy1, keys.DblJoy1, joyFamilySize),
			newFamily(keys.P2Mouse1, keys.P2DblMouse1, keys.MouseButtons),
			newFamily(keys.P2Joy1, keys.P2DblJoy1, joyFamilySize),
		},
	}
}

// Poll observes every latch and writes the result into the double-click key.
// The down slice is indexed by key and must cover the entire key space.
func (d *Detector) Poll(down []bool) {
	if len(down) < int(keys.NumInputs) {
		return
	}
	for f := range d.families {
		fam := &d.families[f]
		for i := range fam.latches {
			down[fam.to+keys.Key(i)] = fam.latches[i].Observe(down[fam.from+keys.Key(i)])
		}
	}
}

// Latch returns the latch for a physical key. Returns nil if the key has no
// double-click equivalent.
func (d *Detector) Latch(k keys.Key) *Latch {
	for f := range d.families {
		fam := &d.families[f]
		if k >= fam.from && k < fam.from+keys.Key(len(fam.latches)) {
			return &fam.latches[k-fam.from]
		}
	}
	return nil
}

// Reset all latches.
func (d *Detector) Reset() {
	for f := range d.families {
		for i := range d.families[f].latches {
			d.families[f].latches[i].Reset()
		}
	}
}
