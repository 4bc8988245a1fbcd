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
	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/keys"
)

// The two local players.
const (
	PlayerOne  = 0
	PlayerTwo  = 1
	NumPlayers = 2
)

// Policy determines whether a key can be bound to more than one control.
type Policy int

// List of valid Policy values.
const (
	OnePerKey Policy = iota
	SeveralPerKey
)

func (p Policy) String() string {
	switch p {
	case OnePerKey:
		return "One"
	case SeveralPerKey:
		return "Several"
	}
	return "unknown policy"
}

// Slots are the two keys bound to a control. The Null key indicates an empty
// slot.
type Slots [2]keys.Key

// Controls is the list of Slots for every control.
type Controls [controls.NumControls]Slots

// Table is the binding table for both local players.
type Table struct {
	Policy  Policy
	players [NumPlayers]Controls
}

// NewTable is the preferred method of initialisation for the Table type. The
// table is empty and uses the OnePerKey policy.
func NewTable() *Table {
	return &Table{
		Policy: OnePerKey,
	}
}

// Player returns the controls for the player. The returned pointer can be
// used to update the table directly, bypassing the eviction rules.
func (t *Table) Player(player int) *Controls {
	return &t.players[player&1]
}

// Get returns the keys bound to the control.
func (t *Table) Get(player int, c controls.Control) Slots {
	if !c.Valid() {
		return Slots{}
	}
	return t.players[player&1][c]
}

// Bind the key to the control. Under the OnePerKey policy the key is first
// evicted from every other control and slot that it is bound to.
func (t *Table) Bind(c controls.Control, player int, slot int, key keys.Key) {
	if !c.Valid() || slot < 0 || slot > 1 {
		return
	}
	if key != keys.Null {
		t.CheckDoubleUsage(key, true)
	}
	t.players[player&1][c][slot] = key
}

// Unbind empties the slot of the control.
func (t *Table) Unbind(c controls.Control, player int, slot int) {
	if !c.Valid() || slot < 0 || slot > 1 {
		return
	}
	t.players[player&1][c][slot] = keys.Null
}

// CheckDoubleUsage looks for the key in the bindings of both players. The
// check only happens under the OnePerKey policy, otherwise the function
// always returns controls.Null.
//
// When modify is false the first control found to be using the key is
// returned. When modify is true every use of the key is removed and the last
// control that was found to be using it is returned.
func (t *Table) CheckDoubleUsage(key keys.Key, modify bool) controls.Control {
	if t.Policy != OnePerKey || key == keys.Null {
		return controls.Null
	}

	result := controls.Null
	for c := controls.Null; c < controls.NumControls; c++ {
		for p := range t.players {
			for s := range t.players[p][c] {
				if t.players[p][c][s] == key {
					result = c
					if modify {
						t.players[p][c][s] = keys.Null
					}
				}
			}
		}
		if result != controls.Null && !modify {
			return result
		}
	}

	return result
}

// Lookup returns the first control bound to the key for the player.
func (t *Table) Lookup(player int, key keys.Key) (controls.Control, bool) {
	if key == keys.Null {
		return controls.Null, false
	}
	for c := controls.Null + 1; c < controls.NumControls; c++ {
		s := t.players[player&1][c]
		if s[0] == key || s[1] == key {
			return c, true
		}
	}
	return controls.Null, false
}

// Clear all bindings for the player.
func (t *Table) Clear(player int) {
	t.players[player&1] = Controls{}
}
