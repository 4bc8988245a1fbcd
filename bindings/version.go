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

// CompatVersion is the first configuration version that saved the gamepad
// bindings introduced alongside it. Configurations with an older version are
// remapped on load.
const CompatVersion = 27

// Skip is returned by FilterKeyByVersion when the slot should be left as it
// is.
const Skip keys.Key = -1

// gainedGamepadDefault returns true for controls that were given a gamepad
// default in CompatVersion.
func gainedGamepadDefault(c controls.Control) bool {
	switch c {
	case controls.WeaponNext, controls.WeaponPrev, controls.TossFlag, controls.Use,
		controls.CamReset, controls.Jump, controls.Pause, controls.SystemMenu,
		controls.CamToggle, controls.Screenshot, controls.Talk, controls.Scores,
		controls.CenterView:
		return true
	}
	return false
}

// FilterKeyByVersion makes the first attempt and at most one retry. the retry
// moves the secondary key into the primary slot and the secondary slot is
// then only refilled with the default, which the retry clears again because
// it matches the primary key.
const maxFilterPasses = 2

// FilterKeyByVersion decides the key to store in a slot when a directive is
// applied. Keys k1 and k2 are the keys named by the directive and can be
// updated by the function. The nested flag carries state between the call
// for slot 0 and the call for slot 1 of the same directive.
//
// The Pause key is never stored in the primary slot of a control if there
// is an alternative, and never in the secondary slot.
//
// For configurations older than CompatVersion, the gamepad default is
// assigned to an empty slot of those controls that gained a gamepad default
// in that version. The default is taken from the live table, which is
// expected to contain the defaults at the time the configuration is loaded.
// A default that is already used by another control is not assigned.
//
// Returns Skip if the slot should not be changed. A return value of Null
// means the slot should be emptied.
func (t *Table) FilterKeyByVersion(c controls.Control, slot int, player int, k1 *keys.Key, k2 *keys.Key, nested *bool, version int) keys.Key {
	if slot == 0 && *k1 == keys.Pause {
		if *k2 == keys.Pause {
			return Skip
		}
		*k1 = *k2
		*k2 = keys.Null
	} else if slot == 1 && *k2 == keys.Pause {
		return Skip
	}

	if version >= CompatVersion || !gainedGamepadDefault(c) {
		if slot == 1 {
			return *k2
		}
		return *k1
	}

	var def keys.Key
	switch {
	case player&1 == PlayerOne && c == controls.SystemMenu:
		def = t.players[PlayerOne][c][0]
	case player&1 == PlayerTwo:
		def = t.players[PlayerTwo][c][0]
	default:
		def = t.players[PlayerOne][c][1]
	}

	for pass := 0; pass < maxFilterPasses; pass++ {
		var key keys.Key
		override := false

		switch {
		case slot == 0 && *k1 == keys.Null:
			if *k2 != keys.Null {
				*k1 = *k2
				*k2 = keys.Null
				key = *k1
			} else {
				key = def
				override = true
			}
		case slot == 1 && (*k2 == keys.Null || *k1 == keys.Null):
			key = def
			override = true
		case slot == 1:
			key = *k2
		default:
			key = *k1
		}

		if *nested {
			override = true
			*nested = false
		}

		if slot == 0 && *k2 == keys.Null {
			*k2 = def
			*nested = true
			if *k1 == *k2 {
				*k2 = keys.Null
				*nested = false
			}
		}

		existing := controls.Null
		if override {
			existing = t.CheckDoubleUsage(key, false)
		}

		if key != keys.Null && (existing == controls.Null || existing == c) {
			return key
		}

		if slot != 0 || *k2 == keys.Null {
			break
		}

		*k1 = *k2
		*k2 = keys.Null
	}

	return keys.Null
}
