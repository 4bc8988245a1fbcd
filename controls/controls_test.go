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

package controls_test

import (
	"testing"

	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, int(controls.NumControls), 47)

	// every control has a unique configuration name
	seen := make(map[string]bool)
	for c := controls.Null; c < controls.NumControls; c++ {
		n := c.Name()
		test.ExpectInequality(t, n, "", c)
		test.ExpectFailure(t, seen[n], n)
		seen[n] = true
	}

	test.ExpectEquality(t, controls.TeamTalk.Name(), "teamtalkkey")
	test.ExpectEquality(t, controls.WepSlot10.Name(), "weapon10")
	test.ExpectEquality(t, controls.Use.ButtonName(), "SPIN")
	test.ExpectEquality(t, controls.CamReset.ShortName(), "R.CAM")
	test.ExpectEquality(t, controls.Pause.ButtonName(), "")
	test.ExpectEquality(t, controls.Control(-1).Name(), "")
}

func TestLookup(t *testing.T) {
	c, ok := controls.Lookup("JUMP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, controls.Jump)

	c, ok = controls.Lookup("weapon3")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, controls.WepSlot3)

	_, ok = controls.Lookup("fly")
	test.ExpectFailure(t, ok)
}

func TestClassification(t *testing.T) {
	test.ExpectSuccess(t, controls.Jump.IsPlayerControl())
	test.ExpectSuccess(t, controls.Forward.IsPlayerControl())
	test.ExpectFailure(t, controls.SystemMenu.IsPlayerControl())
	test.ExpectFailure(t, controls.CamToggle.IsPlayerControl())

	n := 0
	for c := controls.Null; c < controls.NumControls; c++ {
		if c.IsDPad() {
			n++
		}
	}
	test.ExpectEquality(t, n, 8)
	test.ExpectFailure(t, controls.Joystick.IsDPad())
	test.ExpectSuccess(t, controls.WepSlot7.IsWeaponSlot())
	test.ExpectFailure(t, controls.WeaponNext.IsWeaponSlot())
}

func TestAddableButtons(t *testing.T) {
	seen := make(map[controls.Control]bool)
	for _, a := range controls.AddableButtons {
		test.ExpectFailure(t, seen[a.Control], a.Label)
		seen[a.Control] = true
	}
}
