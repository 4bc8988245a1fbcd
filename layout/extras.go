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

package layout

import (
	"github.com/jetsetilly/controlmapper/controls"
	"golang.org/x/image/math/fixed"
)

// position and size of the weapon icons on the HUD, in base pixels
const (
	hudWeaponsX = 84
	hudWeaponsY = 176
	hudWeaponsW = 20
	hudWeaponsH = 20
)

// NumWeapons is the number of weapon buttons placed over the HUD.
const NumWeapons = 7

// positionWeapons places the weapon buttons over the weapon icons of the HUD.
// the weapon buttons are positioned in screen pixels and are only visible in
// ringslinger gametypes
func (l *Layout) positionWeapons(st Status) {
	dup := st.Screen.Dup()
	x := I(hudWeaponsX + 6)
	y := I(hudWeaponsY - 2)
	w := I(hudWeaponsW)
	h := I(hudWeaponsH)

	for i := 0; i < NumWeapons; i++ {
		btn := &l.Buttons[controls.WepSlot1+controls.Control(i)]
		btn.Hidden = !st.Ringslinger
		if !st.Ringslinger {
			continue
		}

		wx := (x + w*fixed.Int52_12(i)).Mul(I(dup))
		wy := y.Mul(I(dup))
		if st.Screen.Height != BaseHeight*dup {
			wy += I(st.Screen.Height - BaseHeight*dup)
		}
		if st.Screen.Width != BaseWidth*dup {
			wx += I(st.Screen.Width-BaseWidth*dup) / 2
		}

		btn.Rect = Rect{
			X: wx,
			Y: wy,
			W: w.Mul(I(dup)),
			H: h.Mul(I(dup)),
		}.Normalize()
		btn.DontScale = true
	}
}

// hidePlayerControls hides every player control button if a prompt is
// blocking the player's controls
func (l *Layout) hidePlayerControls(st Status) {
	if !st.PromptBlockControls {
		return
	}
	for c := range l.Buttons {
		if controls.Control(c).IsPlayerControl() {
			l.Buttons[c].Hidden = true
		}
	}
}

// positionJoystick sets the joystick area from the joystick button of a user
// layout
func (l *Layout) positionJoystick() {
	btn := l.Buttons[controls.Joystick].Rect
	l.Joystick = btn.Denormalize()
}
