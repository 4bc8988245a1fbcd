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
	"github.com/jetsetilly/controlmapper/keys"
)

// the size of the grid used by the customisation screen, in base pixels
const (
	GridSize      = 16
	SmallGridSize = GridSize / 2
)

// NavButton is a touch button that produces a key press for navigating
// menus.
type NavButton struct {
	Key keys.Key
	Button
}

// Navigation is the set of menu navigation buttons. Buttons are ordered by
// key.
type Navigation struct {
	Buttons []NavButton
	Screen  Screen
}

// buildNavigation positions the navigation buttons for the status
func buildNavigation(st NavStatus) *Navigation {
	nav := &Navigation{
		Screen: st.Screen,
	}

	corner := I(4)

	var back Button
	back.Name = "<"
	if st.Customizing {
		back.W = I(16)
		back.H = I(16)
	} else {
		back.X = corner
		back.Y = corner
		back.W = I(24)
		back.H = I(24)
	}

	var confirm Button
	switch {
	case st.SubmenuOpen:
		confirm.Hidden = true
	case st.Customizing:
		confirm.W = I(32)
		confirm.H = I(16)
		confirm.X = I(BaseWidth/2 - GridSize)
		confirm.Name = "+"
	default:
		confirm.W = I(24)
		confirm.H = I(24)
		confirm.X = I(st.Screen.Width/st.Screen.DupX) - confirm.W - corner
		confirm.Y = corner
		confirm.Name = ">"
	}

	var con Button
	if !st.CanOpenConsole {
		con.Hidden = true
	} else {
		con.X = corner
		con.Y = back.Y + back.H + I(8)
		con.W = I(24)
		con.H = I(24)
		con.Name = "$"
	}

	// in key order
	nav.Buttons = []NavButton{
		{Key: keys.Enter, Button: confirm},
		{Key: keys.Escape, Button: back},
		{Key: keys.Console, Button: con},
	}

	for i := range nav.Buttons {
		nav.Buttons[i].Rect = nav.Buttons[i].Rect.Normalize()
	}

	return nav
}

// ScreenRect returns the area of the screen occupied by the navigation button.
func (nav *Navigation) ScreenRect(i int) PixelRect {
	return nav.Screen.scale(nav.Buttons[i].Rect, true, true)
}

// KeyAt returns the key of the first visible navigation button that contains
// the screen position. Returns the Null key if there is no such button.
func (nav *Navigation) KeyAt(x int, y int) keys.Key {
	for i, b := range nav.Buttons {
		if b.Hidden {
			continue
		}
		if nav.ScreenRect(i).Contains(x, y) {
			return b.Key
		}
	}
	return keys.Null
}
