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

package userinput

import "github.com/jetsetilly/controlmapper/keys"

// HandleInput conceptualises the input subsystem that receives the
// translated events.
type HandleInput interface {
	// HandleKey is called for every button of every device
	HandleKey(k keys.Key, down bool)

	// HandleMouseMotion is called with the relative motion of the mouse
	HandleMouseMotion(player int, dx int, dy int)

	// HandleGamepadAxis is called with the absolute position of an axis
	HandleGamepadAxis(player int, set int, horizontal bool, amount int)

	// HandleTouch is called for touchscreen events
	HandleTouch(ev EventTouch)
}
