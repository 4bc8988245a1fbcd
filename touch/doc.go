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

// Package touch turns touchscreen fingers into game controls.
//
// The Pool holds the state of every finger. A finger can be assigned to one
// thing at a time and the assignment is described by the Assignment type:
// nothing, a control, the joystick, the camera or a navigation key.
//
// The Dispatcher hit-tests fingers against the current layout (see the
// layout package) and maintains the set of controls being held down by
// fingers. Fingers that don't touch a button drive the joystick axes or the
// camera. Menu-class controls, such as the pause or screenshot buttons, fire
// a one-shot action through the Actions interface when the finger is
// released inside the button.
//
// The Customizer handles fingers while the user layout is being edited. It
// selects, moves and resizes buttons and starts a long press when the
// screen is touched where there is no button.
package touch
