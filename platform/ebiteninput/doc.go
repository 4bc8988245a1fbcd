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

// Package ebiteninput reads the input state of an ebiten game each frame and
// pushes the changes to a userinput.Queue.
//
// Ebiten only reports the current state of devices so the Poller remembers
// enough of the previous frame to produce events. Gamepads are read with the
// standard gamepad layout. The four buttons of the left cluster are reported
// as the first hat of the gamepad.
//
// The Game type is a complete ebiten.Game that draws the current touch layout
// and the state of the input subsystem. It is used by the EBITEN mode of the
// controlmapper command.
package ebiteninput
