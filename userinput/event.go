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

// Event represents all the different type of events that can occur in the
// platform.
type Event any

// EventQuit is sent when the platform window is closed.
type EventQuit struct{}

// EventKeyboard is a key press or release on the keyboard.
type EventKeyboard struct {
	Key    keys.Key
	Down   bool
	Repeat bool
}

// MouseButton indicates the button of the mouse. The values count from zero
// and are in the order of the mouse keys in the key space.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonX1
	MouseButtonX2
)

// EventMouseButton is a press or release of a mouse button.
type EventMouseButton struct {
	Player int
	Button MouseButton
	Down   bool
}

// EventMouseMotion is the relative motion of the mouse.
type EventMouseMotion struct {
	Player int
	DX     int
	DY     int
}

// EventMouseWheel is the movement of the mouse wheel. A positive Delta is
// the wheel moving up.
type EventMouseWheel struct {
	Player int
	Delta  int
}

// EventGamepadButton is a press or release of a gamepad button. Buttons count
// from zero.
type EventGamepadButton struct {
	Player int
	Button int
	Down   bool
}

// HatState is a bit field of the directions a gamepad hat is pressed in.
type HatState int

// List of valid HatState bits. The values are the same as those used by SDL.
const (
	HatCentre HatState = 0x00
	HatUp     HatState = 0x01
	HatRight  HatState = 0x02
	HatDown   HatState = 0x04
	HatLeft   HatState = 0x08
)

// EventGamepadHat is a change to the state of a gamepad hat.
type EventGamepadHat struct {
	Player int
	Hat    int
	State  HatState
}

// EventGamepadAxis is the position of a gamepad axis. Axes are arranged in
// sets of two, a horizontal and a vertical axis.
type EventGamepadAxis struct {
	Player     int
	Set        int
	Horizontal bool
	Amount     int
}

// TouchKind is the type of a touch event.
type TouchKind int

// List of valid TouchKind values.
const (
	TouchDown TouchKind = iota
	TouchMotion
	TouchUp
)

func (k TouchKind) String() string {
	switch k {
	case TouchDown:
		return "down"
	case TouchMotion:
		return "motion"
	case TouchUp:
		return "up"
	}
	return "unknown"
}

// EventTouch is a finger touching, moving on or leaving the touchscreen. The
// position is in screen pixels.
type EventTouch struct {
	Finger   int
	Kind     TouchKind
	X        int
	Y        int
	DX       int
	DY       int
	Pressure float32
}
