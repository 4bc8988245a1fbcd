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

package keys

// Key is a value in the key space. The zero value is the Null key.
type Key int

// Null is the key used to indicate that nothing is bound.
const Null Key = 0

// Sizes of the physical input families.
const (
	NumKeys       = 256
	MouseButtons  = 8
	JoyButtons    = 32
	JoyHats       = 4
	HatDirections = 4
	JoyAxisSets   = 4
	RemoteButtons = 7
)

// named keys in the ASCII part of the real key range.
const (
	Tab       Key = 9
	Enter     Key = 13
	Escape    Key = 27
	Space     Key = ' '
	Quote     Key = '\''
	Console   Key = '`'
	Backspace Key = 127
)

// named keys in the extended part of the real key range.
const (
	CapsLock Key = 0x80 + iota
	NumLock
	ScrollLock
	LShift
	RShift
	LCtrl
	RCtrl
	LAlt
	RAlt
	LeftWin
	RightWin
	Menu
	KeypadSlash
	Keypad7
	Keypad8
	Keypad9
	KeypadMinus
	Keypad4
	Keypad5
	Keypad6
	KeypadPlus
	Keypad1
	Keypad2
	Keypad3
	Keypad0
	KeypadPeriod
	Home
	Up
	PgUp
	Left
	Right
	End
	Down
	PgDn
	Ins
	Del
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
)

// Pause is the last of the real keys.
const Pause Key = NumKeys - 1

// The virtual key ranges. The order of the ranges is significant and should
// not be changed because saved configurations refer to keys by number when a
// key has no friendly name.
const (
	Mouse1    Key = NumKeys
	Joy1      Key = Mouse1 + MouseButtons
	Hat1      Key = Joy1 + JoyButtons
	DblMouse1 Key = Hat1 + JoyHats*HatDirections
	DblJoy1   Key = DblMouse1 + MouseButtons
	DblHat1   Key = DblJoy1 + JoyButtons

	P2Mouse1    Key = DblHat1 + JoyHats*HatDirections
	P2Joy1      Key = P2Mouse1 + MouseButtons
	P2Hat1      Key = P2Joy1 + JoyButtons
	P2DblMouse1 Key = P2Hat1 + JoyHats*HatDirections
	P2DblJoy1   Key = P2DblMouse1 + MouseButtons
	P2DblHat1   Key = P2DblJoy1 + JoyButtons

	MouseWheelUp     Key = P2DblHat1 + JoyHats*HatDirections
	MouseWheelDown   Key = MouseWheelUp + 1
	P2MouseWheelUp   Key = MouseWheelDown + 1
	P2MouseWheelDown Key = P2MouseWheelUp + 1

	RemoteUp     Key = P2MouseWheelDown + 1
	RemoteDown   Key = RemoteUp + 1
	RemoteLeft   Key = RemoteUp + 2
	RemoteRight  Key = RemoteUp + 3
	RemoteCenter Key = RemoteUp + 4
	RemoteBack   Key = RemoteUp + 5
	RemoteMenu   Key = RemoteUp + 6

	NumInputs Key = RemoteUp + RemoteButtons
)

// Hat directions. The key for a hat direction is Hat1 + hat*HatDirections + direction.
const (
	HatUp = iota
	HatDown
	HatLeft
	HatRight
)

// Valid returns true if the key is inside the key space. The Null key is
// valid.
func (k Key) Valid() bool {
	return k >= Null && k < NumInputs
}

// MouseButton returns the key for the mouse button (counting from zero) of
// the player (zero or one).
func MouseButton(player int, button int) Key {
	if player == 1 {
		return P2Mouse1 + Key(button)
	}
	return Mouse1 + Key(button)
}

// JoyButton returns the key for the gamepad button (counting from zero) of
// the player (zero or one).
func JoyButton(player int, button int) Key {
	if player == 1 {
		return P2Joy1 + Key(button)
	}
	return Joy1 + Key(button)
}

// HatDirection returns the key for the hat and direction of the player (zero
// or one).
func HatDirection(player int, hat int, direction int) Key {
	k := Key(hat*HatDirections + direction)
	if player == 1 {
		return P2Hat1 + k
	}
	return Hat1 + k
}

// DoubleOf returns the double-click key for a primary mouse button, gamepad
// button or hat key. Returns the Null key for keys that have no double-click
// equivalent.
func DoubleOf(k Key) Key {
	switch {
	case k >= Mouse1 && k < Joy1:
		return DblMouse1 + (k - Mouse1)
	case k >= Joy1 && k < DblMouse1:
		// joystick buttons and hats are contiguous in both the primary and
		// the double-click ranges
		return DblJoy1 + (k - Joy1)
	case k >= P2Mouse1 && k < P2Joy1:
		return P2DblMouse1 + (k - P2Mouse1)
	case k >= P2Joy1 && k < P2DblMouse1:
		return P2DblJoy1 + (k - P2Joy1)
	}
	return Null
}
