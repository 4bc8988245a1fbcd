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

import (
	"github.com/jetsetilly/controlmapper/keys"
)

// keyboard events that are caused by key repeat are ignored. the keys of a
// remote control are sent as keyboard events.
func keyboard(ev EventKeyboard, handle HandleInput) {
	if ev.Repeat {
		return
	}
	switch keys.Classify(ev.Key).Device {
	case keys.DeviceKeyboard, keys.DeviceRemote:
	default:
		return
	}
	if ev.Key == keys.Null {
		return
	}
	handle.HandleKey(ev.Key, ev.Down)
}

func player(p int) int {
	if p == 1 {
		return 1
	}
	return 0
}

func mouseButton(ev EventMouseButton, handle HandleInput) {
	if ev.Button < 0 || int(ev.Button) >= keys.MouseButtons {
		return
	}
	handle.HandleKey(keys.MouseButton(player(ev.Player), int(ev.Button)), ev.Down)
}

func mouseWheel(ev EventMouseWheel, handle HandleInput) {
	var k keys.Key
	switch {
	case ev.Delta > 0:
		k = keys.MouseWheelUp
	case ev.Delta < 0:
		k = keys.MouseWheelDown
	default:
		return
	}
	if player(ev.Player) == 1 {
		k += keys.P2MouseWheelUp - keys.MouseWheelUp
	}

	// the wheel has no release event of its own
	handle.HandleKey(k, true)
}

func gamepadButton(ev EventGamepadButton, handle HandleInput) {
	if ev.Button < 0 || ev.Button >= keys.JoyButtons {
		return
	}
	handle.HandleKey(keys.JoyButton(player(ev.Player), ev.Button), ev.Down)
}

// the hat state is translated into four key events, one for each direction.
func gamepadHat(ev EventGamepadHat, handle HandleInput) {
	if ev.Hat < 0 || ev.Hat >= keys.JoyHats {
		return
	}
	p := player(ev.Player)
	handle.HandleKey(keys.HatDirection(p, ev.Hat, keys.HatUp), ev.State&HatUp == HatUp)
	handle.HandleKey(keys.HatDirection(p, ev.Hat, keys.HatDown), ev.State&HatDown == HatDown)
	handle.HandleKey(keys.HatDirection(p, ev.Hat, keys.HatLeft), ev.State&HatLeft == HatLeft)
	handle.HandleKey(keys.HatDirection(p, ev.Hat, keys.HatRight), ev.State&HatRight == HatRight)
}

func gamepadAxis(ev EventGamepadAxis, handle HandleInput) {
	if ev.Set < 0 || ev.Set >= keys.JoyAxisSets {
		return
	}
	handle.HandleGamepadAxis(player(ev.Player), ev.Set, ev.Horizontal, ev.Amount)
}

// HandleUserInput deciphers the Event and forwards the input to the
// HandleInput implementation. Returns true if event is a Quit event and false
// otherwise.
func HandleUserInput(ev Event, handle HandleInput) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true
	case EventKeyboard:
		keyboard(ev, handle)
	case EventMouseButton:
		mouseButton(ev, handle)
	case EventMouseMotion:
		handle.HandleMouseMotion(player(ev.Player), ev.DX, ev.DY)
	case EventMouseWheel:
		mouseWheel(ev, handle)
	case EventGamepadButton:
		gamepadButton(ev, handle)
	case EventGamepadHat:
		gamepadHat(ev, handle)
	case EventGamepadAxis:
		gamepadAxis(ev, handle)
	case EventTouch:
		handle.HandleTouch(ev)
	default:
	}

	return false
}
