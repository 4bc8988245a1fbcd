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

package sdlinput

import (
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL keycodes that have no printable character
var keymap = map[sdl.Keycode]keys.Key{
	sdl.K_TAB:          keys.Tab,
	sdl.K_RETURN:       keys.Enter,
	sdl.K_ESCAPE:       keys.Escape,
	sdl.K_BACKSPACE:    keys.Backspace,
	sdl.K_CAPSLOCK:     keys.CapsLock,
	sdl.K_NUMLOCKCLEAR: keys.NumLock,
	sdl.K_SCROLLLOCK:   keys.ScrollLock,
	sdl.K_LSHIFT:       keys.LShift,
	sdl.K_RSHIFT:       keys.RShift,
	sdl.K_LCTRL:        keys.LCtrl,
	sdl.K_RCTRL:        keys.RCtrl,
	sdl.K_LALT:         keys.LAlt,
	sdl.K_RALT:         keys.RAlt,
	sdl.K_LGUI:         keys.LeftWin,
	sdl.K_RGUI:         keys.RightWin,
	sdl.K_APPLICATION:  keys.Menu,
	sdl.K_KP_DIVIDE:    keys.KeypadSlash,
	sdl.K_KP_7:         keys.Keypad7,
	sdl.K_KP_8:         keys.Keypad8,
	sdl.K_KP_9:         keys.Keypad9,
	sdl.K_KP_MINUS:     keys.KeypadMinus,
	sdl.K_KP_4:         keys.Keypad4,
	sdl.K_KP_5:         keys.Keypad5,
	sdl.K_KP_6:         keys.Keypad6,
	sdl.K_KP_PLUS:      keys.KeypadPlus,
	sdl.K_KP_1:         keys.Keypad1,
	sdl.K_KP_2:         keys.Keypad2,
	sdl.K_KP_3:         keys.Keypad3,
	sdl.K_KP_0:         keys.Keypad0,
	sdl.K_KP_PERIOD:    keys.KeypadPeriod,
	sdl.K_KP_ENTER:     keys.Enter,
	sdl.K_HOME:         keys.Home,
	sdl.K_UP:           keys.Up,
	sdl.K_PAGEUP:       keys.PgUp,
	sdl.K_LEFT:         keys.Left,
	sdl.K_RIGHT:        keys.Right,
	sdl.K_END:          keys.End,
	sdl.K_DOWN:         keys.Down,
	sdl.K_PAGEDOWN:     keys.PgDn,
	sdl.K_INSERT:       keys.Ins,
	sdl.K_DELETE:       keys.Del,
	sdl.K_F1:           keys.F1,
	sdl.K_F2:           keys.F2,
	sdl.K_F3:           keys.F3,
	sdl.K_F4:           keys.F4,
	sdl.K_F5:           keys.F5,
	sdl.K_F6:           keys.F6,
	sdl.K_F7:           keys.F7,
	sdl.K_F8:           keys.F8,
	sdl.K_F9:           keys.F9,
	sdl.K_F10:          keys.F10,
	sdl.K_F11:          keys.F11,
	sdl.K_F12:          keys.F12,
	sdl.K_PAUSE:        keys.Pause,
}

// KeyFor returns the key for the SDL keycode. Printable characters are the
// key of the same value, with upper case letters folded to lower case.
// Returns the Null key for keycodes that have no key.
func KeyFor(k sdl.Keycode) keys.Key {
	if mk, ok := keymap[k]; ok {
		return mk
	}
	if k >= ' ' && k < 0x7f {
		if k >= 'A' && k <= 'Z' {
			k += 'a' - 'A'
		}
		return keys.Key(k)
	}
	return keys.Null
}
