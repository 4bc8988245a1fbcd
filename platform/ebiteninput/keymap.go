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

package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/controlmapper/keys"
)

var keymap = map[ebiten.Key]keys.Key{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',

	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',

	ebiten.KeySpace:        keys.Space,
	ebiten.KeyQuote:        keys.Quote,
	ebiten.KeyBackquote:    keys.Console,
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeySlash:        '/',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyBackslash:    '\\',

	ebiten.KeyTab:          keys.Tab,
	ebiten.KeyEnter:        keys.Enter,
	ebiten.KeyEscape:       keys.Escape,
	ebiten.KeyBackspace:    keys.Backspace,
	ebiten.KeyCapsLock:     keys.CapsLock,
	ebiten.KeyNumLock:      keys.NumLock,
	ebiten.KeyScrollLock:   keys.ScrollLock,
	ebiten.KeyShiftLeft:    keys.LShift,
	ebiten.KeyShiftRight:   keys.RShift,
	ebiten.KeyControlLeft:  keys.LCtrl,
	ebiten.KeyControlRight: keys.RCtrl,
	ebiten.KeyAltLeft:      keys.LAlt,
	ebiten.KeyAltRight:     keys.RAlt,
	ebiten.KeyMetaLeft:     keys.LeftWin,
	ebiten.KeyMetaRight:    keys.RightWin,
	ebiten.KeyContextMenu:  keys.Menu,

	ebiten.KeyNumpadDivide:   keys.KeypadSlash,
	ebiten.KeyNumpadMultiply: '*',
	ebiten.KeyNumpadSubtract: keys.KeypadMinus,
	ebiten.KeyNumpadAdd:      keys.KeypadPlus,
	ebiten.KeyNumpadDecimal:  keys.KeypadPeriod,
	ebiten.KeyNumpadEnter:    keys.Enter,
	ebiten.KeyNumpad0:        keys.Keypad0,
	ebiten.KeyNumpad1:        keys.Keypad1,
	ebiten.KeyNumpad2:        keys.Keypad2,
	ebiten.KeyNumpad3:        keys.Keypad3,
	ebiten.KeyNumpad4:        keys.Keypad4,
	ebiten.KeyNumpad5:        keys.Keypad5,
	ebiten.KeyNumpad6:        keys.Keypad6,
	ebiten.KeyNumpad7:        keys.Keypad7,
	ebiten.KeyNumpad8:        keys.Keypad8,
	ebiten.KeyNumpad9:        keys.Keypad9,

	ebiten.KeyHome:       keys.Home,
	ebiten.KeyEnd:        keys.End,
	ebiten.KeyPageUp:     keys.PgUp,
	ebiten.KeyPageDown:   keys.PgDn,
	ebiten.KeyArrowUp:    keys.Up,
	ebiten.KeyArrowDown:  keys.Down,
	ebiten.KeyArrowLeft:  keys.Left,
	ebiten.KeyArrowRight: keys.Right,
	ebiten.KeyInsert:     keys.Ins,
	ebiten.KeyDelete:     keys.Del,

	ebiten.KeyF1: keys.F1, ebiten.KeyF2: keys.F2, ebiten.KeyF3: keys.F3,
	ebiten.KeyF4: keys.F4, ebiten.KeyF5: keys.F5, ebiten.KeyF6: keys.F6,
	ebiten.KeyF7: keys.F7, ebiten.KeyF8: keys.F8, ebiten.KeyF9: keys.F9,
	ebiten.KeyF10: keys.F10, ebiten.KeyF11: keys.F11, ebiten.KeyF12: keys.F12,

	ebiten.KeyPause: keys.Pause,
}

// KeyFor returns the key for the ebiten key. Returns keys.Null if there is no
// equivalent.
func KeyFor(k ebiten.Key) keys.Key {
	return keymap[k]
}
