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

import (
	"fmt"
	"strconv"
	"strings"
)

type keyName struct {
	key  Key
	name string
}

// the order of the table matters. when more than one entry exists for a key
// (eg. SHIFT and LSHIFT) then the first entry is the canonical name.
var names = []keyName{
	{Space, "SPACE"},
	{CapsLock, "CAPS LOCK"},
	{Enter, "ENTER"},
	{Tab, "TAB"},
	{Escape, "ESCAPE"},
	{Backspace, "BACKSPACE"},

	{NumLock, "NUMLOCK"},
	{ScrollLock, "SCROLLLOCK"},

	{LeftWin, "LEFTWIN"},
	{RightWin, "RIGHTWIN"},
	{Menu, "MENU"},

	{LShift, "LSHIFT"},
	{RShift, "RSHIFT"},
	{LShift, "SHIFT"},
	{LCtrl, "LCTRL"},
	{RCtrl, "RCTRL"},
	{LCtrl, "CTRL"},
	{LAlt, "LALT"},
	{RAlt, "RALT"},
	{LAlt, "ALT"},

	{KeypadSlash, "KEYPAD /"},
	{Keypad7, "KEYPAD 7"},
	{Keypad8, "KEYPAD 8"},
	{Keypad9, "KEYPAD 9"},
	{KeypadMinus, "KEYPAD -"},
	{Keypad4, "KEYPAD 4"},
	{Keypad5, "KEYPAD 5"},
	{Keypad6, "KEYPAD 6"},
	{KeypadPlus, "KEYPAD +"},
	{Keypad1, "KEYPAD 1"},
	{Keypad2, "KEYPAD 2"},
	{Keypad3, "KEYPAD 3"},
	{Keypad0, "KEYPAD 0"},
	{KeypadPeriod, "KEYPAD ."},

	{Home, "HOME"},
	{Up, "UP ARROW"},
	{PgUp, "PGUP"},
	{Left, "LEFT ARROW"},
	{Right, "RIGHT ARROW"},
	{End, "END"},
	{Down, "DOWN ARROW"},
	{PgDn, "PGDN"},
	{Ins, "INS"},
	{Del, "DEL"},

	{F1, "F1"},
	{F2, "F2"},
	{F3, "F3"},
	{F4, "F4"},
	{F5, "F5"},
	{F6, "F6"},
	{F7, "F7"},
	{F8, "F8"},
	{F9, "F9"},
	{F10, "F10"},
	{F11, "F11"},
	{F12, "F12"},

	{Console, "TILDE"},
	{Pause, "PAUSE/BREAK"},
}

var hatDirectionNames = [HatDirections]string{"HATUP", "HATDOWN", "HATLEFT", "HATRIGHT"}

// the second mouse is named with the first two buttons swapped. this matches
// the names that have always been used in saved configurations.
func secMouseName(prefix string, button int) string {
	switch button {
	case 0:
		return fmt.Sprintf("%sSEC_MOUSE2", prefix)
	case 1:
		return fmt.Sprintf("%sSEC_MOUSE1", prefix)
	}
	return fmt.Sprintf("%sSEC_MOUSE%d", prefix, button+1)
}

func hatNames(start Key, prefix string) []keyName {
	n := make([]keyName, 0, JoyHats*HatDirections)
	for h := 0; h < JoyHats; h++ {
		suffix := ""
		if h > 0 {
			suffix = strconv.Itoa(h + 1)
		}
		for d := 0; d < HatDirections; d++ {
			n = append(n, keyName{
				key:  start + Key(h*HatDirections+d),
				name: fmt.Sprintf("%s%s%s", prefix, hatDirectionNames[d], suffix),
			})
		}
	}
	return n
}

func init() {
	for i := 0; i < MouseButtons; i++ {
		names = append(names, keyName{Mouse1 + Key(i), fmt.Sprintf("MOUSE%d", i+1)})
	}
	for i := 0; i < MouseButtons; i++ {
		names = append(names, keyName{P2Mouse1 + Key(i), secMouseName("", i)})
	}

	names = append(names,
		keyName{MouseWheelUp, "Wheel 1 UP"},
		keyName{MouseWheelDown, "Wheel 1 Down"},
		keyName{P2MouseWheelUp, "Wheel 2 UP"},
		keyName{P2MouseWheelDown, "Wheel 2 Down"},
	)

	for i := 0; i < JoyButtons; i++ {
		names = append(names, keyName{Joy1 + Key(i), fmt.Sprintf("JOY%d", i+1)})
	}
	names = append(names, hatNames(Hat1, "")...)

	for i := 0; i < MouseButtons; i++ {
		names = append(names, keyName{DblMouse1 + Key(i), fmt.Sprintf("DBLMOUSE%d", i+1)})
	}
	for i := 0; i < MouseButtons; i++ {
		names = append(names, keyName{P2DblMouse1 + Key(i), secMouseName("DBL", i)})
	}
	for i := 0; i < JoyButtons; i++ {
		names = append(names, keyName{DblJoy1 + Key(i), fmt.Sprintf("DBLJOY%d", i+1)})
	}
	names = append(names, hatNames(DblHat1, "DBL")...)

	for i := 0; i < JoyButtons; i++ {
		names = append(names, keyName{P2Joy1 + Key(i), fmt.Sprintf("SEC_JOY%d", i+1)})
	}
	names = append(names, hatNames(P2Hat1, "SEC_")...)
	for i := 0; i < JoyButtons; i++ {
		names = append(names, keyName{P2DblJoy1 + Key(i), fmt.Sprintf("DBLSEC_JOY%d", i+1)})
	}
	names = append(names, hatNames(P2DblHat1, "DBLSEC_")...)

	names = append(names,
		keyName{RemoteUp, "REMOTE UP"},
		keyName{RemoteDown, "REMOTE DOWN"},
		keyName{RemoteLeft, "REMOTE LEFT"},
		keyName{RemoteRight, "REMOTE RIGHT"},
		keyName{RemoteCenter, "REMOTE CENTER"},
		keyName{RemoteBack, "REMOTE BACK"},
		keyName{RemoteMenu, "REMOTE MENU"},
	)
}

// isCharacter returns true if the key is named by the character it
// represents
func isCharacter(k Key) bool {
	return k > ' ' && k <= 'z' && k != Console
}

// Name returns the canonical name of the key. Keys without a friendly name
// are named with the generic KEY<n> form.
func Name(k Key) string {
	if isCharacter(k) {
		return string(rune(k))
	}
	for _, n := range names {
		if n.key == k {
			return n.name
		}
	}
	return fmt.Sprintf("KEY%d", int(k))
}

// String implements the fmt.Stringer interface.
func (k Key) String() string {
	return Name(k)
}

// Parse returns the key for the name. Name comparisons are not case
// sensitive. Names that can't be parsed result in the Null key.
func Parse(s string) Key {
	if len(s) == 1 && s[0] > ' ' && s[0] <= 'z' {
		return Key(s[0])
	}

	// generic form. like atoi(), only the leading digits are considered
	if len(s) > 3 && strings.EqualFold(s[:3], "KEY") && s[3] >= '0' && s[3] <= '9' {
		i := 3
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		n, err := strconv.Atoi(s[3:i])
		if err != nil || Key(n) >= NumInputs {
			return Null
		}
		return Key(n)
	}

	for _, n := range names {
		if strings.EqualFold(n.name, s) {
			return n.key
		}
	}

	return Null
}
