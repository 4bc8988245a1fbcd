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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/controlmapper/prefs"
	"github.com/jetsetilly/controlmapper/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("touch.preset::2")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "touch.preset::2")

	// surrounding space is removed
	prefs.PushCommandLineStack("   touch.preset:: 2 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "touch.preset::2")

	// unused entries are returned sorted by key
	prefs.PushCommandLineStack("touch.sens::40; mouse.sens::30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "mouse.sens::30; touch.sens::40")

	// entries that are not key/value pairs are ignored
	prefs.PushCommandLineStack("touch.sens")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("touch.sens;mouse.sens::30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "mouse.sens::30")
	prefs.PushCommandLineStack("a::b::c;mouse.sens::30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "mouse.sens::30")

	prefs.PushCommandLineStack("mouse.sens::30;touch_sens")
	ok, _ := prefs.GetCommandLinePref("touch_sens")
	test.ExpectFailure(t, ok)
	ok, v := prefs.GetCommandLinePref("mouse.sens")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality[prefs.Value](t, v, "30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("touch.sens::40")
	prefs.PushCommandLineStack("mouse.sens::30")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is consulted
	ok, _ := prefs.GetCommandLinePref("touch.sens")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "mouse.sens::30")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "touch.sens::40")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
