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

package keys_test

import (
	"testing"

	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/test"
)

func TestRangesDoNotOverlap(t *testing.T) {
	// every key in the key space classifies to exactly one family and the
	// index increases by one from the start of each family
	var prev keys.Info
	for k := keys.Key(keys.NumKeys); k < keys.NumInputs; k++ {
		inf := keys.Classify(k)
		test.ExpectInequality(t, inf.Device, keys.DeviceNone, k)
		if inf.Device == prev.Device && inf.Player == prev.Player && inf.Double == prev.Double {
			test.ExpectEquality(t, inf.Index, prev.Index+1, k)
		} else {
			test.ExpectEquality(t, inf.Index, 0, k)
		}
		prev = inf
	}
}

func TestClassify(t *testing.T) {
	inf := keys.Classify('a')
	test.ExpectEquality(t, inf.Device, keys.DeviceKeyboard)

	inf = keys.Classify(keys.Joy1 + 5)
	test.ExpectEquality(t, inf, keys.Info{Device: keys.DeviceJoystick, Index: 5})

	inf = keys.Classify(keys.P2DblMouse1 + 1)
	test.ExpectEquality(t, inf, keys.Info{Device: keys.DeviceMouse, Player: 1, Double: true, Index: 1})

	inf = keys.Classify(keys.HatDirection(0, 1, keys.HatLeft))
	test.ExpectEquality(t, inf, keys.Info{Device: keys.DeviceHat, Index: 6})

	inf = keys.Classify(keys.P2MouseWheelDown)
	test.ExpectEquality(t, inf, keys.Info{Device: keys.DeviceWheel, Player: 1, Index: 1})

	inf = keys.Classify(keys.RemoteBack)
	test.ExpectEquality(t, inf.Device, keys.DeviceRemote)

	test.ExpectEquality(t, keys.Classify(keys.Null).Device, keys.DeviceNone)
	test.ExpectEquality(t, keys.Classify(keys.NumInputs).Device, keys.DeviceNone)
}

func TestDoubleOf(t *testing.T) {
	test.ExpectEquality(t, keys.DoubleOf(keys.Mouse1), keys.DblMouse1)
	test.ExpectEquality(t, keys.DoubleOf(keys.Joy1+31), keys.DblJoy1+31)
	test.ExpectEquality(t, keys.DoubleOf(keys.Hat1+3), keys.DblHat1+3)
	test.ExpectEquality(t, keys.DoubleOf(keys.P2Joy1), keys.P2DblJoy1)
	test.ExpectEquality(t, keys.DoubleOf(keys.P2Hat1+15), keys.P2DblHat1+15)
	test.ExpectEquality(t, keys.DoubleOf('a'), keys.Null)
	test.ExpectEquality(t, keys.DoubleOf(keys.DblMouse1), keys.Null)
}

func TestName(t *testing.T) {
	test.ExpectEquality(t, keys.Name('w'), "w")
	test.ExpectEquality(t, keys.Name(keys.Space), "SPACE")
	test.ExpectEquality(t, keys.Name(keys.Console), "TILDE")
	test.ExpectEquality(t, keys.Name(keys.LShift), "LSHIFT")
	test.ExpectEquality(t, keys.Name(keys.Mouse1), "MOUSE1")
	test.ExpectEquality(t, keys.Name(keys.P2Mouse1), "SEC_MOUSE2")
	test.ExpectEquality(t, keys.Name(keys.P2Mouse1+1), "SEC_MOUSE1")
	test.ExpectEquality(t, keys.Name(keys.P2Mouse1+2), "SEC_MOUSE3")
	test.ExpectEquality(t, keys.Name(keys.Joy1+9), "JOY10")
	test.ExpectEquality(t, keys.Name(keys.Hat1), "HATUP")
	test.ExpectEquality(t, keys.Name(keys.HatDirection(0, 2, keys.HatRight)), "HATRIGHT3")
	test.ExpectEquality(t, keys.Name(keys.P2DblHat1+1), "DBLSEC_HATDOWN")
	test.ExpectEquality(t, keys.Name(keys.MouseWheelUp), "Wheel 1 UP")

	// keys without a friendly name
	test.ExpectEquality(t, keys.Name(keys.Key(200)), "KEY200")
	test.ExpectEquality(t, keys.Name(keys.Key(1)), "KEY1")
}

func TestParse(t *testing.T) {
	test.ExpectEquality(t, keys.Parse("w"), keys.Key('w'))
	test.ExpectEquality(t, keys.Parse("`"), keys.Console)
	test.ExpectEquality(t, keys.Parse("tilde"), keys.Console)
	test.ExpectEquality(t, keys.Parse("up arrow"), keys.Up)
	test.ExpectEquality(t, keys.Parse("SHIFT"), keys.LShift)
	test.ExpectEquality(t, keys.Parse("ctrl"), keys.LCtrl)
	test.ExpectEquality(t, keys.Parse("Alt"), keys.LAlt)
	test.ExpectEquality(t, keys.Parse("dblsec_joy3"), keys.P2DblJoy1+2)
	test.ExpectEquality(t, keys.Parse("KEY200"), keys.Key(200))
	test.ExpectEquality(t, keys.Parse("key12abc"), keys.Key(12))

	// out of range and unknown names resolve to the null key
	test.ExpectEquality(t, keys.Parse("KEY99999"), keys.Null)
	test.ExpectEquality(t, keys.Parse("not a key"), keys.Null)
	test.ExpectEquality(t, keys.Parse(""), keys.Null)
	test.ExpectEquality(t, keys.Parse(" "), keys.Null)
}

func TestNameParseRoundTrip(t *testing.T) {
	for k := keys.Key(1); k < keys.NumInputs; k++ {
		test.ExpectEquality(t, keys.Parse(keys.Name(k)), k, keys.Name(k))
	}
}
