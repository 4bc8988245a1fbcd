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

package layout_test

import (
	"testing"

	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/test"
)

// the largest error introduced by normalising a coordinate. one unit in the
// last place multiplied by the base resolution
const normTolerance = layout.BaseWidth

func baseStatus() layout.Status {
	return layout.Status{
		Screen:   layout.NewScreen(layout.BaseWidth, layout.BaseHeight),
		GUIScale: layout.I(1),
		Preset:   layout.PresetNormal,
		Style:    layout.StyleJoystick,
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	for _, r := range []layout.Rect{
		{X: layout.I(0), Y: layout.I(0), W: layout.I(10), H: layout.I(10)},
		{X: layout.I(256), Y: layout.I(124), W: layout.I(48), H: layout.I(48)},
		{X: layout.F(17.25), Y: layout.F(199.5), W: layout.F(3.5), H: layout.I(1)},
		{X: layout.I(-12), Y: layout.I(-30), W: layout.I(64), H: layout.I(64)},
	} {
		d := r.Normalize().Denormalize()
		test.ExpectWithin(t, d.X, r.X, normTolerance, r)
		test.ExpectWithin(t, d.Y, r.Y, normTolerance, r)
		test.ExpectEquality(t, d.W, r.W, r)
		test.ExpectEquality(t, d.H, r.H, r)
	}
}

func TestPixelRectInclusive(t *testing.T) {
	r := layout.PixelRect{X: 10, Y: 20, W: 30, H: 40}
	test.ExpectSuccess(t, r.Contains(10, 20))
	test.ExpectSuccess(t, r.Contains(40, 60))
	test.ExpectSuccess(t, r.Contains(40, 20))
	test.ExpectSuccess(t, r.Contains(10, 60))
	test.ExpectFailure(t, r.Contains(9, 20))
	test.ExpectFailure(t, r.Contains(41, 60))
	test.ExpectFailure(t, r.Contains(10, 61))
}

func TestButtonEdges(t *testing.T) {
	e := layout.NewEngine()
	l := e.Rebuild(baseStatus())

	r := l.ScreenRect(controls.Jump)
	test.ExpectSuccess(t, l.Touches(controls.Jump, r.X, r.Y))
	test.ExpectSuccess(t, l.Touches(controls.Jump, r.X+r.W, r.Y+r.H))
	test.ExpectFailure(t, l.Touches(controls.Jump, r.X-1, r.Y))
	test.ExpectFailure(t, l.Touches(controls.Jump, r.X, r.Y+r.H+1))

	// hidden buttons are never touched
	test.ExpectSuccess(t, l.Button(controls.Fire).Hidden)
	r = l.ScreenRect(controls.Fire)
	test.ExpectFailure(t, l.Touches(controls.Fire, r.X, r.Y))
}

func TestPresetGeometry(t *testing.T) {
	e := layout.NewEngine()
	l := e.Rebuild(baseStatus())

	// jump is anchored to the bottom right corner
	r := l.ScreenRect(controls.Jump)
	test.ExpectWithin(t, r.X, 256, 1)
	test.ExpectWithin(t, r.Y, 124, 1)
	test.ExpectEquality(t, r.W, 48)
	test.ExpectEquality(t, r.H, 48)

	// the joystick is offset from the default position
	j := l.JoystickRect()
	test.ExpectEquality(t, j, layout.PixelRect{X: 12, Y: 108, W: 64, H: 64})
	test.ExpectSuccess(t, l.TouchesJoystick(12, 108))
	test.ExpectSuccess(t, l.TouchesJoystick(76, 172))
	test.ExpectFailure(t, l.TouchesJoystick(77, 172))

	// menu is anchored to the top right corner
	r = l.ScreenRect(controls.SystemMenu)
	test.ExpectWithin(t, r.X, 284, 1)
	test.ExpectWithin(t, r.Y, 4, 1)

	// d-pad buttons are marked
	test.ExpectSuccess(t, l.Button(controls.Forward).DPad)
	test.ExpectSuccess(t, l.Button(controls.DPadDR).DPad)
	test.ExpectFailure(t, l.Button(controls.Jump).DPad)

	test.ExpectEquality(t, l.Button(controls.Jump).Name, "JUMP")
	test.ExpectEquality(t, l.Button(controls.Use).ShortName, "SPN")
}

func TestContextFlags(t *testing.T) {
	st := baseStatus()

	l := layout.NewEngine().Rebuild(st)
	test.ExpectSuccess(t, l.Button(controls.Talk).Hidden)
	test.ExpectSuccess(t, l.Button(controls.TeamTalk).Hidden)
	test.ExpectSuccess(t, l.Button(controls.Pause).Hidden)
	test.ExpectSuccess(t, l.Button(controls.Viewpoint).Hidden)
	test.ExpectSuccess(t, l.Button(controls.Fire).Hidden)
	test.ExpectSuccess(t, l.Button(controls.WepSlot1).Hidden)
	test.ExpectFailure(t, l.Button(controls.Screenshot).Hidden)
	test.ExpectFailure(t, l.Button(controls.RecordGIF).Hidden)
	base := l.Button(controls.Joystick).Denormalize()
	menu := l.Button(controls.SystemMenu).Denormalize()

	st.CanTalk = true
	st.CanTeamTalk = true
	st.CanPause = true
	st.CanViewpointSwitch = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectFailure(t, l.Button(controls.Talk).Hidden)
	test.ExpectFailure(t, l.Button(controls.TeamTalk).Hidden)
	test.ExpectFailure(t, l.Button(controls.Pause).Hidden)
	test.ExpectFailure(t, l.Button(controls.Viewpoint).Hidden)

	// viewpoint switching is not possible in splitscreen
	st.Splitscreen = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectSuccess(t, l.Button(controls.Viewpoint).Hidden)

	// ringslinger shows the fire buttons and the weapon buttons
	st.Ringslinger = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectFailure(t, l.Button(controls.Fire).Hidden)
	test.ExpectFailure(t, l.Button(controls.FireNormal).Hidden)
	test.ExpectSuccess(t, l.Button(controls.TossFlag).Hidden)
	for c := controls.WepSlot1; c < controls.WepSlot1+layout.NumWeapons; c++ {
		test.ExpectFailure(t, l.Button(c).Hidden, c)
		test.ExpectSuccess(t, l.Button(c).DontScale, c)
	}
	test.ExpectSuccess(t, l.Button(controls.WepSlot10).Hidden)

	st.CTF = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectSuccess(t, l.Button(controls.FireNormal).Hidden)
	test.ExpectFailure(t, l.Button(controls.TossFlag).Hidden)

	// prompts hide the player controls
	st.PromptBlockControls = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectSuccess(t, l.Button(controls.Jump).Hidden)
	test.ExpectSuccess(t, l.Button(controls.Joystick).Hidden)
	test.ExpectFailure(t, l.Button(controls.SystemMenu).Hidden)

	// special stage raises the movement cluster and the alternate HUD
	// lowers the system cluster
	st = baseStatus()
	st.SpecialStage = true
	st.AlternateHUD = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectWithin(t, l.Button(controls.Joystick).Denormalize().Y, base.Y-layout.I(16), normTolerance)
	test.ExpectWithin(t, l.Button(controls.SystemMenu).Denormalize().Y, menu.Y+layout.I(24), normTolerance)

	// an active prompt raises the movement cluster and the jump button by
	// a whole number of base pixels
	st = baseStatus()
	jump := layout.NewEngine().Rebuild(st).Button(controls.Jump).Denormalize()
	st.PromptActive = true
	l = layout.NewEngine().Rebuild(st)
	test.ExpectWithin(t, l.Button(controls.Joystick).Denormalize().Y, base.Y-layout.I(16), normTolerance)
	test.ExpectWithin(t, l.Button(controls.Jump).Denormalize().Y, jump.Y-layout.I(16), normTolerance)
	test.ExpectWithin(t, l.Button(controls.SystemMenu).Denormalize().Y, menu.Y, normTolerance)
}

func TestMemoization(t *testing.T) {
	e := layout.NewEngine()
	st := baseStatus()

	a := e.Rebuild(st)
	b := e.Rebuild(st)
	test.ExpectEquality(t, e.Recomputes(), 1)
	test.ExpectEquality(t, a, b)

	st.CanTalk = true
	e.Rebuild(st)
	test.ExpectEquality(t, e.Recomputes(), 2)
	e.Rebuild(st)
	test.ExpectEquality(t, e.Recomputes(), 2)

	// setting a user layout always causes a recompute
	e.SetUserLayout(layout.NewLayout("test"))
	e.Rebuild(st)
	test.ExpectEquality(t, e.Recomputes(), 3)
}

func TestUserLayout(t *testing.T) {
	l := layout.NewLayout("test")
	l.AddButton(controls.Jump, 0, 0)

	e := layout.NewEngine()
	e.SetUserLayout(l)

	st := baseStatus()
	st.Preset = layout.PresetNone
	st.Screen = layout.NewScreen(800, 600)

	// user layouts are centered on the screen
	r := e.Rebuild(st).ScreenRect(controls.Jump)
	test.ExpectEquality(t, r, layout.PixelRect{X: 80, Y: 100, W: 64, H: 48})

	l.Widescreen = true
	e.SetUserLayout(l)
	r = e.Rebuild(st).ScreenRect(controls.Jump)
	test.ExpectEquality(t, r, layout.PixelRect{X: 0, Y: 0, W: 64, H: 48})

	// changes to the layout after it has been set do not affect the engine
	l.RemoveButton(controls.Jump)
	test.ExpectFailure(t, e.Rebuild(st).Button(controls.Jump).Hidden)
}

func TestDefaultUserLayout(t *testing.T) {
	l := layout.DefaultUserLayout("default", layout.StyleDPad)
	test.ExpectFailure(t, l.Button(controls.Jump).Hidden)
	test.ExpectFailure(t, l.Button(controls.Joystick).Hidden)
	test.ExpectFailure(t, l.Button(controls.Forward).Hidden)

	// the joystick area is recovered from the joystick button
	e := layout.NewEngine()
	e.SetUserLayout(l)
	st := baseStatus()
	st.Preset = layout.PresetNone
	j := e.Rebuild(st).JoystickRect()
	test.ExpectWithin(t, j.X, 32, 1)
	test.ExpectWithin(t, j.Y, 100, 1)
	test.ExpectEquality(t, j.W, 48)
}

func TestCustomize(t *testing.T) {
	l := layout.NewLayout("test")
	test.ExpectSuccess(t, l.Button(controls.Fire).Hidden)

	l.AddButton(controls.Fire, 13, 21)
	b := l.Button(controls.Fire)
	test.ExpectFailure(t, b.Hidden)
	test.ExpectEquality(t, b.W, layout.I(32))
	test.ExpectEquality(t, b.H, layout.I(16))
	test.ExpectEquality(t, b.Name, "FIRE")
	test.ExpectWithin(t, b.Denormalize().X, layout.I(13), normTolerance)
	test.ExpectWithin(t, b.Denormalize().Y, layout.I(21), normTolerance)

	// the selection area extends beyond the button
	r := l.ExtendedRect(controls.Fire)
	test.ExpectEquality(t, r.W, 40)
	test.ExpectEquality(t, r.H, 24)

	l.SnapToGrid(controls.Fire)
	b = l.Button(controls.Fire)
	test.ExpectWithin(t, b.Denormalize().X, layout.I(16), normTolerance)
	test.ExpectWithin(t, b.Denormalize().Y, layout.I(24), normTolerance)

	// half way between grid lines rounds down
	l.AddButton(controls.Use, 12, 4)
	l.SnapToGrid(controls.Use)
	test.ExpectWithin(t, l.Button(controls.Use).Denormalize().X, layout.I(8), normTolerance)

	l.OffsetButtonBy(controls.Fire, layout.I(10), layout.I(-10))
	b = l.Button(controls.Fire)
	test.ExpectWithin(t, b.Denormalize().X, layout.I(26), normTolerance*2)
	test.ExpectWithin(t, b.Denormalize().Y, layout.I(14), normTolerance*2)

	l.ResizeButton(controls.Fire, layout.ResizeBottomRight, layout.I(8), layout.I(8))
	test.ExpectEquality(t, l.Button(controls.Fire).W, layout.I(40))
	test.ExpectEquality(t, l.Button(controls.Fire).H, layout.I(24))

	l.ResizeButton(controls.Fire, layout.ResizeTopLeft, layout.I(100), layout.I(100))
	test.ExpectEquality(t, l.Button(controls.Fire).W, layout.I(layout.MinButtonW))
	test.ExpectEquality(t, l.Button(controls.Fire).H, layout.I(layout.MinButtonH))

	l.RemoveButton(controls.Fire)
	test.ExpectSuccess(t, l.Button(controls.Fire).Hidden)
	test.ExpectEquality(t, l.Button(controls.Fire).W, 0)
}

func TestCustomizeJoystick(t *testing.T) {
	l := layout.NewLayout("test")
	l.AddButton(controls.Joystick, 40, 80)

	test.ExpectFailure(t, l.Button(controls.Joystick).Hidden)
	test.ExpectWithin(t, l.Joystick.X, layout.I(40), normTolerance)
	test.ExpectWithin(t, l.Joystick.Y, layout.I(80), normTolerance)
	test.ExpectEquality(t, l.Joystick.W, layout.I(64))

	// the d-pad follows the joystick
	test.ExpectFailure(t, l.Button(controls.Forward).Hidden)
	test.ExpectSuccess(t, l.Button(controls.Forward).DPad)
	fwd := l.Button(controls.Forward).Denormalize()

	l.MoveButtonTo(controls.Joystick, 80, 80)
	test.ExpectWithin(t, l.Joystick.X, layout.I(80), normTolerance)
	test.ExpectWithin(t, l.Button(controls.Forward).Denormalize().X, fwd.X+layout.I(40), normTolerance*2)

	l.RemoveButton(controls.Joystick)
	test.ExpectSuccess(t, l.Button(controls.Forward).Hidden)

	var found bool
	for _, a := range l.HiddenButtons() {
		if a.Control == controls.Joystick {
			found = true
		}
	}
	test.ExpectSuccess(t, found)
}

func TestButtonAt(t *testing.T) {
	l := layout.NewLayout("test")
	l.AddButton(controls.Jump, 100, 100)

	c, ok := l.ButtonAt(110, 105)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, controls.Jump)

	// inside the extended area but outside the button
	_, ok = l.ButtonAt(98, 98)
	test.ExpectSuccess(t, ok)

	_, ok = l.ButtonAt(10, 10)
	test.ExpectFailure(t, ok)

	r := l.ExtendedRect(controls.Jump)
	test.ExpectEquality(t, l.ResizePointAt(controls.Jump, r.X+r.W, r.Y+r.H), layout.ResizeBottomRight)
	test.ExpectEquality(t, l.ResizePointAt(controls.Jump, r.X+r.W/2, r.Y+r.H/2), layout.ResizeNone)
}

func TestNavigation(t *testing.T) {
	e := layout.NewEngine()
	st := layout.NavStatus{
		Screen:         layout.NewScreen(layout.BaseWidth, layout.BaseHeight),
		CanOpenConsole: true,
	}

	nav := e.Navigation(st)
	test.ExpectEquality(t, nav.KeyAt(10, 10), keys.Escape)
	test.ExpectEquality(t, nav.KeyAt(300, 10), keys.Enter)
	test.ExpectEquality(t, nav.KeyAt(10, 45), keys.Console)
	test.ExpectEquality(t, nav.KeyAt(160, 100), keys.Null)

	e.Navigation(st)
	test.ExpectEquality(t, e.NavRecomputes(), 1)

	st.CanOpenConsole = false
	st.SubmenuOpen = true
	nav = e.Navigation(st)
	test.ExpectEquality(t, e.NavRecomputes(), 2)
	test.ExpectEquality(t, nav.KeyAt(10, 45), keys.Null)
	test.ExpectEquality(t, nav.KeyAt(300, 10), keys.Null)
}
