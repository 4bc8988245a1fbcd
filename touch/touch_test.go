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

package touch_test

import (
	"testing"

	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/test"
	"github.com/jetsetilly/controlmapper/touch"
	"github.com/jetsetilly/controlmapper/userinput"
)

type gameState struct {
	blocked      bool
	intermission bool
}

func (g *gameState) GameInputAllowed() bool {
	return !g.blocked
}

func (g *gameState) Intermission() bool {
	return g.intermission
}

func (g *gameState) PromptHidesHUD(_ int) bool {
	return false
}

// counts the number of times each action has been fired
type actions struct {
	fired map[string]int
}

func newActions() *actions {
	return &actions{fired: make(map[string]int)}
}

func (a *actions) OpenMenu()        { a.fired["menu"]++ }
func (a *actions) ToggleConsole()   { a.fired["console"]++ }
func (a *actions) Pause()           { a.fired["pause"]++ }
func (a *actions) SwitchViewpoint() { a.fired["viewpoint"]++ }
func (a *actions) Screenshot()      { a.fired["screenshot"]++ }
func (a *actions) ToggleGIF()       { a.fired["gif"]++ }
func (a *actions) ToggleChasecam()  { a.fired["chasecam"]++ }
func (a *actions) OpenChat(team bool) {
	if team {
		a.fired["teamchat"]++
	} else {
		a.fired["chat"]++
	}
}

func status() layout.Status {
	return layout.Status{
		Screen:   layout.NewScreen(layout.BaseWidth, layout.BaseHeight),
		GUIScale: layout.I(1),
		Preset:   layout.PresetNormal,
		Style:    layout.StyleJoystick,
		CanPause: true,
	}
}

// returns a dispatcher for the normal preset at the base resolution with the
// camera disabled
func dispatcher(t *testing.T) (*touch.Dispatcher, *gameState, *actions) {
	t.Helper()

	e := layout.NewEngine()
	g := &gameState{}
	a := newActions()

	d := touch.NewDispatcher(touch.NewPool())
	d.SetLayout(e.Rebuild(status()))
	d.Context = g
	d.Actions = a
	d.Settings.Camera = false

	return d, g, a
}

func centre(l *layout.Layout, c controls.Control) (int, int) {
	r := l.ScreenRect(c)
	return r.X + r.W/2, r.Y + r.H/2
}

func down(id int, x int, y int) userinput.EventTouch {
	return userinput.EventTouch{Finger: id, Kind: userinput.TouchDown, X: x, Y: y, Pressure: 1.0}
}

func motion(id int, x int, y int, dx int, dy int) userinput.EventTouch {
	return userinput.EventTouch{Finger: id, Kind: userinput.TouchMotion, X: x, Y: y, DX: dx, DY: dy, Pressure: 1.0}
}

func up(id int, x int, y int) userinput.EventTouch {
	return userinput.EventTouch{Finger: id, Kind: userinput.TouchUp, X: x, Y: y}
}

func TestDownOnButton(t *testing.T) {
	d, _, _ := dispatcher(t)
	x, y := centre(d.Layout(), controls.Jump)

	d.HandleEvent(down(0, x, y))
	test.ExpectSuccess(t, d.ControlDown(controls.Jump))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(0).Assignment, touch.AssignControl{Control: controls.Jump})
	test.ExpectSuccess(t, d.Pool.Finger(0).Down)

	d.HandleEvent(up(0, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(0).Assignment, touch.AssignNone{})
	test.ExpectFailure(t, d.Pool.Finger(0).Down)
}

func TestHiddenButton(t *testing.T) {
	d, _, _ := dispatcher(t)
	x, y := centre(d.Layout(), controls.Jump)

	l := d.Layout().Clone()
	l.RemoveButton(controls.Jump)
	d.SetLayout(l)

	d.HandleEvent(down(0, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(0).Assignment, touch.AssignNone{})
}

func TestSlideBetweenButtons(t *testing.T) {
	d, _, a := dispatcher(t)
	jx, jy := centre(d.Layout(), controls.Jump)
	ux, uy := centre(d.Layout(), controls.Use)

	d.HandleEvent(down(0, jx, jy))
	test.ExpectSuccess(t, d.ControlDown(controls.Jump))

	// sliding onto another button releases the first button
	d.HandleEvent(motion(0, ux, uy, ux-jx, uy-jy))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))
	test.ExpectSuccess(t, d.ControlDown(controls.Use))

	// sliding off every button releases the button
	d.HandleEvent(motion(0, 160, 50, 160-ux, 50-uy))
	test.ExpectFailure(t, d.ControlDown(controls.Use))

	// a second finger can now slide onto the button
	d.HandleEvent(down(1, 160, 60))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(1).Assignment, touch.AssignNone{})
	d.HandleEvent(motion(1, ux, uy, ux-160, uy-60))
	test.ExpectSuccess(t, d.ControlDown(controls.Use))
	test.ExpectEquality(t, d.Pool.Finger(1).Control(), controls.Use)

	d.HandleEvent(up(1, ux, uy))
	test.ExpectFailure(t, d.ControlDown(controls.Use))
	test.ExpectEquality(t, a.fired["use"], 0)
}

func TestTwoFingersOneButton(t *testing.T) {
	d, _, _ := dispatcher(t)
	x, y := centre(d.Layout(), controls.Jump)

	d.HandleEvent(down(0, x, y))
	d.HandleEvent(down(1, x+1, y+1))
	test.ExpectEquality(t, d.Pool.Finger(0).Control(), controls.Jump)
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(1).Assignment, touch.AssignNone{})

	d.HandleEvent(up(0, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))

	// the second finger gets the button when it next moves
	d.HandleEvent(motion(1, x, y, -1, -1))
	test.ExpectEquality(t, d.Pool.Finger(1).Control(), controls.Jump)
	test.ExpectSuccess(t, d.ControlDown(controls.Jump))
}

func TestSlideOffThenSecondFinger(t *testing.T) {
	d, _, _ := dispatcher(t)
	x, y := centre(d.Layout(), controls.Jump)

	// the first finger slides off the button onto empty space
	d.HandleEvent(down(0, x, y))
	d.HandleEvent(motion(0, 160, 50, 160-x, 50-y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))

	d.HandleEvent(down(1, x, y))
	test.ExpectSuccess(t, d.ControlDown(controls.Jump))
	test.ExpectEquality(t, d.Pool.Finger(1).Control(), controls.Jump)

	// further movement and release of the first finger leave the control
	// held by the second finger
	d.HandleEvent(motion(0, 161, 51, 1, 1))
	test.ExpectSuccess(t, d.ControlDown(controls.Jump))
	d.HandleEvent(up(0, 161, 51))
	test.ExpectSuccess(t, d.ControlDown(controls.Jump))

	d.HandleEvent(up(1, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))
}

func TestOneShotAction(t *testing.T) {
	d, _, a := dispatcher(t)
	px, py := centre(d.Layout(), controls.Pause)
	mx, my := centre(d.Layout(), controls.SystemMenu)

	// released inside the button
	d.HandleEvent(down(0, px, py))
	test.ExpectSuccess(t, d.ControlDown(controls.Pause))
	d.HandleEvent(up(0, px, py))
	test.ExpectEquality(t, a.fired["pause"], 1)
	test.ExpectFailure(t, d.ControlDown(controls.Pause))

	// motion does not move the finger off a menu-class button but the
	// release position is tested against the button. the menu button
	// under the finger is not fired either
	d.HandleEvent(down(0, px, py))
	d.HandleEvent(motion(0, mx, my, mx-px, my-py))
	test.ExpectEquality(t, d.Pool.Finger(0).Control(), controls.Pause)
	test.ExpectFailure(t, d.ControlDown(controls.SystemMenu))
	d.HandleEvent(up(0, mx, my))
	test.ExpectEquality(t, a.fired["pause"], 1)
	test.ExpectEquality(t, a.fired["menu"], 0)
	test.ExpectFailure(t, d.ControlDown(controls.Pause))

	// player controls have no one-shot action
	jx, jy := centre(d.Layout(), controls.Jump)
	d.HandleEvent(down(0, jx, jy))
	d.HandleEvent(up(0, jx, jy))
	test.ExpectEquality(t, len(a.fired), 1)
}

func TestJoystick(t *testing.T) {
	d, _, _ := dispatcher(t)
	pad := d.Layout().JoystickRect()
	cx := pad.X + pad.W/2
	cy := pad.Y + pad.H/2

	d.HandleEvent(down(0, cx, cy))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(0).Assignment, touch.AssignJoystick{})

	// the edge of the joystick is full movement
	d.HandleEvent(motion(0, cx+pad.W/2, cy, pad.W/2, 0))
	test.ExpectApproximate(t, d.Axes.XMove, 1.0, 0.01)
	test.ExpectApproximate(t, d.Axes.YMove, 0.0, 0.01)
	test.ExpectApproximate(t, d.Axes.Pressure, 1.0, 0.01)

	d.HandleEvent(motion(0, cx, cy-pad.H/4, -pad.W/2, -pad.H/4))
	test.ExpectApproximate(t, d.Axes.XMove, 0.0, 0.01)
	test.ExpectApproximate(t, d.Axes.YMove, -0.5, 0.01)

	// no d-pad buttons are pressed by the joystick
	for c := controls.Null; c < controls.NumControls; c++ {
		test.ExpectFailure(t, d.ControlDown(c), c)
	}

	d.HandleEvent(up(0, cx, cy))
	test.ExpectEquality(t, d.Axes, touch.Axes{})
}

func TestDPadStyle(t *testing.T) {
	d, _, _ := dispatcher(t)
	st := status()
	st.Style = layout.StyleDPad
	d.SetLayout(layout.NewEngine().Rebuild(st))
	d.Settings.Style = layout.StyleDPad

	x, y := centre(d.Layout(), controls.Forward)
	d.HandleEvent(down(0, x, y))
	test.ExpectSuccess(t, d.ControlDown(controls.Forward))

	// the centre of the d-pad is not a button and does not move the camera
	d.Settings.Camera = true
	pad := d.Layout().JoystickRect()
	d.HandleEvent(down(1, pad.X+pad.W/2, pad.Y+pad.H/2))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(1).Assignment, touch.AssignNone{})
}

func TestCamera(t *testing.T) {
	d, _, _ := dispatcher(t)
	d.Settings.Camera = true
	d.Settings.Sens = 20
	d.Settings.VertSens = 20

	d.HandleEvent(down(0, 160, 50))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(0).Assignment, touch.AssignCamera{})

	d.HandleEvent(motion(0, 170, 55, 10, 5))
	test.ExpectEquality(t, d.Axes.MouseX, 37)
	test.ExpectEquality(t, d.Axes.MouseY, 18)
	test.ExpectEquality(t, d.Axes.MLookY, 18)

	// a finger moving the camera does not press buttons
	x, y := centre(d.Layout(), controls.Jump)
	d.HandleEvent(motion(0, x, y, x-170, y-55))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))

	d.ResetMouse()
	test.ExpectEquality(t, d.Axes.MouseX, 0)

	d.HandleEvent(up(0, x, y))
	test.ExpectEquality[touch.Assignment](t, d.Pool.Finger(0).Assignment, touch.AssignNone{})
}

func TestGameInputBlocked(t *testing.T) {
	d, g, _ := dispatcher(t)
	d.Axes.XMove = 0.5
	g.blocked = true

	x, y := centre(d.Layout(), controls.Jump)
	d.HandleEvent(down(0, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))
	test.ExpectEquality(t, d.Axes.XMove, 0.0)
}

func TestForcedControl(t *testing.T) {
	d, g, _ := dispatcher(t)
	g.intermission = true

	d.HandleEvent(down(0, 160, 50))
	test.ExpectSuccess(t, d.ControlDown(controls.Use))
	test.ExpectSuccess(t, d.Pool.Finger(0).IgnoreMotion)

	// the finger keeps the control for the rest of its life
	x, y := centre(d.Layout(), controls.Jump)
	d.HandleEvent(motion(0, x, y, x-160, y-50))
	test.ExpectSuccess(t, d.ControlDown(controls.Use))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))

	d.HandleEvent(up(0, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Use))
	test.ExpectFailure(t, d.Pool.Finger(0).IgnoreMotion)
}

func TestIgnoredEvents(t *testing.T) {
	d, _, _ := dispatcher(t)
	x, y := centre(d.Layout(), controls.Jump)

	// finger ids outside of the pool are ignored
	d.HandleEvent(down(touch.NumFingers, x, y))
	d.HandleEvent(down(-1, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))

	// events are ignored while customising
	d.Customizing = true
	d.HandleEvent(down(0, x, y))
	test.ExpectFailure(t, d.ControlDown(controls.Jump))
	test.ExpectFailure(t, d.Pool.Finger(0).Down)
}

func TestFingerHandler(t *testing.T) {
	d, _, _ := dispatcher(t)

	var seen []int
	d.FingerHandler = func(id int, f *touch.Finger, ev userinput.EventTouch) {
		seen = append(seen, id)
		test.ExpectEquality(t, f.X, ev.X)
	}

	d.HandleEvent(down(3, 10, 10))
	d.HandleEvent(up(3, 10, 10))
	test.DemandEquality(t, len(seen), 2)
	test.ExpectEquality(t, seen[0], 3)
}

func TestPoolUpdate(t *testing.T) {
	p := touch.NewPool()
	p.Post(down(2, 10, 20))
	p.Post(motion(2, 15, 25, 5, 5))

	f := p.Finger(2)
	test.ExpectEquality(t, f.LastX, 0)
	p.Update(1)
	test.ExpectEquality(t, f.LastX, 15)
	test.ExpectEquality(t, f.LastY, 25)

	var calls int
	f.LongPress = func(f *touch.Finger) bool {
		calls++
		return f.LongPressTimer >= 4
	}
	for i := 0; i < 4; i++ {
		p.Update(1)
	}
	test.ExpectEquality(t, calls, 4)
	test.ExpectEquality(t, f.LongPressTimer, 4)

	p.Update(1)
	test.ExpectEquality(t, calls, 5)
	test.ExpectSuccess(t, f.LongPress == nil)
	test.ExpectEquality(t, f.LongPressTimer, 0)

	test.ExpectEquality(t, len(p.Fingers()), 1)
	p.Reset()
	test.ExpectEquality(t, len(p.Fingers()), 0)
}

func TestMapFingerToKey(t *testing.T) {
	e := layout.NewEngine()
	nav := e.Navigation(layout.NavStatus{
		Screen:         layout.NewScreen(layout.BaseWidth, layout.BaseHeight),
		CanOpenConsole: true,
	})

	test.ExpectEquality(t, touch.MapFingerToKey(nav, down(0, 10, 10)), keys.Escape)
	test.ExpectEquality(t, touch.MapFingerToKey(nav, motion(0, 10, 10, 0, 0)), keys.Null)
	test.ExpectEquality(t, touch.MapFingerToKey(nav, down(0, 300, 10)), keys.Enter)
	test.ExpectEquality(t, touch.MapFingerToKey(nav, down(0, 160, 100)), keys.Null)
	test.ExpectEquality(t, touch.MapFingerToKey(nil, down(0, 10, 10)), keys.Null)
}
