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

package touch

import (
	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/userinput"
)

// Context is the game state that affects how fingers are dispatched.
type Context interface {
	// GameInputAllowed returns false if the menu, the console or the chat
	// window is open
	GameInputAllowed() bool

	// Intermission returns true during an intermission or a cutscene
	Intermission() bool

	// PromptHidesHUD returns true if a text prompt that blocks player
	// controls is hiding the HUD at the vertical position, in base pixels
	PromptHidesHUD(y int) bool
}

// Settings are the user preferences for the touch controls.
type Settings struct {
	Style layout.Style

	// fingers that touch no button move the camera
	Camera bool

	// camera sensitivity. in the range 1 to 100
	Sens     int
	VertSens int

	// joystick sensitivity
	JoyHorzSens float32
	JoyVertSens float32
}

// DefaultSettings returns the default values for the Settings type.
func DefaultSettings() Settings {
	return Settings{
		Style:       layout.StyleJoystick,
		Camera:      true,
		Sens:        20,
		VertSens:    20,
		JoyHorzSens: 1.0,
		JoyVertSens: 1.0,
	}
}

// Axes are the continuous outputs of the touch controls.
type Axes struct {
	// joystick movement. a value of 1.0 is the edge of the joystick
	XMove    float32
	YMove    float32
	Pressure float32

	// camera movement
	MouseX int
	MouseY int
	MLookY int
}

// FingerHandler is called with every event before it is dispatched.
type FingerHandler func(id int, f *Finger, ev userinput.EventTouch)

// Dispatcher assigns fingers to the buttons of a layout.
type Dispatcher struct {
	Pool     *Pool
	Settings Settings
	Context  Context
	Actions  Actions

	// events are ignored while the layout is being customised
	Customizing bool

	FingerHandler FingerHandler

	Axes Axes

	layout *layout.Layout
	down   [controls.NumControls]bool

	// the finger holding each control down. a finger that has slid off its
	// button keeps the assignment but not the ownership
	owner [controls.NumControls]int
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher(pool *Pool) *Dispatcher {
	return &Dispatcher{
		Pool:     pool,
		Settings: DefaultSettings(),
	}
}

// SetLayout sets the layout that fingers are tested against. The layout
// should not be changed while it is in use by the Dispatcher.
func (d *Dispatcher) SetLayout(l *layout.Layout) {
	d.layout = l
}

// Layout returns the layout that fingers are tested against.
func (d *Dispatcher) Layout() *layout.Layout {
	return d.layout
}

// ControlDown returns true if a finger is holding down the button for the
// control.
func (d *Dispatcher) ControlDown(c controls.Control) bool {
	if !c.Valid() {
		return false
	}
	return d.down[c]
}

// Reset releases every control and every finger.
func (d *Dispatcher) Reset() {
	d.down = [controls.NumControls]bool{}
	d.owner = [controls.NumControls]int{}
	d.Axes = Axes{}
	d.Pool.Reset()
}

// ResetMouse clears the camera movement. It should be called once the
// camera movement has been consumed.
func (d *Dispatcher) ResetMouse() {
	d.Axes.MouseX = 0
	d.Axes.MouseY = 0
	d.Axes.MLookY = 0
}

// assert the control on behalf of the finger
func (d *Dispatcher) hold(c controls.Control, id int) {
	d.down[c] = true
	d.owner[c] = id
}

// release the control only if the finger is the one holding it
func (d *Dispatcher) letGo(c controls.Control, id int) {
	if d.down[c] && d.owner[c] == id {
		d.down[c] = false
	}
}

func (d *Dispatcher) gameInputAllowed() bool {
	return d.Context == nil || d.Context.GameInputAllowed()
}

// the control that is forced down by the game state, regardless of where
// the finger is
func (d *Dispatcher) forcedControl(y int) controls.Control {
	if d.Context == nil {
		return controls.Null
	}
	if d.Context.Intermission() {
		return controls.Use
	}
	if d.Context.PromptHidesHUD(y / max(d.layout.Screen.DupY, 1)) {
		return controls.Jump
	}
	return controls.Null
}

// the camera response curve
func sensitivity(sens int, mult int) float32 {
	return float32(sens*mult)/110.0 + 0.1
}

// HandleEvent dispatches the touch event. The position of the finger is
// recorded in the Pool.
func (d *Dispatcher) HandleEvent(ev userinput.EventTouch) {
	f := d.Pool.Finger(ev.Finger)
	if f == nil {
		return
	}

	if d.Customizing {
		return
	}

	d.Pool.Post(ev)

	if d.FingerHandler != nil {
		d.FingerHandler(ev.Finger, f, ev)
	}

	if d.layout == nil {
		return
	}

	switch ev.Kind {
	case userinput.TouchDown, userinput.TouchMotion:
		d.press(f, ev)
	case userinput.TouchUp:
		d.release(f, ev.Finger)
	}
}

func (d *Dispatcher) press(f *Finger, ev userinput.EventTouch) {
	l := d.layout
	x := ev.X
	y := ev.Y
	motion := ev.Kind == userinput.TouchMotion
	gc := f.Control()

	if !d.gameInputAllowed() {
		d.Axes.XMove = 0
		d.Axes.YMove = 0
		d.Axes.Pressure = 0
		return
	}

	// the finger is held on a button that does not follow the finger
	if motion {
		if f.IgnoreMotion || !gc.IsPlayerControl() {
			return
		}
		if _, ok := f.Assignment.(AssignKey); ok {
			return
		}
	}

	var found bool
	movecamera := true

	_, joystick := f.Assignment.(AssignJoystick)
	_, camera := f.Assignment.(AssignCamera)

	if !joystick && !camera {
		for c := controls.Null + 1; c < controls.NumControls; c++ {
			btn := l.Button(c)
			if btn.Hidden {
				continue
			}
			if d.Settings.Style != layout.StyleDPad && btn.DPad {
				continue
			}
			if c == controls.Joystick {
				continue
			}
			if btn.DPad && l.Button(controls.Joystick).Hidden {
				continue
			}

			// let go of the previous button so that it does not stick when
			// the finger slides onto another button
			if motion && gc > controls.Null {
				d.letGo(gc, ev.Finger)
				movecamera = false
			}

			if l.Touches(c, x, y) && !d.down[c] {
				f.Assignment = AssignControl{Control: c}
				d.hold(c, ev.Finger)
				found = true
				break
			}
		}
	}

	if !found && l.TouchesJoystick(x, y) {
		switch d.Settings.Style {
		case layout.StyleJoystick:
			if !motion {
				f.Assignment = AssignJoystick{}
				return
			}
		case layout.StyleDPad:
			return
		}
	}

	if !found {
		if c := d.forcedControl(y); c != controls.Null {
			f.IgnoreMotion = true
			f.Assignment = AssignControl{Control: c}
			d.hold(c, ev.Finger)
			found = true
		}
	}

	if found {
		return
	}

	if motion && (joystick || camera) {
		if joystick {
			pad := l.JoystickRect()
			dx := x - (pad.X + pad.W/2)
			dy := y - (pad.Y + pad.H/2)
			extx := layout.ToFloat(l.Joystick.W) / 2
			exty := layout.ToFloat(l.Joystick.H) / 2
			if extx > 0 && exty > 0 {
				d.Axes.XMove = float32(float64(dx) * float64(d.Settings.JoyHorzSens) / extx)
				d.Axes.YMove = float32(float64(dy) * float64(d.Settings.JoyVertSens) / exty)
			}
			d.Axes.Pressure = ev.Pressure
		} else if d.Settings.Camera && movecamera {
			s := sensitivity(d.Settings.Sens, d.Settings.Sens)
			d.Axes.MouseX = int(float32(ev.DX) * s)
			d.Axes.MouseY = int(float32(ev.DY) * s)
			d.Axes.MLookY = int(float32(ev.DY) * sensitivity(d.Settings.VertSens, d.Settings.Sens))
		}
	} else if d.Settings.Camera && movecamera {
		f.Assignment = AssignCamera{}
	}
}

func (d *Dispatcher) release(f *Finger, id int) {
	gc := f.Control()
	if gc > controls.Null {
		if !gc.IsPlayerControl() && d.layout.Touches(gc, f.X, f.Y) {
			fire(d.Actions, gc)
		}
		d.letGo(gc, id)
	}

	if _, ok := f.Assignment.(AssignJoystick); ok {
		d.Axes.XMove = 0
		d.Axes.YMove = 0
		d.Axes.Pressure = 0
	}

	f.Assignment = AssignNone{}
	f.IgnoreMotion = false
}

// MapFingerToKey returns the navigation key under the finger. Motion events
// and positions without a navigation button return the Null key.
func MapFingerToKey(nav *layout.Navigation, ev userinput.EventTouch) keys.Key {
	if nav == nil || ev.Kind == userinput.TouchMotion {
		return keys.Null
	}
	return nav.KeyAt(ev.X, ev.Y)
}
