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
	"github.com/jetsetilly/controlmapper/userinput"
)

// NumFingers is the number of fingers that can be tracked. Events for
// fingers outside the range are ignored.
const NumFingers = 20

// Assignment is the thing a finger is controlling. It is one of AssignNone,
// AssignControl, AssignJoystick, AssignCamera or AssignKey.
type Assignment interface {
	assignment()
}

// AssignNone indicates that the finger is not controlling anything.
type AssignNone struct{}

// AssignControl indicates that the finger is holding down the button for a
// control.
type AssignControl struct {
	Control controls.Control
}

// AssignJoystick indicates that the finger is moving the joystick.
type AssignJoystick struct{}

// AssignCamera indicates that the finger is moving the camera.
type AssignCamera struct{}

// AssignKey indicates that the finger is holding down a navigation button.
type AssignKey struct {
	Key keys.Key
}

func (AssignNone) assignment()     {}
func (AssignControl) assignment()  {}
func (AssignJoystick) assignment() {}
func (AssignCamera) assignment()   {}
func (AssignKey) assignment()      {}

// control returns the control of the assignment or the Null control if the
// assignment is not an AssignControl.
func control(a Assignment) controls.Control {
	if c, ok := a.(AssignControl); ok {
		return c.Control
	}
	return controls.Null
}

// LongPressAction is run once per tick while the finger is held down. The
// action should return true when it no longer needs to be run.
type LongPressAction func(f *Finger) bool

// Finger is the state of a finger.
type Finger struct {
	// position in screen pixels
	X int
	Y int

	// position at the previous call to Pool.Update()
	LastX int
	LastY int

	// motion of the most recent event
	DX int
	DY int

	Pressure float32
	Down     bool

	Assignment Assignment

	// the assignment of the finger does not change when the finger moves
	IgnoreMotion bool

	LongPress LongPressAction

	// the number of ticks the long press action has been running
	LongPressTimer int
}

// Control returns the control the finger is holding down. Returns the Null
// control if the finger is not assigned to a control.
func (f *Finger) Control() controls.Control {
	return control(f.Assignment)
}

func (f *Finger) cancelLongPress() {
	f.LongPress = nil
	f.LongPressTimer = 0
}

// Pool is the fixed size set of fingers.
type Pool struct {
	fingers [NumFingers]Finger
}

// NewPool is the preferred method of initialisation for the Pool type.
func NewPool() *Pool {
	p := &Pool{}
	p.Reset()
	return p
}

// Finger returns the finger with the id. Returns nil if the id is out of
// range.
func (p *Pool) Finger(id int) *Finger {
	if id < 0 || id >= NumFingers {
		return nil
	}
	return &p.fingers[id]
}

// Fingers returns a copy of every finger that is currently down.
func (p *Pool) Fingers() []Finger {
	var d []Finger
	for _, f := range p.fingers {
		if f.Down {
			d = append(d, f)
		}
	}
	return d
}

// Post records the position, pressure and down state of the event in the
// finger.
func (p *Pool) Post(ev userinput.EventTouch) {
	f := p.Finger(ev.Finger)
	if f == nil {
		return
	}

	f.X = ev.X
	f.Y = ev.Y
	f.DX = ev.DX
	f.DY = ev.DY
	f.Pressure = ev.Pressure

	switch ev.Kind {
	case userinput.TouchDown:
		f.Down = true
	case userinput.TouchUp:
		f.Down = false
	}
}

// Update should be called once per tick with the number of ticks that have
// passed. The last position of every finger is updated and long press
// actions are run.
func (p *Pool) Update(realtics int) {
	for i := range p.fingers {
		f := &p.fingers[i]

		f.LastX = f.X
		f.LastY = f.Y

		if f.LongPress != nil {
			done := f.LongPress(f)
			f.LongPressTimer += realtics
			if done {
				f.cancelLongPress()
			}
		}
	}
}

// Reset every finger to the up and unassigned state.
func (p *Pool) Reset() {
	for i := range p.fingers {
		p.fingers[i] = Finger{Assignment: AssignNone{}}
	}
}
