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

package layout

import (
	"github.com/jetsetilly/controlmapper/controls"
)

// Button is the placement of the touch button for a control.
type Button struct {
	// X and Y are normalised
	Rect

	Hidden bool

	// the button is one of the d-pad buttons
	DPad bool

	// the button is positioned in screen pixels and is not affected by the
	// scaling factors of the screen
	DontScale bool

	Name      string
	ShortName string
}

// Layout is a complete set of touch buttons.
type Layout struct {
	Name    string
	Buttons [controls.NumControls]Button

	// the joystick area in base pixels. not normalised
	Joystick Rect

	// the user layout snaps buttons to a grid when they are moved
	UseGrid bool

	// buttons are positioned relative to the whole screen rather than to
	// the centered base resolution
	Widescreen bool

	// the screen the layout was last positioned for
	Screen Screen

	// buttons that are not DontScale are centered when hit tested
	centered bool
}

// NewLayout returns an empty layout. Every button is hidden.
func NewLayout(name string) *Layout {
	l := &Layout{
		Name:    name,
		UseGrid: true,
	}
	for c := range l.Buttons {
		l.Buttons[c].Hidden = true
	}
	l.setNames()
	return l
}

// Button returns the button for the control.
func (l *Layout) Button(c controls.Control) Button {
	if !c.Valid() {
		return Button{Hidden: true}
	}
	return l.Buttons[c]
}

// ScreenRect returns the area of the screen occupied by the button.
func (l *Layout) ScreenRect(c controls.Control) PixelRect {
	if !c.Valid() {
		return PixelRect{}
	}
	btn := &l.Buttons[c]
	r := l.Screen.scale(btn.Rect, true, !btn.DontScale)
	if l.centered && !btn.DontScale {
		r.X, r.Y = l.Screen.center(r.X, r.Y)
	}
	return r
}

// Touches returns true if the screen position is inside the button for the
// control. The test is inclusive of the button's edges. Hidden buttons are
// never touched.
func (l *Layout) Touches(c controls.Control, x int, y int) bool {
	if !c.Valid() || l.Buttons[c].Hidden {
		return false
	}
	return l.ScreenRect(c).Contains(x, y)
}

// JoystickRect returns the area of the screen occupied by the joystick.
func (l *Layout) JoystickRect() PixelRect {
	r := l.Screen.scale(l.Joystick, false, true)
	if l.centered {
		r.X, r.Y = l.Screen.center(r.X, r.Y)
	}
	return r
}

// TouchesJoystick returns true if the screen position is inside the joystick
// area. Always false if the joystick button is hidden.
func (l *Layout) TouchesJoystick(x int, y int) bool {
	if l.Buttons[controls.Joystick].Hidden {
		return false
	}
	return l.JoystickRect().Contains(x, y)
}

// Visible returns the list of controls with a visible button, in control
// order.
func (l *Layout) Visible() []controls.Control {
	var v []controls.Control
	for c := controls.Null + 1; c < controls.NumControls; c++ {
		if !l.Buttons[c].Hidden {
			v = append(v, c)
		}
	}
	return v
}

func (l *Layout) setNames() {
	for c := range l.Buttons {
		l.Buttons[c].Name = controls.Control(c).ButtonName()
		l.Buttons[c].ShortName = controls.Control(c).ShortName()
	}
}

func (l *Layout) markDPad() {
	for c := range l.Buttons {
		if controls.Control(c).IsDPad() {
			l.Buttons[c].DPad = true
		}
	}
}

// buttons with no width are hidden
func (l *Layout) hideEmpty() {
	for c := range l.Buttons {
		if l.Buttons[c].W == 0 {
			l.Buttons[c].Hidden = true
		}
	}
}

func (l *Layout) normalize() {
	for c := range l.Buttons {
		l.Buttons[c].Rect = l.Buttons[c].Rect.Normalize()
	}
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := *l
	return &c
}
