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
	"golang.org/x/image/math/fixed"
)

// LongPressTicks is the number of ticks a finger must be held on an empty
// part of the screen before the new button list is opened.
const LongPressTicks = 17

// NewButtonFunc is called when a long press should open the list of buttons
// that can be added to the layout. The position is the position of the
// finger.
type NewButtonFunc func(x int, y int, addable []controls.Addable)

// Customizer handles fingers while the user layout is being edited.
type Customizer struct {
	pool   *Pool
	layout *layout.Layout
	nav    *layout.Navigation

	// OnNewButton is called by a long press. If it is nil then a long press
	// does nothing
	OnNewButton NewButtonFunc

	// the selected button and the finger that selected it
	selected controls.Control
	finger   *Finger

	isselecting bool
	moving      bool
	resizearea  bool
	resizing    layout.ResizePoint
}

// NewCustomizer is the preferred method of initialisation for the Customizer
// type. The layout is modified as the user edits it.
func NewCustomizer(pool *Pool, l *layout.Layout) *Customizer {
	return &Customizer{
		pool:     pool,
		layout:   l,
		resizing: layout.ResizeNone,
	}
}

// SetNavigation sets the navigation buttons. A long press does not start on
// a navigation button.
func (cst *Customizer) SetNavigation(nav *layout.Navigation) {
	cst.nav = nav
}

// Layout returns the layout being edited.
func (cst *Customizer) Layout() *layout.Layout {
	return cst.layout
}

// Selected returns the selected button. Returns false if no button is
// selected.
func (cst *Customizer) Selected() (controls.Control, bool) {
	return cst.selected, cst.selected != controls.Null
}

// ClearSelection deselects the selected button.
func (cst *Customizer) ClearSelection() {
	if cst.finger != nil {
		cst.finger.Assignment = AssignNone{}
	}
	cst.finger = nil
	cst.selected = controls.Null
	cst.isselecting = false
	cst.moving = false
	cst.resizearea = false
	cst.resizing = layout.ResizeNone
}

// RemoveSelected removes the selected button from the layout.
func (cst *Customizer) RemoveSelected() {
	c := cst.selected
	if c == controls.Null {
		return
	}
	cst.ClearSelection()
	cst.layout.RemoveButton(c)
}

// amount moved by the finger since the last event, in base pixels
func (cst *Customizer) baseDelta(f *Finger, x int, y int) (fixed.Int52_12, fixed.Int52_12) {
	scr := cst.layout.Screen
	dupx := fixed.Int52_12(max(scr.DupX, 1))
	dupy := fixed.Int52_12(max(scr.DupY, 1))
	return layout.I(x-f.X) / dupx, layout.I(y-f.Y) / dupy
}

// handle the resize points of the selected button. returns true if the
// finger is on a resize point or is resizing the button
func (cst *Customizer) resize(f *Finger, x int, y int) bool {
	c := cst.selected

	if cst.resizing == layout.ResizeNone {
		p := cst.layout.ResizePointAt(c, x, y)
		if p == layout.ResizeNone {
			return false
		}
		f.X = x
		f.Y = y
		cst.resizing = p
		return true
	}

	dx, dy := cst.baseDelta(f, x, y)
	cst.layout.ResizeButton(c, cst.resizing, dx, dy)

	f.X = x
	f.Y = y
	return true
}

// HandleEvent handles the touch event. Returns true if the event was used.
func (cst *Customizer) HandleEvent(ev userinput.EventTouch) bool {
	f := cst.pool.Finger(ev.Finger)
	if f == nil {
		return false
	}

	x := ev.X
	y := ev.Y
	motion := ev.Kind == userinput.TouchMotion

	switch ev.Kind {
	case userinput.TouchDown, userinput.TouchMotion:
		var found bool
		gc := f.Control()

		// buttons are tested in reverse order so that the button drawn on
		// top is selected first
		for c := controls.NumControls - 1; c > controls.Null; c-- {
			btn := cst.layout.Button(c)
			if btn.Hidden || btn.DPad {
				continue
			}

			// only the selected button is moved
			if motion && gc != c {
				continue
			}

			if motion && cst.selected == c {
				if cst.resizearea && !cst.moving {
					cst.resize(f, x, y)
				} else if cst.resize(f, x, y) && !cst.moving {
					cst.resizearea = true
				} else {
					dx, dy := cst.baseDelta(f, x, y)
					cst.layout.OffsetButtonBy(c, dx, dy)
					cst.moving = true
				}

				cst.isselecting = false
				f.X = x
				f.Y = y
				found = true
				break
			}

			if cst.layout.ExtendedRect(c).Contains(x, y) {
				cst.ClearSelection()

				f.Assignment = AssignControl{Control: c}
				cst.selected = c
				cst.finger = f
				cst.isselecting = true
				cst.moving = false
				cst.resizing = layout.ResizeNone

				f.X = x
				f.Y = y
				found = true
				break
			}
		}

		f.X = x
		f.Y = y
		f.Pressure = ev.Pressure
		f.Down = true

		if f.LongPress != nil && motion {
			f.cancelLongPress()
		} else if !found && !motion {
			if cst.nav != nil && cst.nav.KeyAt(x, y) != keys.Null {
				return false
			}
			f.LongPress = cst.longPress
			f.LongPressTimer = 0
			return true
		}

		return motion || found

	case userinput.TouchUp:
		f.X = x
		f.Y = y
		f.Down = false
		f.cancelLongPress()

		gc := f.Control()
		if gc > controls.Null && gc == cst.selected {
			if !cst.moving && !cst.isselecting && cst.resizing == layout.ResizeNone {
				cst.ClearSelection()
			} else {
				if cst.layout.UseGrid && (cst.moving || cst.resizing != layout.ResizeNone) {
					cst.layout.SnapToGrid(gc)
				}
				cst.isselecting = false
				cst.moving = false
				cst.resizearea = false
				cst.resizing = layout.ResizeNone
			}
		}

		return true
	}

	return false
}

// the long press action for fingers that touch an empty part of the screen
func (cst *Customizer) longPress(f *Finger) bool {
	if f.LongPressTimer < LongPressTicks {
		return false
	}

	addable := cst.layout.HiddenButtons()
	if len(addable) > 0 && cst.OnNewButton != nil {
		cst.OnNewButton(f.X, f.Y, addable)
	}

	return true
}
