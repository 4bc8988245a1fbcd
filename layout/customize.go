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
	"golang.org/x/image/math/fixed"
)

// the smallest size a button can be resized to, in base pixels
const (
	MinButtonW = 8
	MinButtonH = 8
)

// the number of base pixels by which the selection area of a button extends
// beyond the button
const buttonExtend = 4

// the size of the button list in the customisation screen
const maxHiddenButtons = 256

// ResizePoint identifies one of the handles used to resize a button.
type ResizePoint int

// List of valid ResizePoint values.
const (
	ResizeNone ResizePoint = iota - 1
	ResizeTopLeft
	ResizeTopMiddle
	ResizeTopRight
	ResizeBottomLeft
	ResizeBottomMiddle
	ResizeBottomRight
	ResizeLeftSide
	ResizeRightSide
	NumResizePoints
)

// position of each resize point as a fraction of the button's extended area
var resizePoints = [NumResizePoints][2]fixed.Int52_12{
	{0, 0}, {unity / 2, 0}, {unity, 0},
	{0, unity}, {unity / 2, unity}, {unity, unity},
	{0, unity / 2},
	{unity, unity / 2},
}

// the joystick button is special because the d-pad is positioned around it.
// the button must not be normalised when this function is called
func (l *Layout) updateJoystickBase() {
	btn := &l.Buttons[controls.Joystick]
	d := DefaultJoystick(false)

	l.Joystick = btn.Rect

	xscale := div(btn.W, d.W).Mul(DefaultScale)
	yscale := div(btn.H, d.H).Mul(DefaultScale)
	dpadPreset(&l.Buttons, l.Joystick, xscale, yscale, false)

	for c := range l.Buttons {
		if controls.Control(c).IsDPad() {
			l.Buttons[c].Rect = l.Buttons[c].Rect.Normalize()
			l.Buttons[c].Hidden = btn.Hidden
			l.Buttons[c].DPad = true
		}
	}
}

// apply the function to the denormalised rect of the button
func (l *Layout) edit(c controls.Control, f func(r *Rect)) {
	if !c.Valid() || c == controls.Null {
		return
	}
	btn := &l.Buttons[c]
	btn.Rect = btn.Rect.Denormalize()
	f(&btn.Rect)
	if c == controls.Joystick {
		l.updateJoystickBase()
	}
	btn.Rect = btn.Rect.Normalize()
}

// MoveButtonTo moves the top left corner of the button to the screen
// position.
func (l *Layout) MoveButtonTo(c controls.Control, x int, y int) {
	scr := l.screen()
	l.edit(c, func(r *Rect) {
		r.X = I(x / scr.DupX)
		r.Y = I(y / scr.DupY)
	})
}

// OffsetButtonBy moves the button by an amount in base pixels.
func (l *Layout) OffsetButtonBy(c controls.Control, dx fixed.Int52_12, dy fixed.Int52_12) {
	l.edit(c, func(r *Rect) {
		r.X += dx
		r.Y += dy
	})
}

// roundSnap rounds a to the nearest multiple of b. values exactly half way
// between two multiples are rounded down
func roundSnap(a fixed.Int52_12, b fixed.Int52_12) fixed.Int52_12 {
	d := div(a, b)
	if frac(d) <= unity/2 {
		d = floor(d)
	} else {
		d = ceil(d)
	}
	return d.Mul(b)
}

// SnapToGrid aligns the position and size of the button to the small grid.
func (l *Layout) SnapToGrid(c controls.Control) {
	grid := I(SmallGridSize)
	l.edit(c, func(r *Rect) {
		r.X = roundSnap(r.X, grid)
		r.Y = roundSnap(r.Y, grid)
		r.W = roundSnap(r.W, grid)
		r.H = roundSnap(r.H, grid)
	})
}

// ResizeButton moves the resize point of the button by an amount in base
// pixels. The button will not be made smaller than MinButtonW by MinButtonH.
func (l *Layout) ResizeButton(c controls.Control, p ResizePoint, dx fixed.Int52_12, dy fixed.Int52_12) {
	if !c.Valid() || c == controls.Null {
		return
	}

	btn := &l.Buttons[c]
	offx := dx
	if btn.W <= I(MinButtonW) {
		offx = 0
	}
	offy := dy
	if btn.H <= I(MinButtonH) {
		offy = 0
	}

	switch p {
	case ResizeTopLeft:
		l.OffsetButtonBy(c, offx, offy)
		btn.W -= dx
		btn.H -= dy
	case ResizeTopRight:
		l.OffsetButtonBy(c, 0, offy)
		btn.W += dx
		btn.H -= dy
	case ResizeBottomLeft:
		l.OffsetButtonBy(c, offx, 0)
		btn.W -= dx
		btn.H += dy
	case ResizeBottomRight:
		btn.W += dx
		btn.H += dy
	case ResizeTopMiddle:
		l.OffsetButtonBy(c, 0, offy)
		btn.H -= dy
	case ResizeBottomMiddle:
		btn.H += dy
	case ResizeLeftSide:
		l.OffsetButtonBy(c, offx, 0)
		btn.W -= dx
	case ResizeRightSide:
		btn.W += dx
	default:
		return
	}

	btn.W = max(btn.W, I(MinButtonW))
	btn.H = max(btn.H, I(MinButtonH))

	if c == controls.Joystick {
		l.edit(c, func(_ *Rect) {})
	}
}

// UpdateJoystickBase positions the joystick area and the d-pad buttons
// according to the joystick button.
func (l *Layout) UpdateJoystickBase() {
	l.edit(controls.Joystick, func(_ *Rect) {})
}

// AddButton adds the button for the control at the screen position. The
// joystick is added at its default size. Other buttons are added at a size of
// 32x16 base pixels.
func (l *Layout) AddButton(c controls.Control, x int, y int) {
	if !c.Valid() || c == controls.Null {
		return
	}

	btn := &l.Buttons[c]
	*btn = Button{}
	l.MoveButtonTo(c, x, y)

	if c == controls.Joystick {
		d := DefaultJoystick(false)
		btn.W = d.W
		btn.H = d.H
		l.UpdateJoystickBase()
	} else {
		btn.W = I(32)
		btn.H = I(16)
	}

	btn.Name = c.ButtonName()
	btn.ShortName = c.ShortName()
	btn.DPad = c.IsDPad()
	btn.Hidden = false

	if c == controls.Joystick {
		for d := range l.Buttons {
			if controls.Control(d).IsDPad() {
				l.Buttons[d].Hidden = false
			}
		}
	}
}

// RemoveButton removes the button for the control from the layout.
func (l *Layout) RemoveButton(c controls.Control) {
	if !c.Valid() || c == controls.Null {
		return
	}
	l.Buttons[c] = Button{Hidden: true}

	// the d-pad buttons can not exist without the joystick
	if c == controls.Joystick {
		for d := range l.Buttons {
			if controls.Control(d).IsDPad() {
				l.Buttons[d].Hidden = true
			}
		}
	}
}

// screen returns the screen the layout is positioned for, or the base
// resolution if the layout has never been positioned
func (l *Layout) screen() Screen {
	if !l.Screen.valid() {
		return NewScreen(BaseWidth, BaseHeight)
	}
	return l.Screen
}

// ExtendedRect returns the area of the screen that selects the button in the
// customisation screen. The area is larger than the button.
func (l *Layout) ExtendedRect(c controls.Control) PixelRect {
	if !c.Valid() {
		return PixelRect{}
	}
	scr := l.screen()
	btn := &l.Buttons[c]
	r := scr.scale(btn.Rect, true, !btn.DontScale)
	ex := buttonExtend * scr.DupX
	ey := buttonExtend * scr.DupY
	r.X -= ex
	r.Y -= ey
	r.W += ex * 2
	r.H += ey * 2
	return r
}

// ResizePointRect returns the area of the screen occupied by the resize
// point of the button.
func (l *Layout) ResizePointRect(c controls.Control, p ResizePoint) PixelRect {
	if p < 0 || p >= NumResizePoints {
		return PixelRect{}
	}
	scr := l.screen()
	r := l.ExtendedRect(c)
	pw := 5 * scr.DupX
	ph := 5 * scr.DupY

	interp := func(v0 int, t fixed.Int52_12, v1 int) int {
		return trunc((unity - t).Mul(I(v0)) + t.Mul(I(v1)))
	}

	return PixelRect{
		X: interp(r.X, resizePoints[p][0], r.X+r.W) - pw/2,
		Y: interp(r.Y, resizePoints[p][1], r.Y+r.H) - ph/2,
		W: pw,
		H: ph,
	}
}

// ResizePointAt returns the resize point of the button at the screen
// position. Returns ResizeNone if there is no resize point at the position.
func (l *Layout) ResizePointAt(c controls.Control, x int, y int) ResizePoint {
	for p := ResizeTopLeft; p < NumResizePoints; p++ {
		if l.ResizePointRect(c, p).Contains(x, y) {
			return p
		}
	}
	return ResizeNone
}

// ButtonAt returns the first visible button whose extended area contains the
// screen position. The joystick is tested last so that buttons placed on
// top of the joystick can be selected.
func (l *Layout) ButtonAt(x int, y int) (controls.Control, bool) {
	for c := controls.Null + 1; c < controls.NumControls; c++ {
		if c == controls.Joystick || c.IsDPad() || l.Buttons[c].Hidden {
			continue
		}
		if l.ExtendedRect(c).Contains(x, y) {
			return c, true
		}
	}
	if !l.Buttons[controls.Joystick].Hidden && l.ExtendedRect(controls.Joystick).Contains(x, y) {
		return controls.Joystick, true
	}
	return controls.Null, false
}

// HiddenButtons returns the list of buttons that can be added to the layout.
func (l *Layout) HiddenButtons() []controls.Addable {
	var h []controls.Addable
	for _, a := range controls.AddableButtons {
		if len(h) >= maxHiddenButtons {
			break
		}
		if l.Buttons[a.Control].Hidden {
			h = append(h, a)
		}
	}
	return h
}
