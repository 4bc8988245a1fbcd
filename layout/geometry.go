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
	"fmt"

	"golang.org/x/image/math/fixed"
)

// The base resolution. Button positions are normalised against these values.
const (
	BaseWidth  = 320
	BaseHeight = 200
)

// Screen describes the display that the touch controls are placed on.
//
// DupX and DupY are the integer scaling factors from the base resolution to
// the screen resolution.
type Screen struct {
	Width  int
	Height int
	DupX   int
	DupY   int
}

// NewScreen returns a Screen for the display size. The scaling factors are
// the largest integer scale at which the base resolution fits the display.
func NewScreen(width int, height int) Screen {
	s := Screen{
		Width:  width,
		Height: height,
		DupX:   width / BaseWidth,
		DupY:   height / BaseHeight,
	}
	s.DupX = max(s.DupX, 1)
	s.DupY = max(s.DupY, 1)
	return s
}

func (s Screen) String() string {
	return fmt.Sprintf("%dx%d (x%d, x%d)", s.Width, s.Height, s.DupX, s.DupY)
}

// Dup returns the smaller of the two scaling factors.
func (s Screen) Dup() int {
	return min(s.DupX, s.DupY)
}

// valid returns false if the screen has not been initialised
func (s Screen) valid() bool {
	return s.DupX > 0 && s.DupY > 0
}

// center adjusts screen coordinates so that the base resolution, at the
// smaller of the scaling factors, is centered on the screen.
func (s Screen) center(x int, y int) (int, int) {
	dup := s.Dup()
	if s.Width != BaseWidth*dup {
		x += (s.Width - BaseWidth*dup) / 2
	}
	if s.Height != BaseHeight*dup {
		y += (s.Height - BaseHeight*dup) / 2
	}
	return x, y
}

// Rect is an area in base pixels. When part of a Button the X and Y fields
// are normalised.
type Rect struct {
	X fixed.Int52_12
	Y fixed.Int52_12
	W fixed.Int52_12
	H fixed.Int52_12
}

func (r Rect) String() string {
	return fmt.Sprintf("(%s, %s) %sx%s", r.X, r.Y, r.W, r.H)
}

// Normalize returns the Rect with the X and Y fields divided by the base
// resolution. The W and H fields are unchanged.
func (r Rect) Normalize() Rect {
	r.X = div(r.X, I(BaseWidth))
	r.Y = div(r.Y, I(BaseHeight))
	return r
}

// Denormalize reverses the Normalize() function.
func (r Rect) Denormalize() Rect {
	r.X *= BaseWidth
	r.Y *= BaseHeight
	return r
}

// PixelRect is an area of the screen in pixels.
type PixelRect struct {
	X int
	Y int
	W int
	H int
}

func (r PixelRect) String() string {
	return fmt.Sprintf("(%d, %d) %dx%d", r.X, r.Y, r.W, r.H)
}

// Contains returns true if the point is inside the area. Points on the edge
// of the area are inside.
func (r PixelRect) Contains(x int, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// scale converts the Rect to screen pixels. If normalized is true then the X
// and Y fields of the Rect are treated as being normalised. If screenscale is
// true then the scaling factors of the screen are applied.
func (s Screen) scale(r Rect, normalized bool, screenscale bool) PixelRect {
	xs := unity
	ys := unity
	if normalized {
		xs *= BaseWidth
		ys *= BaseHeight
	}

	var p PixelRect
	if screenscale {
		xs *= fixed.Int52_12(s.DupX)
		ys *= fixed.Int52_12(s.DupY)
		p.W = trunc(r.W.Mul(I(s.DupX)))
		p.H = trunc(r.H.Mul(I(s.DupY)))
	} else {
		p.W = trunc(r.W)
		p.H = trunc(r.H)
	}

	p.X = trunc(r.X.Mul(xs))
	p.Y = trunc(r.Y.Mul(ys))

	return p
}
