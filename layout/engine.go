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
	"github.com/jetsetilly/controlmapper/logger"
)

// Engine creates the current touch layout. The layout is only recomputed
// when the Status changes.
type Engine struct {
	status  Status
	current *Layout
	user    *Layout

	nav       *Navigation
	navStatus NavStatus

	recomputes    int
	navRecomputes int
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine() *Engine {
	return &Engine{}
}

// Rebuild returns the touch layout for the status. The returned layout should
// be treated as read-only and is only valid until the next call to
// Rebuild().
//
// If the status is the same as the status in the previous call then the
// layout is not recomputed.
func (e *Engine) Rebuild(st Status) *Layout {
	if !st.Screen.valid() {
		st.Screen = NewScreen(st.Screen.Width, st.Screen.Height)
	}
	if st.GUIScale <= 0 {
		st.GUIScale = DefaultScale
	}

	if e.current != nil && st == e.status {
		return e.current
	}

	e.status = st
	e.recomputes++

	var l *Layout
	if st.Preset != PresetNone {
		l = buildPreset(st)
	} else {
		if e.user == nil {
			e.user = DefaultUserLayout("Default", st.Style)
			logger.Log(logger.Allow, "layout", "no user layout. using default")
		}
		l = e.user.Clone()
		l.positionJoystick()
		l.centered = !l.Widescreen
	}

	l.Screen = st.Screen
	l.positionWeapons(st)
	l.hidePlayerControls(st)
	l.markDPad()

	e.current = l
	return e.current
}

// Current returns the layout returned by the most recent call to Rebuild().
// Returns nil if Rebuild() has never been called.
func (e *Engine) Current() *Layout {
	return e.current
}

// Status returns the status used by the most recent call to Rebuild().
func (e *Engine) Status() Status {
	return e.status
}

// Recomputes returns the number of times the layout has been computed.
func (e *Engine) Recomputes() int {
	return e.recomputes
}

// SetUserLayout sets the layout that is used when the preset is PresetNone.
// The layout is copied. The next call to Rebuild() will recompute the layout.
func (e *Engine) SetUserLayout(l *Layout) {
	if l == nil {
		e.user = nil
	} else {
		e.user = l.Clone()
	}
	e.current = nil
}

// UserLayout returns a copy of the user layout. Returns nil if no user
// layout has been set.
func (e *Engine) UserLayout() *Layout {
	if e.user == nil {
		return nil
	}
	return e.user.Clone()
}

// Invalidate forces the next call to Rebuild() to recompute the layout.
func (e *Engine) Invalidate() {
	e.current = nil
	e.nav = nil
}

// Navigation returns the navigation buttons for the status. As with
// Rebuild(), the buttons are only recomputed when the status changes.
func (e *Engine) Navigation(st NavStatus) *Navigation {
	if !st.Screen.valid() {
		st.Screen = NewScreen(st.Screen.Width, st.Screen.Height)
	}
	if e.nav != nil && st == e.navStatus {
		return e.nav
	}
	e.navStatus = st
	e.navRecomputes++
	e.nav = buildNavigation(st)
	return e.nav
}

// NavRecomputes returns the number of times the navigation buttons have been
// computed.
func (e *Engine) NavRecomputes() int {
	return e.navRecomputes
}
