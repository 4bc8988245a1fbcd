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

// offsets applied to whole clusters of buttons by context flags
const (
	specialStageRaise = 16
	alternateHUDDrop  = 24
	promptActiveRaise = 16 // base pixels, clearing the text box of the prompt
)

// DefaultJoystick returns the unscaled joystick area for the normal or the
// tiny preset, in base pixels.
func DefaultJoystick(tiny bool) Rect {
	if tiny {
		return Rect{X: I(24), Y: I(128), W: I(32), H: I(32)}
	}
	return Rect{X: I(24), Y: I(92), W: I(64), H: I(64)}
}

// dpadPreset positions the eight d-pad buttons around the joystick area. the
// joystick area is in base pixels and the d-pad buttons are left in base
// pixels.
func dpadPreset(btns *[controls.NumControls]Button, js Rect, xscale fixed.Int52_12, yscale fixed.Int52_12, tiny bool) {
	var w, h fixed.Int52_12
	xoffs := I(16).Mul(xscale)
	yoffs := I(14).Mul(yscale)
	diagxoffs := I(48).Mul(xscale)
	diagyoffs := I(16).Mul(yscale)
	middle := xscale

	if tiny {
		w = I(16)
		h = I(16)
		middle = 0
	} else {
		w = I(32)
		h = I(32)
		xoffs *= 2
		yoffs *= 2
	}

	sw := w.Mul(xscale)
	sh := h.Mul(yscale)

	set := func(c controls.Control, x fixed.Int52_12, y fixed.Int52_12) {
		btns[c].Rect = Rect{X: x, Y: y, W: sw, H: sh}
	}

	cx := (js.X + js.W/2) - floor(sw/2) + middle

	set(controls.Forward, cx, js.Y-yoffs)
	set(controls.Backward, cx, (js.Y+js.H)-sh+yoffs)
	set(controls.StrafeLeft, js.X-xoffs, (js.Y+js.H/2)-sh/2)
	set(controls.StrafeRight, (js.X+js.W)-sw+xoffs, btns[controls.StrafeLeft].Y)

	fwd := btns[controls.Forward].Rect
	bwd := btns[controls.Backward].Rect
	set(controls.DPadUL, fwd.X-diagxoffs, fwd.Y+diagyoffs)
	set(controls.DPadUR, fwd.X+diagxoffs, fwd.Y+diagyoffs)
	set(controls.DPadDL, bwd.X-diagxoffs, bwd.Y-diagyoffs)
	set(controls.DPadDR, bwd.X+diagxoffs, bwd.Y-diagyoffs)
}

// scaleDPadBase returns the joystick area for the preset, scaled by the GUI
// scale and offset for the movement style.
func scaleDPadBase(st Status, tiny bool, d Rect, offs fixed.Int52_12, bottomalign fixed.Int52_12) Rect {
	var js Rect
	scale := st.GUIScale

	js.W = d.W.Mul(scale)
	js.H = d.H.Mul(scale)
	js.X = max(d.X, (d.X+d.W/2)-js.W/2)

	if scale < unity {
		js.Y = (d.Y + d.H/2) - js.H/2
	} else {
		js.Y = (d.Y + d.H) - js.H
	}
	js.Y += offs + bottomalign

	if tiny {
		if st.Style == StyleJoystick {
			js.X -= I(4)
			js.Y += I(8)
		}
		if st.Ringslinger {
			js.Y -= I(4)
		}
	} else {
		if st.Style == StyleJoystick {
			js.X -= I(12)
			js.Y += I(16)
		}
		if st.Ringslinger {
			js.Y -= I(8)
		}
	}

	return js
}

// buildPreset creates the layout for the preset named in the status. The
// returned layout has not been processed by the context filters of the
// Engine.
func buildPreset(st Status) *Layout {
	l := &Layout{Name: st.Preset.String()}

	tiny := st.Preset == PresetTiny
	scale := st.GUIScale
	sc := func(v fixed.Int52_12) fixed.Int52_12 {
		return v.Mul(scale)
	}

	btns := &l.Buttons
	corner := I(4)
	right := I(st.Screen.Width / st.Screen.DupX)
	bottom := I(st.Screen.Height / st.Screen.DupY)
	nonjoyoffs := I(-12)

	var jsoffs fixed.Int52_12
	if st.Ringslinger {
		jsoffs = I(-4)
	}

	var offs fixed.Int52_12
	if st.PromptActive {
		offs = I(-promptActiveRaise)
	}

	var bottomalign fixed.Int52_12
	if st.Screen.Height != BaseHeight*st.Screen.DupY {
		bottomalign = I((st.Screen.Height - BaseHeight*st.Screen.DupY) / st.Screen.DupY)
	}

	// movement cluster
	moveoffs := offs
	if st.SpecialStage {
		moveoffs -= I(specialStageRaise)
	}

	d := DefaultJoystick(tiny)
	js := scaleDPadBase(st, tiny, d, moveoffs, bottomalign)
	dpadPreset(btns, js, div(js.W, d.W).Mul(scale), div(js.H, d.H).Mul(scale), tiny)
	btns[controls.Joystick].Rect = js
	l.Joystick = js

	// action cluster
	jump := &btns[controls.Jump]
	use := &btns[controls.Use]

	var jumph fixed.Int52_12
	if tiny {
		jumph = I(32)
		jump.W = sc(I(40))
		jump.H = sc(jumph)
		use.W = sc(I(32))
		use.H = sc(I(24))
	} else {
		jumph = I(48)
		jump.W = sc(I(48))
		jump.H = sc(jumph)
		use.W = sc(I(40))
		use.H = sc(I(32))
	}

	jump.X = right - jump.W - corner - I(12)
	jump.Y = (bottom - jump.H - corner - I(12)) + jsoffs + offs + nonjoyoffs
	use.X = jump.X - use.W - I(12)
	if tiny {
		use.Y = jump.Y + I(8)
	} else {
		use.Y = jump.Y + I(12)
	}

	fire := &btns[controls.Fire]
	if st.Ringslinger {
		o := sc(I(8))
		h := sc(jumph/2) + sc(I(4))
		use.H = h
		use.Y = ((jump.Y + jump.H) - h) + o

		fire.W = use.W
		fire.H = h
		fire.X = use.X
		fire.Y = jump.Y - o

		var ref *Button
		if st.CTF {
			ref = &btns[controls.TossFlag]
			btns[controls.FireNormal].Hidden = true
		} else {
			ref = &btns[controls.FireNormal]
			btns[controls.TossFlag].Hidden = true
		}

		ref.W = jump.W
		ref.H = fire.H
		if !tiny {
			ref.H /= 2
		}
		ref.X = jump.X
		ref.Y = jump.Y - ref.H - sc(I(4))
	} else {
		fire.Hidden = true
		btns[controls.FireNormal].Hidden = true
		btns[controls.TossFlag].Hidden = true
	}

	// system cluster
	offs = sc(I(8))
	top := corner
	if st.AlternateHUD {
		top += I(alternateHUDDrop)
	}

	menu := &btns[controls.SystemMenu]
	menu.W = sc(I(32))
	menu.H = sc(I(32))
	menu.X = right - menu.W - corner
	menu.Y = top

	pause := &btns[controls.Pause]
	pause.X = menu.X
	pause.Y = menu.Y
	pause.W = sc(I(24))
	pause.H = sc(I(24))
	if st.CanPause {
		pause.X -= pause.W + sc(I(4))
	} else {
		pause.Hidden = true
	}

	viewpoint := &btns[controls.Viewpoint]
	viewpoint.Hidden = true
	viewpoint.X = pause.X
	viewpoint.Y = pause.Y
	if st.CanViewpointSwitch && !st.Splitscreen {
		viewpoint.W = sc(I(32))
		viewpoint.H = sc(I(24))
		viewpoint.X -= viewpoint.W + sc(I(4))
		viewpoint.Hidden = false
	}

	// screenshot and movie buttons are aligned with whichever of the pause
	// and viewpoint buttons are visible
	var x, y fixed.Int52_12
	w := sc(I(40))
	h := sc(I(24))

	if !viewpoint.Hidden || !pause.Hidden {
		ref := pause
		if pause.Hidden {
			ref = viewpoint
		}
		x = ref.X - (w - ref.W)
		y = ref.Y + ref.H + offs
	} else {
		x = viewpoint.X - w - sc(I(4))
		y = viewpoint.Y
	}

	screenshot := &btns[controls.Screenshot]
	screenshot.Rect = Rect{X: x, Y: y, W: w, H: h}
	btns[controls.RecordGIF].Rect = Rect{X: x, Y: screenshot.Y + screenshot.H + offs, W: w, H: h}

	talk := &btns[controls.Talk]
	team := &btns[controls.TeamTalk]
	talk.Hidden = true
	team.Hidden = true
	if st.CanTalk {
		talk.W = sc(I(32))
		talk.H = sc(I(24))
		talk.X = right - talk.W - corner
		talk.Y = menu.Y + menu.H + offs
		talk.Hidden = false

		if st.CanTeamTalk {
			team.W = sc(I(32))
			team.H = sc(I(24))
			team.X = talk.X
			team.Y = talk.Y + talk.H + offs
			team.Hidden = false
		}
	}

	l.normalize()
	l.markDPad()
	l.setNames()
	l.hideEmpty()

	return l
}

// DefaultUserLayout returns the layout that a new user layout starts with. It
// is the normal preset for the base resolution at the default scale.
func DefaultUserLayout(name string, style Style) *Layout {
	st := Status{
		Screen:   NewScreen(BaseWidth, BaseHeight),
		GUIScale: DefaultScale,
		Preset:   PresetNormal,
		Style:    style,
	}
	l := buildPreset(st)
	l.Name = name
	l.UseGrid = true
	return l
}
