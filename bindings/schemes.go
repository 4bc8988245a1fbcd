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

package bindings

import (
	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/keys"
)

// Scheme identifies one of the named default tables.
type Scheme int

// List of valid Scheme values. SchemeCustom has no default bindings and is
// used when a table matches none of the other schemes.
const (
	SchemeCustom Scheme = iota
	SchemeFPS
	SchemePlatform
	NumSchemes
)

func (s Scheme) String() string {
	switch s {
	case SchemeCustom:
		return "Custom"
	case SchemeFPS:
		return "FPS"
	case SchemePlatform:
		return "Platform"
	}
	return "unknown scheme"
}

// default tables for each player
var defaults [NumSchemes]Controls
var defaultsPlayerTwo [NumSchemes]Controls

func init() {
	fps := &defaults[SchemeFPS]
	fps[controls.Forward][0] = 'w'
	fps[controls.Backward][0] = 's'
	fps[controls.StrafeLeft][0] = 'a'
	fps[controls.StrafeRight][0] = 'd'
	fps[controls.LookUp][0] = keys.Up
	fps[controls.LookDown][0] = keys.Down
	fps[controls.TurnLeft][0] = keys.Left
	fps[controls.TurnRight][0] = keys.Right
	fps[controls.CenterView][0] = keys.End
	fps[controls.Jump][0] = keys.Space
	fps[controls.Use][0] = keys.LShift
	fps[controls.Fire][0] = keys.RCtrl
	fps[controls.Fire][1] = keys.Mouse1
	fps[controls.FireNormal][0] = 'c'

	plt := &defaults[SchemePlatform]
	plt[controls.Forward][0] = keys.Up
	plt[controls.Backward][0] = keys.Down
	plt[controls.StrafeLeft][0] = 'a'
	plt[controls.StrafeRight][0] = 'd'
	plt[controls.LookUp][0] = keys.PgUp
	plt[controls.LookDown][0] = keys.PgDn
	plt[controls.TurnLeft][0] = keys.Left
	plt[controls.TurnRight][0] = keys.Right
	plt[controls.CenterView][0] = keys.End
	plt[controls.Jump][0] = keys.Space
	plt[controls.Use][0] = keys.LShift
	plt[controls.Fire][0] = 's'
	plt[controls.Fire][1] = keys.Mouse1
	plt[controls.FireNormal][0] = 'w'

	// bindings shared by all non-custom schemes
	for s := SchemeFPS; s < NumSchemes; s++ {
		d := &defaults[s]

		d[controls.WeaponNext][0] = keys.MouseWheelUp
		d[controls.WeaponPrev][0] = keys.MouseWheelDown
		d[controls.WepSlot1][0] = '1'
		d[controls.WepSlot2][0] = '2'
		d[controls.WepSlot3][0] = '3'
		d[controls.WepSlot4][0] = '4'
		d[controls.WepSlot5][0] = '5'
		d[controls.WepSlot6][0] = '6'
		d[controls.WepSlot7][0] = '7'
		d[controls.WepSlot8][0] = '8'
		d[controls.WepSlot9][0] = '9'
		d[controls.WepSlot10][0] = '0'
		d[controls.TossFlag][0] = keys.Quote
		d[controls.CamToggle][0] = 'v'
		d[controls.CamReset][0] = 'r'
		d[controls.Talk][0] = 't'
		d[controls.TeamTalk][0] = 'y'
		d[controls.Scores][0] = keys.Tab
		d[controls.Console][0] = keys.Console
		d[controls.Pause][0] = 'p'
		d[controls.Screenshot][0] = keys.F8
		d[controls.RecordGIF][0] = keys.F9
		d[controls.Viewpoint][0] = keys.F12

		// gamepad
		d[controls.WeaponNext][1] = keys.Joy1 + 1
		d[controls.WeaponPrev][1] = keys.Joy1 + 2
		d[controls.TossFlag][1] = keys.Joy1 + 0
		d[controls.Use][1] = keys.Joy1 + 4
		d[controls.CamToggle][1] = keys.Hat1 + 0
		d[controls.CamReset][1] = keys.Joy1 + 3
		d[controls.CenterView][1] = keys.Joy1 + 9
		d[controls.Talk][1] = keys.Hat1 + 2
		d[controls.Scores][1] = keys.Hat1 + 3
		d[controls.Jump][1] = keys.Joy1 + 5
		d[controls.Pause][1] = keys.Joy1 + 6
		d[controls.Screenshot][1] = keys.Hat1 + 1
		d[controls.SystemMenu][0] = keys.Joy1 + 7

		// the second player only has gamepad defaults
		p2 := &defaultsPlayerTwo[s]
		p2[controls.WeaponNext][0] = keys.P2Joy1 + 1
		p2[controls.WeaponPrev][0] = keys.P2Joy1 + 2
		p2[controls.TossFlag][0] = keys.P2Joy1 + 0
		p2[controls.Use][0] = keys.P2Joy1 + 4
		p2[controls.CamReset][0] = keys.P2Joy1 + 3
		p2[controls.CenterView][0] = keys.P2Joy1 + 9
		p2[controls.Jump][0] = keys.P2Joy1 + 5
		p2[controls.CamToggle][0] = keys.P2Hat1 + 0
		p2[controls.Screenshot][0] = keys.P2Hat1 + 1
	}
}

// Defaults returns a copy of the default controls of the scheme for the player.
func Defaults(scheme Scheme, player int) Controls {
	if scheme < SchemeCustom || scheme >= NumSchemes {
		return Controls{}
	}
	if player&1 == PlayerTwo {
		return defaultsPlayerTwo[scheme]
	}
	return defaults[scheme]
}

// SetDefaults replaces the bindings of both players with the defaults of the
// scheme.
func (t *Table) SetDefaults(scheme Scheme) {
	t.players[PlayerOne] = Defaults(scheme, PlayerOne)
	t.players[PlayerTwo] = Defaults(scheme, PlayerTwo)
}

// ResolveScheme returns the first non-custom scheme whose defaults match the
// controls in the subset. If the subset is empty then every control is
// tested, including the Null control.
//
// A control matches a scheme if any key bound to the control equals any
// non-null key bound to the control in the scheme. The defaults for the first
// player are always used for the comparison.
//
// Note that because the Null control never has a key bound to it, a test
// with an empty subset never matches a scheme and the function returns
// SchemeCustom.
func ResolveScheme(c *Controls, subset []controls.Control) Scheme {
	all := subset
	if len(all) == 0 {
		all = make([]controls.Control, controls.NumControls)
		for i := range all {
			all[i] = controls.Control(i)
		}
	}

	for s := SchemeFPS; s < NumSchemes; s++ {
		matched := true
		for _, ctrl := range all {
			if !ctrl.Valid() {
				continue
			}
			if !slotsOverlap(c[ctrl], defaults[s][ctrl]) {
				matched = false
				break
			}
		}
		if matched {
			return s
		}
	}

	return SchemeCustom
}

// slotsOverlap returns true if any key in a matches any key in b. The Null key
// never matches.
func slotsOverlap(a Slots, b Slots) bool {
	for _, ka := range a {
		for _, kb := range b {
			if ka != keys.Null && ka == kb {
				return true
			}
		}
	}
	return false
}

// Scheme returns the scheme that the bindings for the player currently match.
func (t *Table) Scheme(player int, subset []controls.Control) Scheme {
	return ResolveScheme(&t.players[player&1], subset)
}

// SchemeCheck is the scheme matched by one group of controls.
type SchemeCheck struct {
	Group  string
	Scheme Scheme
}

// the groups of controls reported by CheckSchemes(). the same groups the
// tutorial tests when deciding whether to offer a change of scheme
var checkGroups = []struct {
	name   string
	subset []controls.Control
}{
	{name: "movement", subset: controls.MovementCamera},
	{name: "jump/use", subset: controls.JumpUse},
	{name: "all", subset: controls.TutorialFull},
}

// CheckSchemes returns the scheme matched by each group of controls for the
// player. An empty subset is never used because the controls without
// defaults, Null included, would always resolve to SchemeCustom.
func (t *Table) CheckSchemes(player int) []SchemeCheck {
	chk := make([]SchemeCheck, 0, len(checkGroups))
	for _, g := range checkGroups {
		chk = append(chk, SchemeCheck{Group: g.name, Scheme: t.Scheme(player, g.subset)})
	}
	return chk
}

// CopyControls copies both slots of the controls in the subset from src to
// dest. If the subset is empty then every control is copied.
func CopyControls(dest *Controls, src *Controls, subset []controls.Control) {
	if len(subset) == 0 {
		*dest = *src
		return
	}
	for _, c := range subset {
		if c.Valid() {
			dest[c] = src[c]
		}
	}
}
