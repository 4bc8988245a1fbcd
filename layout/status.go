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
	"golang.org/x/image/math/fixed"
)

// Preset identifies the procedurally generated layout in use.
type Preset int

// List of valid Preset values. PresetNone means that a user layout is in use.
const (
	PresetNone Preset = iota
	PresetNormal
	PresetTiny
	NumPresets
)

func (p Preset) String() string {
	switch p {
	case PresetNone:
		return "None"
	case PresetNormal:
		return "Default"
	case PresetTiny:
		return "Tiny"
	}
	return "unknown preset"
}

// Style is the movement style of the touch controls.
type Style int

// List of valid Style values.
const (
	StyleJoystick Style = iota + 1
	StyleDPad
)

func (s Style) String() string {
	switch s {
	case StyleJoystick:
		return "Joystick"
	case StyleDPad:
		return "D-Pad"
	}
	return "unknown style"
}

// DefaultScale is the default value of the GUI scale.
var DefaultScale = F(0.75)

// Status is a snapshot of everything that affects the placement and
// visibility of the touch buttons. Two equal Status values always produce the
// same layout.
type Status struct {
	Screen   Screen
	GUIScale fixed.Int52_12

	Preset Preset
	Style  Style

	// ringslinger gametype. the fire buttons and the weapon buttons are shown
	Ringslinger bool

	// capture the flag gametype. the toss flag button replaces the fire
	// normal button
	CTF bool

	CanPause           bool
	CanViewpointSwitch bool
	CanTalk            bool
	CanTeamTalk        bool

	// a text prompt is preventing player controls
	PromptBlockControls bool

	// a text prompt is shown at the bottom of the screen
	PromptActive bool

	Splitscreen  bool
	SpecialStage bool

	// an alternate HUD is occupying the top of the screen
	AlternateHUD bool
}

// NavStatus is a snapshot of everything that affects the placement and
// visibility of the navigation buttons.
type NavStatus struct {
	Screen         Screen
	Customizing    bool
	SubmenuOpen    bool
	CanOpenConsole bool
}
