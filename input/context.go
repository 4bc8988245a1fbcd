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

package input

import (
	"github.com/jetsetilly/controlmapper/layout"
)

// Flags are the game states that affect the touch layout.
type Flags struct {
	Ringslinger        bool
	CTF                bool
	CanPause           bool
	CanViewpointSwitch bool
	CanTalk            bool
	CanTeamTalk        bool

	PromptBlockControls bool
	PromptActive        bool

	Splitscreen  bool
	SpecialStage bool
	AlternateHUD bool

	// state of the menu system. affects the navigation buttons
	SubmenuOpen    bool
	CanOpenConsole bool
}

// Context is the game-state collaborator of the Subsystem.
type Context interface {
	// GameInputAllowed returns false if the menu, the console or the chat
	// window is open
	GameInputAllowed() bool

	// Intermission returns true during an intermission or a cutscene
	Intermission() bool

	// PromptHidesHUD returns true if a text prompt that blocks player
	// controls is hiding the HUD at the vertical position, in base pixels
	PromptHidesHUD(y int) bool

	// Screen returns the size of the display in pixels
	Screen() (int, int)

	// Flags returns the current game state
	Flags() Flags
}

// the context used when no context has been supplied. the game is always
// accepting input on a screen of the base resolution
type nullContext struct{}

func (nullContext) GameInputAllowed() bool {
	return true
}

func (nullContext) Intermission() bool {
	return false
}

func (nullContext) PromptHidesHUD(_ int) bool {
	return false
}

func (nullContext) Screen() (int, int) {
	return layout.BaseWidth, layout.BaseHeight
}

func (nullContext) Flags() Flags {
	return Flags{CanPause: true}
}
