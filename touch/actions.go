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

import "github.com/jetsetilly/controlmapper/controls"

// Actions are the one-shot actions of the menu-class controls. The
// implementation decides whether an action is possible in the current game
// state.
type Actions interface {
	OpenMenu()
	ToggleConsole()
	Pause()
	SwitchViewpoint()
	Screenshot()
	ToggleGIF()
	ToggleChasecam()

	// OpenChat opens or closes the chat window. team is true if the chat is
	// for team members only
	OpenChat(team bool)
}

// fire the one-shot action for the control. controls without an action are
// ignored
func fire(a Actions, c controls.Control) {
	if a == nil {
		return
	}

	switch c {
	case controls.SystemMenu:
		a.OpenMenu()
	case controls.Console:
		a.ToggleConsole()
	case controls.Pause:
		a.Pause()
	case controls.Viewpoint:
		a.SwitchViewpoint()
	case controls.Screenshot:
		a.Screenshot()
	case controls.RecordGIF:
		a.ToggleGIF()
	case controls.CamToggle:
		a.ToggleChasecam()
	case controls.Talk:
		a.OpenChat(false)
	case controls.TeamTalk:
		a.OpenChat(true)
	}
}
