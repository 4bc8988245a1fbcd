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

package controls

// Subsets of controls. Used when testing which control scheme is in use and
// when copying controls between tables.
var (
	TutorialCheck = []Control{Forward, Backward, StrafeLeft, StrafeRight, TurnLeft, TurnRight}

	TutorialUsed = []Control{Forward, Backward, StrafeLeft, StrafeRight, TurnLeft, TurnRight, Jump, Use}

	TutorialFull = []Control{Forward, Backward, StrafeLeft, StrafeRight, LookUp, LookDown,
		TurnLeft, TurnRight, CenterView, Jump, Use, Fire, FireNormal}

	Movement = []Control{Forward, Backward, StrafeLeft, StrafeRight}

	Camera = []Control{TurnLeft, TurnRight}

	MovementCamera = []Control{Forward, Backward, StrafeLeft, StrafeRight, TurnLeft, TurnRight}

	JumpOnly = []Control{Jump}

	UseOnly = []Control{Use}

	JumpUse = []Control{Jump, Use}
)

// Addable is an entry in the list of buttons that can be added to a custom
// touch layout.
type Addable struct {
	Label   string
	Control Control
}

// AddableButtons lists, in display order, the touch buttons that can be added
// to a custom layout.
var AddableButtons = []Addable{
	{"Joystick / D-Pad", Joystick},
	{"Jump", Jump},
	{"Spin", Use},
	{"Look Up", LookUp},
	{"Look Down", LookDown},
	{"Center View", CenterView},
	{"Toggle Mouselook", MouseAiming},
	{"Toggle Third-Person", CamToggle},
	{"Reset Camera", CamReset},
	{"Game Status", Scores},
	{"Pause / Run Retry", Pause},
	{"Screenshot", Screenshot},
	{"Toggle GIF Recording", RecordGIF},
	{"Open/Close Menu", SystemMenu},
	{"Change Viewpoint", Viewpoint},
	{"Talk", Talk},
	{"Talk (Team only)", TeamTalk},
	{"Fire", Fire},
	{"Fire Normal", FireNormal},
	{"Toss Flag", TossFlag},
	{"Next Weapon", WeaponNext},
	{"Prev Weapon", WeaponPrev},
	{"Custom Action 1", Custom1},
	{"Custom Action 2", Custom2},
	{"Custom Action 3", Custom3},
}
