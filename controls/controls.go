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

// Package controls defines the closed, ordered set of logical game controls.
// The order of the enumeration is significant: it is the order in which touch
// buttons are hit-tested and the order in which bindings are saved.
package controls

import "strings"

// Control is a logical game action, independent of the physical input that
// triggers it.
type Control int

// List of valid Control values.
const (
	Null Control = iota
	Forward
	Backward
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	DPadUL
	DPadUR
	DPadDL
	DPadDR
	Joystick
	WeaponNext
	WeaponPrev
	WepSlot1
	WepSlot2
	WepSlot3
	WepSlot4
	WepSlot5
	WepSlot6
	WepSlot7
	WepSlot8
	WepSlot9
	WepSlot10
	Fire
	FireNormal
	TossFlag
	Use
	CamToggle
	CamReset
	LookUp
	LookDown
	CenterView
	MouseAiming
	Talk
	TeamTalk
	Scores
	Jump
	Console
	Pause
	SystemMenu
	Screenshot
	RecordGIF
	Viewpoint
	Custom1
	Custom2
	Custom3

	// NumControls is the number of controls including Null
	NumControls
)

type info struct {
	name      string
	button    string
	shortName string
}

var table = [NumControls]info{
	Null:        {name: "nothing"},
	Forward:     {name: "forward"},
	Backward:    {name: "backward"},
	StrafeLeft:  {name: "strafeleft"},
	StrafeRight: {name: "straferight"},
	TurnLeft:    {name: "turnleft"},
	TurnRight:   {name: "turnright"},
	DPadUL:      {name: "dpadul"},
	DPadUR:      {name: "dpadur"},
	DPadDL:      {name: "dpaddl"},
	DPadDR:      {name: "dpaddr"},
	Joystick:    {name: "joystick"},
	WeaponNext:  {name: "weaponnext", button: "WEP.NEXT", shortName: "WNX"},
	WeaponPrev:  {name: "weaponprev", button: "WEP.PREV", shortName: "WPV"},
	WepSlot1:    {name: "weapon1"},
	WepSlot2:    {name: "weapon2"},
	WepSlot3:    {name: "weapon3"},
	WepSlot4:    {name: "weapon4"},
	WepSlot5:    {name: "weapon5"},
	WepSlot6:    {name: "weapon6"},
	WepSlot7:    {name: "weapon7"},
	WepSlot8:    {name: "weapon8"},
	WepSlot9:    {name: "weapon9"},
	WepSlot10:   {name: "weapon10"},
	Fire:        {name: "fire", button: "FIRE", shortName: "FRE"},
	FireNormal:  {name: "firenormal", button: "F.NORMAL", shortName: "FRN"},
	TossFlag:    {name: "tossflag", button: "TOSSFLAG", shortName: "FLG"},
	Use:         {name: "use", button: "SPIN", shortName: "SPN"},
	CamToggle:   {name: "camtoggle", button: "CHASECAM", shortName: "CHASE"},
	CamReset:    {name: "camreset", button: "RESET CAM", shortName: "R.CAM"},
	LookUp:      {name: "lookup", button: "LOOK UP", shortName: "L.UP"},
	LookDown:    {name: "lookdown", button: "LOOK DOWN", shortName: "L.DW"},
	CenterView:  {name: "centerview", button: "CENTER VIEW", shortName: "CVW"},
	MouseAiming: {name: "mouseaiming", button: "MOUSEAIM", shortName: "AIM"},
	Talk:        {name: "talkkey", button: "TALK", shortName: "TLK"},
	TeamTalk:    {name: "teamtalkkey", button: "TEAM", shortName: "TTK"},
	Scores:      {name: "scores", button: "SCORES", shortName: "TAB"},
	Jump:        {name: "jump", button: "JUMP", shortName: "JMP"},
	Console:     {name: "console", button: "CONSOLE", shortName: "CON"},
	Pause:       {name: "pause"},
	SystemMenu:  {name: "systemmenu", button: "MENU", shortName: "MNU"},
	Screenshot:  {name: "screenshot", button: "SCRCAP", shortName: "SCR"},
	RecordGIF:   {name: "recordgif", button: "REC"},
	Viewpoint:   {name: "viewpoint", button: "F12"},
	Custom1:     {name: "custom1", button: "CUSTOM1", shortName: "C1"},
	Custom2:     {name: "custom2", button: "CUSTOM2", shortName: "C2"},
	Custom3:     {name: "custom3", button: "CUSTOM3", shortName: "C3"},
}

// Valid returns true if the control is part of the enumeration. Null is
// valid.
func (c Control) Valid() bool {
	return c >= Null && c < NumControls
}

// Name returns the name used to refer to the control in saved
// configurations.
func (c Control) Name() string {
	if !c.Valid() {
		return ""
	}
	return table[c].name
}

// String implements the fmt.Stringer interface.
func (c Control) String() string {
	return c.Name()
}

// ButtonName returns the name displayed on the touch button for the control.
// Can be empty.
func (c Control) ButtonName() string {
	if !c.Valid() {
		return ""
	}
	return table[c].button
}

// ShortName returns the name displayed on the touch button when the button is
// too small for the full name. Can be empty.
func (c Control) ShortName() string {
	if !c.Valid() {
		return ""
	}
	return table[c].shortName
}

// Lookup returns the control with the configuration name. Name comparisons are
// not case sensitive. The boolean return value is false if no control has
// that name.
func Lookup(name string) (Control, bool) {
	for c := Null; c < NumControls; c++ {
		if strings.EqualFold(table[c].name, name) {
			return c, true
		}
	}
	return Null, false
}

// IsPlayerControl returns false for the menu-class controls. A menu-class
// control triggers a one-shot action when its touch button is released rather
// than being held down.
func (c Control) IsPlayerControl() bool {
	switch c {
	case Talk, TeamTalk, Scores, Console, Pause, SystemMenu, Screenshot,
		RecordGIF, Viewpoint, CamToggle, CamReset:
		return false
	}
	return true
}

// IsDPad returns true if the control is one of the eight d-pad movement
// buttons.
func (c Control) IsDPad() bool {
	switch c {
	case Forward, Backward, StrafeLeft, StrafeRight, DPadUL, DPadUR, DPadDL, DPadDR:
		return true
	}
	return false
}

// IsWeaponSlot returns true if the control selects a weapon directly.
func (c Control) IsWeaponSlot() bool {
	return c >= WepSlot1 && c <= WepSlot10
}
