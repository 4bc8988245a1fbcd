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

package keys

import "fmt"

// Device identifies the family of physical input a key belongs to.
type Device int

// List of valid Device values.
const (
	DeviceNone Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceJoystick
	DeviceHat
	DeviceWheel
	DeviceRemote
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	case DeviceJoystick:
		return "joystick"
	case DeviceHat:
		return "hat"
	case DeviceWheel:
		return "wheel"
	case DeviceRemote:
		return "remote"
	}
	return "none"
}

// Info describes a key as derived from the range it falls in.
type Info struct {
	Device Device

	// the local player the key belongs to. always zero for keyboard and
	// remote keys
	Player int

	// whether the key is a synthesized double-click key
	Double bool

	// index of the key inside its family. for hats the index counts
	// directions, so hat 2 up has index 4
	Index int
}

func (inf Info) String() string {
	dbl := ""
	if inf.Double {
		dbl = " double"
	}
	return fmt.Sprintf("%s%s #%d (player %d)", inf.Device, dbl, inf.Index, inf.Player+1)
}

type keyRange struct {
	start  Key
	size   int
	device Device
	player int
	double bool
}

// the ranges in key space order. Classify() relies on there being no gaps
// between consecutive entries.
var ranges = []keyRange{
	{start: Mouse1, size: MouseButtons, device: DeviceMouse},
	{start: Joy1, size: JoyButtons, device: DeviceJoystick},
	{start: Hat1, size: JoyHats * HatDirections, device: DeviceHat},
	{start: DblMouse1, size: MouseButtons, device: DeviceMouse, double: true},
	{start: DblJoy1, size: JoyButtons, device: DeviceJoystick, double: true},
	{start: DblHat1, size: JoyHats * HatDirections, device: DeviceHat, double: true},
	{start: P2Mouse1, size: MouseButtons, device: DeviceMouse, player: 1},
	{start: P2Joy1, size: JoyButtons, device: DeviceJoystick, player: 1},
	{start: P2Hat1, size: JoyHats * HatDirections, device: DeviceHat, player: 1},
	{start: P2DblMouse1, size: MouseButtons, device: DeviceMouse, player: 1, double: true},
	{start: P2DblJoy1, size: JoyButtons, device: DeviceJoystick, player: 1, double: true},
	{start: P2DblHat1, size: JoyHats * HatDirections, device: DeviceHat, player: 1, double: true},
	{start: MouseWheelUp, size: 2, device: DeviceWheel},
	{start: P2MouseWheelUp, size: 2, device: DeviceWheel, player: 1},
	{start: RemoteUp, size: RemoteButtons, device: DeviceRemote},
}

// Classify returns the Info for a key. Keys outside of the key space and the
// Null key are DeviceNone.
func Classify(k Key) Info {
	if k <= Null || k >= NumInputs {
		return Info{}
	}
	if k < NumKeys {
		return Info{Device: DeviceKeyboard, Index: int(k)}
	}
	for _, r := range ranges {
		if k >= r.start && k < r.start+Key(r.size) {
			return Info{
				Device: r.device,
				Player: r.player,
				Double: r.double,
				Index:  int(k - r.start),
			}
		}
	}
	return Info{}
}
