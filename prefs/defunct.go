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

package prefs

// keys no longer in use. the value is the key that replaced it. defunct keys
// are dropped from the disk file the next time it is saved
var defunct = map[string]string{
	"touch.tiny":     "touch.movementstyle",
	"touch.joystick": "touch.movementstyle",
}

// returns the replacement key and true if the key is defunct.
func isDefunct(key string) (string, bool) {
	r, ok := defunct[key]
	return r, ok
}
