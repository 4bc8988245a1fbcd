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

// Package keys defines the key space. This is a flat integer namespace that
// unifies the real keyboard keys with the virtual keys for mouse buttons,
// gamepad buttons and gamepad hats of both local players, the synthesized
// double-click keys for each of those, the mouse wheel and the remote
// control.
//
// Ranges are reserved contiguously and never overlap. The kind of a key can
// be derived from its value alone with the Classify() function.
//
// Every key has a canonical name. The Name() function returns the name for a
// key and the Parse() function returns the key for a name. An unknown name
// parses to the Null key and is never an error.
package keys
