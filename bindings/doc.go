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

// Package bindings maps each logical control to up to two keys, for each of
// the two local players.
//
// Under the OnePerKey policy a key is bound to at most one control. Binding
// a key that is already in use evicts it from its previous owner. Under the
// SeveralPerKey policy no eviction takes place.
//
// Named default tables (schemes) are provided for FPS style and platform
// style play. The Scheme() function infers which of the schemes, if any, a
// table currently matches.
//
// Tables are persisted as a list of directives, one per control:
//
//	setcontrol "jump" "SPACE" "JOY6"
//	setcontrol2 "jump" "SEC_JOY6"
//
// Configurations saved by older versions of the program are remapped on load
// by FilterKeyByVersion(), which adds the gamepad defaults that were
// introduced after the configuration was saved.
package bindings
