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

// Package layout computes the geometry of the on-screen touch controls.
//
// A Layout holds a Button for every control. Button positions are stored
// normalised against the base resolution of 320x200, so that a layout is
// independent of the size of the display. Button sizes are stored in base
// pixels. All geometry uses 52.12 fixed point values from the
// golang.org/x/image/math/fixed package.
//
// The Engine type generates a preset layout from a Status value, which
// captures everything that affects the placement and visibility of buttons.
// The preset is only recomputed when the Status changes. A user authored
// layout can be used in place of the preset with SetUserLayout(). User
// layouts are edited with the customisation functions of the Layout type.
//
// Buttons with a width of zero are hidden. A hidden button is never drawn and
// never hit tested.
package layout
