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

// Package userinput handles input from real hardware that the user of the
// program is using to control the game.
//
// It can be thought of as a translation layer between the platform
// implementation and the input package. As such, this package attempts to
// hide details of the platform implementation while protecting the input
// package from complication.
//
// Platform adapters create Event values and push them onto a Queue. The
// Queue is drained once per tick and every Event is passed to
// HandleUserInput(), which forwards it to an implementation of the
// HandleInput interface. Buttons of every device are forwarded as keys in
// the key space of the keys package.
//
// The platform used during development was SDL and so there will be a bias
// towards that system.
package userinput
