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

// Package sdlinput translates SDL events into userinput events.
//
// The Translator can be used on its own with an existing SDL event loop. The
// Platform type opens a window and a joystick for each local player, and
// pushes the translated events onto a userinput.Queue every time Service() is
// called.
//
// As with all SDL code, functions in this package that call into SDL must be
// called from the main thread.
package sdlinput
