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

// Package doubleclick synthesizes double-click keys from the state of the
// physical mouse buttons, gamepad buttons and gamepad hats.
//
// Detection is a poll and not a push. Every latch must be observed once per
// simulation tick, whether or not an event for that button arrived during the
// tick, because the latch counts idle ticks.
//
// A state change only counts if the previous state was stable for at least
// two ticks. The consequence is that a very fast tap, with the press and
// release inside the same debounce window, does not count towards a
// double-click.
package doubleclick
