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

package doubleclick

// the number of idle ticks that must pass before a state change is counted
const debounce = 1

// the number of idle ticks after which a pending double-click is abandoned
const timeout = 20

// Latch is the persistent double-click state for a single physical button.
// The zero value is ready to use.
type Latch struct {
	state  bool
	idle   int
	clicks int
}

// Observe the current state of the physical button. Returns true on the tick
// that completes a double-click.
func (l *Latch) Observe(down bool) bool {
	if down != l.state && l.idle > debounce {
		l.state = down
		if down {
			l.clicks++
		}
		if l.clicks == 2 {
			l.clicks = 0
			return true
		}
		l.idle = 0
	} else {
		l.idle++
		if l.idle > timeout {
			l.clicks = 0
			l.state = false
		}
	}
	return false
}

// Clicks returns the number of presses counted towards the pending
// double-click.
func (l *Latch) Clicks() int {
	return l.clicks
}

// Reset the latch to the zero state.
func (l *Latch) Reset() {
	*l = Latch{}
}
