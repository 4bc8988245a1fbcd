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

package doubleclick_test

import (
	"testing"

	"github.com/jetsetilly/controlmapper/doubleclick"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/test"
)

// hold returns a sequence of n ticks of the same button state
func hold(down bool, n int) []bool {
	s := make([]bool, n)
	for i := range s {
		s[i] = down
	}
	return s
}

// feed the sequence to the latch and return the ticks on which a pulse was
// emitted
func feed(l *doubleclick.Latch, seq ...[]bool) []int {
	var pulses []int
	tick := 0
	for _, s := range seq {
		for _, down := range s {
			if l.Observe(down) {
				pulses = append(pulses, tick)
			}
			tick++
		}
	}
	return pulses
}

func TestDoubleClick(t *testing.T) {
	var l doubleclick.Latch

	// idle, press, release, press, release. each state is held for three
	// ticks which satisfies the debounce requirement
	pulses := feed(&l,
		hold(false, 3),
		hold(true, 3),
		hold(false, 3),
		hold(true, 3),
		hold(false, 3),
	)

	// exactly one pulse, on the tick of the second press
	test.DemandEquality(t, len(pulses), 1)
	test.ExpectEquality(t, pulses[0], 9)
	test.ExpectEquality(t, l.Clicks(), 0)
}

func TestTimeout(t *testing.T) {
	var l doubleclick.Latch

	pulses := feed(&l,
		hold(false, 3),
		hold(true, 3),
		hold(false, 3),
	)
	test.ExpectEquality(t, len(pulses), 0)
	test.ExpectEquality(t, l.Clicks(), 1)

	// waiting beyond the timeout abandons the pending double-click
	pulses = feed(&l, hold(false, 25))
	test.ExpectEquality(t, len(pulses), 0)
	test.ExpectEquality(t, l.Clicks(), 0)

	// a second press is now the first click of a new sequence
	pulses = feed(&l, hold(true, 3), hold(false, 3))
	test.ExpectEquality(t, len(pulses), 0)
	test.ExpectEquality(t, l.Clicks(), 1)
}

func TestFastTapSwallowed(t *testing.T) {
	var l doubleclick.Latch

	// first click is counted normally
	feed(&l, hold(false, 3), hold(true, 3))
	test.ExpectEquality(t, l.Clicks(), 1)

	// a release and press that are only one tick apart. the release is
	// counted but the press arrives inside the debounce window
	pulses := feed(&l, hold(false, 1), hold(true, 1))
	test.ExpectEquality(t, len(pulses), 0)
	test.ExpectEquality(t, l.Clicks(), 1)
}

func TestDetectorPoll(t *testing.T) {
	d := doubleclick.NewDetector()
	down := make([]bool, keys.NumInputs)

	btn := keys.HatDirection(1, 0, keys.HatUp)
	dbl := keys.DoubleOf(btn)

	pulse := 0
	run := func(state bool, n int) {
		for range n {
			down[btn] = state
			d.Poll(down)
			if down[dbl] {
				pulse++
			}
		}
	}

	run(false, 3)
	run(true, 3)
	run(false, 3)
	run(true, 3)
	test.ExpectEquality(t, pulse, 1)

	// the double-click key is only down for a single tick
	test.ExpectFailure(t, down[dbl])

	// latch is reachable through the physical key
	test.ExpectInequality(t, d.Latch(btn), nil)
	test.ExpectEquality(t, d.Latch('a'), nil)

	d.Reset()
	test.ExpectEquality(t, d.Latch(btn).Clicks(), 0)
}
