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

package userinput_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/test"
	"github.com/jetsetilly/controlmapper/userinput"
)

// records every call to the HandleInput interface as a string
type recorder struct {
	calls []string
}

func (r *recorder) HandleKey(k keys.Key, down bool) {
	r.calls = append(r.calls, fmt.Sprintf("key %s %v", keys.Name(k), down))
}

func (r *recorder) HandleMouseMotion(player int, dx int, dy int) {
	r.calls = append(r.calls, fmt.Sprintf("mouse %d %d %d", player, dx, dy))
}

func (r *recorder) HandleGamepadAxis(player int, set int, horizontal bool, amount int) {
	r.calls = append(r.calls, fmt.Sprintf("axis %d %d %v %d", player, set, horizontal, amount))
}

func (r *recorder) HandleTouch(ev userinput.EventTouch) {
	r.calls = append(r.calls, fmt.Sprintf("touch %d %s", ev.Finger, ev.Kind))
}

func (r *recorder) expect(t *testing.T, calls ...string) {
	t.Helper()
	test.DemandEquality(t, len(r.calls), len(calls))
	for i := range calls {
		test.ExpectEquality(t, r.calls[i], calls[i])
	}
	r.calls = r.calls[:0]
}

func TestHandleUserInput(t *testing.T) {
	var r recorder

	test.ExpectFailure(t, userinput.HandleUserInput(userinput.EventKeyboard{Key: 'w', Down: true}, &r))
	r.expect(t, "key w true")

	// key repeat is ignored
	userinput.HandleUserInput(userinput.EventKeyboard{Key: 'w', Down: true, Repeat: true}, &r)
	r.expect(t)

	// keyboard events must be for keyboard or remote keys
	userinput.HandleUserInput(userinput.EventKeyboard{Key: keys.Joy1, Down: true}, &r)
	userinput.HandleUserInput(userinput.EventKeyboard{Key: keys.RemoteBack, Down: true}, &r)
	r.expect(t, fmt.Sprintf("key %s true", keys.Name(keys.RemoteBack)))

	userinput.HandleUserInput(userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true}, &r)
	userinput.HandleUserInput(userinput.EventMouseButton{Player: 1, Button: userinput.MouseButtonLeft}, &r)
	r.expect(t,
		fmt.Sprintf("key %s true", keys.Name(keys.Mouse1+1)),
		fmt.Sprintf("key %s false", keys.Name(keys.P2Mouse1)),
	)

	userinput.HandleUserInput(userinput.EventMouseWheel{Delta: -1}, &r)
	userinput.HandleUserInput(userinput.EventMouseWheel{Player: 1, Delta: 2}, &r)
	userinput.HandleUserInput(userinput.EventMouseWheel{}, &r)
	r.expect(t,
		fmt.Sprintf("key %s true", keys.Name(keys.MouseWheelDown)),
		fmt.Sprintf("key %s true", keys.Name(keys.P2MouseWheelUp)),
	)

	userinput.HandleUserInput(userinput.EventGamepadButton{Button: 5, Down: true}, &r)
	userinput.HandleUserInput(userinput.EventGamepadButton{Button: keys.JoyButtons, Down: true}, &r)
	r.expect(t, "key JOY6 true")

	userinput.HandleUserInput(userinput.EventGamepadHat{Hat: 0, State: userinput.HatUp | userinput.HatLeft}, &r)
	r.expect(t,
		fmt.Sprintf("key %s true", keys.Name(keys.HatDirection(0, 0, keys.HatUp))),
		fmt.Sprintf("key %s false", keys.Name(keys.HatDirection(0, 0, keys.HatDown))),
		fmt.Sprintf("key %s true", keys.Name(keys.HatDirection(0, 0, keys.HatLeft))),
		fmt.Sprintf("key %s false", keys.Name(keys.HatDirection(0, 0, keys.HatRight))),
	)

	userinput.HandleUserInput(userinput.EventGamepadAxis{Player: 1, Set: 2, Horizontal: true, Amount: -300}, &r)
	userinput.HandleUserInput(userinput.EventGamepadAxis{Set: keys.JoyAxisSets}, &r)
	r.expect(t, "axis 1 2 true -300")

	userinput.HandleUserInput(userinput.EventMouseMotion{DX: 3, DY: -4}, &r)
	userinput.HandleUserInput(userinput.EventTouch{Finger: 2, Kind: userinput.TouchMotion}, &r)
	r.expect(t, "mouse 0 3 -4", "touch 2 motion")

	test.ExpectSuccess(t, userinput.HandleUserInput(userinput.EventQuit{}, &r))
	r.expect(t)
}

func TestQueue(t *testing.T) {
	q := userinput.NewQueue(3)

	test.ExpectSuccess(t, q.Push(userinput.EventKeyboard{Key: 'a', Down: true}))
	test.ExpectSuccess(t, q.Push(userinput.EventKeyboard{Key: 'b', Down: true}))
	test.ExpectSuccess(t, q.Push(userinput.EventKeyboard{Key: 'a'}))

	// the queue is full. the event is dropped rather than blocking
	test.ExpectFailure(t, q.Push(userinput.EventQuit{}))
	test.ExpectEquality(t, q.Len(), 3)

	var r recorder
	n := q.Drain(func(ev userinput.Event) {
		userinput.HandleUserInput(ev, &r)
	})
	test.ExpectEquality(t, n, 3)
	r.expect(t, "key a true", "key b true", "key a false")

	// draining an empty queue does not block
	test.ExpectEquality(t, q.Drain(func(userinput.Event) {}), 0)
}

func TestSlots(t *testing.T) {
	s := userinput.NewSlots[int64](2)

	test.ExpectEquality(t, s.Slot(1000), 0)
	test.ExpectEquality(t, s.Slot(2000), 1)
	test.ExpectEquality(t, s.Slot(1000), 0)

	// no more finger numbers
	test.ExpectEquality(t, s.Slot(3000), -1)
	test.ExpectEquality(t, s.InUse(), 2)

	// the lowest free finger number is reused
	test.ExpectEquality(t, s.Release(1000), 0)
	test.ExpectEquality(t, s.Find(1000), -1)
	test.ExpectEquality(t, s.Slot(3000), 0)
	test.ExpectEquality(t, s.Find(2000), 1)

	test.ExpectEquality(t, s.Release(1000), -1)
}
