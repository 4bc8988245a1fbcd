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

package userinput

import (
	"github.com/jetsetilly/controlmapper/logger"
)

// DefaultQueueLen is the number of events a queue created with a size of
// zero can hold.
const DefaultQueueLen = 256

// Queue of events waiting to be handled. Events can be pushed from any
// goroutine. The Queue should only be drained by one goroutine.
type Queue struct {
	events chan Event

	// a dropped event is logged once until the queue has been drained
	dropped logger.Once
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = DefaultQueueLen
	}
	return &Queue{
		events: make(chan Event, size),
	}
}

// Push event onto the queue. The function never blocks. If the queue is
// full the event is dropped and false is returned.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.events <- ev:
	default:
		logger.Logf(&q.dropped, "userinput", "queue full. dropped %T event", ev)
		return false
	}
	return true
}

// Drain calls the function for every event in the queue, in the order in
// which they were pushed. Events pushed while the queue is being drained may
// or may not be included. The function never blocks.
func (q *Queue) Drain(f func(Event)) int {
	var n int
	for {
		select {
		case ev := <-q.events:
			f(ev)
			n++
		default:
			if n > 0 {
				q.dropped.Reset()
			}
			return n
		}
	}
}

// Len returns the number of events waiting in the queue.
func (q *Queue) Len() int {
	return len(q.events)
}
