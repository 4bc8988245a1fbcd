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

package logger

import "sync/atomic"

// Permission implementations decide whether a log request made on their
// behalf may create an entry.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow always permits logging.
var Allow Permission = allow{}

// Once permits a single log entry. Further requests are refused until Reset()
// is called. The zero value is ready to use and safe for concurrent use.
//
// Useful for conditions that can repeat many times a second, such as a full
// event queue.
type Once struct {
	done atomic.Bool
}

// AllowLogging implements the Permission interface.
func (o *Once) AllowLogging() bool {
	return o.done.CompareAndSwap(false, true)
}

// Reset allows the next log request.
func (o *Once) Reset() {
	o.done.Store(false)
}
