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

// Package assert contains checks for conditions that should never happen in
// a correct program. A failed check is reported to the caller, which decides
// whether to log it or to panic.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only be used for debugging and testing.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner remembers the first goroutine to call Check(). The zero value is
// ready to use.
type Owner struct {
	id atomic.Uint64
}

// Check returns false if the calling goroutine is not the goroutine that
// first called Check().
func (o *Owner) Check() bool {
	id := GoroutineID()
	if o.id.CompareAndSwap(0, id) {
		return true
	}
	return o.id.Load() == id
}

// Release forgets the owning goroutine. The next call to Check() sets a new
// owner.
func (o *Owner) Release() {
	o.id.Store(0)
}
