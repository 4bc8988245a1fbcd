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

// Slots maps the identifiers that a platform gives to touching fingers onto
// the range of finger numbers used by EventTouch. The zero value is not
// usable. Use NewSlots() instead.
type Slots[T comparable] struct {
	ids  []T
	used []bool
}

// NewSlots is the preferred method of initialisation for the Slots type.
func NewSlots[T comparable](size int) *Slots[T] {
	return &Slots[T]{
		ids:  make([]T, size),
		used: make([]bool, size),
	}
}

// Find returns the finger number of the identifier. Returns -1 if the
// identifier has no finger number.
func (s *Slots[T]) Find(id T) int {
	for i := range s.ids {
		if s.used[i] && s.ids[i] == id {
			return i
		}
	}
	return -1
}

// Slot returns the finger number of the identifier, allocating the lowest
// free finger number if necessary. Returns -1 if every finger number is in
// use.
func (s *Slots[T]) Slot(id T) int {
	if i := s.Find(id); i >= 0 {
		return i
	}
	for i := range s.ids {
		if !s.used[i] {
			s.used[i] = true
			s.ids[i] = id
			return i
		}
	}
	return -1
}

// Release the finger number of the identifier so that it can be reused.
// Returns the finger number that was released or -1 if the identifier had no
// finger number.
func (s *Slots[T]) Release(id T) int {
	i := s.Find(id)
	if i >= 0 {
		s.used[i] = false
		var zero T
		s.ids[i] = zero
	}
	return i
}

// InUse returns the number of allocated finger numbers.
func (s *Slots[T]) InUse() int {
	var n int
	for _, u := range s.used {
		if u {
			n++
		}
	}
	return n
}
