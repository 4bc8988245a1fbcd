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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// separator between the parts of an error chain in the error message
const sep = ": "

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is formatted in the same
// way as the fmt.Errorf() format string but it is also the identity of the
// error, used by the Is() and Has() functions. Patterns should therefore be
// declared as constants.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent parts of the message that
// are identical are collapsed into one, so wrapping an error with a pattern
// that repeats the package prefix does not stutter.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), sep)
	n := parts[:1]
	for _, p := range parts[1:] {
		if p != n[len(n)-1] {
			n = append(n, p)
		}
	}
	return strings.Join(n, sep)
}

// Unwrap returns the first value that is an error.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// outermost curated error in the chain. uncurated wrappers are looked through
func outermost(err error) (curated, bool) {
	var c curated
	if err == nil {
		return c, false
	}
	return c, errors.As(err, &c)
}

// IsAny returns true if there is a curated error in the chain.
func IsAny(err error) bool {
	_, ok := outermost(err)
	return ok
}

// Is returns true if the outermost curated error in the chain was created
// with the pattern.
func Is(err error, pattern string) bool {
	c, ok := outermost(err)
	return ok && c.pattern == pattern
}

// Has returns true if any curated error in the chain was created with the
// pattern.
func Has(err error, pattern string) bool {
	c, ok := outermost(err)
	if !ok {
		return false
	}
	if c.pattern == pattern {
		return true
	}
	for _, v := range c.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}
	return false
}

// Pattern returns the pattern of the outermost curated error in the chain.
// The empty string is returned if there is no curated error.
func Pattern(err error) string {
	c, _ := outermost(err)
	return c.pattern
}
