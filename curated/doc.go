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

// Package curated creates errors that can be identified by the pattern that
// created them.
//
// Errors are created with Errorf(), which takes a formatting pattern and
// values in the same way as fmt.Errorf(). Patterns are stored as constants by
// the packages that use them:
//
//	const Malformed = "store: malformed file: %v"
//
//	err := curated.Errorf(Malformed, err)
//
// The Is() function checks whether an error was created with the pattern and
// Has() checks whether the pattern occurs anywhere in the chain of wrapped
// errors:
//
//	err := curated.Errorf("input: %v", curated.Errorf(store.Malformed, yamlErr))
//
//	curated.Is(err, store.Malformed)  // false
//	curated.Has(err, store.Malformed) // true
//
// IsAny() returns true if the error was created by the package at all. Errors
// that are not curated are unexpected and are usually a sign of a bug.
//
// The message of a curated error never repeats a part. Parts are separated
// by ": " so wrapping an error with a pattern that begins with the same
// package prefix does not produce "store: store: ..." messages.
package curated
