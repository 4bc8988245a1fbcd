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

// Package test contains the helper functions used by the tests of every
// package in the module.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test. Every function accepts optional tags that
// are added to the failure message, which is useful in table driven tests:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, keys.Parse(c.name), c.key, i, c.name)
//	}
//
// ExpectSuccess() and ExpectFailure() understand the success values of a small
// number of types. A nil value is a success because a nil error is a
// success.
//
// The CompareWriter type captures the output of functions that write to an
// io.Writer.
package test
