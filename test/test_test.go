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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/controlmapper/test"
)

func TestSuccessValues(t *testing.T) {
	var err error
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectSuccess(t, 0)
	test.DemandSuccess(t, 1)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("unknown control"))
	test.ExpectFailure(t, -1)
	test.DemandFailure(t, false)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, "jump", "ju"+"mp", "tag")
	test.DemandEquality(t, true, !false)

	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, -10.0, -10.5, 0.1)
	test.ExpectWithin(t, 0.3125, 0.3130, 0.001)
	test.ExpectWithin(t, 100, 98, 2)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("setcontrol "))
	w.Write([]byte("\"jump\""))
	test.ExpectSuccess(t, w.Compare("setcontrol \"jump\""))
	test.ExpectEquality(t, w.String(), "setcontrol \"jump\"")
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
