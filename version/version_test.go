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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/controlmapper/test"
)

func TestFromBuildInfo(t *testing.T) {
	vcs, rev := fromBuildInfo(nil)
	test.ExpectEquality(t, vcs, false)
	test.ExpectEquality(t, rev, "no revision information")

	vcs, rev = fromBuildInfo([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
	})
	test.ExpectEquality(t, vcs, true)
	test.ExpectEquality(t, rev, "abc123")

	_, rev = fromBuildInfo([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, rev, "abc123+dirty")
}

func TestVersion(t *testing.T) {
	ver, _, release := Version()
	test.ExpectInequality(t, ver, "")
	test.ExpectEquality(t, release, false)
}
