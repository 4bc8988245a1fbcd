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

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/controlmapper/paths"
	"github.com/jetsetilly/controlmapper/test"
)

func TestPaths(t *testing.T) {
	t.Setenv(paths.EnvHome, "")
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".controlmapper", 0700))

	test.ExpectEquality(t, paths.ResourcePath("layouts", "foo.yaml"), ".controlmapper/layouts/foo.yaml")
	test.ExpectEquality(t, paths.ResourcePath("layouts", ""), ".controlmapper/layouts")
	test.ExpectEquality(t, paths.ResourcePath("", "foo"), ".controlmapper/foo")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".controlmapper")
}

func TestEnvHome(t *testing.T) {
	t.Setenv(paths.EnvHome, "/tmp/mapper")
	test.ExpectEquality(t, paths.ResourcePath("layouts", "foo.yaml"), "/tmp/mapper/layouts/foo.yaml")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "bindings")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_bindings_"))

	fn = paths.UniqueFilename("memviz", " ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "memviz_2"))
}
