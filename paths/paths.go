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

package paths

import (
	"os"
	"path/filepath"
)

// directory name used for all resources
const baseResourcePath = ".controlmapper"

// EnvHome names the environment variable that can be used to override the
// resource directory.
const EnvHome = "CONTROLMAPPER_HOME"

// ResourcePath joins the resource elements onto the resource directory.
// Empty elements are ignored.
func ResourcePath(resource ...string) string {
	return filepath.Join(append([]string{basePath()}, resource...)...)
}

// the resource directory is, in order of preference: the value of EnvHome;
// baseResourcePath in the current directory if it exists; baseResourcePath
// (without the leading dot) in the user's config directory.
//
// none of these paths are guaranteed to exist.
func basePath() string {
	if p, ok := os.LookupEnv(EnvHome); ok && p != "" {
		return p
	}
	if fi, err := os.Stat(baseResourcePath); err == nil && fi.IsDir() {
		return baseResourcePath
	}
	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}
