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

// Package version reports the version of the program. The version number is
// set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/controlmapper/version.number=v0.1.0"
//
// Without a number the version is derived from the build information of the
// binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Controlmapper"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the program was built from a
// repository without a version number and "local" if there is no version
// control information at all, as happens with "go run".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// parses the vcs settings of the build information
func fromBuildInfo(settings []debug.BuildSetting) (vcs bool, rev string) {
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev == "" {
		return vcs, "no revision information"
	}
	if modified {
		return vcs, fmt.Sprintf("%s+dirty", rev)
	}
	return vcs, rev
}

func init() {
	var vcs bool
	revision = "no revision information"
	if info, ok := debug.ReadBuildInfo(); ok {
		vcs, revision = fromBuildInfo(info.Settings)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
