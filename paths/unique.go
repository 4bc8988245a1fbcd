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
	"strings"
	"time"
)

// layout of the timestamp part of a unique filename
const uniqueTimestamp = "20060102_150405"

// UniqueFilename returns a filename that will not collide with an earlier
// result, provided the clock is working and calls are at least a second
// apart. The existence of the file is not checked.
//
// The filename has the form prepend_label_YYYYMMDD_HHMMSS, or
// prepend_YYYYMMDD_HHMMSS if the label is blank. Used for memviz dumps and
// for layouts saved from the command line.
func UniqueFilename(prepend string, label string) string {
	parts := []string{prepend}
	if l := strings.TrimSpace(label); l != "" {
		parts = append(parts, l)
	}
	parts = append(parts, time.Now().Format(uniqueTimestamp))
	return strings.Join(parts, "_")
}
