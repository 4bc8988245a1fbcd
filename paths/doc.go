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

// Package paths builds paths to controlmapper resources: the preferences
// file, the layout store and files written from the command line.
//
//	d := paths.ResourcePath("layouts")
//
// The resource directory is chosen in this order. The CONTROLMAPPER_HOME
// environment variable, if it is set. The ".controlmapper" directory, if it
// exists in the current directory. Otherwise "controlmapper" in the directory
// returned by os.UserConfigDir(), which on Linux gives:
//
//	/home/user/.config/controlmapper/layouts
package paths
