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

// Package modalflag wraps the flag package of the standard library with
// support for program modes. Each mode has its own set of flags and can have
// sub-modes of its own.
//
// The arguments are given to NewArgs() and then consumed by successive calls
// to Parse(). The controlmapper command uses it like this:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("BINDINGS", "LAYOUT")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "LAYOUT":
//		md.NewMode()
//		width := md.AddInt("width", 640, "screen width")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected if the first
// argument after the flags is not the name of a sub-mode. Sub-mode names are
// not case sensitive.
//
// Help is printed to the Output writer when the -help flag is given. The help
// for a mode lists its flags, its sub-modes and any text given to
// AdditionalHelp().
package modalflag
