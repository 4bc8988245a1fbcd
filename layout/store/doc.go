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

// Package store keeps user touch layouts on disk.
//
// Every layout is written to its own YAML file in the store directory. The
// filename is derived from a UUID and so is unrelated to the name of the
// layout. The list of layouts, mapping names to filenames, is kept in a TOML
// file in the same directory:
//
//	[[layouts]]
//	name = "left handed"
//	file = "0b5dd2a4-5f1a-4a35-9a8b-0e4bb2b4f5c6.yaml"
//
// The list holds at most MaxLayouts entries. Entries beyond that number are
// dropped when the list is read.
//
// Watch() reports layout files that have been changed by something other
// than the Store. The reloaded layouts are delivered on a channel so that
// they can be consumed on the goroutine that owns the layout engine.
package store
