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

// Package statsview runs a local HTTP server offering runtime statistics of
// the controlmapper process. The server is only available when the program
// is built with the statsview build tag:
//
//	go build -tags statsview .
//
// After launch, graphs of the runtime statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// The graphs are useful for watching the allocations of the input subsystem
// while fingers are being moved over the touch layout.
package statsview

// Address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"
