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

// Package input is the input subsystem. It owns every piece of input state:
// the binding table, the double-click latches, the touch finger pool, the
// touch layout engine and the array of keys that are currently down.
//
// Events are pushed onto the Queue by a platform adapter, from any goroutine.
// Once per simulation tick, the Tick() function drains the queue in the order
// the events arrived and then polls the double-click latches. Game logic then
// asks for the state of a control with ControlDown():
//
//	s := input.NewSubsystem(ctx, prefs, actions)
//
//	for {
//		if s.Tick(1) {
//			break
//		}
//		if s.ControlDown(bindings.PlayerOne, controls.Jump) {
//			...
//		}
//	}
//
// A control is down if any key bound to it is down, if a double-click key
// bound to it has fired this tick, or if a finger is holding its touch
// button.
//
// With the exception of the Queue, the Subsystem is not safe to use from
// more than one goroutine.
package input
