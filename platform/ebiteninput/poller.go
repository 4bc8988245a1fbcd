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

package ebiteninput

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/controlmapper/bindings"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/logger"
	"github.com/jetsetilly/controlmapper/touch"
	"github.com/jetsetilly/controlmapper/userinput"
)

// ebiten axis values are in the range -1.0 to 1.0. they are multiplied by
// this value to bring them into the range used by the game
const axisScale = 1024

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	button userinput.MouseButton
}{
	{ebiten: ebiten.MouseButtonLeft, button: userinput.MouseButtonLeft},
	{ebiten: ebiten.MouseButtonRight, button: userinput.MouseButtonRight},
	{ebiten: ebiten.MouseButtonMiddle, button: userinput.MouseButtonMiddle},
	{ebiten: ebiten.MouseButton3, button: userinput.MouseButtonX1},
	{ebiten: ebiten.MouseButton4, button: userinput.MouseButtonX2},
}

// the standard gamepad axes in the order of the game's axis sets
var gamepadAxes = [...][2]ebiten.StandardGamepadAxis{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical},
	{ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical},
}

// the buttons of the left cluster are the first hat of the gamepad
func isHatButton(b ebiten.StandardGamepadButton) bool {
	switch b {
	case ebiten.StandardGamepadButtonLeftTop,
		ebiten.StandardGamepadButtonLeftRight,
		ebiten.StandardGamepadButtonLeftBottom,
		ebiten.StandardGamepadButtonLeftLeft:
		return true
	}
	return false
}

// HatState returns the hat state for the four directions.
func HatState(up bool, right bool, down bool, left bool) userinput.HatState {
	var h userinput.HatState
	if up {
		h |= userinput.HatUp
	}
	if right {
		h |= userinput.HatRight
	}
	if down {
		h |= userinput.HatDown
	}
	if left {
		h |= userinput.HatLeft
	}
	return h
}

// AxisAmount converts an ebiten axis value to the range used by the game.
func AxisAmount(v float64) int {
	return int(math.Round(v * axisScale))
}

type gamepad struct {
	id   ebiten.GamepadID
	hat  userinput.HatState
	axes [len(gamepadAxes)][2]int
}

// Poller compares the state of the input devices with the state of the
// previous frame and produces events for the differences.
type Poller struct {
	fingers *userinput.Slots[ebiten.TouchID]

	// cursor position in the previous frame
	cursorX     int
	cursorY     int
	cursorValid bool

	// gamepads are given to players in the order they are first seen
	pads []gamepad

	// reusable slices
	keys    []ebiten.Key
	touches []ebiten.TouchID
	ids     []ebiten.GamepadID
}

// NewPoller is the preferred method of initialisation for the Poller type.
func NewPoller() *Poller {
	return &Poller{
		fingers: userinput.NewSlots[ebiten.TouchID](touch.NumFingers),
	}
}

// Poll the input devices and push events to the queue. Must be called once
// per ebiten Update().
func (p *Poller) Poll(q *userinput.Queue) {
	p.pollKeyboard(q)
	p.pollMouse(q)
	p.pollGamepads(q)
	p.pollTouch(q)
}

func (p *Poller) pollKeyboard(q *userinput.Queue) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if k := KeyFor(k); k != keys.Null {
			q.Push(userinput.EventKeyboard{Key: k, Down: true})
		}
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if k := KeyFor(k); k != keys.Null {
			q.Push(userinput.EventKeyboard{Key: k})
		}
	}
}

func (p *Poller) pollMouse(q *userinput.Queue) {
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			q.Push(userinput.EventMouseButton{Button: b.button, Down: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			q.Push(userinput.EventMouseButton{Button: b.button})
		}
	}

	x, y := ebiten.CursorPosition()
	if p.cursorValid && (x != p.cursorX || y != p.cursorY) {
		q.Push(userinput.EventMouseMotion{DX: x - p.cursorX, DY: y - p.cursorY})
	}
	p.cursorX, p.cursorY = x, y
	p.cursorValid = true

	_, wy := ebiten.Wheel()
	switch {
	case wy > 0:
		q.Push(userinput.EventMouseWheel{Delta: 1})
	case wy < 0:
		q.Push(userinput.EventMouseWheel{Delta: -1})
	}
}

// returns the player for the gamepad. returns -1 if both players already
// have a gamepad
func (p *Poller) player(id ebiten.GamepadID) int {
	for i := range p.pads {
		if p.pads[i].id == id {
			return i
		}
	}
	if len(p.pads) >= bindings.NumPlayers {
		return -1
	}
	p.pads = append(p.pads, gamepad{id: id})
	logger.Logf(logger.Allow, "ebiten", "gamepad: %s is player %d", ebiten.GamepadName(id), len(p.pads))
	return len(p.pads) - 1
}

func (p *Poller) pollGamepads(q *userinput.Queue) {
	p.ids = ebiten.AppendGamepadIDs(p.ids[:0])
	for _, id := range p.ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		player := p.player(id)
		if player < 0 {
			continue
		}
		pad := &p.pads[player]

		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			if isHatButton(b) {
				continue
			}
			if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
				q.Push(userinput.EventGamepadButton{Player: player, Button: int(b), Down: true})
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b) {
				q.Push(userinput.EventGamepadButton{Player: player, Button: int(b)})
			}
		}

		hat := HatState(
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop),
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight),
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom),
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft),
		)
		if hat != pad.hat {
			q.Push(userinput.EventGamepadHat{Player: player, State: hat})
			pad.hat = hat
		}

		for set, axes := range gamepadAxes {
			for i, axis := range axes {
				v := AxisAmount(ebiten.StandardGamepadAxisValue(id, axis))
				if v == pad.axes[set][i] {
					continue
				}
				pad.axes[set][i] = v
				q.Push(userinput.EventGamepadAxis{
					Player:     player,
					Set:        set,
					Horizontal: i == 0,
					Amount:     v,
				})
			}
		}
	}
}

func (p *Poller) pollTouch(q *userinput.Queue) {
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		f := p.fingers.Slot(id)
		if f < 0 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		q.Push(userinput.EventTouch{Finger: f, Kind: userinput.TouchDown, X: x, Y: y, Pressure: 1})
	}

	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		f := p.fingers.Find(id)
		if f < 0 || inpututil.IsTouchJustPressed(id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x == px && y == py {
			continue
		}
		q.Push(userinput.EventTouch{
			Finger: f, Kind: userinput.TouchMotion,
			X: x, Y: y, DX: x - px, DY: y - py,
			Pressure: 1,
		})
	}

	p.touches = inpututil.AppendJustReleasedTouchIDs(p.touches[:0])
	for _, id := range p.touches {
		f := p.fingers.Release(id)
		if f < 0 {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(id)
		q.Push(userinput.EventTouch{Finger: f, Kind: userinput.TouchUp, X: x, Y: y})
	}
}
