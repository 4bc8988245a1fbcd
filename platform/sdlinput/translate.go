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

package sdlinput

import (
	"sync"

	"github.com/jetsetilly/controlmapper/bindings"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/logger"
	"github.com/jetsetilly/controlmapper/touch"
	"github.com/jetsetilly/controlmapper/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL axis values are in the range -32768 to 32767. they are divided by
// this value to bring them into the range used by the game
const axisDivisor = 32

// Translator converts SDL events into userinput events.
type Translator struct {
	// the screen size can be read from outside the main thread
	crit   sync.Mutex
	width  int
	height int

	fingers *userinput.Slots[sdl.FingerID]

	// joysticks are given to players in the order that they are first seen
	players []sdl.JoystickID
}

// NewTranslator is the preferred method of initialisation for the Translator
// type. The screen size is used to convert the normalised positions of touch
// events into pixels.
func NewTranslator(width int, height int) *Translator {
	return &Translator{
		width:   width,
		height:  height,
		fingers: userinput.NewSlots[sdl.FingerID](touch.NumFingers),
	}
}

// SetScreen changes the screen size.
func (tr *Translator) SetScreen(width int, height int) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	tr.width = width
	tr.height = height
}

// Screen returns the screen size.
func (tr *Translator) Screen() (int, int) {
	tr.crit.Lock()
	defer tr.crit.Unlock()
	return tr.width, tr.height
}

// returns the player for the joystick. returns false if both players
// already have a joystick
func (tr *Translator) player(id sdl.JoystickID) (int, bool) {
	for p, j := range tr.players {
		if j == id {
			return p, true
		}
	}
	if len(tr.players) >= bindings.NumPlayers {
		return 0, false
	}
	tr.players = append(tr.players, id)
	logger.Logf(logger.Allow, "sdlinput", "joystick %d is player %d", id, len(tr.players))
	return len(tr.players) - 1, true
}

func mouseButton(b uint8) (userinput.MouseButton, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle, true
	case sdl.BUTTON_X1:
		return userinput.MouseButtonX1, true
	case sdl.BUTTON_X2:
		return userinput.MouseButtonX2, true
	}
	return 0, false
}

func (tr *Translator) touch(ev *sdl.TouchFingerEvent) userinput.Event {
	w, h := tr.Screen()
	out := userinput.EventTouch{
		X:        int(ev.X * float32(w)),
		Y:        int(ev.Y * float32(h)),
		DX:       int(ev.DX * float32(w)),
		DY:       int(ev.DY * float32(h)),
		Pressure: ev.Pressure,
	}

	switch ev.Type {
	case sdl.FINGERDOWN:
		out.Kind = userinput.TouchDown
		out.Finger = tr.fingers.Slot(ev.FingerID)
	case sdl.FINGERMOTION:
		out.Kind = userinput.TouchMotion
		out.Finger = tr.fingers.Find(ev.FingerID)
	case sdl.FINGERUP:
		out.Kind = userinput.TouchUp
		out.Finger = tr.fingers.Release(ev.FingerID)
	default:
		return nil
	}

	if out.Finger < 0 {
		logger.Logf(logger.Allow, "sdlinput", "no finger number for touch %d", ev.FingerID)
		return nil
	}

	return out
}

// Translate the SDL event. Returns nil if the event has no equivalent.
func (tr *Translator) Translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			tr.SetScreen(int(ev.Data1), int(ev.Data2))
		}

	case *sdl.KeyboardEvent:
		k := KeyFor(ev.Keysym.Sym)
		if k == keys.Null {
			return nil
		}
		return userinput.EventKeyboard{
			Key:    k,
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.MouseMotionEvent:
		// mouse events generated by touches are ignored because the touch
		// events are handled separately
		if ev.Which == sdl.TOUCH_MOUSEID {
			return nil
		}
		return userinput.EventMouseMotion{DX: int(ev.XRel), DY: int(ev.YRel)}

	case *sdl.MouseButtonEvent:
		if ev.Which == sdl.TOUCH_MOUSEID {
			return nil
		}
		b, ok := mouseButton(ev.Button)
		if !ok {
			return nil
		}
		return userinput.EventMouseButton{
			Button: b,
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
		}

	case *sdl.MouseWheelEvent:
		switch {
		case ev.Y > 0:
			return userinput.EventMouseWheel{Delta: 1}
		case ev.Y < 0:
			return userinput.EventMouseWheel{Delta: -1}
		}

	case *sdl.JoyButtonEvent:
		p, ok := tr.player(ev.Which)
		if !ok {
			return nil
		}
		return userinput.EventGamepadButton{
			Player: p,
			Button: int(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}

	case *sdl.JoyHatEvent:
		p, ok := tr.player(ev.Which)
		if !ok {
			return nil
		}
		return userinput.EventGamepadHat{
			Player: p,
			Hat:    int(ev.Hat),
			State:  userinput.HatState(ev.Value),
		}

	case *sdl.JoyAxisEvent:
		p, ok := tr.player(ev.Which)
		if !ok {
			return nil
		}
		return userinput.EventGamepadAxis{
			Player:     p,
			Set:        int(ev.Axis) / 2,
			Horizontal: ev.Axis%2 == 0,
			Amount:     int(ev.Value) / axisDivisor,
		}

	case *sdl.TouchFingerEvent:
		return tr.touch(ev)
	}

	return nil
}
