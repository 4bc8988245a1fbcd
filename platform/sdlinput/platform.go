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
	"fmt"
	"io"
	"runtime"

	"github.com/jetsetilly/controlmapper/logger"
	"github.com/jetsetilly/controlmapper/userinput"
	"github.com/jetsetilly/controlmapper/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is an SDL window and the joysticks attached to the system. Events
// from the window and the joysticks are translated and pushed to a queue.
type Platform struct {
	window    *sdl.Window
	joysticks []*sdl.Joystick
	tr        *Translator
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. It must be called from the main thread.
func NewPlatform(width int, height int) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{
		tr: NewTranslator(width, height),
	}

	ver, _, _ := version.Version()
	plt.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, ver),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		plt.openJoystick(i)
	}

	if len(plt.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}

	return plt, nil
}

func (plt *Platform) openJoystick(i int) {
	joy := sdl.JoystickOpen(i)
	if joy == nil || !joy.Attached() {
		return
	}
	logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
	plt.joysticks = append(plt.joysticks, joy)
}

// Translator returns the Translator used by the platform.
func (plt *Platform) Translator() *Translator {
	return plt.tr
}

// Service polls for SDL events and pushes them to the queue. Returns false if
// the queue is full and events have been dropped.
func (plt *Platform) Service(q *userinput.Queue) bool {
	ok := true
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if ev, isAdded := ev.(*sdl.JoyDeviceAddedEvent); isAdded {
			plt.openJoystick(int(ev.Which))
			continue
		}

		out := plt.tr.Translate(ev)
		if out == nil {
			continue
		}
		if !q.Push(out) {
			ok = false
		}
	}
	return ok
}

// Destroy closes the joysticks and the window. Errors are written to the
// io.Writer.
func (plt *Platform) Destroy(output io.Writer) {
	for _, joy := range plt.joysticks {
		joy.Close()
	}
	plt.joysticks = plt.joysticks[:0]

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil && output != nil {
			output.Write([]byte(err.Error()))
		}
		plt.window = nil
	}

	sdl.Quit()
}
