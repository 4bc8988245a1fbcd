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
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jetsetilly/controlmapper/bindings"
	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/input"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/layout"
)

// the key that starts and stops the customisation of the touch layout
const customizeKey = keys.F2

var (
	colButton   = color.RGBA{R: 0x40, G: 0x40, B: 0x60, A: 0xff}
	colPressed  = color.RGBA{R: 0x80, G: 0x80, B: 0xc0, A: 0xff}
	colSelected = color.RGBA{R: 0xc0, G: 0x80, B: 0x40, A: 0xff}
	colNav      = color.RGBA{R: 0x30, G: 0x60, B: 0x30, A: 0xff}
	colJoystick = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
)

// Screen is an input.Context for a window that accepts input at all times.
// The size is updated by the ebiten Layout() function.
type Screen struct {
	Width  int
	Height int
	State  input.Flags
}

func (scr *Screen) GameInputAllowed() bool {
	return true
}

func (scr *Screen) Intermission() bool {
	return false
}

func (scr *Screen) PromptHidesHUD(_ int) bool {
	return false
}

func (scr *Screen) Screen() (int, int) {
	return scr.Width, scr.Height
}

func (scr *Screen) Flags() input.Flags {
	return scr.State
}

// Game implements the ebiten.Game interface. It shows the touch layout and
// the controls that are currently active.
type Game struct {
	Input  *input.Subsystem
	Screen *Screen
	poller *Poller

	customizeHeld bool
}

// NewGame is the preferred method of initialisation for the Game type. The
// Subsystem should have been created with the Screen as its context.
func NewGame(subsystem *input.Subsystem, scr *Screen) *Game {
	return &Game{
		Input:  subsystem,
		Screen: scr,
		poller: NewPoller(),
	}
}

// Update implements the ebiten.Game interface.
func (g *Game) Update() error {
	g.poller.Poll(g.Input.Queue())
	if g.Input.Tick(1) {
		return ebiten.Termination
	}

	held := g.Input.KeyDown(customizeKey)
	if held && !g.customizeHeld {
		if _, ok := g.Input.Customizer(); ok {
			g.Input.StopCustomizing()
		} else {
			g.Input.StartCustomizing(g.Input.Layout(), nil)
		}
	}
	g.customizeHeld = held

	return nil
}

func fillRect(dst *ebiten.Image, r layout.PixelRect, col color.Color) {
	sub := dst.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	if img, ok := sub.(*ebiten.Image); ok {
		img.Fill(col)
	}
}

// Draw implements the ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	l := g.Input.Layout()

	cst, customizing := g.Input.Customizer()
	selected := controls.Null
	if customizing {
		l = cst.Layout()
		if c, ok := cst.Selected(); ok {
			selected = c
		}
	}

	if l != nil {
		if !l.Buttons[controls.Joystick].Hidden {
			fillRect(screen, l.JoystickRect(), colJoystick)
		}
		for _, c := range l.Visible() {
			r := l.ScreenRect(c)
			col := colButton
			switch {
			case customizing && c == selected:
				col = colSelected
			case g.Input.ControlDown(bindings.PlayerOne, c):
				col = colPressed
			}
			fillRect(screen, r, col)
			ebitenutil.DebugPrintAt(screen, l.Buttons[c].ShortName, r.X+2, r.Y+2)
		}
	}

	if nav := g.Input.Navigation(); nav != nil {
		for i, b := range nav.Buttons {
			if b.Hidden {
				continue
			}
			r := nav.ScreenRect(i)
			fillRect(screen, r, colNav)
			ebitenutil.DebugPrintAt(screen, b.Name, r.X+2, r.Y+2)
		}
	}

	var active []string
	for p := 0; p < bindings.NumPlayers; p++ {
		for _, c := range g.Input.Controls(p) {
			active = append(active, fmt.Sprintf("P%d:%s", p+1, c))
		}
	}
	look := g.Input.Look(bindings.PlayerOne)

	var status strings.Builder
	if customizing {
		status.WriteString("customizing (F2 to finish)\n")
	}
	fmt.Fprintf(&status, "look: %d %d %d\n", look.X, look.Y, look.MLookY)
	fmt.Fprintf(&status, "controls: %s", strings.Join(active, " "))
	ebitenutil.DebugPrintAt(screen, status.String(), 4, g.Screen.Height/2)
}

// Layout implements the ebiten.Game interface.
func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	g.Screen.Width = outsideWidth
	g.Screen.Height = outsideHeight
	return outsideWidth, outsideHeight
}
