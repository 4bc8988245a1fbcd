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

package ebiteninput_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/controlmapper/input"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/platform/ebiteninput"
	"github.com/jetsetilly/controlmapper/test"
	"github.com/jetsetilly/controlmapper/userinput"
)

func TestKeyFor(t *testing.T) {
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyA), keys.Key('a'))
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyZ), keys.Key('z'))
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyDigit1), keys.Key('1'))
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeySpace), keys.Space)
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyEscape), keys.Escape)
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyNumpadEnter), keys.Enter)
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyControlRight), keys.RCtrl)
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyF12), keys.F12)
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyBackquote), keys.Console)
	test.ExpectEquality(t, ebiteninput.KeyFor(ebiten.KeyF24), keys.Null)
}

func TestHatState(t *testing.T) {
	test.ExpectEquality(t, ebiteninput.HatState(false, false, false, false), userinput.HatCentre)
	test.ExpectEquality(t, ebiteninput.HatState(true, false, false, false), userinput.HatUp)
	test.ExpectEquality(t, ebiteninput.HatState(true, true, false, false), userinput.HatUp|userinput.HatRight)
	test.ExpectEquality(t, ebiteninput.HatState(false, false, true, true), userinput.HatDown|userinput.HatLeft)
}

func TestAxisAmount(t *testing.T) {
	test.ExpectEquality(t, ebiteninput.AxisAmount(0), 0)
	test.ExpectEquality(t, ebiteninput.AxisAmount(1.0), 1024)
	test.ExpectEquality(t, ebiteninput.AxisAmount(-1.0), -1024)
	test.ExpectEquality(t, ebiteninput.AxisAmount(0.5), 512)
}

func TestGameLayout(t *testing.T) {
	scr := &ebiteninput.Screen{Width: 320, Height: 200}
	g := ebiteninput.NewGame(input.NewSubsystem(scr, nil, nil), scr)

	w, h := g.Layout(640, 400)
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 400)

	w, h = scr.Screen()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 400)
}
