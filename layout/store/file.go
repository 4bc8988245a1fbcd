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

package store

import (
	"bytes"

	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/logger"
	"gopkg.in/yaml.v3"
)

// the X and Y fields are fractions of the base resolution. W and H are in
// base pixels
type buttonFile struct {
	Control   string  `yaml:"control"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	W         float64 `yaml:"w"`
	H         float64 `yaml:"h"`
	DontScale bool    `yaml:"dontscale,omitempty"`
}

type layoutFile struct {
	Name       string       `yaml:"name"`
	UseGrid    bool         `yaml:"usegrid"`
	Widescreen bool         `yaml:"widescreen"`
	Buttons    []buttonFile `yaml:"buttons"`
}

// Marshal returns the layout in the layout file format. The d-pad buttons
// are not included because they are positioned by the joystick.
func Marshal(l *layout.Layout) ([]byte, error) {
	lf := layoutFile{
		Name:       l.Name,
		UseGrid:    l.UseGrid,
		Widescreen: l.Widescreen,
	}

	for _, c := range l.Visible() {
		if c.IsDPad() {
			continue
		}
		btn := l.Button(c)
		lf.Buttons = append(lf.Buttons, buttonFile{
			Control:   c.Name(),
			X:         layout.ToFloat(btn.X),
			Y:         layout.ToFloat(btn.Y),
			W:         layout.ToFloat(btn.W),
			H:         layout.ToFloat(btn.H),
			DontScale: btn.DontScale,
		})
	}

	data, err := yaml.Marshal(&lf)
	if err != nil {
		return nil, curated.Errorf(StoreError, err)
	}
	return data, nil
}

// Unmarshal creates a layout from data in the layout file format. Buttons for
// unknown controls are ignored.
func Unmarshal(data []byte) (*layout.Layout, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, curated.Errorf(Malformed, "empty file")
	}

	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, curated.Errorf(Malformed, err)
	}

	l := layout.NewLayout(lf.Name)
	l.UseGrid = lf.UseGrid
	l.Widescreen = lf.Widescreen

	for _, b := range lf.Buttons {
		c, ok := controls.Lookup(b.Control)
		if !ok || c == controls.Null {
			logger.Logf(logger.Allow, "store", "layout '%s': unknown control '%s'", lf.Name, b.Control)
			continue
		}
		if c.IsDPad() {
			continue
		}
		l.Buttons[c].Rect = layout.Rect{
			X: layout.F(b.X),
			Y: layout.F(b.Y),
			W: layout.F(b.W),
			H: layout.F(b.H),
		}
		l.Buttons[c].DontScale = b.DontScale
		l.Buttons[c].Hidden = b.W <= 0 || b.H <= 0
	}

	if !l.Button(controls.Joystick).Hidden {
		l.UpdateJoystickBase()
	}

	return l, nil
}
