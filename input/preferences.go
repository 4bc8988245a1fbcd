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

package input

import (
	"strings"

	"github.com/jetsetilly/controlmapper/bindings"
	"github.com/jetsetilly/controlmapper/curated"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/paths"
	"github.com/jetsetilly/controlmapper/prefs"
	"github.com/jetsetilly/controlmapper/touch"
)

// Sentinal error returned when the controls.perkey preference is set to an
// unrecognised value.
const (
	UnknownPolicy = "input: unknown key policy [%s]"
)

// Preferences for the input subsystem.
type Preferences struct {
	dsk *prefs.Disk

	// touch controls
	MovementStyle prefs.Int
	Preset        prefs.Int
	Layout        prefs.String
	Camera        prefs.Bool
	GUIScale      prefs.Float
	Sens          prefs.Int
	VertSens      prefs.Int
	JoyHorzSens   prefs.Float
	JoyVertSens   prefs.Float

	// mouse sensitivity for each player
	MouseSens  [bindings.NumPlayers]prefs.Int
	MouseYSens [bindings.NumPlayers]prefs.Int

	// binding table
	PerKey      prefs.String
	ExecVersion prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	movementStyle = int(layout.StyleJoystick)
	preset        = int(layout.PresetNormal)
	camera        = true
	guiScale      = 0.75
	sens          = 20
	vertSens      = 20
	joyHorzSens   = 1.0
	joyVertSens   = 1.0
	mouseSens     = 20
	mouseYSens    = 20
	perKey        = "one"
	execVersion   = bindings.CompatVersion
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If the path is empty then the preferences file in the
// resource path is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.MovementStyle.SetRange(int(layout.StyleJoystick), int(layout.StyleDPad))
	p.Preset.SetRange(int(layout.PresetNone), int(layout.NumPresets)-1)
	p.GUIScale.SetRange(0.5, 3.0)
	p.Sens.SetRange(1, 100)
	p.VertSens.SetRange(1, 100)
	p.JoyHorzSens.SetRange(0.01, 4.0)
	p.JoyVertSens.SetRange(0.01, 4.0)
	for i := range bindings.NumPlayers {
		p.MouseSens[i].SetRange(1, 100)
		p.MouseYSens[i].SetRange(1, 100)
	}
	p.Layout.SetMaxLen(64)
	p.PerKey.SetHookPre(func(v prefs.Value) error {
		s := strings.ToLower(strings.TrimSpace(v.(string)))
		if s != "one" && s != "several" {
			return curated.Errorf(UnknownPolicy, v)
		}
		return nil
	})

	p.SetDefaults()

	if pth == "" {
		pth = paths.ResourcePath(prefs.DefaultPrefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("touch.movementstyle", &p.MovementStyle)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.preset", &p.Preset)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.layout", &p.Layout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.camera", &p.Camera)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.guiscale", &p.GUIScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.sens", &p.Sens)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.vertsens", &p.VertSens)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.joyhorzsens", &p.JoyHorzSens)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("touch.joyvertsens", &p.JoyVertSens)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mouse.sens", &p.MouseSens[bindings.PlayerOne])
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mouse.ysens", &p.MouseYSens[bindings.PlayerOne])
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mouse2.sens", &p.MouseSens[bindings.PlayerTwo])
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("mouse2.ysens", &p.MouseYSens[bindings.PlayerTwo])
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controls.perkey", &p.PerKey)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("controls.execversion", &p.ExecVersion)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all input settings to default values.
func (p *Preferences) SetDefaults() {
	p.MovementStyle.Set(movementStyle)
	p.Preset.Set(preset)
	p.Layout.Set("")
	p.Camera.Set(camera)
	p.GUIScale.Set(guiScale)
	p.Sens.Set(sens)
	p.VertSens.Set(vertSens)
	p.JoyHorzSens.Set(joyHorzSens)
	p.JoyVertSens.Set(joyVertSens)
	for i := range bindings.NumPlayers {
		p.MouseSens[i].Set(mouseSens)
		p.MouseYSens[i].Set(mouseYSens)
	}
	p.PerKey.Set(perKey)
	p.ExecVersion.Set(execVersion)
}

// Load input preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current input preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Policy returns the key policy of the binding table.
func (p *Preferences) Policy() bindings.Policy {
	if strings.EqualFold(strings.TrimSpace(p.PerKey.Get().(string)), "several") {
		return bindings.SeveralPerKey
	}
	return bindings.OnePerKey
}

// Style returns the movement style of the touch controls.
func (p *Preferences) Style() layout.Style {
	return layout.Style(p.MovementStyle.Get().(int))
}

// TouchSettings returns the settings for the touch dispatcher.
func (p *Preferences) TouchSettings() touch.Settings {
	return touch.Settings{
		Style:       p.Style(),
		Camera:      p.Camera.Get().(bool),
		Sens:        p.Sens.Get().(int),
		VertSens:    p.VertSens.Get().(int),
		JoyHorzSens: float32(p.JoyHorzSens.Get().(float64)),
		JoyVertSens: float32(p.JoyVertSens.Get().(float64)),
	}
}
