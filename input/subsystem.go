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
	"io"

	"github.com/jetsetilly/controlmapper/assert"
	"github.com/jetsetilly/controlmapper/bindings"
	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/doubleclick"
	"github.com/jetsetilly/controlmapper/keys"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/layout/store"
	"github.com/jetsetilly/controlmapper/logger"
	"github.com/jetsetilly/controlmapper/touch"
	"github.com/jetsetilly/controlmapper/userinput"
)

// relative mouse movement accumulated during a tick
type motion struct {
	dx int
	dy int
}

// Look is the camera movement for a tick.
type Look struct {
	X      int
	Y      int
	MLookY int
}

// Subsystem owns the input state for both local players.
type Subsystem struct {
	Prefs *Preferences
	Table *bindings.Table

	ctx   Context
	queue *userinput.Queue

	detector   *doubleclick.Detector
	pool       *touch.Pool
	dispatcher *touch.Dispatcher
	engine     *layout.Engine
	customizer *touch.Customizer

	// state of every key in the key space
	down [keys.NumInputs]bool

	// mouse wheel keys are pressed for one tick only
	pulses []keys.Key

	mouse [bindings.NumPlayers]motion

	// absolute gamepad axis positions. indexed by player, axis set and
	// then horizontal (0) or vertical (1)
	joy [bindings.NumPlayers][keys.JoyAxisSets][2]int

	// navigation key held by each finger
	navkeys [touch.NumFingers]keys.Key

	// reloaded user layouts from the layout store
	changes <-chan store.Change

	ticks int

	// the subsystem is not safe for concurrent use. Tick() logs a warning
	// if it is called from more than one goroutine
	owner assert.Owner
}

// NewSubsystem is the preferred method of initialisation for the Subsystem
// type. The context can be nil, in which case the game is assumed to always
// accept input on a display of the base resolution. Actions can also be nil.
//
// The binding table is initialised with the defaults of the FPS scheme.
func NewSubsystem(ctx Context, prefs *Preferences, actions touch.Actions) *Subsystem {
	if ctx == nil {
		ctx = nullContext{}
	}

	s := &Subsystem{
		Prefs:    prefs,
		Table:    bindings.NewTable(),
		ctx:      ctx,
		queue:    userinput.NewQueue(userinput.DefaultQueueLen),
		detector: doubleclick.NewDetector(),
		pool:     touch.NewPool(),
		engine:   layout.NewEngine(),
	}

	s.dispatcher = touch.NewDispatcher(s.pool)
	s.dispatcher.Context = ctx
	s.dispatcher.Actions = actions

	s.Table.SetDefaults(bindings.SchemeFPS)
	s.applyPrefs()

	return s
}

// Queue returns the event queue. Platform adapters push events onto this
// queue.
func (s *Subsystem) Queue() *userinput.Queue {
	return s.queue
}

// Ticks returns the number of calls to Tick().
func (s *Subsystem) Ticks() int {
	return s.ticks
}

// Reset releases every key, finger and axis.
func (s *Subsystem) Reset() {
	s.down = [keys.NumInputs]bool{}
	s.pulses = s.pulses[:0]
	s.mouse = [bindings.NumPlayers]motion{}
	s.joy = [bindings.NumPlayers][keys.JoyAxisSets][2]int{}
	s.navkeys = [touch.NumFingers]keys.Key{}
	s.detector.Reset()
	s.dispatcher.Reset()
}

// the preferences are applied at the start of every tick so that changes
// take effect without any notification
func (s *Subsystem) applyPrefs() {
	if s.Prefs == nil {
		return
	}
	s.Table.Policy = s.Prefs.Policy()
	s.dispatcher.Settings = s.Prefs.TouchSettings()
}

// Tick drains the event queue and updates the input state. The realtics
// value is the number of ticks that have passed since the previous call.
//
// Returns true if a quit event was in the queue.
func (s *Subsystem) Tick(realtics int) bool {
	if !s.owner.Check() {
		logger.Log(logger.Allow, "input", "Tick() called from more than one goroutine")
	}

	for _, k := range s.pulses {
		s.down[k] = false
	}
	s.pulses = s.pulses[:0]

	s.mouse = [bindings.NumPlayers]motion{}
	s.dispatcher.ResetMouse()

	s.applyPrefs()
	s.reloadLayouts()
	s.refreshLayout()

	var quit bool
	s.queue.Drain(func(ev userinput.Event) {
		if userinput.HandleUserInput(ev, s) {
			quit = true
		}
	})

	s.detector.Poll(s.down[:])
	s.pool.Update(realtics)
	s.ticks++

	return quit
}

// HandleKey implements the userinput.HandleInput interface.
func (s *Subsystem) HandleKey(k keys.Key, down bool) {
	if k == keys.Null || !k.Valid() {
		return
	}
	s.down[k] = down

	if down && k >= keys.MouseWheelUp && k <= keys.P2MouseWheelDown {
		s.pulses = append(s.pulses, k)
	}
}

// HandleMouseMotion implements the userinput.HandleInput interface.
func (s *Subsystem) HandleMouseMotion(player int, dx int, dy int) {
	s.mouse[player&1].dx += dx
	s.mouse[player&1].dy += dy
}

// HandleGamepadAxis implements the userinput.HandleInput interface. Axis
// positions are ignored while the game is not accepting input.
func (s *Subsystem) HandleGamepadAxis(player int, set int, horizontal bool, amount int) {
	if set < 0 || set >= keys.JoyAxisSets {
		return
	}
	if !s.ctx.GameInputAllowed() {
		return
	}
	if horizontal {
		s.joy[player&1][set][0] = amount
	} else {
		s.joy[player&1][set][1] = amount
	}
}

// HandleTouch implements the userinput.HandleInput interface.
func (s *Subsystem) HandleTouch(ev userinput.EventTouch) {
	if s.customizer != nil {
		if !s.customizer.HandleEvent(ev) {
			s.navigate(ev)
		}
		return
	}

	if !s.ctx.GameInputAllowed() {
		s.navigate(ev)
	}

	s.dispatcher.HandleEvent(ev)
}

// the navigation buttons produce key presses. the key is remembered so that
// it is released when the finger is lifted, wherever the finger is
func (s *Subsystem) navigate(ev userinput.EventTouch) {
	if ev.Finger < 0 || ev.Finger >= touch.NumFingers {
		return
	}

	switch ev.Kind {
	case userinput.TouchDown:
		k := touch.MapFingerToKey(s.Navigation(), ev)
		if k != keys.Null {
			s.navkeys[ev.Finger] = k
			s.HandleKey(k, true)
		}
	case userinput.TouchUp:
		if k := s.navkeys[ev.Finger]; k != keys.Null {
			s.navkeys[ev.Finger] = keys.Null
			s.HandleKey(k, false)
		}
	}
}

// KeyDown returns true if the key is down. Double-click keys are only down
// for the tick in which the double-click happened.
func (s *Subsystem) KeyDown(k keys.Key) bool {
	if !k.Valid() {
		return false
	}
	return s.down[k]
}

// ControlDown returns true if the control is down for the player. Touch
// buttons only apply to the first player.
func (s *Subsystem) ControlDown(player int, c controls.Control) bool {
	if c == controls.Null || !c.Valid() {
		return false
	}

	for _, k := range s.Table.Get(player, c) {
		if k != keys.Null && s.down[k] {
			return true
		}
	}

	return player&1 == bindings.PlayerOne && s.dispatcher.ControlDown(c)
}

// Controls returns the list of controls that are down for the player, in
// control order.
func (s *Subsystem) Controls(player int) []controls.Control {
	var d []controls.Control
	for c := controls.Null + 1; c < controls.NumControls; c++ {
		if s.ControlDown(player, c) {
			d = append(d, c)
		}
	}
	return d
}

// the camera response curve
func sensitivity(sens int, mult int) float32 {
	return float32(sens*mult)/110.0 + 0.1
}

// Look returns the camera movement of the player for the current tick. The
// movement of the mouse is added to the movement of the touch camera.
func (s *Subsystem) Look(player int) Look {
	player &= 1

	sens := mouseSens
	ysens := mouseYSens
	if s.Prefs != nil {
		sens = s.Prefs.MouseSens[player].Get().(int)
		ysens = s.Prefs.MouseYSens[player].Get().(int)
	}

	m := s.mouse[player]
	l := Look{
		X:      int(float32(m.dx) * sensitivity(sens, sens)),
		Y:      int(float32(m.dy) * sensitivity(sens, sens)),
		MLookY: int(float32(m.dy) * sensitivity(ysens, sens)),
	}

	if player == bindings.PlayerOne {
		l.X += s.dispatcher.Axes.MouseX
		l.Y += s.dispatcher.Axes.MouseY
		l.MLookY += s.dispatcher.Axes.MLookY
	}

	return l
}

// JoyAxis returns the horizontal and vertical position of the gamepad axis
// set for the player.
func (s *Subsystem) JoyAxis(player int, set int) (int, int) {
	if set < 0 || set >= keys.JoyAxisSets {
		return 0, 0
	}
	a := s.joy[player&1][set]
	return a[0], a[1]
}

// TouchAxes returns the joystick and camera movement of the touch controls.
func (s *Subsystem) TouchAxes() touch.Axes {
	return s.dispatcher.Axes
}

// the layout status for the current context and preferences
func (s *Subsystem) status() layout.Status {
	w, h := s.ctx.Screen()
	f := s.ctx.Flags()

	st := layout.Status{
		Screen:              layout.NewScreen(w, h),
		GUIScale:            layout.DefaultScale,
		Preset:              layout.Preset(preset),
		Style:               layout.Style(movementStyle),
		Ringslinger:         f.Ringslinger,
		CTF:                 f.CTF,
		CanPause:            f.CanPause,
		CanViewpointSwitch:  f.CanViewpointSwitch,
		CanTalk:             f.CanTalk,
		CanTeamTalk:         f.CanTeamTalk,
		PromptBlockControls: f.PromptBlockControls,
		PromptActive:        f.PromptActive,
		Splitscreen:         f.Splitscreen,
		SpecialStage:        f.SpecialStage,
		AlternateHUD:        f.AlternateHUD,
	}

	if s.Prefs != nil {
		st.GUIScale = layout.F(s.Prefs.GUIScale.Get().(float64))
		st.Preset = layout.Preset(s.Prefs.Preset.Get().(int))
		st.Style = s.Prefs.Style()
	}

	return st
}

func (s *Subsystem) refreshLayout() {
	if s.customizer != nil {
		return
	}
	s.dispatcher.SetLayout(s.engine.Rebuild(s.status()))
}

// Layout returns the touch layout that fingers are tested against. While the
// user layout is being customised the layout being edited is returned.
func (s *Subsystem) Layout() *layout.Layout {
	if s.customizer != nil {
		return s.customizer.Layout()
	}
	s.refreshLayout()
	return s.dispatcher.Layout()
}

// Navigation returns the navigation buttons for the current context.
func (s *Subsystem) Navigation() *layout.Navigation {
	w, h := s.ctx.Screen()
	f := s.ctx.Flags()
	return s.engine.Navigation(layout.NavStatus{
		Screen:         layout.NewScreen(w, h),
		Customizing:    s.customizer != nil,
		SubmenuOpen:    f.SubmenuOpen,
		CanOpenConsole: f.CanOpenConsole,
	})
}

// Fingers returns a copy of every finger that is touching the screen.
func (s *Subsystem) Fingers() []touch.Finger {
	return s.pool.Fingers()
}

// SetUserLayout sets the layout used when the touch.preset preference is
// PresetNone. The layout is copied.
func (s *Subsystem) SetUserLayout(l *layout.Layout) {
	s.engine.SetUserLayout(l)
}

// WatchLayouts sets the channel from which reloaded user layouts are read.
// A reloaded layout replaces the user layout if its name matches the
// touch.layout preference.
func (s *Subsystem) WatchLayouts(changes <-chan store.Change) {
	s.changes = changes
}

func (s *Subsystem) reloadLayouts() {
	if s.changes == nil || s.Prefs == nil {
		return
	}
	for {
		select {
		case c, ok := <-s.changes:
			if !ok {
				s.changes = nil
				return
			}
			if c.Entry.Name != s.Prefs.Layout.Get().(string) {
				continue
			}
			s.engine.SetUserLayout(c.Layout)
			logger.Logf(logger.Allow, "input", "reloaded layout %s", c.Entry.Name)
		default:
			return
		}
	}
}

// StartCustomizing starts the editing of the layout. The layout is copied
// and can be retrieved with StopCustomizing(). While the layout is being
// edited touch events no longer press buttons.
func (s *Subsystem) StartCustomizing(l *layout.Layout, onNewButton touch.NewButtonFunc) *touch.Customizer {
	w, h := s.ctx.Screen()

	l = l.Clone()
	l.Screen = layout.NewScreen(w, h)

	s.dispatcher.Reset()
	s.dispatcher.Customizing = true

	s.customizer = touch.NewCustomizer(s.pool, l)
	s.customizer.OnNewButton = onNewButton
	s.customizer.SetNavigation(s.Navigation())

	return s.customizer
}

// StopCustomizing ends the editing of the layout and returns the edited
// layout. The edited layout becomes the user layout. Returns nil if the
// layout was not being edited.
func (s *Subsystem) StopCustomizing() *layout.Layout {
	if s.customizer == nil {
		return nil
	}

	l := s.customizer.Layout()
	s.customizer.ClearSelection()
	s.customizer = nil

	s.pool.Reset()
	s.dispatcher.Customizing = false
	s.engine.SetUserLayout(l)

	return l
}

// Customizer returns the customizer if the layout is being edited.
func (s *Subsystem) Customizer() (*touch.Customizer, bool) {
	return s.customizer, s.customizer != nil
}

// LoadBindings applies the setcontrol directives to the binding table. The
// version of the configuration is taken from the controls.execversion
// preference.
func (s *Subsystem) LoadBindings(r io.Reader) error {
	version := execVersion
	if s.Prefs != nil {
		version = s.Prefs.ExecVersion.Get().(int)
	}
	return s.Table.Load(r, version)
}

// SaveBindings writes the binding table as setcontrol directives.
func (s *Subsystem) SaveBindings(w io.Writer) error {
	return s.Table.Save(w)
}
