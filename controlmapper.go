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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/controlmapper/bindings"
	"github.com/jetsetilly/controlmapper/controls"
	"github.com/jetsetilly/controlmapper/input"
	"github.com/jetsetilly/controlmapper/layout"
	"github.com/jetsetilly/controlmapper/layout/store"
	"github.com/jetsetilly/controlmapper/logger"
	"github.com/jetsetilly/controlmapper/modalflag"
	"github.com/jetsetilly/controlmapper/paths"
	"github.com/jetsetilly/controlmapper/platform/ebiteninput"
	"github.com/jetsetilly/controlmapper/platform/sdlinput"
	"github.com/jetsetilly/controlmapper/prefs"
	"github.com/jetsetilly/controlmapper/statsview"
	"github.com/jetsetilly/controlmapper/userinput"
	"github.com/jetsetilly/controlmapper/version"
)

// the rate at which the input subsystem is ticked in the windowed modes
const ticRate = 35

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode wants to handle
	// the interrupt itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of windows
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the window how we want. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the window
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all window events that are not safe to do in
	// sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL and ebiten require window event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new window creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created window
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not equal to nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate window creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("BINDINGS", "LAYOUT", "SDL", "EBITEN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "BINDINGS":
		err = bindingsMode(md)

	case "LAYOUT":
		err = layoutMode(md)

	case "SDL":
		err = sdlMode(md, sync)

	case "EBITEN":
		err = ebitenMode(md, sync)

	case "VERSION":
		err = versionMode(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode
type ambient struct {
	log       *bool
	memviz    *bool
	statsview *bool
	prefs     *string
}

func addAmbient(md *modalflag.Modes) ambient {
	return ambient{
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		memviz:    md.AddBool("memviz", false, "write a graph of the input state when the mode ends"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		prefs:     md.AddString("prefs", "", "override preferences (eg. 'touch.preset::2; mouse.sens::40')"),
	}
}

// apply the ambient flags. must be called after a successful Parse()
func (amb ambient) apply(md *modalflag.Modes) {
	if *amb.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *amb.statsview {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "* statsview not available in this build")
		}
	}

	if *amb.prefs != "" {
		prefs.PushCommandLineStack(*amb.prefs)
	}
}

// write a memviz graph of the value if the memviz flag has been set
func (amb ambient) dump(md *modalflag.Modes, v any) error {
	if !*amb.memviz {
		return nil
	}

	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", strings.ToLower(md.Mode())))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, v)
	fmt.Fprintf(md.Output, "memviz graph written to %s\n", fn)

	return nil
}

// the preferences for the windowed modes. unused preferences from the command
// line are reported
func preferences(md *modalflag.Modes) (*input.Preferences, error) {
	pref, err := input.NewPreferences("")
	if err != nil {
		return nil, err
	}
	if prefs.SizeCommandLineStack() > 0 {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(md.Output, "* unused preferences: %s\n", unused)
		}
	}
	return pref, nil
}

func bindingsMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Reads setcontrol directives from the file and writes the resulting binding table to stdout. If no file is given the defaults of the scheme are written.")

	amb := addAmbient(md)
	ver := md.AddInt("version", bindings.CompatVersion, "version of the configuration being read")
	scheme := md.AddString("scheme", "FPS", "default scheme: CUSTOM, FPS, PLATFORM")
	perkey := md.AddString("perkey", "one", "controls per key: one, several")
	check := md.AddBool("check", false, "report the scheme of each player")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	amb.apply(md)

	tbl := bindings.NewTable()

	switch strings.ToUpper(*scheme) {
	case "CUSTOM":
		tbl.SetDefaults(bindings.SchemeCustom)
	case "FPS":
		tbl.SetDefaults(bindings.SchemeFPS)
	case "PLATFORM":
		tbl.SetDefaults(bindings.SchemePlatform)
	default:
		return fmt.Errorf("unknown scheme: %s", *scheme)
	}

	switch strings.ToLower(*perkey) {
	case "one":
		tbl.Policy = bindings.OnePerKey
	case "several":
		tbl.Policy = bindings.SeveralPerKey
	default:
		return fmt.Errorf("unknown perkey policy: %s", *perkey)
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		err = tbl.Load(f, *ver)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *check {
		for player := 0; player < bindings.NumPlayers; player++ {
			for _, chk := range tbl.CheckSchemes(player) {
				fmt.Fprintf(md.Output, "# player %d: %s: %s\n", player+1, chk.Group, chk.Scheme)
			}
		}
	}

	err = tbl.Save(md.Output)
	if err != nil {
		return err
	}

	return amb.dump(md, tbl)
}

func layoutMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Builds the touch layout for the screen size and game state and prints the position of each button.")

	amb := addAmbient(md)
	width := md.AddInt("width", layout.BaseWidth*2, "screen width")
	height := md.AddInt("height", layout.BaseHeight*2, "screen height")
	preset := md.AddString("preset", "DEFAULT", "preset: DEFAULT, TINY")
	style := md.AddString("style", "JOYSTICK", "movement style: JOYSTICK, DPAD")
	scale := md.AddFloat64("scale", layout.ToFloat(layout.DefaultScale), "gui scale")
	ringslinger := md.AddBool("ringslinger", false, "ringslinger gametype")
	ctf := md.AddBool("ctf", false, "capture the flag gametype")
	pause := md.AddBool("pause", true, "game can be paused")
	talk := md.AddBool("talk", false, "chat is available")
	splitscreen := md.AddBool("splitscreen", false, "splitscreen game")
	save := md.AddBool("save", false, "save as a user layout to the layout store")
	name := md.AddString("name", "", "name of the saved layout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	amb.apply(md)

	st := layout.Status{
		Screen:      layout.NewScreen(*width, *height),
		GUIScale:    layout.F(*scale),
		Ringslinger: *ringslinger,
		CTF:         *ctf,
		CanPause:    *pause,
		CanTalk:     *talk,
		Splitscreen: *splitscreen,
	}

	switch strings.ToUpper(*preset) {
	case "DEFAULT":
		st.Preset = layout.PresetNormal
	case "TINY":
		st.Preset = layout.PresetTiny
	default:
		return fmt.Errorf("unknown preset: %s", *preset)
	}

	switch strings.ToUpper(*style) {
	case "JOYSTICK":
		st.Style = layout.StyleJoystick
	case "DPAD":
		st.Style = layout.StyleDPad
	default:
		return fmt.Errorf("unknown style: %s", *style)
	}

	eng := layout.NewEngine()
	l := eng.Rebuild(st)

	fmt.Fprintf(md.Output, "%s layout for %s\n", l.Name, st.Screen)
	if !l.Buttons[controls.Joystick].Hidden {
		fmt.Fprintf(md.Output, "%-16s %s\n", "joystick area", l.JoystickRect())
	}
	for _, c := range l.Visible() {
		fmt.Fprintf(md.Output, "%-16s %s\n", c, l.ScreenRect(c))
	}

	if *save {
		s, err := store.Open(paths.ResourcePath(store.DefaultDir))
		if err != nil {
			return err
		}

		saved := l.Clone()
		saved.Name = *name
		if saved.Name == "" {
			saved.Name = paths.UniqueFilename("layout", "")
		}

		err = s.Save(saved)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "saved as %s\n", saved.Name)
	}

	return amb.dump(md, l)
}

// the flags and setup shared by the windowed modes
type windowed struct {
	amb     ambient
	width   *int
	height  *int
	config  *string
	watch   *bool
	layouts context.CancelFunc
}

func addWindowed(md *modalflag.Modes) *windowed {
	return &windowed{
		amb:    addAmbient(md),
		width:  md.AddInt("width", layout.BaseWidth*3, "window width"),
		height: md.AddInt("height", layout.BaseHeight*3, "window height"),
		config: md.AddString("config", "", "file of setcontrol directives"),
		watch:  md.AddBool("watch", true, "reload user layouts when the layout store changes"),
	}
}

// create the input subsystem for the windowed modes
func (w *windowed) subsystem(md *modalflag.Modes, ctx input.Context) (*input.Subsystem, error) {
	pref, err := preferences(md)
	if err != nil {
		return nil, err
	}

	sub := input.NewSubsystem(ctx, pref, nil)

	if *w.config != "" {
		f, err := os.Open(*w.config)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		err = sub.LoadBindings(f)
		if err != nil {
			return nil, err
		}
	}

	s, err := store.Open(paths.ResourcePath(store.DefaultDir))
	if err != nil {
		return nil, err
	}

	if n := pref.Layout.Get().(string); n != "" {
		l, err := s.Load(n)
		if err != nil {
			logger.Log(logger.Allow, "controlmapper", err)
		} else {
			sub.SetUserLayout(l)
		}
	}

	if *w.watch {
		var watchCtx context.Context
		watchCtx, w.layouts = context.WithCancel(context.Background())
		changes, err := s.Watch(watchCtx)
		if err != nil {
			logger.Log(logger.Allow, "controlmapper", err)
		} else {
			sub.WatchLayouts(changes)
		}
	}

	return sub, nil
}

func (w *windowed) end() {
	if w.layouts != nil {
		w.layouts()
	}
}

// logs the controls that have changed state since the previous call
type edges struct {
	prev [bindings.NumPlayers]map[controls.Control]bool
}

func (e *edges) update(sub *input.Subsystem) {
	for player := range e.prev {
		now := make(map[controls.Control]bool)
		for _, c := range sub.Controls(player) {
			now[c] = true
			if !e.prev[player][c] {
				logger.Logf(logger.Allow, "controls", "player %d: +%s", player+1, c)
			}
		}
		for c := range e.prev[player] {
			if !now[c] {
				logger.Logf(logger.Allow, "controls", "player %d: -%s", player+1, c)
			}
		}
		e.prev[player] = now
	}
}

// the SDL platform is serviced by the main thread
type sdlWindow struct {
	plt *sdlinput.Platform
	q   *userinput.Queue
}

func (win *sdlWindow) Destroy(output io.Writer) {
	win.plt.Destroy(output)
}

func (win *sdlWindow) Service() {
	if !win.plt.Service(win.q) {
		logger.Log(logger.Allow, "sdl", "input queue full. events dropped")
	}
}

// the context for the SDL window. the game always accepts input and the
// translator knows the current size of the window
type sdlContext struct {
	tr *sdlinput.Translator
}

func (ctx *sdlContext) GameInputAllowed() bool {
	return true
}

func (ctx *sdlContext) Intermission() bool {
	return false
}

func (ctx *sdlContext) PromptHidesHUD(_ int) bool {
	return false
}

func (ctx *sdlContext) Screen() (int, int) {
	return ctx.tr.Screen()
}

func (ctx *sdlContext) Flags() input.Flags {
	return input.Flags{CanPause: true}
}

func sdlMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	w := addWindowed(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	w.amb.apply(md)
	defer w.end()

	// the translator is replaced by the translator of the platform once the
	// window has been created
	ctx := &sdlContext{tr: sdlinput.NewTranslator(*w.width, *w.height)}
	sub, err := w.subsystem(md, ctx)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		plt, err := sdlinput.NewPlatform(*w.width, *w.height)
		if err != nil {
			return nil, err
		}
		return &sdlWindow{plt: plt, q: sub.Queue()}, nil
	}

	select {
	case g := <-sync.creation:
		ctx.tr = g.(*sdlWindow).plt.Translator()
	case err := <-sync.creationError:
		return err
	}

	var e edges
	tick := time.NewTicker(time.Second / ticRate)
	defer tick.Stop()

	for range tick.C {
		if sub.Tick(1) {
			break
		}
		e.update(sub)
	}

	return w.amb.dump(md, sub)
}

// ebiten.RunGame() blocks until the window is closed so the game is run by
// the first call to Service()
type ebitenWindow struct {
	game *ebiteninput.Game
	done chan error
}

func (win *ebitenWindow) Destroy(_ io.Writer) {
}

func (win *ebitenWindow) Service() {
	if win.done == nil {
		return
	}
	done := win.done
	win.done = nil

	ver, _, _ := version.Version()
	ebiten.SetWindowTitle(fmt.Sprintf("%s (%s)", version.ApplicationName, ver))
	ebiten.SetWindowSize(win.game.Screen.Width, win.game.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticRate)

	done <- ebiten.RunGame(win.game)
}

func ebitenMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	w := addWindowed(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	w.amb.apply(md)
	defer w.end()

	scr := &ebiteninput.Screen{Width: *w.width, Height: *w.height}
	sub, err := w.subsystem(md, scr)
	if err != nil {
		return err
	}

	game := ebiteninput.NewGame(sub, scr)
	done := make(chan error, 1)

	sync.creator <- func() (GuiCreator, error) {
		return &ebitenWindow{game: game, done: done}, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	err = <-done
	if err != nil {
		return err
	}

	return w.amb.dump(md, sub)
}

func versionMode(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control system (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Fprintln(md.Output, ver)
	if *revision {
		fmt.Fprintln(md.Output, rev)
	}

	return nil
}
