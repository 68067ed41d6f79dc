// Package engine runs the menu state machine: draw, await a key, dispatch,
// redraw, plus the autoboot countdown that precedes the loop. Execution is
// single-threaded; the engine suspends only inside ReadKey and the countdown
// tick.
package engine

import (
	"errors"
	"time"

	"github.com/halfspin/bootmenu/internal/key"
	"github.com/halfspin/bootmenu/internal/logging"
	"github.com/halfspin/bootmenu/internal/logging/events"
	"github.com/halfspin/bootmenu/internal/menu"
)

// ErrInterrupted reports that the input source was torn down underneath the
// engine (ctrl+c or closed key feed).
var ErrInterrupted = errors.New("menu input interrupted")

// Input is the key source. ReadKey blocks; HasPendingKey never does.
type Input interface {
	HasPendingKey() bool
	ReadKey() key.Key
}

// Screen renders menu frames. Render returns the alias table for the draw,
// built fresh every time because visibility and labels may have changed.
type Screen interface {
	Render(def *menu.Definition, visible []*menu.Entry) menu.AliasTable
	Countdown(seconds int)
	ClearCountdown()
	Notice(text string)
	ClearScreen()
	SetCursor(x, y int)
	ResetCursor()
}

// Booter performs the boot hand-off. A successful boot does not return; a
// returned error means the attempt failed and the menu resumes.
type Booter interface {
	Boot() error
}

// Environment supplies the loader variables the engine consults.
type Environment interface {
	GetDefault(name, fallback string) string
}

// Options wires an Engine.
type Options struct {
	Input     Input
	Screen    Screen
	Boot      Booter
	Env       Environment
	Root      *menu.Definition
	Carousels *menu.CarouselStore

	// Now and Sleep exist for the countdown tests; zero values mean the
	// real clock.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Engine drives the menu loop over its collaborators.
type Engine struct {
	input     Input
	screen    Screen
	boot      Booter
	env       Environment
	root      *menu.Definition
	carousels *menu.CarouselStore
	handlers  map[menu.Kind]Handler

	now   func() time.Time
	sleep func(time.Duration)

	// current marks the definition on screen so Process can skip
	// re-rendering a menu that is already drawn.
	current     *menu.Definition
	aliases     menu.AliasTable
	visibleRows int
	interrupted bool
}

// New builds an engine. Root and all collaborators are required.
func New(opts Options) *Engine {
	e := &Engine{
		input:     opts.Input,
		screen:    opts.Screen,
		boot:      opts.Boot,
		env:       opts.Env,
		root:      opts.Root,
		carousels: opts.Carousels,
		now:       opts.Now,
		sleep:     opts.Sleep,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.sleep == nil {
		e.sleep = time.Sleep
	}
	e.handlers = e.defaultHandlers()
	return e
}

// Draw renders the definition's visible entries and records it as current.
func (e *Engine) Draw(def *menu.Definition) {
	visible := def.VisibleEntries()
	e.aliases = e.screen.Render(def, visible)
	e.current = def
	e.visibleRows = len(visible)
	events.Menu.Draw(def.ID, len(visible))
}

// Process runs the key loop for one menu level. It returns when the level is
// closed: Backspace/Delete on a non-root menu, a handler signalling
// termination, or an input interrupt. initial, when non-nil, is consumed
// before any blocking read (the key that cancelled autoboot).
func (e *Engine) Process(def *menu.Definition, initial *key.Key) {
	events.Menu.Enter(def.ID)
	defer events.Menu.Exit(def.ID)
	for {
		if e.interrupted {
			return
		}
		if e.current != def {
			e.Draw(def)
		}
		var k key.Key
		if initial != nil {
			k, initial = *initial, nil
		} else {
			k = e.input.ReadKey()
		}
		switch k.Code {
		case key.Interrupt:
			e.interrupted = true
			return
		case key.Backspace, key.Delete:
			// The root level has no parent to pop to; ignore.
			if def != e.root {
				return
			}
			continue
		case key.Enter:
			e.bootNow()
			continue
		}
		entry, ok := e.aliases.Lookup(k.Rune)
		if k.Code != key.Rune || !ok {
			// Unmapped keys are not errors; stay in the loop silently.
			events.Menu.Ignore(def.ID, k.String())
			continue
		}
		events.Menu.Select(def.ID, k.String(), menu.DisplayLabel(entry, e.carousels))
		if !e.dispatch(def, entry) {
			return
		}
		// The dispatch may have toggled a flag or rotated a carousel;
		// force a redraw so labels never go stale.
		e.current = nil
	}
}

// Run draws the root menu, executes the autoboot countdown, and processes
// the root level until it is exited.
func (e *Engine) Run() error {
	e.screen.ClearScreen()
	e.Draw(e.root)
	// Pin the countdown to a fixed row under the menu body (title, spacer,
	// entries, spacer) so repainting the remaining seconds never shifts the
	// entry lines.
	e.screen.SetCursor(0, e.visibleRows+3)
	res := e.autobootWait(e.env.GetDefault("autoboot_delay", ""))
	e.screen.ResetCursor()
	var initial *key.Key
	switch res.Outcome {
	case AutobootExpired:
		e.bootNow()
	case AutobootCancelled:
		k := res.Key
		initial = &k
	}
	e.Process(e.root, initial)
	e.screen.ResetCursor()
	if e.interrupted {
		return ErrInterrupted
	}
	return nil
}

// Resume re-enters the root menu without re-running autoboot, used when the
// loader prompt hands control back to the menu.
func (e *Engine) Resume() error {
	e.current = nil
	e.Process(e.root, nil)
	e.screen.ResetCursor()
	if e.interrupted {
		return ErrInterrupted
	}
	return nil
}

// bootNow invokes the boot action. By contract it does not come back; when
// it does, the failure is logged and shown, and the loop resumes with a
// fresh draw.
func (e *Engine) bootNow() {
	if err := e.boot.Boot(); err != nil {
		logging.Error(err)
		e.screen.Notice(err.Error())
		e.current = nil
	}
}
