// Package ui is the Bubble Tea front-end bridging the terminal to the
// synchronous menu engine: key messages are fed into the console input, and
// frames composed by the console screen are displayed by View. When the root
// menu is exited the front-end switches to the loader prompt.
package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/halfspin/bootmenu/internal/bootctl"
	"github.com/halfspin/bootmenu/internal/conf"
	"github.com/halfspin/bootmenu/internal/console"
	"github.com/halfspin/bootmenu/internal/engine"
	"github.com/halfspin/bootmenu/internal/key"
	"github.com/halfspin/bootmenu/internal/loaderenv"
	"github.com/halfspin/bootmenu/internal/logging"
	"github.com/halfspin/bootmenu/internal/theme"
)

var styles = theme.Default()

type Mode int

const (
	ModeMenu Mode = iota
	ModePrompt
)

// FrameMsg delivers a composed frame from the console screen.
type FrameMsg console.Frame

type engineFinishedMsg struct {
	err error
}

type bootAttemptMsg struct {
	err error
}

// Model implements the Bubble Tea model for the loader.
type Model struct {
	input  *console.Input
	engine *engine.Engine
	screen *console.Screen
	ctl    *bootctl.Control
	store  *conf.Store
	env    *loaderenv.Env

	mode   Mode
	frame  string
	prompt textinput.Model
	// transcript holds the loader prompt's output history.
	transcript []string
	width      int
	height     int
}

// NewModel wires the front-end. The engine is started by Init and runs in
// its own goroutine; everything else happens on the program loop.
func NewModel(input *console.Input, eng *engine.Engine, screen *console.Screen, ctl *bootctl.Control, store *conf.Store, env *loaderenv.Env) *Model {
	ti := textinput.New()
	ti.Prompt = "OK "
	if styles.Prompt != nil {
		ti.PromptStyle = *styles.Prompt
	}
	ti.CharLimit = 256
	return &Model{
		input:  input,
		engine: eng,
		screen: screen,
		ctl:    ctl,
		store:  store,
		env:    env,
		mode:   ModeMenu,
		prompt: ti,
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.startEngine()
}

func (m *Model) startEngine() tea.Cmd {
	return func() tea.Msg {
		return engineFinishedMsg{err: m.engine.Run()}
	}
}

func (m *Model) resumeEngine() tea.Cmd {
	return func() tea.Msg {
		return engineFinishedMsg{err: m.engine.Resume()}
	}
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case FrameMsg:
		m.frame = msg.Content
		return m, nil
	case engineFinishedMsg:
		if errors.Is(msg.err, engine.ErrInterrupted) {
			return m, tea.Quit
		}
		if msg.err != nil {
			logging.Error(msg.err)
		}
		m.enterPrompt()
		return m, textinput.Blink
	case bootAttemptMsg:
		if msg.err != nil {
			m.say(msg.err.Error())
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		// Unblocks the engine goroutine if it is waiting on a key.
		m.input.Close()
		return m, tea.Quit
	}
	if m.mode == ModeMenu {
		if k, ok := translateKey(msg); ok {
			m.input.Push(k)
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		line := m.prompt.Value()
		m.prompt.SetValue("")
		return m, m.execLine(line)
	case tea.KeyEsc:
		return m.reenterMenu()
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) reenterMenu() (tea.Model, tea.Cmd) {
	m.mode = ModeMenu
	m.prompt.Blur()
	return m, m.resumeEngine()
}

func (m *Model) enterPrompt() {
	m.mode = ModePrompt
	if len(m.transcript) == 0 {
		m.say("Type '?' for a list of commands, 'menu' to return to the menu.")
	}
	m.prompt.Focus()
}

// translateKey converts a terminal key message into an engine keycode.
// Modifier chords and navigation keys the menu does not speak are dropped.
func translateKey(msg tea.KeyMsg) (key.Key, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return key.Key{Code: key.Enter}, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return key.Key{Code: key.Backspace}, true
	case tea.KeyDelete:
		return key.Key{Code: key.Delete}, true
	case tea.KeyEsc:
		return key.Key{Code: key.Escape}, true
	case tea.KeySpace:
		return key.Char(' '), true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return key.Key{}, false
		}
		return key.Char(msg.Runes[0]), true
	}
	return key.Key{}, false
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeMenu {
		return m.frame
	}
	return m.viewPrompt()
}
