// Package app bootstraps the loader menu: environment, configuration, boot
// control, menu tree, engine, and the terminal front-end.
package app

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/halfspin/bootmenu/internal/bootctl"
	"github.com/halfspin/bootmenu/internal/conf"
	"github.com/halfspin/bootmenu/internal/console"
	"github.com/halfspin/bootmenu/internal/engine"
	"github.com/halfspin/bootmenu/internal/loaderenv"
	"github.com/halfspin/bootmenu/internal/logging"
	"github.com/halfspin/bootmenu/internal/menu"
	"github.com/halfspin/bootmenu/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ConfPath   string
	Delay      string
	SingleUser bool
	DryRun     bool
	Width      int
	Height     int
	ShowFooter bool
}

// Run bootstraps and executes the Bubble Tea program around the menu engine.
func Run(cfg Config) error {
	env := loaderenv.New()
	store, err := conf.Load(cfg.ConfPath, env)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("load configuration: %w", err)
		}
		// A missing loader.conf degrades to built-in defaults.
		logging.Error(fmt.Errorf("configuration %s missing, using defaults", cfg.ConfPath))
	}

	ctl := bootctl.New(env)
	if cfg.DryRun {
		ctl.SetExec(dryRunExec("boot"))
		ctl.SetRebootExec(dryRunExec("reboot"))
	}
	if cfg.SingleUser {
		ctl.SetSingleUser(true)
	}
	if cfg.Delay != "" {
		env.Set("autoboot_delay", cfg.Delay)
	}

	carousels := menu.NewCarouselStore()
	model := menu.NewModel(ctl, store)
	if configured, ok := env.Get("kernel"); ok {
		if name, idx := ctl.ResolveKernel(configured); idx > 0 {
			carousels.Set("kernel", idx)
			store.SelectKernel(name)
		}
	}

	input := console.NewInput()
	screen := console.NewScreen(cfg.Width, cfg.Height, cfg.ShowFooter, carousels)
	eng := engine.New(engine.Options{
		Input:     input,
		Screen:    screen,
		Boot:      ctl,
		Env:       env,
		Root:      model.Root(),
		Carousels: carousels,
	})

	uiModel := ui.NewModel(input, eng, screen, ctl, store, env)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	screen.SetSink(func(f console.Frame) {
		program.Send(ui.FrameMsg(f))
	})
	_, err = program.Run()
	input.Close()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func dryRunExec(kind string) bootctl.ExecFunc {
	return func(s bootctl.Spec) error {
		return fmt.Errorf("dry run: would %s kernel %s %v", kind, s.Kernel, s.Args)
	}
}
