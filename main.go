package main

import (
	"fmt"
	"os"

	"github.com/halfspin/bootmenu/internal/app"
	"github.com/halfspin/bootmenu/internal/config"
	"github.com/halfspin/bootmenu/internal/logging"
	"github.com/halfspin/bootmenu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["console"] = probeConsole()
	return payload
}

// consoleProbe describes the terminal attached to one side of the console.
type consoleProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// consoleDetails records what the loader found on its console: the input and
// output descriptors, plus the frame size the screen will default to when no
// width/height override is configured.
type consoleDetails struct {
	Input  consoleProbe `json:"input"`
	Output consoleProbe `json:"output"`
	Width  int          `json:"width,omitempty"`
	Height int          `json:"height,omitempty"`
}

func probeConsole() consoleDetails {
	d := consoleDetails{
		Input:  probeFd("stdin", int(os.Stdin.Fd())),
		Output: probeFd("stdout", int(os.Stdout.Fd())),
	}
	// The output side decides the frame size; fall back to the input side
	// when output is redirected.
	for _, p := range []consoleProbe{d.Output, d.Input} {
		if p.IsTerminal && p.Width > 0 {
			d.Width, d.Height = p.Width, p.Height
			break
		}
	}
	return d
}

func probeFd(name string, fd int) consoleProbe {
	p := consoleProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return p
	}
	p.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		p.Error = err.Error()
		return p
	}
	p.Width = width
	p.Height = height
	return p
}
