package main

import (
	"testing"

	"github.com/halfspin/bootmenu/internal/app"
	"github.com/halfspin/bootmenu/internal/config"
)

func TestProbeConsoleCoversBothDirections(t *testing.T) {
	info := probeConsole()
	if info.Input.Name != "stdin" {
		t.Fatalf("expected stdin probed for input, got %q", info.Input.Name)
	}
	if info.Output.Name != "stdout" {
		t.Fatalf("expected stdout probed for output, got %q", info.Output.Name)
	}
	if !info.Output.IsTerminal && !info.Input.IsTerminal && info.Width != 0 {
		t.Fatalf("expected no detected size without a terminal, got %dx%d", info.Width, info.Height)
	}
}

func TestProbeFdRejectsInvalidDescriptor(t *testing.T) {
	p := probeFd("bogus", -1)
	if p.IsTerminal || p.Width != 0 || p.Error != "" {
		t.Fatalf("expected a clean non-terminal probe, got %+v", p)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ConfPath:   "loader.conf",
			Delay:      "5",
			SingleUser: true,
			Width:      80,
			Height:     24,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"config":      "loader.conf",
			"delay":       "5",
			"single-user": "true",
			"width":       "80",
			"height":      "24",
			"footer":      "true",
		},
		Args: []string{"-config", "loader.conf", "-delay", "5"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["config"] != "loader.conf" {
		t.Fatalf("expected config flag %q, got %v", "loader.conf", flagsValue["config"])
	}
	if flagsValue["delay"] != "5" {
		t.Fatalf("expected delay 5, got %v", flagsValue["delay"])
	}
	if flagsValue["single-user"] != "true" {
		t.Fatalf("expected single-user flag true, got %v", flagsValue["single-user"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["console"].(consoleDetails); !ok {
		t.Fatalf("expected console details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}

	argv, ok := payload["argv"].([]string)
	if !ok || len(argv) != 4 {
		t.Fatalf("expected argv echoed in payload, got %v", payload["argv"])
	}
}
