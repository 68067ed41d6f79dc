package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/halfspin/bootmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfPath   = "BOOTMENU_CONF"
	envDelay      = "BOOTMENU_DELAY"
	envSingleUser = "BOOTMENU_SINGLE_USER"
	envDryRun     = "BOOTMENU_DRY_RUN"
	envWidth      = "BOOTMENU_WIDTH"
	envHeight     = "BOOTMENU_HEIGHT"
	envShowFooter = "BOOTMENU_FOOTER"
	envTrace      = "BOOTMENU_TRACE"
	envLogFile    = "BOOTMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("bootmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	confPath := fs.String("config", envOrDefault(env, envConfPath, "loader.conf"), "path to the loader configuration file")
	delay := fs.String("delay", envOrDefault(env, envDelay, ""), "autoboot delay override (seconds, -1 for immediate, NO to disable)")
	singleUser := fs.Bool("single-user", envOrBool(env, envSingleUser, false), "flag the boot sequence single-user")
	dryRun := fs.Bool("dry-run", envOrBool(env, envDryRun, false), "log boot requests instead of executing the hand-off")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "frame width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "frame height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			ConfPath:   *confPath,
			Delay:      *delay,
			SingleUser: *singleUser,
			DryRun:     *dryRun,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":      *confPath,
			"delay":       *delay,
			"single-user": strconv.FormatBool(*singleUser),
			"dry-run":     strconv.FormatBool(*dryRun),
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	trimmed := strings.TrimSpace(cfg.App.Delay)
	if trimmed == "" || strings.EqualFold(trimmed, "NO") {
		return nil
	}
	if _, err := strconv.Atoi(trimmed); err != nil {
		return fmt.Errorf("delay must be numeric or NO (got %q)", cfg.App.Delay)
	}
	return nil
}
