// Package bootctl drives the boot side of the loader: flag toggles mapped to
// environment variables, kernel and boot-environment enumeration, and the
// final boot hand-off.
package bootctl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/halfspin/bootmenu/internal/loaderenv"
	"github.com/halfspin/bootmenu/internal/logging/events"
)

// Environment variables consulted and mutated by the controller. The names
// follow the historical loader conventions so existing loader.conf files keep
// working.
const (
	envKernel      = "kernel"
	envKernels     = "kernels"
	envBootenvs    = "bootenvs"
	envActiveBE    = "zfs_be_active"
	envCurrdev     = "currdev"
	envSingleUser  = "boot_single"
	envVerbose     = "boot_verbose"
	envSafeMode    = "boot_safe"
	envSMPDisabled = "kern.smp.disabled"
	envBootExec    = "boot_exec"
	envRebootExec  = "reboot_exec"
)

var defaultKernels = []string{"kernel", "kernel.old"}

// ErrNoBootTarget is returned by Boot when no hand-off command is configured.
// The engine treats a returning Boot as a failed attempt and resumes the menu
// loop.
var ErrNoBootTarget = errors.New("no boot target configured")

// Spec is the fully resolved boot request handed to the exec function.
type Spec struct {
	Kernel     string
	SingleUser bool
	Verbose    bool
	SafeMode   bool
	Command    string
	Args       []string
}

// ExecFunc performs the actual hand-off. A successful hand-off never returns.
type ExecFunc func(Spec) error

// Control implements the boot-control collaborator over a loader environment.
type Control struct {
	env    *loaderenv.Env
	exec   ExecFunc
	reboot ExecFunc
}

// New builds a controller around env using the default exec hand-off.
func New(env *loaderenv.Env) *Control {
	c := &Control{env: env}
	c.exec = c.execHandoff(envBootExec)
	c.reboot = c.execHandoff(envRebootExec)
	return c
}

// SetExec overrides the boot hand-off, used by the dry-run mode and tests.
func (c *Control) SetExec(fn ExecFunc) {
	if fn != nil {
		c.exec = fn
	}
}

// SetRebootExec overrides the reboot hand-off.
func (c *Control) SetRebootExec(fn ExecFunc) {
	if fn != nil {
		c.reboot = fn
	}
}

func (c *Control) setFlag(name string, on bool) {
	if on {
		c.env.Set(name, "YES")
		return
	}
	c.env.Unset(name)
}

func (c *Control) flag(name string) bool {
	v, ok := c.env.Get(name)
	return ok && strings.EqualFold(v, "YES")
}

// SetSingleUser toggles single-user boot.
func (c *Control) SetSingleUser(on bool) {
	c.setFlag(envSingleUser, on)
	events.Boot.Flag("single-user", on)
}

// SetVerbose toggles verbose kernel output.
func (c *Control) SetVerbose(on bool) {
	c.setFlag(envVerbose, on)
	events.Boot.Flag("verbose", on)
}

// SetSafeMode toggles the safe-mode variable group.
func (c *Control) SetSafeMode(on bool) {
	c.setFlag(envSafeMode, on)
	if on {
		c.env.Set(envSMPDisabled, "1")
	} else {
		c.env.Unset(envSMPDisabled)
	}
	events.Boot.Flag("safe-mode", on)
}

// SetDefaults clears every boot flag back to the stock configuration.
func (c *Control) SetDefaults() {
	c.env.Unset(envSingleUser)
	c.env.Unset(envVerbose)
	c.env.Unset(envSafeMode)
	c.env.Unset(envSMPDisabled)
	events.Boot.Defaults()
}

// IsSingleUserBoot reports whether the next boot is flagged single-user.
func (c *Control) IsSingleUserBoot() bool {
	return c.flag(envSingleUser)
}

// SafeMode reports the safe-mode flag.
func (c *Control) SafeMode() bool {
	return c.flag(envSafeMode)
}

// Verbose reports the verbose flag.
func (c *Control) Verbose() bool {
	return c.flag(envVerbose)
}

func splitList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// KernelList enumerates the bootable kernels declared in the environment,
// falling back to the stock pair when the variable is unset.
func (c *Control) KernelList() []string {
	if v, ok := c.env.Get(envKernels); ok {
		if list := splitList(v); len(list) > 0 {
			return list
		}
	}
	return append([]string(nil), defaultKernels...)
}

// BootenvList enumerates the known boot environments. An empty slice means
// boot environments are not in play on this system.
func (c *Control) BootenvList() []string {
	v, ok := c.env.Get(envBootenvs)
	if !ok {
		return nil
	}
	return splitList(v)
}

// BootenvDefault returns the active boot environment, or the first known one
// when none is marked active.
func (c *Control) BootenvDefault() string {
	if v, ok := c.env.Get(envActiveBE); ok && v != "" {
		return v
	}
	if list := c.BootenvList(); len(list) > 0 {
		return list[0]
	}
	return ""
}

// ActivateBootenv points the boot device at the named environment.
func (c *Control) ActivateBootenv(name string) {
	c.env.Set(envActiveBE, name)
	c.env.Set(envCurrdev, name)
	events.Boot.Bootenv(name)
}

// spec assembles the boot request from the current environment.
func (c *Control) spec(command string) Spec {
	s := Spec{
		Kernel:     c.env.GetDefault(envKernel, defaultKernels[0]),
		SingleUser: c.IsSingleUserBoot(),
		Verbose:    c.Verbose(),
		SafeMode:   c.SafeMode(),
		Command:    command,
	}
	if s.SingleUser {
		s.Args = append(s.Args, "-s")
	}
	if s.Verbose {
		s.Args = append(s.Args, "-v")
	}
	return s
}

// Boot performs the boot hand-off. By contract it does not return; when it
// does, the attempt failed and the caller resumes its loop.
func (c *Control) Boot() error {
	s := c.spec(c.env.GetDefault(envBootExec, ""))
	events.Boot.Request(s.Kernel, s.Args)
	if err := c.exec(s); err != nil {
		events.Boot.Failed(err)
		return fmt.Errorf("boot %s: %w", s.Kernel, err)
	}
	return nil
}

// Reboot requests a system reset through the reboot hand-off.
func (c *Control) Reboot() error {
	s := c.spec(c.env.GetDefault(envRebootExec, ""))
	events.Boot.Reboot()
	if err := c.reboot(s); err != nil {
		events.Boot.Failed(err)
		return fmt.Errorf("reboot: %w", err)
	}
	return nil
}
