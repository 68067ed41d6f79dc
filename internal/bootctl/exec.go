package bootctl

import (
	"os"
	"os/exec"
	"syscall"
)

// execHandoff builds the default ExecFunc for the given command variable:
// replace the loader process with the configured command, passing the
// resolved kernel and flag arguments. Replacing the process is what makes a
// successful boot "not return".
func (c *Control) execHandoff(envName string) ExecFunc {
	return func(s Spec) error {
		if s.Command == "" {
			return ErrNoBootTarget
		}
		path, err := exec.LookPath(s.Command)
		if err != nil {
			return err
		}
		argv := append([]string{path, s.Kernel}, s.Args...)
		return syscall.Exec(path, argv, os.Environ())
	}
}
