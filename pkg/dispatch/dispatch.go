// Package dispatch runs per-level shell commands without blocking the
// poll loop.
package dispatch

import (
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Runner executes a shell command and reports its outcome.
type Runner func(command string) error

func runShell(command string) error {
	cmd := exec.Command("sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}

// Dispatcher fires commands on their own goroutines, fire-and-forget.
// There is no limit on in-flight commands and no retry; failures are only
// logged.
type Dispatcher struct {
	runner Runner
}

func New() *Dispatcher {
	return &Dispatcher{runner: runShell}
}

// NewWithRunner substitutes the command runner. Used by tests.
func NewWithRunner(r Runner) *Dispatcher {
	return &Dispatcher{runner: r}
}

// Dispatch runs command via the shell on a new goroutine. An empty
// command is a no-op. Dispatch never blocks on the command and never
// surfaces its failure to the caller.
func (d *Dispatcher) Dispatch(command string) {
	if command == "" {
		return
	}

	go func() {
		if err := d.runner(command); err != nil {
			logrus.WithField("command", command).Errorf("command failed: %v", err)
		}
	}()
}
