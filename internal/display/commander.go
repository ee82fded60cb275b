package display

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Commander runs the external programs a Setter drives.
type Commander interface {
	Run(ctx context.Context, name string, args ...string) error
	Start(name string, args ...string) (Daemon, error)
}

// Daemon is a long-running helper started through a Commander.
type Daemon interface {
	Stop() error
}

// ExecCommander runs programs with os/exec.
type ExecCommander struct{}

// Run executes name and waits for it. A non-zero exit is an error carrying
// the program's output.
func (ExecCommander) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return fmt.Errorf("%s: %w", name, err)
		}
		return fmt.Errorf("%s: %w (%s)", name, err, msg)
	}
	return nil
}

// Start launches name in the background.
func (ExecCommander) Start(name string, args ...string) (Daemon, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	return &execDaemon{cmd: cmd}, nil
}

type execDaemon struct {
	cmd *exec.Cmd
}

func (d *execDaemon) Stop() error {
	if err := d.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	_ = d.cmd.Wait()
	return nil
}
