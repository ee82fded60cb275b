// Package display applies wallpaper images through whatever the desktop
// offers: a helper program on Linux, user32 on Windows, AppKit on macOS.
package display

import (
	"context"
	"errors"
	"time"

	"WallRotate/internal/process"

	"github.com/jonboulle/clockwork"
)

// ErrUnsupported is returned when no setter exists for the running platform.
var ErrUnsupported = errors.New("display: wallpaper setting not supported on this platform")

// ErrNoDisplay is returned when an X11 setter is chosen but no display is
// reachable, usually because DISPLAY is unset.
var ErrNoDisplay = errors.New("display: no active X11 display; is DISPLAY set?")

// Setter changes the desktop wallpaper. A Setter owns any helper daemon it
// starts and stops it in Close.
type Setter interface {
	Name() string
	Init(ctx context.Context) error
	Apply(ctx context.Context, path string) error
	Close() error
}

// deps are the collaborators shared by the program-driven setters.
type deps struct {
	cmd   Commander
	procs process.Table
	clock clockwork.Clock

	// settle is how long a freshly started daemon gets before use.
	settle time.Duration
	// restartDelay is how long swww may animate before its daemon restarts.
	restartDelay time.Duration
}

func defaultDeps() deps {
	return deps{
		cmd:          ExecCommander{},
		procs:        process.System{},
		clock:        clockwork.NewRealClock(),
		settle:       2 * time.Second,
		restartDelay: 10 * time.Second,
	}
}

// startDaemon launches name unless one is already running, giving it time
// to come up. It returns nil when an existing daemon was reused.
func (d deps) startDaemon(name string) (Daemon, error) {
	running, err := d.procs.Running(name)
	if err != nil {
		return nil, err
	}
	if running {
		return nil, nil
	}
	return d.spawn(name)
}

func (d deps) spawn(name string) (Daemon, error) {
	daemon, err := d.cmd.Start(name)
	if err != nil {
		return nil, err
	}
	d.clock.Sleep(d.settle)
	return daemon, nil
}
