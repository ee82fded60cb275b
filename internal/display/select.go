package display

import (
	"os"
	"runtime"
	"slices"
	"strings"

	"WallRotate/internal/config"
	"WallRotate/internal/logger"
)

// Env is the slice of the environment that decides which Setter to use.
type Env struct {
	GOOS           string
	WaylandDisplay string
	// CurrentDesktop is XDG_CURRENT_DESKTOP, a colon-separated list.
	CurrentDesktop string
	// Displays enumerates monitors; nil skips the check.
	Displays func() []Display
}

// EnvFromOS probes the running process.
func EnvFromOS() Env {
	return Env{
		GOOS:           runtime.GOOS,
		WaylandDisplay: os.Getenv("WAYLAND_DISPLAY"),
		CurrentDesktop: os.Getenv("XDG_CURRENT_DESKTOP"),
		Displays:       Displays,
	}
}

// Wayland reports whether the session runs under a Wayland compositor.
func (e Env) Wayland() bool { return e.WaylandDisplay != "" }

func (e Env) desktop(name string) bool {
	return slices.ContainsFunc(strings.Split(e.CurrentDesktop, ":"), func(s string) bool {
		return strings.EqualFold(s, name)
	})
}

// Options carry the user's setter preferences.
type Options struct {
	// Program is a canonical config.Program* name, or empty to auto-detect.
	Program     string
	RestartSWWW bool
}

// Select picks the Setter for env.
func Select(env Env, opts Options) (Setter, error) {
	return selectWith(env, opts, defaultDeps())
}

func selectWith(env Env, opts Options, d deps) (Setter, error) {
	switch env.GOOS {
	case "windows", "darwin":
		return newPlatformSetter(d)
	}

	program := opts.Program
	if program == "" {
		program = detectProgram(env)
	}
	if !env.Wayland() && (program == config.ProgramSWWW || program == config.ProgramHyprpaper) {
		logger.Warn("not running under Wayland, using feh instead", "program", program)
		program = config.ProgramFeh
	}

	// feh draws on the X root window, so it needs an X display to talk to.
	if env.Displays != nil {
		ds := env.Displays()
		for _, disp := range ds {
			logger.Debug("display", "index", disp.Index, "width", disp.Width, "height", disp.Height)
		}
		if len(ds) == 0 && !env.Wayland() && program == config.ProgramFeh {
			return nil, ErrNoDisplay
		}
	}

	switch program {
	case config.ProgramSWWW:
		return &swww{deps: d, restart: opts.RestartSWWW}, nil
	case config.ProgramHyprpaper:
		return &hyprpaper{deps: d}, nil
	case config.ProgramPlasma:
		return &plasma{cmd: d.cmd}, nil
	case config.ProgramGnome:
		return &gnome{cmd: d.cmd}, nil
	case config.ProgramFeh:
		return &feh{cmd: d.cmd}, nil
	default:
		return nil, ErrUnsupported
	}
}

func detectProgram(env Env) string {
	switch {
	case !env.Wayland():
		return config.ProgramFeh
	case env.desktop("KDE"):
		logger.Info("KDE detected, using plasma-apply-wallpaperimage; override with --program")
		return config.ProgramPlasma
	case env.desktop("GNOME"):
		logger.Info("GNOME detected, using gsettings; override with --program")
		return config.ProgramGnome
	default:
		return config.ProgramSWWW
	}
}
