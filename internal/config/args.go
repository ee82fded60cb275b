package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidOption marks an unknown flag or a malformed value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrMissingDirectory is returned when no wallpaper directory is given.
	ErrMissingDirectory = errors.New("missing wallpaper directory")
	// ErrInvalidDirectory is returned when the directory argument is not a directory.
	ErrInvalidDirectory = errors.New("not a directory")
)

// Program names accepted by --program, keyed by the suffix that selects them.
const (
	ProgramSWWW      = "swww"
	ProgramPlasma    = "plasma-apply-wallpaperimage"
	ProgramHyprpaper = "hyprpaper"
	ProgramFeh       = "feh"
	ProgramGnome     = "gnome"
)

var programSuffixes = []struct{ suffix, name string }{
	{ProgramSWWW, ProgramSWWW},
	{ProgramPlasma, ProgramPlasma},
	{ProgramHyprpaper, ProgramHyprpaper},
	{ProgramFeh, ProgramFeh},
	{ProgramGnome, ProgramGnome},
	{"gsettings", ProgramGnome},
}

// ProgramName maps a --program value to its canonical name. Matching is by
// suffix, so a full path to the executable is accepted too.
func ProgramName(s string) (string, error) {
	for _, p := range programSuffixes {
		if strings.HasSuffix(s, p.suffix) {
			return p.name, nil
		}
	}
	return "", fmt.Errorf("%w: unknown program %q", ErrInvalidOption, s)
}

// Options is the fully resolved invocation.
type Options struct {
	Config

	// Dir is the absolute path of the wallpaper directory.
	Dir         string
	PrintState  bool
	Help        bool
	WriteConfig bool
}

// IntervalDuration returns the rotation interval.
func (o Options) IntervalDuration() time.Duration {
	return time.Duration(o.Interval) * time.Minute
}

// ParseArgs applies command-line arguments on top of base. The wallpaper
// directory is the single positional argument and must come last.
func ParseArgs(args []string, base Config) (Options, error) {
	opts := Options{Config: base}

	fs := flag.NewFlagSet("wallrotate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.PrintState, "print-state", false, "")
	fs.BoolVar(&opts.RestartSWWW, "restart-swww", opts.RestartSWWW, "")
	fs.BoolVar(&opts.WriteConfig, "write-config", false, "")
	fs.Func("interval", "", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: --interval=%s", ErrInvalidOption, s)
		}
		if err := checkInterval(n); err != nil {
			return err
		}
		opts.Interval = n
		return nil
	})
	fs.Func("program", "", func(s string) error {
		p, err := ProgramName(s)
		if err != nil {
			return err
		}
		opts.Program = p
		return nil
	})

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.Help = true
			return opts, nil
		}
		return opts, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	switch fs.NArg() {
	case 0:
		return opts, ErrMissingDirectory
	case 1:
	default:
		return opts, fmt.Errorf("%w: unexpected argument %q", ErrInvalidOption, fs.Arg(0))
	}

	dir, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		return opts, fmt.Errorf("%w: %v", ErrInvalidDirectory, err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return opts, fmt.Errorf("%w: %s", ErrInvalidDirectory, fs.Arg(0))
	}
	opts.Dir = dir
	return opts, nil
}

// Usage writes the help text.
func Usage(w io.Writer) {
	fmt.Fprintf(w, `Usage: wallrotate [OPTIONS] DIRECTORY
       wallrotate --print-state DIRECTORY

Options:
  --help                 show this help
  --interval=<minutes>   minutes between wallpaper changes (default %d)
  --program=<name>       swww|hyprpaper|plasma-apply-wallpaperimage|gnome|feh
  --restart-swww         restart swww-daemon after every change; may resolve
                         out-of-sync or overlapping animations
  --print-state          print how often each wallpaper was shown and exit
  --write-config         save the effective settings to the config file

Environment:
  WALLROTATE_INTERVAL, WALLROTATE_PROGRAM, WALLROTATE_RESTART_SWWW,
  WALLROTATE_LOG_LEVEL, WALLROTATE_DEBUG=1
`, DefaultInterval)
}
