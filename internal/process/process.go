// Package process finds and stops processes by executable name. It backs the
// single-instance check and the setter daemons that wallrotate supervises.
package process

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// Table looks up and kills processes by name.
type Table interface {
	Running(name string) (bool, error)
	KillAll(name string) (int, error)
}

// System is the Table over the live process list.
type System struct{}

// Running reports whether any process other than this one is called name.
func (System) Running(name string) (bool, error) {
	procs, err := find(name)
	if err != nil {
		return false, err
	}
	return len(procs) > 0, nil
}

// KillAll kills every process called name except this one and returns how
// many were killed.
func (System) KillAll(name string) (int, error) {
	procs, err := find(name)
	if err != nil {
		return 0, err
	}
	var errs []error
	killed := 0
	for _, p := range procs {
		if err := p.Kill(); err != nil {
			errs = append(errs, fmt.Errorf("kill %s (pid %d): %w", name, p.Pid, err))
			continue
		}
		killed++
	}
	return killed, errors.Join(errs...)
}

// KillOtherInstances stops earlier copies of the running executable.
func KillOtherInstances() (int, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, err
	}
	return System{}.KillAll(ExecName(exe))
}

// ExecName strips directories and a Windows .exe suffix from path.
func ExecName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".exe")
}

func find(name string) ([]*process.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	self := int32(os.Getpid())
	var out []*process.Process
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		n, err := p.Name()
		if err != nil {
			// Exited while listing, or not ours to inspect.
			continue
		}
		if ExecName(n) == name {
			out = append(out, p)
		}
	}
	return out, nil
}
