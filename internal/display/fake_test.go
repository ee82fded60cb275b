package display

import (
	"context"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"
)

type recordingCommander struct {
	runs    []string
	started []string
	failOn  string
	daemons []*fakeDaemon
}

func (c *recordingCommander) Run(_ context.Context, name string, args ...string) error {
	line := strings.Join(append([]string{name}, args...), " ")
	c.runs = append(c.runs, line)
	if c.failOn != "" && strings.Contains(line, c.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (c *recordingCommander) Start(name string, args ...string) (Daemon, error) {
	c.started = append(c.started, name)
	d := &fakeDaemon{name: name}
	c.daemons = append(c.daemons, d)
	return d, nil
}

type fakeDaemon struct {
	name    string
	stopped bool
}

func (d *fakeDaemon) Stop() error {
	d.stopped = true
	return nil
}

type fakeProcs struct {
	running map[string]bool
	killed  []string
}

func (p *fakeProcs) Running(name string) (bool, error) { return p.running[name], nil }

func (p *fakeProcs) KillAll(name string) (int, error) {
	p.killed = append(p.killed, name)
	if p.running[name] {
		p.running[name] = false
		return 1, nil
	}
	return 0, nil
}

func testDeps(cmd *recordingCommander, procs *fakeProcs) deps {
	return deps{
		cmd:   cmd,
		procs: procs,
		clock: clockwork.NewRealClock(),
	}
}
