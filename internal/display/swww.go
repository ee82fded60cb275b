package display

import (
	"context"

	"WallRotate/internal/config"
	"WallRotate/internal/logger"
)

const swwwDaemon = "swww-daemon"

// swww drives the swww animated wallpaper daemon on Wayland.
type swww struct {
	deps
	// restart kills and respawns the daemon after every change, which clears
	// up overlapping transition animations on some compositors.
	restart bool
	daemon  Daemon
}

func (s *swww) Name() string { return config.ProgramSWWW }

func (s *swww) Init(context.Context) error {
	d, err := s.startDaemon(swwwDaemon)
	if err != nil {
		return err
	}
	s.daemon = d
	return nil
}

func (s *swww) Apply(ctx context.Context, path string) error {
	if err := s.cmd.Run(ctx, "swww", "img", path); err != nil {
		return err
	}
	if !s.restart {
		return nil
	}
	s.clock.Sleep(s.restartDelay)
	if err := s.stopDaemon(); err != nil {
		return err
	}
	d, err := s.spawn(swwwDaemon)
	if err != nil {
		return err
	}
	s.daemon = d
	return nil
}

func (s *swww) stopDaemon() error {
	if s.daemon != nil {
		err := s.daemon.Stop()
		s.daemon = nil
		return err
	}
	n, err := s.procs.KillAll(swwwDaemon)
	logger.Debug("killed external swww-daemon", "count", n)
	return err
}

func (s *swww) Close() error {
	if s.daemon == nil {
		return nil
	}
	err := s.daemon.Stop()
	s.daemon = nil
	return err
}
