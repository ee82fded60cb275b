// Package rotation runs the wallpaper rotation cycle: reconcile the tracked
// collection with the directory, normalize counts, pick, apply, persist,
// sleep, and again.
package rotation

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"WallRotate/internal/catalog"
	"WallRotate/internal/logger"
	"WallRotate/internal/storage"
	"WallRotate/internal/wallpaper"

	"github.com/jonboulle/clockwork"
)

// Applier is the part of a display.Setter the rotation needs.
type Applier interface {
	Apply(ctx context.Context, path string) error
}

// Rotator owns the tracked collection for one wallpaper directory.
type Rotator struct {
	dir       string
	statePath string
	interval  time.Duration
	setter    Applier
	picker    *wallpaper.Picker
	clock     clockwork.Clock
}

// Option customises a Rotator.
type Option func(*Rotator)

// WithClock replaces the real clock used for sleeping between cycles.
func WithClock(c clockwork.Clock) Option {
	return func(r *Rotator) { r.clock = c }
}

// WithPicker replaces the default crypto-seeded picker.
func WithPicker(p *wallpaper.Picker) Option {
	return func(r *Rotator) { r.picker = p }
}

// New returns a Rotator for dir that changes the wallpaper every interval.
func New(dir string, interval time.Duration, setter Applier, opts ...Option) *Rotator {
	r := &Rotator{
		dir:       dir,
		statePath: storage.Path(dir),
		interval:  interval,
		setter:    setter,
		picker:    wallpaper.NewPicker(),
		clock:     clockwork.NewRealClock(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run loads the saved state and rotates until ctx is cancelled or a cycle
// fails. A cancellation that interrupts the setter ends the loop cleanly
// without persisting that cycle; otherwise cancellation is only observed
// between cycles, so a cycle is never cut short halfway through persisting.
func (r *Rotator) Run(ctx context.Context) error {
	entries, err := r.load()
	if err != nil {
		return err
	}
	for {
		entries, err = r.Cycle(ctx, entries)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				logger.Info("rotation stopped during apply")
				return nil
			}
			return err
		}
		logger.Debug("sleeping", "interval", r.interval)
		select {
		case <-ctx.Done():
			logger.Info("rotation stopped")
			return nil
		case <-r.clock.After(r.interval):
		}
	}
}

// Cycle runs one rotation over entries and returns the updated collection.
// The returned collection has been persisted.
func (r *Rotator) Cycle(ctx context.Context, entries []wallpaper.Entry) ([]wallpaper.Entry, error) {
	entries, err := r.reconcile(entries)
	if err != nil {
		return entries, err
	}
	entries = wallpaper.Normalize(entries)

	name, err := r.picker.Pick(entries)
	switch {
	case errors.Is(err, wallpaper.ErrEmptyCollection):
		logger.Warn("no wallpapers found", "dir", r.dir)
	case err != nil:
		return entries, err
	default:
		path := filepath.Join(r.dir, name)
		logger.Info("setting wallpaper", "path", path)
		if err := r.setter.Apply(ctx, path); err != nil {
			// A killed setter reports its own error; the cancellation is what matters.
			if ctx.Err() != nil {
				return entries, fmt.Errorf("apply %s interrupted: %w", name, ctx.Err())
			}
			return entries, fmt.Errorf("apply %s: %w", name, err)
		}
	}

	if err := storage.Save(r.statePath, entries); err != nil {
		return entries, err
	}
	return entries, nil
}

// State returns the reconciled collection without changing anything on disk.
func (r *Rotator) State() ([]wallpaper.Entry, error) {
	entries, err := r.load()
	if err != nil {
		return nil, err
	}
	return r.reconcile(entries)
}

func (r *Rotator) load() ([]wallpaper.Entry, error) {
	entries, found, err := storage.Load(r.statePath)
	if err != nil {
		return nil, err
	}
	if found {
		logger.Info("using previous state", "path", r.statePath, "entries", len(entries))
	} else {
		logger.Info("no previous state, starting fresh", "path", r.statePath)
	}
	return entries, nil
}

func (r *Rotator) reconcile(entries []wallpaper.Entry) ([]wallpaper.Entry, error) {
	names, err := catalog.Scan(r.dir)
	if err != nil {
		return entries, err
	}
	entries, ch := wallpaper.Reconcile(entries, names)
	for _, n := range ch.Added {
		logger.Info("tracking new wallpaper", "name", n)
	}
	for _, n := range ch.Removed {
		logger.Info("dropping missing wallpaper", "name", n)
	}
	return entries, nil
}
