package display

import (
	"context"

	"WallRotate/internal/config"
)

// hyprpaperFormats are the extensions hyprpaper decodes itself; anything
// else is transcoded to JPEG first.
var hyprpaperFormats = []string{".jpg", ".jpeg", ".png", ".webp"}

// hyprpaper drives Hyprland's hyprpaper through hyprctl.
type hyprpaper struct {
	deps
	daemon Daemon
}

func (h *hyprpaper) Name() string { return config.ProgramHyprpaper }

func (h *hyprpaper) Init(context.Context) error {
	d, err := h.startDaemon("hyprpaper")
	if err != nil {
		return err
	}
	h.daemon = d
	return nil
}

func (h *hyprpaper) Apply(ctx context.Context, path string) error {
	if NeedsConversion(path, hyprpaperFormats) {
		jpg, cleanup, err := TempJPEG(path)
		if err != nil {
			return err
		}
		defer cleanup()
		path = jpg
	}
	if err := h.cmd.Run(ctx, "hyprctl", "hyprpaper", "preload", path); err != nil {
		return err
	}
	if err := h.cmd.Run(ctx, "hyprctl", "hyprpaper", "wallpaper", ","+path); err != nil {
		return err
	}
	// Unloading right away races the switch; give hyprpaper a moment.
	h.clock.Sleep(h.settle)
	return h.cmd.Run(ctx, "hyprctl", "hyprpaper", "unload", "all")
}

func (h *hyprpaper) Close() error {
	if h.daemon == nil {
		return nil
	}
	err := h.daemon.Stop()
	h.daemon = nil
	return err
}
