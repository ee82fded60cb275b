package display

import (
	"context"
	"net/url"

	"WallRotate/internal/config"
	"WallRotate/internal/logger"
)

// plasma uses KDE's plasma-apply-wallpaperimage.
type plasma struct{ cmd Commander }

func (p *plasma) Name() string               { return config.ProgramPlasma }
func (p *plasma) Init(context.Context) error { return nil }
func (p *plasma) Close() error               { return nil }

func (p *plasma) Apply(ctx context.Context, path string) error {
	return p.cmd.Run(ctx, "plasma-apply-wallpaperimage", path)
}

// feh sets the root window background on X11.
type feh struct{ cmd Commander }

func (f *feh) Name() string               { return config.ProgramFeh }
func (f *feh) Init(context.Context) error { return nil }
func (f *feh) Close() error               { return nil }

func (f *feh) Apply(ctx context.Context, path string) error {
	return f.cmd.Run(ctx, "feh", "--bg-fill", path)
}

// gnome writes the GNOME background keys through gsettings.
type gnome struct{ cmd Commander }

func (g *gnome) Name() string               { return config.ProgramGnome }
func (g *gnome) Init(context.Context) error { return nil }
func (g *gnome) Close() error               { return nil }

func (g *gnome) Apply(ctx context.Context, path string) error {
	uri := (&url.URL{Scheme: "file", Path: path}).String()
	if err := g.cmd.Run(ctx, "gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri); err != nil {
		return err
	}
	// picture-uri-dark only exists from GNOME 42 on.
	if err := g.cmd.Run(ctx, "gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri); err != nil {
		logger.Debug("gsettings picture-uri-dark not set", "err", err)
	}
	return nil
}
