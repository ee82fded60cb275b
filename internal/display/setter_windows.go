//go:build windows

package display

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfoW = user32.NewProc("SystemParametersInfoW")
)

const (
	SPI_SETDESKWALLPAPER  = 0x0014
	SPIF_UPDATEINIFILE    = 0x01
	SPIF_SENDWININICHANGE = 0x02
)

// windowsFormats are the extensions the desktop decodes without extra codecs.
var windowsFormats = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tiff"}

type windowsSetter struct{}

func newPlatformSetter(deps) (Setter, error) {
	return &windowsSetter{}, nil
}

func (*windowsSetter) Name() string               { return "user32" }
func (*windowsSetter) Init(context.Context) error { return nil }
func (*windowsSetter) Close() error               { return nil }

// Apply sets path as the wallpaper through SystemParametersInfoW and persists
// it to the user profile.
func (*windowsSetter) Apply(_ context.Context, path string) error {
	if NeedsConversion(path, windowsFormats) {
		// Windows keeps referring to the file, so the copy lives in the cache
		// dir instead of a temp file that is removed right away.
		dst, err := cachedJPEG()
		if err != nil {
			return err
		}
		if err := ConvertToJPEG(path, dst); err != nil {
			return err
		}
		path = dst
	}

	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	ok, _, callErr := procSystemParametersInfoW.Call(
		SPI_SETDESKWALLPAPER,
		0,
		uintptr(unsafe.Pointer(p)),
		SPIF_UPDATEINIFILE|SPIF_SENDWININICHANGE,
	)
	if ok == 0 {
		return fmt.Errorf("SystemParametersInfoW: %w", callErr)
	}
	return nil
}

func cachedJPEG() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("user cache dir: %w", err)
	}
	dir = filepath.Join(dir, "wallrotate")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "wallpaper.jpg"), nil
}
