//go:build darwin

package display

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"WallRotate/internal/logger"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

var (
	sel_sharedWorkspace      = objc.RegisterName("sharedWorkspace")
	sel_mainScreen           = objc.RegisterName("mainScreen")
	sel_stringWithUTF8String = objc.RegisterName("stringWithUTF8String:")
	sel_fileURLWithPath      = objc.RegisterName("fileURLWithPath:")
	sel_dictionary           = objc.RegisterName("dictionary")
	sel_setDesktopImageURL   = objc.RegisterName("setDesktopImageURL:forScreen:options:error:")
	appKitOnce               sync.Once
	appKitErr                error
)

func loadAppKit() error {
	appKitOnce.Do(func() {
		_, appKitErr = purego.Dlopen("/System/Library/Frameworks/AppKit.framework/AppKit", purego.RTLD_NOW|purego.RTLD_GLOBAL)
	})
	return appKitErr
}

// darwinSetter goes through NSWorkspace and falls back to AppleScript when
// AppKit cannot be reached (e.g. when running without a window server
// session).
type darwinSetter struct {
	cmd Commander
}

func newPlatformSetter(d deps) (Setter, error) {
	return &darwinSetter{cmd: d.cmd}, nil
}

func (*darwinSetter) Name() string               { return "appkit" }
func (*darwinSetter) Init(context.Context) error { return nil }
func (*darwinSetter) Close() error               { return nil }

func (s *darwinSetter) Apply(ctx context.Context, path string) error {
	err := setDesktopImage(path)
	if err == nil {
		return nil
	}
	logger.Debug("NSWorkspace wallpaper change failed, trying osascript", "err", err)
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(path)
	return s.cmd.Run(ctx, "osascript", "-e", script)
}

// setDesktopImage sets path on the main screen.
func setDesktopImage(path string) error {
	if err := loadAppKit(); err != nil {
		return err
	}
	ws := objc.ID(objc.GetClass("NSWorkspace")).Send(sel_sharedWorkspace)
	screen := objc.ID(objc.GetClass("NSScreen")).Send(sel_mainScreen)
	if ws == 0 || screen == 0 {
		return errors.New("NSWorkspace or main screen unavailable")
	}
	str := objc.ID(objc.GetClass("NSString")).Send(sel_stringWithUTF8String, path)
	url := objc.ID(objc.GetClass("NSURL")).Send(sel_fileURLWithPath, str)
	opts := objc.ID(objc.GetClass("NSDictionary")).Send(sel_dictionary)
	if !objc.Send[bool](ws, sel_setDesktopImageURL, url, screen, opts, uintptr(0)) {
		return errors.New("setDesktopImageURL:forScreen:options:error: returned NO")
	}
	return nil
}
