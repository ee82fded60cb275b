package display

import (
	"github.com/kbinani/screenshot"
)

// Display is a connected monitor as reported by the OS.
type Display struct {
	Index  int
	Width  int
	Height int
}

// Displays returns the currently active displays. It returns nothing when
// the windowing system cannot be reached.
func Displays() []Display {
	n := screenshot.NumActiveDisplays()
	out := make([]Display, 0, max(n, 0))
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		out = append(out, Display{Index: i, Width: b.Dx(), Height: b.Dy()})
	}
	return out
}
