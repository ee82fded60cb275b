// Package wallpaper holds the tracked wallpaper collection and the operations
// that keep it in shape between rotations: reconciliation against the
// directory, count normalization and count-weighted selection.
package wallpaper

// Entry is one tracked image file and how often it has been shown since the
// counts were last normalized.
type Entry struct {
	Name  string
	Count uint64
}

// Names returns the entry names in collection order.
func Names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
