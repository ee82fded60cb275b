package wallpaper

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"
)

// FormatState writes one "name: count" line per entry, sorted by name with
// the names padded to a common width.
func FormatState(w io.Writer, entries []Entry) error {
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b Entry) int { return cmp.Compare(a.Name, b.Name) })

	width := 0
	for _, e := range sorted {
		width = max(width, utf8.RuneCountInString(e.Name))
	}
	for _, e := range sorted {
		if _, err := fmt.Fprintf(w, "%-*s: %d\n", width, e.Name, e.Count); err != nil {
			return err
		}
	}
	return nil
}
