// Package catalog lists the wallpaper images present in a directory.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExts is matched case-sensitively against the extension without its dot.
var imageExts = map[string]struct{}{
	"jpg":      {},
	"jpeg":     {},
	"png":      {},
	"gif":      {},
	"pnm":      {},
	"tga":      {},
	"tiff":     {},
	"webp":     {},
	"bmp":      {},
	"farbfeld": {},
}

// IsImage reports whether name carries one of the supported image extensions.
// A name that is only an extension (".png") has none.
func IsImage(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return false
	}
	_, ok := imageExts[strings.TrimPrefix(ext, ".")]
	return ok
}

// Scan returns the names of the image files directly inside dir, sorted.
// Entries that cannot be inspected are skipped; failing to read dir itself is
// an error.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read wallpaper dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, d := range entries {
		name := d.Name()
		if !IsImage(name) || !isFile(dir, d) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isFile(dir string, d fs.DirEntry) bool {
	switch {
	case d.Type().IsRegular():
		return true
	case d.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(filepath.Join(dir, d.Name()))
		return err == nil && info.Mode().IsRegular()
	default:
		return false
	}
}
