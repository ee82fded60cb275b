package display

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodable lists the extensions a registered image decoder can read.
var decodable = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"}

// NeedsConversion reports whether path is in a format outside native that
// can be transcoded. Formats nothing here can decode are passed through so
// the setter reports on them itself.
func NeedsConversion(path string, native []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return !slices.Contains(native, ext) && slices.Contains(decodable, ext)
}

// ConvertToJPEG decodes src and writes it to dst as JPEG.
func ConvertToJPEG(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(src), err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 95}); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Close()
}

// TempJPEG converts path to a temporary JPEG and returns its path.
// Caller must call cleanup when done to remove the temp file.
func TempJPEG(path string) (jpegPath string, cleanup func(), err error) {
	tmp, err := os.CreateTemp("", "wallrotate-*.jpg")
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	if err := ConvertToJPEG(path, tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", nil, err
	}
	return tmpPath, func() { os.Remove(tmpPath) }, nil
}
