// Package storage persists the tracked wallpaper collection as state.bin
// inside the wallpaper directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"WallRotate/internal/wallpaper"

	"github.com/fxamacker/cbor/v2"
)

// FileName is the state file kept next to the wallpapers.
const FileName = "state.bin"

// formatVersion is bumped whenever the encoded layout changes.
const formatVersion = 1

var (
	// ErrCorruptState is returned when an existing state file cannot be decoded.
	ErrCorruptState = errors.New("corrupt state file")
	// ErrUnsupportedVersion is returned for state written by an incompatible version.
	ErrUnsupportedVersion = errors.New("unsupported state version")
)

type record struct {
	Name  string `cbor:"1,keyasint"`
	Count uint64 `cbor:"2,keyasint"`
}

type envelope struct {
	Version int      `cbor:"1,keyasint"`
	Entries []record `cbor:"2,keyasint"`
}

var (
	encMode = mustEncMode()
	decMode = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// File names are bytes on most filesystems, so names that are not valid
// UTF-8 must load back as written.
func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{UTF8: cbor.UTF8DecodeInvalid}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// Path returns the state file path for the wallpaper directory dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the collection stored at path. found is false, with a nil error,
// when no state file exists yet.
func Load(path string) (entries []wallpaper.Entry, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read state: %w", err)
	}
	entries, err = Decode(data)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}
	return entries, true, nil
}

// Save writes entries to path, replacing any previous state atomically.
func Save(path string, entries []wallpaper.Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Dir(path), filepath.Base(path), data); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Encode returns the deterministic binary form of entries.
func Encode(entries []wallpaper.Entry) ([]byte, error) {
	env := envelope{Version: formatVersion, Entries: make([]record, len(entries))}
	for i, e := range entries {
		env.Entries[i] = record{Name: e.Name, Count: e.Count}
	}
	data, err := encMode.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// Decode parses data produced by Encode.
func Decode(data []byte) ([]wallpaper.Entry, error) {
	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("%w: %w %d", ErrCorruptState, ErrUnsupportedVersion, env.Version)
	}
	entries := make([]wallpaper.Entry, len(env.Entries))
	for i, r := range env.Entries {
		entries[i] = wallpaper.Entry{Name: r.Name, Count: r.Count}
	}
	return entries, nil
}
