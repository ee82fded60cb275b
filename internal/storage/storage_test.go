package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"WallRotate/internal/wallpaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsColdStart(t *testing.T) {
	entries, found, err := Load(Path(t.TempDir()))

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, entries)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := Path(t.TempDir())
	want := []wallpaper.Entry{
		{Name: "a.png", Count: 0},
		{Name: "b.jpg", Count: 7},
		{Name: "日本.webp", Count: 1 << 40},
	}

	require.NoError(t, Save(path, want))
	got, found, err := Load(path)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestSaveLoad_NonUTF8Name(t *testing.T) {
	path := Path(t.TempDir())
	want := []wallpaper.Entry{{Name: "caf\xe9.jpg", Count: 3}, {Name: "b.png", Count: 1}}

	require.NoError(t, Save(path, want))
	got, found, err := Load(path)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	// Saving what was loaded must not change the file.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, Save(path, got))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveLoad_EmptyCollection(t *testing.T) {
	path := Path(t.TempDir())

	require.NoError(t, Save(path, nil))
	got, found, err := Load(path)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestEncode_Deterministic(t *testing.T) {
	entries := []wallpaper.Entry{{Name: "x.png", Count: 3}, {Name: "y.png", Count: 1}}

	first, err := Encode(entries)
	require.NoError(t, err)
	decoded, err := Decode(first)
	require.NoError(t, err)
	second, err := Encode(decoded)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSave_Overwrites(t *testing.T) {
	path := Path(t.TempDir())
	require.NoError(t, Save(path, []wallpaper.Entry{{Name: "old.png", Count: 2}}))
	require.NoError(t, Save(path, []wallpaper.Entry{{Name: "new.png"}}))

	got, _, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, []wallpaper.Entry{{Name: "new.png"}}, got)
}

func TestLoad_CorruptFile(t *testing.T) {
	cases := map[string][]byte{
		"garbage":   []byte("definitely not cbor"),
		"empty":     {},
		"truncated": nil,
	}
	full, err := Encode([]wallpaper.Entry{{Name: "a.png", Count: 1}, {Name: "b.png", Count: 2}})
	require.NoError(t, err)
	cases["truncated"] = full[:len(full)-3]

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := Path(t.TempDir())
			require.NoError(t, os.WriteFile(path, data, 0o644))

			_, found, err := Load(path)

			assert.True(t, found)
			assert.ErrorIs(t, err, ErrCorruptState)
		})
	}
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	data, err := encMode.Marshal(envelope{Version: 99})
	require.NoError(t, err)
	path := Path(t.TempDir())
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, _, err = Load(path)

	assert.ErrorIs(t, err, ErrCorruptState)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestSave_NoTempLeft(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(Path(dir), []wallpaper.Entry{{Name: "a.png"}}))

	names := dirNames(t, dir)
	assert.Equal(t, []string{FileName}, names)
}

func TestSave_RenameFailureKeepsPreviousState(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir)
	prev := []wallpaper.Entry{{Name: "keep.png", Count: 4}}
	require.NoError(t, Save(path, prev))

	old := renameFunc
	renameFunc = func(string, string) error { return os.ErrPermission }
	defer func() { renameFunc = old }()

	err := Save(path, []wallpaper.Entry{{Name: "lost.png"}})
	require.ErrorIs(t, err, os.ErrPermission)

	for _, n := range dirNames(t, dir) {
		assert.False(t, strings.HasPrefix(n, "."+FileName+".tmp-"), "temp file left: %s", n)
	}
	got, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, prev, got)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	des, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, d := range des {
		out = append(out, d.Name())
	}
	return out
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("walls", "state.bin"), Path("walls"))
}
