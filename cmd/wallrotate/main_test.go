package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"WallRotate/internal/config"
	"WallRotate/internal/storage"
	"WallRotate/internal/wallpaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config directory at a temp dir so no real
// config.yaml is read or written.
func isolate(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
}

func TestRun_MissingDirectory(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), config.ErrMissingDirectory.Error())
	assert.Contains(t, stderr.String(), "Usage: wallrotate")
	assert.Empty(t, stdout.String())
}

func TestRun_UnknownFlag(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--shuffle", t.TempDir()}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage: wallrotate")
}

func TestRun_InvalidInterval(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--interval=200000000", t.TempDir()}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "interval")
}

func TestRun_Help(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage: wallrotate")
	assert.Empty(t, stderr.String())
}

func TestRun_PrintState(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	for _, n := range []string{"a.png", "bb.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}
	require.NoError(t, storage.Save(storage.Path(dir), []wallpaper.Entry{{Name: "a.png", Count: 2}}))
	var stdout, stderr bytes.Buffer

	code := run([]string{"--print-state", dir}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "a.png : 2\nbb.jpg: 0\n", stdout.String())

	// Printing does not rewrite the state.
	saved, _, err := storage.Load(storage.Path(dir))
	require.NoError(t, err)
	assert.Equal(t, []wallpaper.Entry{{Name: "a.png", Count: 2}}, saved)
}

func TestRun_WriteConfig(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--write-config", "--interval=7", "--print-state", t.TempDir()}, &stdout, &stderr)

	require.Equal(t, 0, code)
	p, err := config.Path()
	require.NoError(t, err)
	got, err := config.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Interval)
}
