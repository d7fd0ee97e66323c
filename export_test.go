package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEntryImage(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRasterizer(8, 8)
	require.NoError(t, err)
	r.Render(BuildDrawList(NewScene(), nil, palette[0], Size{W: 8, H: 8}))
	uri, err := r.DataURI()
	require.NoError(t, err)

	locked := LockedEntry{ID: "l", Image: uri, LockedUntil: time.Now().Add(time.Hour), IsLocked: true}
	err = exportEntryImage(locked, filepath.Join(dir, "locked.png"))
	assert.ErrorIs(t, err, ErrEntryLocked)
	assert.NoFileExists(t, filepath.Join(dir, "locked.png"))

	open := LockedEntry{ID: "u", Image: uri}
	path := filepath.Join(dir, "open.png")
	require.NoError(t, exportEntryImage(open, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}

func TestExportName(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "capsule-0190abcd-20260102.png", exportName(now, "0190abcd-1234-7000-8000-000000000000"))
	assert.Equal(t, "capsule-legacy-0-20260102.png", exportName(now, "legacy-0"))
}
