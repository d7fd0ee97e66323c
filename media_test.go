package main

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
	return path
}

func TestResolveLoad(t *testing.T) {
	s := NewScene()
	h := s.StartLoad(&MediaSource{Ref: "a.png"}, Point{X: 3, Y: 4})

	assert.True(t, s.ResolveLoad(h, image.NewRGBA(image.Rect(0, 0, 5, 6))))
	assert.Equal(t, Size{W: 5, H: 6}, s.Media()[0].Source.Size())
	// a second resolve for the same slot is ignored
	assert.False(t, s.ResolveLoad(h, image.NewRGBA(image.Rect(0, 0, 1, 1))))
}

func TestResolveLoadAfterClearIsIgnored(t *testing.T) {
	s := NewScene()
	stale := s.StartLoad(&MediaSource{Ref: "old.png"}, Point{})
	s.Clear()
	fresh := s.StartLoad(&MediaSource{Ref: "new.png"}, Point{})

	assert.Equal(t, stale.Index, fresh.Index)
	assert.False(t, s.ResolveLoad(stale, image.NewRGBA(image.Rect(0, 0, 9, 9))))
	assert.False(t, s.Media()[0].Source.Loaded())
	assert.True(t, s.ResolveLoad(fresh, image.NewRGBA(image.Rect(0, 0, 2, 2))))
}

func TestLoadMediaCmd(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "pic.png", 4, 3)
	h := LoadHandle{Generation: 2, Index: 1}

	msg, ok := loadMediaCmd(h, path)().(mediaLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	assert.Equal(t, h, msg.handle)
	assert.Equal(t, 4, msg.img.Bounds().Dx())

	msg = loadMediaCmd(h, filepath.Join(t.TempDir(), "missing.png"))().(mediaLoadedMsg)
	assert.True(t, errors.Is(msg.err, os.ErrNotExist))
}

func TestImportFiles(t *testing.T) {
	dir := t.TempDir()
	img := writeTestPNG(t, dir, "pic.png", 2, 2)
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0644))
	noExt := filepath.Join(dir, "snapshot")
	raw, err := os.ReadFile(img)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(noExt, raw, 0644))

	sources := ImportFiles([]string{img, txt, noExt, filepath.Join(dir, "missing.png.bak")})
	require.Len(t, sources, 2)
	assert.Equal(t, img, sources[0].Ref)
	assert.Equal(t, "image/png", sources[0].Mime)
	assert.Equal(t, noExt, sources[1].Ref)
	assert.Equal(t, "image/png", sources[1].Mime)
	assert.False(t, sources[0].Loaded())
}

func TestSplitImportInput(t *testing.T) {
	assert.Equal(t, []string{"/a.png", "/b c.jpg"}, splitImportInput(" /a.png, ,/b c.jpg "))
	assert.Empty(t, splitImportInput(""))
}
