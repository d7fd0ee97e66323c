package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadHandle ties a pending media load to the scene generation and the media
// slot it was started for.
type LoadHandle struct {
	Generation int
	Index      int
}

type mediaLoadedMsg struct {
	handle LoadHandle
	img    image.Image
	err    error
}

// StartLoad places an unloaded media object and returns the handle for its load.
func (s *Scene) StartLoad(src *MediaSource, pos Point) LoadHandle {
	id := s.AddMedia(src, pos)
	return LoadHandle{Generation: s.generation, Index: id}
}

// ResolveLoad attaches a decoded image to the media slot of h. Loads started
// before the last Clear are stale and ignored.
func (s *Scene) ResolveLoad(h LoadHandle, img image.Image) bool {
	if h.Generation != s.generation || h.Index < 0 || h.Index >= len(s.media) {
		return false
	}
	src := s.media[h.Index].Source
	if src == nil || src.Loaded() {
		return false
	}
	src.Img = img
	return true
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

func loadMediaCmd(h LoadHandle, path string) tea.Cmd {
	return func() tea.Msg {
		img, err := decodeImageFile(path)
		return mediaLoadedMsg{handle: h, img: img, err: err}
	}
}
