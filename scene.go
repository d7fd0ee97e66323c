package main

import (
	"image"
	"strings"
)

// MediaSource is an image placed on the canvas. Img stays nil until the load
// that produced it completes.
type MediaSource struct {
	Ref  string
	Mime string
	Img  image.Image
}

func (m *MediaSource) Loaded() bool {
	return m != nil && m.Img != nil
}

// Size returns the intrinsic (unscaled) pixel size, or zero when not loaded.
func (m *MediaSource) Size() Size {
	if !m.Loaded() {
		return Size{}
	}
	b := m.Img.Bounds()
	return Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

type MediaObject struct {
	Source   *MediaSource
	Position Point
}

type TextObject struct {
	Content  string
	Position Point // left end of the baseline
}

// TextMeasurer reports the rendered width of a string in canvas pixels.
type TextMeasurer interface {
	MeasureText(s string) float64
}

type Scene struct {
	paths      []Path
	media      []MediaObject
	texts      []TextObject
	generation int
}

func NewScene() *Scene {
	return &Scene{
		paths: make([]Path, 0),
		media: make([]MediaObject, 0),
		texts: make([]TextObject, 0),
	}
}

func (s *Scene) Paths() []Path        { return s.paths }
func (s *Scene) Media() []MediaObject { return s.media }
func (s *Scene) Texts() []TextObject  { return s.texts }

func (s *Scene) Empty() bool {
	return len(s.paths) == 0 && len(s.media) == 0 && len(s.texts) == 0
}

// Generation changes every time the scene is cleared.
func (s *Scene) Generation() int {
	return s.generation
}

func (s *Scene) AddPath(p Path) {
	s.paths = append(s.paths, p)
}

// AddMedia places a media object and returns its index.
func (s *Scene) AddMedia(src *MediaSource, pos Point) int {
	s.media = append(s.media, MediaObject{Source: src, Position: pos})
	return len(s.media) - 1
}

func (s *Scene) AddText(content string, pos Point) int {
	s.texts = append(s.texts, TextObject{Content: content, Position: pos})
	return len(s.texts) - 1
}

func (s *Scene) SetMediaPosition(id int, pos Point) {
	if id >= 0 && id < len(s.media) {
		s.media[id].Position = pos
	}
}

func (s *Scene) SetTextPosition(id int, pos Point) {
	if id >= 0 && id < len(s.texts) {
		s.texts[id].Position = pos
	}
}

func (s *Scene) GetTextContent(id int) string {
	if id >= 0 && id < len(s.texts) {
		return s.texts[id].Content
	}
	return ""
}

// SetTextContent replaces the content of a text object. Blank content is
// rejected and leaves the object unchanged.
func (s *Scene) SetTextContent(id int, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyText
	}
	if id >= 0 && id < len(s.texts) {
		s.texts[id].Content = content
	}
	return nil
}

// Clear removes everything and invalidates media loads started before it.
func (s *Scene) Clear() {
	s.paths = s.paths[:0]
	s.media = s.media[:0]
	s.texts = s.texts[:0]
	s.generation++
}

// MediaAt returns the first media object whose unscaled source box contains p,
// or -1. Earlier objects win even though later ones render above them.
func (s *Scene) MediaAt(p Point) int {
	for i, m := range s.media {
		size := m.Source.Size()
		if size.W == 0 || size.H == 0 {
			continue
		}
		if p.X >= m.Position.X && p.X <= m.Position.X+size.W &&
			p.Y >= m.Position.Y && p.Y <= m.Position.Y+size.H {
			return i
		}
	}
	return -1
}

// TextAt returns the first text object whose box contains p, or -1. The box
// spans the measured width and extends textSize above the baseline.
func (s *Scene) TextAt(p Point, measure TextMeasurer) int {
	if measure == nil {
		return -1
	}
	for i, t := range s.texts {
		width := measure.MeasureText(t.Content)
		if p.X >= t.Position.X && p.X <= t.Position.X+width &&
			p.Y >= t.Position.Y-textSize && p.Y <= t.Position.Y {
			return i
		}
	}
	return -1
}
