package main

import (
	"image"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune the same width.
type fixedMeasurer float64

func (f fixedMeasurer) MeasureText(s string) float64 {
	return float64(f) * float64(utf8.RuneCountInString(s))
}

func loadedSource(w, h int) *MediaSource {
	return &MediaSource{Ref: "test.png", Mime: "image/png", Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func TestSceneMediaAtUsesUnscaledSize(t *testing.T) {
	s := NewScene()
	s.AddMedia(loadedSource(1000, 1000), Point{X: 0, Y: 0})

	// drawn at 300x300 on an 800x600 canvas, still hit at 900
	assert.Equal(t, 0, s.MediaAt(Point{X: 900, Y: 900}))
	assert.Equal(t, 0, s.MediaAt(Point{X: 1000, Y: 1000}))
	assert.Equal(t, -1, s.MediaAt(Point{X: 1001, Y: 10}))
}

func TestSceneMediaAtLowestIndexWins(t *testing.T) {
	s := NewScene()
	s.AddMedia(loadedSource(100, 100), Point{X: 0, Y: 0})
	s.AddMedia(loadedSource(100, 100), Point{X: 50, Y: 50})

	// the second image renders on top but the first is hit
	assert.Equal(t, 0, s.MediaAt(Point{X: 75, Y: 75}))
	assert.Equal(t, 1, s.MediaAt(Point{X: 120, Y: 120}))
}

func TestSceneMediaAtSkipsUnloaded(t *testing.T) {
	s := NewScene()
	s.AddMedia(&MediaSource{Ref: "pending.png"}, Point{})
	assert.Equal(t, -1, s.MediaAt(Point{}))
}

func TestSceneTextAt(t *testing.T) {
	s := NewScene()
	s.AddText("hello", Point{X: 100, Y: 100})
	m := fixedMeasurer(10)

	tests := []struct {
		name     string
		p        Point
		expected int
	}{
		{"baseline left", Point{X: 100, Y: 100}, 0},
		{"top right", Point{X: 150, Y: 76}, 0},
		{"below baseline", Point{X: 120, Y: 101}, -1},
		{"above box", Point{X: 120, Y: 75}, -1},
		{"past width", Point{X: 151, Y: 90}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.TextAt(tt.p, m))
		})
	}
	assert.Equal(t, -1, s.TextAt(Point{X: 100, Y: 100}, nil))
}

func TestSceneTextAtLowestIndexWins(t *testing.T) {
	s := NewScene()
	s.AddText("first", Point{X: 100, Y: 100})
	s.AddText("second", Point{X: 120, Y: 110})
	m := fixedMeasurer(10)

	// both boxes contain the point; the second renders on top
	assert.Equal(t, 0, s.TextAt(Point{X: 130, Y: 95}, m))
	assert.Equal(t, 1, s.TextAt(Point{X: 170, Y: 105}, m))
}

func TestSceneSetTextContent(t *testing.T) {
	s := NewScene()
	id := s.AddText("before", Point{})

	require.NoError(t, s.SetTextContent(id, "after"))
	assert.Equal(t, "after", s.GetTextContent(id))

	assert.ErrorIs(t, s.SetTextContent(id, "   "), ErrEmptyText)
	assert.Equal(t, "after", s.GetTextContent(id))
	assert.Equal(t, "", s.GetTextContent(7))
}

func TestSceneClear(t *testing.T) {
	s := NewScene()
	s.AddPath(Path{Points: []Point{{}}})
	s.AddMedia(loadedSource(1, 1), Point{})
	s.AddText("x", Point{})
	gen := s.Generation()

	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, gen+1, s.Generation())
}
