package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBackend struct {
	ops []DrawOp
}

func (b *recordingBackend) Clear(w, h float64) { b.ops = append(b.ops, OpClear) }
func (b *recordingBackend) DrawImage(img image.Image, x, y, w, h float64) {
	b.ops = append(b.ops, OpImage)
}
func (b *recordingBackend) StrokePolyline(points []Point, col color.RGBA, width float64) {
	b.ops = append(b.ops, OpPolyline)
}
func (b *recordingBackend) FillText(s string, x, y, size float64, col color.RGBA) {
	b.ops = append(b.ops, OpText)
}

var testCanvas = Size{W: 800, H: 600}

func TestBuildDrawListOrder(t *testing.T) {
	s := NewScene()
	s.AddText("note", Point{X: 1, Y: 30})
	s.AddPath(Path{Points: []Point{{}, {X: 1}}, Color: palette[0]})
	s.AddMedia(loadedSource(10, 10), Point{})
	rec := &StrokeRecorder{}
	rec.Begin(Point{X: 5, Y: 5}, palette[4])
	rec.Move(Point{X: 6, Y: 6})

	cmds := BuildDrawList(s, rec, palette[4], testCanvas)
	b := &recordingBackend{}
	Replay(cmds, b)

	assert.Equal(t, []DrawOp{OpClear, OpImage, OpPolyline, OpText, OpPolyline}, b.ops)
	live := cmds[len(cmds)-1]
	assert.Equal(t, palette[4], live.Color)
	assert.Equal(t, []Point{{5, 5}, {6, 6}}, live.Points)
}

func TestBuildDrawListSkipsUnloadedMedia(t *testing.T) {
	s := NewScene()
	s.AddMedia(&MediaSource{Ref: "pending.png"}, Point{})

	cmds := BuildDrawList(s, nil, palette[0], testCanvas)
	require.Len(t, cmds, 1)
	assert.Equal(t, OpClear, cmds[0].Op)
}

func TestBuildDrawListScalesMedia(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		expectW float64
		expectH float64
	}{
		{"large landscape", 1600, 800, 400, 200},
		{"large portrait", 300, 1200, 75, 300},
		{"small image is scaled up", 100, 100, 300, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			s.AddMedia(loadedSource(tt.w, tt.h), Point{X: 7, Y: 9})
			cmds := BuildDrawList(s, nil, palette[0], testCanvas)
			require.Len(t, cmds, 2)
			img := cmds[1]
			assert.Equal(t, OpImage, img.Op)
			assert.InDelta(t, tt.expectW, img.W, 1e-9)
			assert.InDelta(t, tt.expectH, img.H, 1e-9)
			assert.Equal(t, 7.0, img.X)
			assert.Equal(t, 9.0, img.Y)
		})
	}
}

func TestBuildDrawListTextStyle(t *testing.T) {
	s := NewScene()
	s.AddText("hello", Point{X: 10, Y: 40})
	cmds := BuildDrawList(s, nil, palette[1], testCanvas)
	require.Len(t, cmds, 2)
	assert.Equal(t, textSize, cmds[1].Size)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, cmds[1].Color)
}

func TestBuildDrawListIdleRecorder(t *testing.T) {
	s := NewScene()
	cmds := BuildDrawList(s, &StrokeRecorder{}, palette[1], testCanvas)
	assert.Len(t, cmds, 1)
}
