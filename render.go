package main

import (
	"image"
	"image/color"
	"math"
)

type DrawOp int

const (
	OpClear DrawOp = iota
	OpImage
	OpPolyline
	OpText
)

// DrawCommand is one step of a frame. Only the fields relevant to Op are set.
type DrawCommand struct {
	Op     DrawOp
	X, Y   float64
	W, H   float64
	Image  image.Image
	Points []Point
	Color  color.RGBA
	Width  float64
	Text   string
	Size   float64
}

// Backend executes draw commands on a drawing surface.
type Backend interface {
	Clear(w, h float64)
	DrawImage(img image.Image, x, y, w, h float64)
	StrokePolyline(points []Point, col color.RGBA, width float64)
	FillText(s string, x, y, size float64, col color.RGBA)
}

// mediaScale fits a w x h image inside half the canvas, keeping its aspect ratio.
func mediaScale(src Size, canvas Size) float64 {
	if src.W <= 0 || src.H <= 0 {
		return 0
	}
	return math.Min((canvas.W/2)/src.W, (canvas.H/2)/src.H)
}

// BuildDrawList translates the scene into a full frame: clear, media, finished
// paths, text and finally the stroke in progress in the selected color.
func BuildDrawList(s *Scene, rec *StrokeRecorder, selected color.RGBA, canvas Size) []DrawCommand {
	cmds := []DrawCommand{{Op: OpClear, W: canvas.W, H: canvas.H}}

	for _, m := range s.media {
		if !m.Source.Loaded() {
			continue
		}
		size := m.Source.Size()
		scale := mediaScale(size, canvas)
		cmds = append(cmds, DrawCommand{
			Op:    OpImage,
			X:     m.Position.X,
			Y:     m.Position.Y,
			W:     size.W * scale,
			H:     size.H * scale,
			Image: m.Source.Img,
		})
	}

	for _, p := range s.paths {
		cmds = append(cmds, DrawCommand{Op: OpPolyline, Points: p.Points, Color: p.Color, Width: strokeWidth})
	}

	for _, t := range s.texts {
		cmds = append(cmds, DrawCommand{
			Op:    OpText,
			X:     t.Position.X,
			Y:     t.Position.Y,
			Text:  t.Content,
			Size:  textSize,
			Color: color.RGBA{0, 0, 0, 255},
		})
	}

	if rec != nil {
		if pts := rec.Current(); len(pts) > 0 {
			live := make([]Point, len(pts))
			copy(live, pts)
			cmds = append(cmds, DrawCommand{Op: OpPolyline, Points: live, Color: selected, Width: strokeWidth})
		}
	}
	return cmds
}

// Replay runs the commands against a backend in order.
func Replay(cmds []DrawCommand, b Backend) {
	for _, c := range cmds {
		switch c.Op {
		case OpClear:
			b.Clear(c.W, c.H)
		case OpImage:
			b.DrawImage(c.Image, c.X, c.Y, c.W, c.H)
		case OpPolyline:
			b.StrokePolyline(c.Points, c.Color, c.Width)
		case OpText:
			b.FillText(c.Text, c.X, c.Y, c.Size, c.Color)
		}
	}
}
