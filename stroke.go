package main

import "image/color"

type Path struct {
	Points []Point
	Color  color.RGBA
}

// StrokeRecorder collects pointer samples for one free-hand stroke at a time.
type StrokeRecorder struct {
	drawing bool
	points  []Point
	color   color.RGBA
}

func (r *StrokeRecorder) Drawing() bool {
	return r.drawing
}

// Begin starts a stroke at p. The color is fixed for the rest of the stroke.
func (r *StrokeRecorder) Begin(p Point, col color.RGBA) {
	r.drawing = true
	r.color = col
	r.points = append(r.points[:0], p)
}

func (r *StrokeRecorder) Move(p Point) {
	if !r.drawing {
		return
	}
	r.points = append(r.points, p)
}

// End finishes the stroke and appends it to the scene when it has any points.
// It reports whether a path was added.
func (r *StrokeRecorder) End(s *Scene) bool {
	if !r.drawing {
		return false
	}
	r.drawing = false
	if len(r.points) == 0 {
		return false
	}
	pts := make([]Point, len(r.points))
	copy(pts, r.points)
	r.points = r.points[:0]
	s.AddPath(Path{Points: pts, Color: r.color})
	return true
}

// Current returns the in-progress points. The slice is only valid until the
// next call on the recorder.
func (r *StrokeRecorder) Current() []Point {
	if !r.drawing {
		return nil
	}
	return r.points
}

func (r *StrokeRecorder) Reset() {
	r.drawing = false
	r.points = r.points[:0]
}
