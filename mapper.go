package main

import "math"

type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

type Size struct {
	W, H float64
}

// Rect is a box in screen space.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// CoordinateMapper converts screen positions to canvas pixels. Intrinsic is the
// canvas pixel size, Rendered the box the canvas occupies on screen.
type CoordinateMapper struct {
	Intrinsic Size
	Rendered  Rect
}

// Scale returns the smaller of the horizontal and vertical scale factors.
func (m *CoordinateMapper) Scale() float64 {
	if m.Rendered.Width <= 0 || m.Rendered.Height <= 0 {
		return 1
	}
	sx := m.Intrinsic.W / m.Rendered.Width
	sy := m.Intrinsic.H / m.Rendered.Height
	return math.Min(sx, sy)
}

// ToCanvas maps a client point to canvas space. A nil mapper maps to the origin.
func (m *CoordinateMapper) ToCanvas(clientX, clientY float64) Point {
	if m == nil {
		return Point{}
	}
	scale := m.Scale()
	return Point{
		X: (clientX - m.Rendered.Left) * scale,
		Y: (clientY - m.Rendered.Top) * scale,
	}
}

// cellToClient converts a terminal cell to a client point. The preview draws
// two canvas rows per cell, so a cell is one unit wide and two units tall.
func cellToClient(cellX, cellY int) (float64, float64) {
	return float64(cellX) + 0.5, float64(cellY)*2 + 1
}

// fitRendered returns the largest box with the canvas aspect ratio that fits in
// cols x rows cells starting at (left, top).
func fitRendered(intrinsic Size, left, top, cols, rows int) Rect {
	if cols < 1 || rows < 1 || intrinsic.W <= 0 || intrinsic.H <= 0 {
		return Rect{Left: float64(left), Top: float64(top) * 2}
	}
	availW := float64(cols)
	availH := float64(rows) * 2
	w := availW
	h := w * intrinsic.H / intrinsic.W
	if h > availH {
		h = availH
		w = h * intrinsic.W / intrinsic.H
	}
	w = math.Floor(w)
	h = math.Floor(h/2) * 2
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	return Rect{Left: float64(left), Top: float64(top) * 2, Width: w, Height: h}
}
