package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateMapperToCanvas(t *testing.T) {
	tests := []struct {
		name     string
		mapper   *CoordinateMapper
		x, y     float64
		expected Point
	}{
		{
			name:     "nil mapper",
			mapper:   nil,
			x:        10,
			y:        20,
			expected: Point{},
		},
		{
			name: "half size box",
			mapper: &CoordinateMapper{
				Intrinsic: Size{W: 800, H: 600},
				Rendered:  Rect{Left: 10, Top: 20, Width: 400, Height: 300},
			},
			x:        110,
			y:        70,
			expected: Point{X: 200, Y: 100},
		},
		{
			name: "uses the smaller scale",
			mapper: &CoordinateMapper{
				Intrinsic: Size{W: 800, H: 600},
				Rendered:  Rect{Width: 400, Height: 200},
			},
			x:        100,
			y:        100,
			expected: Point{X: 200, Y: 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mapper.ToCanvas(tt.x, tt.y))
		})
	}
}

func TestCoordinateMapperScaleEmptyBox(t *testing.T) {
	m := &CoordinateMapper{Intrinsic: Size{W: 800, H: 600}}
	assert.Equal(t, 1.0, m.Scale())
}

func TestCellToClient(t *testing.T) {
	x, y := cellToClient(3, 4)
	assert.Equal(t, 3.5, x)
	assert.Equal(t, 9.0, y)
}

func TestFitRendered(t *testing.T) {
	r := fitRendered(Size{W: 800, H: 600}, 0, 0, 80, 24)
	assert.Equal(t, 0.0, r.Left)
	assert.Equal(t, 64.0, r.Width)
	assert.Equal(t, 48.0, r.Height)

	r = fitRendered(Size{W: 800, H: 600}, 0, 0, 40, 100)
	assert.Equal(t, 40.0, r.Width)
	assert.Equal(t, 30.0, r.Height)

	r = fitRendered(Size{W: 800, H: 600}, 2, 1, 0, 10)
	assert.Equal(t, Rect{Left: 2, Top: 2}, r)
}
