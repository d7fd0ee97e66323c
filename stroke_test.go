package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeRecorderAddsOnePathPerStroke(t *testing.T) {
	s := NewScene()
	rec := &StrokeRecorder{}

	for i := 0; i < 3; i++ {
		rec.Begin(Point{X: 1, Y: 1}, palette[1])
		rec.Move(Point{X: 2, Y: 2})
		rec.Move(Point{X: 3, Y: 3})
		assert.True(t, rec.End(s))
	}
	require.Len(t, s.Paths(), 3)
	assert.Equal(t, []Point{{1, 1}, {2, 2}, {3, 3}}, s.Paths()[0].Points)
	assert.Equal(t, palette[1], s.Paths()[0].Color)
}

func TestStrokeRecorderSinglePoint(t *testing.T) {
	s := NewScene()
	rec := &StrokeRecorder{}
	rec.Begin(Point{X: 5, Y: 5}, palette[0])
	assert.True(t, rec.End(s))
	require.Len(t, s.Paths(), 1)
	assert.Len(t, s.Paths()[0].Points, 1)
}

func TestStrokeRecorderIgnoresIdleEvents(t *testing.T) {
	s := NewScene()
	rec := &StrokeRecorder{}

	rec.Move(Point{X: 1, Y: 1})
	assert.Nil(t, rec.Current())
	assert.False(t, rec.End(s))
	assert.Empty(t, s.Paths())
}

func TestStrokeRecorderKeepsColorOfBegin(t *testing.T) {
	s := NewScene()
	rec := &StrokeRecorder{}
	rec.Begin(Point{}, palette[2])
	rec.Move(Point{X: 1})
	rec.End(s)

	rec.Begin(Point{}, palette[3])
	rec.End(s)

	require.Len(t, s.Paths(), 2)
	assert.Equal(t, palette[2], s.Paths()[0].Color)
	assert.Equal(t, palette[3], s.Paths()[1].Color)
	// stored paths do not alias the recorder buffer
	assert.Equal(t, []Point{{}, {X: 1}}, s.Paths()[0].Points)
}

func TestStrokeRecorderReset(t *testing.T) {
	s := NewScene()
	rec := &StrokeRecorder{}
	rec.Begin(Point{}, palette[0])
	rec.Reset()
	assert.False(t, rec.Drawing())
	assert.False(t, rec.End(s))
	assert.Empty(t, s.Paths())
}
