package main

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizerDataURI(t *testing.T) {
	r, err := NewRasterizer(40, 30)
	require.NoError(t, err)
	r.Render(BuildDrawList(NewScene(), nil, palette[0], Size{W: 40, H: 30}))

	uri, err := r.DataURI()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, pngDataURIPrefix))

	data, err := decodeDataURI(uri)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestRasterizerDataURINil(t *testing.T) {
	var r *Rasterizer
	_, err := r.DataURI()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestDecodeDataURIRejectsOtherSchemes(t *testing.T) {
	_, err := decodeDataURI("data:image/jpeg;base64,AA==")
	assert.Error(t, err)
	_, err = decodeDataURI(pngDataURIPrefix + "!!!")
	assert.Error(t, err)
}

func TestRasterizerDrawsStrokes(t *testing.T) {
	r, err := NewRasterizer(20, 20)
	require.NoError(t, err)
	s := NewScene()
	s.AddPath(Path{Points: []Point{{X: 0, Y: 10}, {X: 20, Y: 10}}, Color: palette[1]})

	img := r.Render(BuildDrawList(s, nil, palette[0], Size{W: 20, H: 20}))
	red := color.RGBAModel.Convert(img.At(10, 10)).(color.RGBA)
	assert.Greater(t, red.R, red.G)
	white := color.RGBAModel.Convert(img.At(10, 1)).(color.RGBA)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, white)
}

func TestRasterizerMeasureText(t *testing.T) {
	r, err := NewRasterizer(10, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.MeasureText(""))
	short := r.MeasureText("ab")
	long := r.MeasureText("abcd")
	assert.Greater(t, short, 0.0)
	// monospaced face
	assert.InDelta(t, short*2, long, 0.5)
}
