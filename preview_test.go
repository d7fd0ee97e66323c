package main

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreviewSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 80, 60))
	lines := renderPreview(src, Rect{Left: 2, Width: 8, Height: 6})
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "))
		assert.Equal(t, 8, strings.Count(line, halfBlock))
	}
}

func TestRenderPreviewEmpty(t *testing.T) {
	assert.Nil(t, renderPreview(nil, Rect{Width: 4, Height: 4}))
	assert.Nil(t, renderPreview(image.NewRGBA(image.Rect(0, 0, 1, 1)), Rect{Width: 4, Height: 1}))
}

func TestPreviewDataURI(t *testing.T) {
	r, err := NewRasterizer(40, 20)
	require.NoError(t, err)
	r.Render(BuildDrawList(NewScene(), nil, palette[0], Size{W: 40, H: 20}))
	uri, err := r.DataURI()
	require.NoError(t, err)

	lines, err := previewDataURI(uri, 20, 10)
	require.NoError(t, err)
	assert.Len(t, lines, 5)

	_, err = previewDataURI("nope", 20, 10)
	assert.Error(t, err)
}
