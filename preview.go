package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

// renderPreview draws src into the box r as half-block cells. Each cell shows
// two vertically stacked pixels: foreground on top, background below.
func renderPreview(src image.Image, r Rect) []string {
	cols := int(r.Width)
	rows := int(r.Height) / 2
	if src == nil || cols < 1 || rows < 1 {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	pad := strings.Repeat(" ", int(r.Left))
	lines := make([]string, 0, rows)
	for y := 0; y < rows; y++ {
		var line strings.Builder
		line.WriteString(pad)
		for x := 0; x < cols; x++ {
			top := dst.RGBAAt(x, y*2)
			bottom := dst.RGBAAt(x, y*2+1)
			line.WriteString(lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom)).
				Render(halfBlock))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// previewDataURI renders a stored PNG snapshot into a cols x rows area.
func previewDataURI(uri string, cols, rows int) ([]string, error) {
	data, err := decodeDataURI(uri)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	b := img.Bounds()
	size := Size{W: float64(b.Dx()), H: float64(b.Dy())}
	return renderPreview(img, fitRendered(size, 0, 0, cols, rows)), nil
}
