package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const pngDataURIPrefix = "data:image/png;base64,"

// Rasterizer is the gg backed Backend. It also measures text for hit testing
// with the same face it draws with.
type Rasterizer struct {
	dc    *gg.Context
	ttf   *truetype.Font
	faces map[float64]font.Face
}

func NewRasterizer(width, height int) (*Rasterizer, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	r := &Rasterizer{
		dc:    gg.NewContext(width, height),
		ttf:   ttf,
		faces: make(map[float64]font.Face),
	}
	r.dc.SetFontFace(r.face(textSize))
	return r, nil
}

func (r *Rasterizer) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[size] = f
	return f
}

func (r *Rasterizer) Clear(w, h float64) {
	r.dc.SetColor(color.White)
	r.dc.Clear()
}

func (r *Rasterizer) DrawImage(img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	r.dc.Push()
	r.dc.Translate(x, y)
	r.dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	r.dc.DrawImage(img, -b.Min.X, -b.Min.Y)
	r.dc.Pop()
}

func (r *Rasterizer) StrokePolyline(points []Point, col color.RGBA, width float64) {
	if len(points) < 2 {
		return
	}
	r.dc.SetColor(col)
	r.dc.SetLineWidth(width)
	r.dc.SetLineCapRound()
	r.dc.SetLineJoinRound()
	r.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.Stroke()
}

func (r *Rasterizer) FillText(s string, x, y, size float64, col color.RGBA) {
	r.dc.SetFontFace(r.face(size))
	r.dc.SetColor(col)
	r.dc.DrawString(s, x, y)
}

func (r *Rasterizer) MeasureText(s string) float64 {
	r.dc.SetFontFace(r.face(textSize))
	w, _ := r.dc.MeasureString(s)
	return w
}

// Render replays a frame and returns the resulting image.
func (r *Rasterizer) Render(cmds []DrawCommand) image.Image {
	Replay(cmds, r)
	return r.Image()
}

func (r *Rasterizer) Image() image.Image {
	return r.dc.Image()
}

func (r *Rasterizer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// DataURI encodes the current surface as a PNG data URI.
func (r *Rasterizer) DataURI() (string, error) {
	if r == nil {
		return "", ErrNoSnapshot
	}
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// decodeDataURI returns the PNG bytes of a data URI produced by DataURI.
func decodeDataURI(uri string) ([]byte, error) {
	if len(uri) < len(pngDataURIPrefix) || uri[:len(pngDataURIPrefix)] != pngDataURIPrefix {
		return nil, fmt.Errorf("not a png data uri")
	}
	data, err := base64.StdEncoding.DecodeString(uri[len(pngDataURIPrefix):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode data uri: %w", err)
	}
	return data, nil
}
