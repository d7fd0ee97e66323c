package main

type dragKind int

const (
	dragNone dragKind = iota
	dragMedia
	dragText
)

// DragController tracks the single object being dragged in editing mode.
type DragController struct {
	kind   dragKind
	index  int
	offset Point
}

func (d *DragController) Active() bool {
	return d.kind != dragNone
}

// Begin hit-tests media first, then text, and starts a drag on the first hit.
func (d *DragController) Begin(s *Scene, p Point, measure TextMeasurer) bool {
	d.End()
	if id := s.MediaAt(p); id >= 0 {
		d.kind = dragMedia
		d.index = id
		d.offset = p.Sub(s.media[id].Position)
		return true
	}
	if id := s.TextAt(p, measure); id >= 0 {
		d.kind = dragText
		d.index = id
		d.offset = p.Sub(s.texts[id].Position)
		return true
	}
	return false
}

func (d *DragController) Move(s *Scene, p Point) {
	pos := p.Sub(d.offset)
	switch d.kind {
	case dragMedia:
		s.SetMediaPosition(d.index, pos)
	case dragText:
		s.SetTextPosition(d.index, pos)
	}
}

func (d *DragController) End() {
	d.kind = dragNone
	d.index = -1
	d.offset = Point{}
}
