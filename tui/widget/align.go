package widget

import (
	"strings"

	"github.com/grovetools/numwidget/errors"
)

// Align is the anchor an object is placed at inside its parent's content area.
type Align int

const (
	AlignDefault Align = iota
	AlignTopLeft
	AlignTopMid
	AlignTopRight
	AlignBottomLeft
	AlignBottomMid
	AlignBottomRight
	AlignLeftMid
	AlignRightMid
	AlignCenter
)

var alignNames = []string{
	AlignDefault:     "default",
	AlignTopLeft:     "top-left",
	AlignTopMid:      "top-mid",
	AlignTopRight:    "top-right",
	AlignBottomLeft:  "bottom-left",
	AlignBottomMid:   "bottom-mid",
	AlignBottomRight: "bottom-right",
	AlignLeftMid:     "left-mid",
	AlignRightMid:    "right-mid",
	AlignCenter:      "center",
}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "unknown"
	}
	return alignNames[a]
}

// AlignNames lists every alignment name accepted by ParseAlign.
func AlignNames() []string {
	return append([]string(nil), alignNames...)
}

// ParseAlign converts a kebab-case name such as "bottom-right" to an Align.
// Underscores and case are ignored.
func ParseAlign(name string) (Align, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range alignNames {
		if n == key {
			return Align(i), nil
		}
	}
	return AlignDefault, errors.UnknownAlign(name).
		WithDetail("available", strings.Join(alignNames, ", "))
}

// anchor returns the top-left corner of a w x h box placed at a inside area.
func (a Align) anchor(area Rect, w, h int) (int, int) {
	left, top := area.X, area.Y
	midX := area.X + (area.W-w)/2
	midY := area.Y + (area.H-h)/2
	right := area.X + area.W - w
	bottom := area.Y + area.H - h

	switch a {
	case AlignTopMid:
		return midX, top
	case AlignTopRight:
		return right, top
	case AlignBottomLeft:
		return left, bottom
	case AlignBottomMid:
		return midX, bottom
	case AlignBottomRight:
		return right, bottom
	case AlignLeftMid:
		return left, midY
	case AlignRightMid:
		return right, midY
	case AlignCenter:
		return midX, midY
	default:
		return left, top
	}
}

// TextAlign positions text lines horizontally inside a label.
type TextAlign int

const (
	TextAlignAuto TextAlign = iota
	TextAlignLeft
	TextAlignCenter
	TextAlignRight
)

// LongMode controls what a label does with text wider than its width.
type LongMode int

const (
	// LongWrap breaks lines at the label's explicit width.
	LongWrap LongMode = iota
	// LongClip keeps lines intact and lets the renderer clip them.
	LongClip
)

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks r by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy int) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
