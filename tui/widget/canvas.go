package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cellStyle is the comparable subset of a lipgloss style a cell can carry.
type cellStyle struct {
	fg, bg  lipgloss.TerminalColor
	bold    bool
	reverse bool
}

type cell struct {
	r     rune
	style int
	// cont marks the second column of a wide rune.
	cont bool
}

// canvas is a grid of styled cells. Styles are interned in a per-canvas
// table so runs of equal cells can be rendered with a single lipgloss call.
type canvas struct {
	width, height int
	cells         []cell
	styles        []cellStyle
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  max(width, 0),
		height: max(height, 0),
		styles: []cellStyle{{}},
	}
	c.cells = make([]cell, c.width*c.height)
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) bounds() Rect {
	return Rect{W: c.width, H: c.height}
}

func (c *canvas) intern(cs cellStyle) int {
	for i, s := range c.styles {
		if s == cs {
			return i
		}
	}
	c.styles = append(c.styles, cs)
	return len(c.styles) - 1
}

func (c *canvas) at(x, y int) *cell {
	return &c.cells[y*c.width+x]
}

// set writes r at (x, y) if the cell lies inside clip. A nil background
// keeps whatever background the cell already has.
func (c *canvas) set(x, y int, r rune, cs cellStyle, clip Rect) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	clip = clip.Intersect(c.bounds())
	if !clip.Contains(x, y) || (w == 2 && !clip.Contains(x+1, y)) {
		return w
	}
	cur := c.at(x, y)
	if cur.cont && x > 0 {
		c.at(x-1, y).r = ' '
	}
	if x+w < c.width && c.at(x+w, y).cont {
		*c.at(x+w, y) = cell{r: ' ', style: c.at(x+w, y).style}
	}
	if cs.bg == nil {
		cs.bg = c.styles[cur.style].bg
	}
	idx := c.intern(cs)
	*cur = cell{r: r, style: idx}
	if w == 2 {
		*c.at(x+1, y) = cell{style: idx, cont: true}
	}
	return w
}

// drawString writes s starting at (x, y) and returns the columns consumed.
func (c *canvas) drawString(x, y int, s string, cs cellStyle, clip Rect) int {
	start := x
	for _, r := range s {
		x += c.set(x, y, r, cs, clip)
	}
	return x - start
}

func (c *canvas) fill(r Rect, bg lipgloss.TerminalColor) {
	r = r.Intersect(c.bounds())
	idx := c.intern(cellStyle{bg: bg})
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			*c.at(x, y) = cell{r: ' ', style: idx}
		}
	}
}

// box draws a rounded border along the edge of r.
func (c *canvas) box(r Rect, cs cellStyle, clip Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	b := lipgloss.RoundedBorder()
	top, bottom, left, right := []rune(b.Top)[0], []rune(b.Bottom)[0], []rune(b.Left)[0], []rune(b.Right)[0]
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		c.set(x, r.Y, top, cs, clip)
		c.set(x, y1, bottom, cs, clip)
	}
	for y := r.Y + 1; y < y1; y++ {
		c.set(r.X, y, left, cs, clip)
		c.set(x1, y, right, cs, clip)
	}
	c.set(r.X, r.Y, []rune(b.TopLeft)[0], cs, clip)
	c.set(x1, r.Y, []rune(b.TopRight)[0], cs, clip)
	c.set(r.X, y1, []rune(b.BottomLeft)[0], cs, clip)
	c.set(x1, y1, []rune(b.BottomRight)[0], cs, clip)
}

// String renders the canvas row by row, one lipgloss call per style run.
func (c *canvas) String() string {
	rendered := make([]*lipgloss.Style, len(c.styles))
	styleFor := func(i int) *lipgloss.Style {
		if rendered[i] == nil {
			cs := c.styles[i]
			st := lipgloss.NewStyle().Bold(cs.bold).Reverse(cs.reverse)
			if cs.fg != nil {
				st = st.Foreground(cs.fg)
			}
			if cs.bg != nil {
				st = st.Background(cs.bg)
			}
			rendered[i] = &st
		}
		return rendered[i]
	}

	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		runStyle := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == 0 {
				out.WriteString(run.String())
			} else {
				out.WriteString(styleFor(runStyle).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cl := c.at(x, y)
			if cl.cont {
				continue
			}
			if cl.style != runStyle {
				flush()
				runStyle = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}
