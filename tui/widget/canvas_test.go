package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCanvasWideRunes(t *testing.T) {
	c := newCanvas(5, 1)
	n := c.drawString(0, 0, "日本", cellStyle{}, c.bounds())
	assert.Equal(t, 4, n)
	assert.Equal(t, "日本 ", ansi.Strip(c.String()))

	// Overwriting the second half of a wide rune blanks the first half.
	c.set(1, 0, 'x', cellStyle{}, c.bounds())
	assert.Equal(t, " x本 ", ansi.Strip(c.String()))
}

func TestCanvasClip(t *testing.T) {
	c := newCanvas(6, 1)
	c.drawString(0, 0, "abcdef", cellStyle{}, Rect{X: 2, Y: 0, W: 2, H: 1})
	assert.Equal(t, "  cd  ", c.String())
}

func TestCanvasInternsStyles(t *testing.T) {
	c := newCanvas(4, 1)
	blue := cellStyle{fg: lipgloss.Color("4")}
	c.drawString(0, 0, "ab", blue, c.bounds())
	c.drawString(2, 0, "cd", blue, c.bounds())
	assert.Len(t, c.styles, 2)
	assert.Equal(t, "abcd", ansi.Strip(c.String()))
}

func TestCanvasKeepsBackground(t *testing.T) {
	c := newCanvas(3, 1)
	bg := lipgloss.Color("1")
	c.fill(c.bounds(), bg)
	c.drawString(0, 0, "x", cellStyle{fg: lipgloss.Color("4")}, c.bounds())
	assert.Equal(t, bg, c.styles[c.at(0, 0).style].bg)
}
