package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Font is a bitmap font resource. Every glyph is Height rows tall; runes
// without a glyph are drawn as themselves on the bottom row.
type Font struct {
	name   string
	height int
	gap    int
	glyphs map[rune][]string
}

// Name returns the font's resource name.
func (f *Font) Name() string { return f.name }

// Height returns the number of rows one line of text occupies.
func (f *Font) Height() int { return f.height }

func (f *Font) glyph(r rune) ([]string, int) {
	if g, ok := f.glyphs[r]; ok {
		return g, runewidth.StringWidth(g[0])
	}
	return nil, runewidth.RuneWidth(r)
}

// Measure returns the width in cells of a single line rendered in f.
func (f *Font) Measure(line string) int {
	if f.glyphs == nil {
		return runewidth.StringWidth(line)
	}
	width, n := 0, 0
	for _, r := range line {
		_, w := f.glyph(r)
		width += w
		n++
	}
	if n > 1 {
		width += f.gap * (n - 1)
	}
	return width
}

// Render expands a single line into Height rows of equal width.
func (f *Font) Render(line string) []string {
	if f.glyphs == nil {
		return []string{line}
	}
	rows := make([]strings.Builder, f.height)
	first := true
	for _, r := range line {
		if !first && f.gap > 0 {
			pad := strings.Repeat(" ", f.gap)
			for i := range rows {
				rows[i].WriteString(pad)
			}
		}
		first = false

		g, w := f.glyph(r)
		for i := range rows {
			switch {
			case g != nil:
				rows[i].WriteString(g[i])
			case i == f.height-1:
				rows[i].WriteRune(r)
			default:
				rows[i].WriteString(strings.Repeat(" ", w))
			}
		}
	}
	out := make([]string, f.height)
	for i := range rows {
		out[i] = rows[i].String()
	}
	return out
}

// FontDefault draws text as plain terminal runes.
var FontDefault = &Font{name: "default", height: 1}

// FontMedium draws digits as three-row seven-segment glyphs.
var FontMedium = &Font{
	name:   "segment-3",
	height: 3,
	gap:    1,
	glyphs: map[rune][]string{
		'0': {" _ ", "| |", "|_|"},
		'1': {"   ", "  |", "  |"},
		'2': {" _ ", " _|", "|_ "},
		'3': {" _ ", " _|", " _|"},
		'4': {"   ", "|_|", "  |"},
		'5': {" _ ", "|_ ", " _|"},
		'6': {" _ ", "|_ ", "|_|"},
		'7': {" _ ", "  |", "  |"},
		'8': {" _ ", "|_|", "|_|"},
		'9': {" _ ", "|_|", " _|"},
		'-': {"   ", " _ ", "   "},
		'.': {" ", " ", "."},
		' ': {" ", " ", " "},
	},
}

// FontLarge draws digits as five-row block glyphs.
var FontLarge = &Font{
	name:   "block-5",
	height: 5,
	gap:    1,
	glyphs: map[rune][]string{
		'0': {"███", "█ █", "█ █", "█ █", "███"},
		'1': {" █ ", "██ ", " █ ", " █ ", "███"},
		'2': {"███", "  █", "███", "█  ", "███"},
		'3': {"███", "  █", "███", "  █", "███"},
		'4': {"█ █", "█ █", "███", "  █", "  █"},
		'5': {"███", "█  ", "███", "  █", "███"},
		'6': {"███", "█  ", "███", "█ █", "███"},
		'7': {"███", "  █", "  █", "  █", "  █"},
		'8': {"███", "█ █", "███", "█ █", "███"},
		'9': {"███", "█ █", "███", "  █", "███"},
		'-': {"   ", "   ", "███", "   ", "   "},
		'.': {" ", " ", " ", " ", "█"},
		' ': {" ", " ", " ", " ", " "},
	},
}

// wrapLine breaks line into pieces no wider than width when drawn in f.
func (f *Font) wrapLine(line string, width int) []string {
	if width <= 0 || f.Measure(line) <= width {
		return []string{line}
	}
	var out []string
	var cur []rune
	for _, r := range line {
		next := append(cur, r)
		if len(cur) > 0 && f.Measure(string(next)) > width {
			out = append(out, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}
