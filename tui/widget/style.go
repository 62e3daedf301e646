package widget

import "github.com/charmbracelet/lipgloss"

type styleProp uint8

const (
	propFont styleProp = 1 << iota
	propTextColor
	propBgColor
	propTextAlign
	propBorder
	propPadding
)

// Style is a reusable bundle of visual properties. Only properties that were
// set take part in resolution, so a style can be shared between objects and
// layered over others. A frozen style is never changed in place: its setters
// return a modified copy that must be added with AddStyle to take effect.
type Style struct {
	frozen      bool
	set         styleProp
	font        *Font
	textColor   lipgloss.TerminalColor
	bgColor     lipgloss.TerminalColor
	textAlign   TextAlign
	border      bool
	borderColor lipgloss.TerminalColor
	padX, padY  int
}

// NewStyle returns an empty style.
func NewStyle() *Style {
	return &Style{}
}

// Freeze marks s as shared. Later setter calls leave s untouched.
func (s *Style) Freeze() *Style {
	s.frozen = true
	return s
}

func (s *Style) Frozen() bool { return s.frozen }

// writable returns s, or an unfrozen copy when s is frozen.
func (s *Style) writable() *Style {
	if !s.frozen {
		return s
	}
	c := *s
	c.frozen = false
	return &c
}

func (s *Style) has(p styleProp) bool {
	return s != nil && s.set&p != 0
}

// SetTextFont sets the font labels are drawn with.
func (s *Style) SetTextFont(f *Font) *Style {
	s = s.writable()
	s.font = f
	s.set |= propFont
	return s
}

// SetTextColor sets the foreground color of text.
func (s *Style) SetTextColor(c lipgloss.TerminalColor) *Style {
	s = s.writable()
	s.textColor = c
	s.set |= propTextColor
	return s
}

// SetBgColor sets the fill color of the object's rectangle.
func (s *Style) SetBgColor(c lipgloss.TerminalColor) *Style {
	s = s.writable()
	s.bgColor = c
	s.set |= propBgColor
	return s
}

// SetTextAlign sets horizontal alignment of text lines.
func (s *Style) SetTextAlign(a TextAlign) *Style {
	s = s.writable()
	s.textAlign = a
	s.set |= propTextAlign
	return s
}

// SetBorder enables or disables a rounded one-cell border.
func (s *Style) SetBorder(on bool, c lipgloss.TerminalColor) *Style {
	s = s.writable()
	s.border = on
	s.borderColor = c
	s.set |= propBorder
	return s
}

// SetPadding sets the gap between the border and the content area.
func (s *Style) SetPadding(x, y int) *Style {
	s = s.writable()
	s.padX, s.padY = x, y
	s.set |= propPadding
	return s
}

// kindDefaults returns the built-in style for objects of kind k.
func kindDefaults(k Kind) *Style {
	switch k {
	case KindObject:
		return NewStyle().
			SetBorder(true, PaletteMain(PaletteGrey)).
			SetPadding(1, 0)
	case KindButton:
		return NewStyle().
			SetBorder(true, PaletteMain(PaletteBlue)).
			SetPadding(1, 0)
	default:
		return nil
	}
}
