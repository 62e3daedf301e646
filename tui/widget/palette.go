package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/numwidget/tui/theme"
)

// Palette names one of the theme's main colors.
type Palette int

const (
	PaletteRed Palette = iota
	PalettePink
	PaletteViolet
	PaletteBlue
	PaletteCyan
	PaletteGreen
	PaletteYellow
	PaletteOrange
	PaletteGrey
)

// PaletteMain returns the main shade of p in the active theme.
func PaletteMain(p Palette) lipgloss.TerminalColor {
	c := theme.DefaultTheme.Colors
	switch p {
	case PaletteRed:
		return c.Red
	case PalettePink:
		return c.Pink
	case PaletteViolet:
		return c.Violet
	case PaletteBlue:
		return c.Blue
	case PaletteCyan:
		return c.Cyan
	case PaletteGreen:
		return c.Green
	case PaletteYellow:
		return c.Yellow
	case PaletteOrange:
		return c.Orange
	default:
		return c.MutedText
	}
}
