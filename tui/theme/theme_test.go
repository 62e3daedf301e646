package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kanagawa", "kanagawa"},
		{"Gruvbox Dark", "gruvbox"},
		{"kanagawa_wave", "kanagawa"},
		{"terminal", "terminal"},
		{"does-not-exist", "kanagawa"},
		{"", "kanagawa"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThemeWithName(tt.input).Name)
		})
	}
}

func TestTerminalPaletteUsesANSIIndices(t *testing.T) {
	th := NewThemeWithName("terminal")
	assert.Equal(t, lipgloss.Color("4"), th.Colors.Blue)
	assert.Equal(t, lipgloss.Color("8"), th.Colors.MutedText)
}

func TestAdaptivePalette(t *testing.T) {
	th := NewThemeWithName("gruvbox")
	blue, ok := th.Colors.Blue.(lipgloss.AdaptiveColor)
	if assert.True(t, ok) {
		assert.Equal(t, "#076678", blue.Light)
		assert.Equal(t, "#458588", blue.Dark)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "kanagawa", "terminal"}, Names())
}

func TestThemeFromEnv(t *testing.T) {
	t.Setenv("NUMWIDGET_THEME", "Gruvbox")
	assert.Equal(t, "gruvbox", NewTheme().Name)
}

func TestRenderStatusUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "plain", RenderStatus("other", "plain"))
}
