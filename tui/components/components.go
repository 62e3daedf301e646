package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/grovetools/numwidget/tui/theme"
)

// RenderTitleBar draws a one-line bar with the title on the left and status
// on the right, padded to width.
func RenderTitleBar(title, status string, width int) string {
	t := theme.DefaultTheme
	left := t.Title.Render(title)
	right := t.Muted.Render(status)

	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, max(width, 0), "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderFooter creates a consistent footer for TUIs
func RenderFooter(content string, width int) string {
	footerStyle := lipgloss.NewStyle().
		Foreground(theme.DefaultTheme.Colors.MutedText).
		Width(width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.DefaultTheme.Colors.Border)

	return footerStyle.Render(content)
}

// RenderKeyValue creates a key-value display
func RenderKeyValue(key, value string) string {
	t := theme.DefaultTheme
	return fmt.Sprintf("%s %s", t.Muted.Render(key+":"), value)
}
