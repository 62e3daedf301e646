package theme

import (
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/numwidget/config"
)

const defaultThemeName = "kanagawa"

// shade is a light/dark pair of hex colors.
type shade struct{ light, dark string }

func (s shade) color() lipgloss.TerminalColor {
	return lipgloss.AdaptiveColor{Light: s.light, Dark: s.dark}
}

// hexPalette lists one shade per palette slot.
type hexPalette struct {
	green, yellow, red, orange, cyan, blue, violet, pink shade
	lightText, mutedText, darkText, border               shade
	selectedBg, subtleBg                                 shade
}

var kanagawa = hexPalette{
	green:      shade{"#4E7C5A", "#98BB6C"},
	yellow:     shade{"#A68A64", "#FF9E3B"},
	red:        shade{"#C34043", "#FF5D62"},
	orange:     shade{"#CC6B4E", "#FFA066"},
	cyan:       shade{"#5B8BBE", "#7E9CD8"},
	blue:       shade{"#4F7CAC", "#7FB4CA"},
	violet:     shade{"#674D7A", "#957FB8"},
	pink:       shade{"#B35C74", "#D27E99"},
	lightText:  shade{"#2B2F42", "#DCD7BA"},
	mutedText:  shade{"#6C7086", "#727169"},
	darkText:   shade{"#E6E9EF", "#1D1C19"},
	border:     shade{"#B5BDC5", "#363646"},
	selectedBg: shade{"#E2E6F3", "#223249"},
	subtleBg:   shade{"#F7F7FB", "#1F1F28"},
}

var gruvbox = hexPalette{
	green:      shade{"#98971A", "#B8BB26"},
	yellow:     shade{"#D79921", "#FABD2F"},
	red:        shade{"#CC241D", "#FB4934"},
	orange:     shade{"#D65D0E", "#FE8019"},
	cyan:       shade{"#458588", "#83A598"},
	blue:       shade{"#076678", "#458588"},
	violet:     shade{"#8F3F71", "#B16286"},
	pink:       shade{"#B57679", "#D3869B"},
	lightText:  shade{"#3C3836", "#EBDBB2"},
	mutedText:  shade{"#928374", "#BDAE93"},
	darkText:   shade{"#F9F5D7", "#1D2021"},
	border:     shade{"#D5C4A1", "#504945"},
	selectedBg: shade{"#F2E5BC", "#32302F"},
	subtleBg:   shade{"#FBF1C7", "#282828"},
}

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Blue               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	Pink               lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	DarkText           lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
	SubtleBackground   lipgloss.TerminalColor
}

// Theme holds the pre-configured styles used by numwidget views and CLI output.
type Theme struct {
	Name   string
	Colors Colors

	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text hierarchy
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Selected marks the focused widget; Pressed a button held down by the mouse.
	Selected lipgloss.Style
	Pressed  lipgloss.Style

	Box       lipgloss.Style
	Code      lipgloss.Style
	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": func() Colors { return colorsFromHex(kanagawa) },
	"gruvbox":  func() Colors { return colorsFromHex(gruvbox) },
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// DefaultTheme is the theme selected by NUMWIDGET_THEME or tui.theme.
var DefaultTheme = NewTheme()

// NewTheme creates a theme based on the configured theme selection.
func NewTheme() *Theme {
	return NewThemeWithName(getThemeName())
}

// NewThemeWithName constructs a theme from a specific palette name. Unknown
// names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := resolveName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

// Names returns the registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderHeader renders a header with the default styling.
func RenderHeader(title string) string {
	return DefaultTheme.Header.Render(title)
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.LightText).
			Background(colors.SelectedBackground).
			Padding(0, 1),

		Success: lipgloss.NewStyle().Foreground(colors.Green).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colors.Red).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colors.Yellow).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colors.Cyan).Bold(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Muted:  lipgloss.NewStyle().Faint(true),

		Selected: lipgloss.NewStyle().
			Background(colors.SelectedBackground).
			Foreground(colors.LightText),

		Pressed: lipgloss.NewStyle().Reverse(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(1, 2),

		Code: lipgloss.NewStyle().
			Background(colors.SubtleBackground).
			Foreground(colors.LightText).
			Padding(0, 1),

		Highlight: lipgloss.NewStyle().Foreground(colors.Orange).Bold(true),
		Accent:    lipgloss.NewStyle().Foreground(colors.Violet).Bold(true),
	}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func getThemeName() string {
	if theme := normalizeThemeName(os.Getenv("NUMWIDGET_THEME")); theme != "" {
		return theme
	}

	cfg, err := config.LoadDefault()
	if err != nil || cfg == nil || cfg.TUI == nil {
		return defaultThemeName
	}
	if theme := normalizeThemeName(cfg.TUI.Theme); theme != "" {
		return theme
	}
	return defaultThemeName
}

func colorsFromHex(p hexPalette) Colors {
	return Colors{
		Green:              p.green.color(),
		Yellow:             p.yellow.color(),
		Red:                p.red.color(),
		Orange:             p.orange.color(),
		Cyan:               p.cyan.color(),
		Blue:               p.blue.color(),
		Violet:             p.violet.color(),
		Pink:               p.pink.color(),
		LightText:          p.lightText.color(),
		MutedText:          p.mutedText.color(),
		DarkText:           p.darkText.color(),
		Border:             p.border.color(),
		SelectedBackground: p.selectedBg.color(),
		SubtleBackground:   p.subtleBg.color(),
	}
}

// newTerminalColors uses ANSI indices so the user's terminal scheme decides.
func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color("2"),
		Yellow:             lipgloss.Color("3"),
		Red:                lipgloss.Color("1"),
		Orange:             lipgloss.Color("208"),
		Cyan:               lipgloss.Color("6"),
		Blue:               lipgloss.Color("4"),
		Violet:             lipgloss.Color("5"),
		Pink:               lipgloss.Color("13"),
		LightText:          lipgloss.Color("7"),
		MutedText:          lipgloss.Color("8"),
		DarkText:           lipgloss.Color("0"),
		Border:             lipgloss.Color("8"),
		SelectedBackground: lipgloss.Color("8"),
		SubtleBackground:   lipgloss.Color("0"),
	}
}
