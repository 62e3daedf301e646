package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/numwidget/tui/theme"
)

// PrettyLogger writes human-facing CLI reports: the error handler output,
// `config validate` results and `config schema --out` confirmations. It is
// separate from the logrus loggers, which stay quiet unless asked.
type PrettyLogger struct {
	writer io.Writer
	styles PrettyStyles
}

type PrettyStyles struct {
	Success lipgloss.Style
	Hint    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
	Block   lipgloss.Style
}

// DefaultPrettyStyles derives the report styles from theme.DefaultTheme.
func DefaultPrettyStyles() PrettyStyles {
	t := theme.DefaultTheme
	return PrettyStyles{
		Success: t.Success,
		Hint:    t.Muted,
		Warning: t.Warning,
		Error:   t.Error,
		Key:     lipgloss.NewStyle().Foreground(t.Colors.MutedText),
		Value:   lipgloss.NewStyle().Foreground(t.Colors.Cyan).Bold(true),
		Path:    lipgloss.NewStyle().Foreground(t.Colors.Cyan).Italic(true),
		Block:   lipgloss.NewStyle().Foreground(t.Colors.Violet),
	}
}

func NewPrettyLogger() *PrettyLogger {
	return &PrettyLogger{writer: os.Stderr, styles: DefaultPrettyStyles()}
}

func (p *PrettyLogger) WithWriter(w io.Writer) *PrettyLogger {
	p.writer = w
	return p
}

func (p *PrettyLogger) mark(symbol string, style lipgloss.Style, message string) {
	fmt.Fprintf(p.writer, "%s %s\n", style.Render(symbol), style.Render(message))
}

func (p *PrettyLogger) Success(message string) { p.mark("✓", p.styles.Success, message) }

func (p *PrettyLogger) Warn(message string) { p.mark("⚠", p.styles.Warning, message) }

// Fail prints "✗ message" followed by ": err" when err is non-nil.
func (p *PrettyLogger) Fail(message string, err error) {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	p.mark("✗", p.styles.Error, message)
}

// Hint is an unmarked muted line, used for "try this next" advice.
func (p *PrettyLogger) Hint(message string) {
	fmt.Fprintln(p.writer, p.styles.Hint.Render(message))
}

func (p *PrettyLogger) Field(key string, value interface{}) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.styles.Key.Render(key), p.styles.Value.Render(fmt.Sprint(value)))
}

func (p *PrettyLogger) Path(label, path string) {
	fmt.Fprintf(p.writer, "%s: %s\n", p.styles.Key.Render(label), p.styles.Path.Render(path))
}

// Block prints multi-line content indented by two spaces.
func (p *PrettyLogger) Block(content string) {
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.writer, "  %s\n", p.styles.Block.Render(line))
	}
}
