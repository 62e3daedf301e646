package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/numwidget/tui/keymap"
	"github.com/grovetools/numwidget/tui/theme"
)

// Model is an embeddable help component: a one-line footer or, when toggled,
// a centered overlay with every section of the keymap.
type Model struct {
	Keys    keymap.Base
	ShowAll bool
	Width   int
	Height  int
	Theme   *theme.Theme
	Title   string

	viewport viewport.Model
}

// New creates a help model for keys.
func New(keys keymap.Base) Model {
	vp := viewport.New(0, 0)
	// The demo owns mouse input.
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		Title:    "Keys",
		viewport: vp,
	}
}

// Update handles messages for the help component. While the overlay is open
// the help, quit and esc keys close it and everything else scrolls.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if !m.ShowAll {
			return m, nil
		}
		if key.Matches(msg, m.Keys.Help) || key.Matches(msg, m.Keys.Quit) || msg.Type == tea.KeyEsc {
			m.Toggle()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the footer or the full overlay.
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}
	if m.ShowAll {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.viewport.View())
	}
	return m.viewShort(m.Keys.ShortHelp())
}

func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		if h.Key == "" || h.Desc == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s %s",
			m.Theme.Highlight.Render(h.Key),
			m.Theme.Muted.Render(h.Desc)))
	}
	return strings.Join(pairs, m.Theme.Muted.Render(" • "))
}

// setViewportContent lays the section boxes out in one column, or two when
// one column does not fit the height.
func (m *Model) setViewportContent() {
	const (
		verticalMargin = 4
		gutterWidth    = 2
	)

	var blocks []string
	for _, s := range m.Keys.Sections() {
		if !s.IsEmpty() {
			blocks = append(blocks, m.renderSectionBox(s))
		}
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if lipgloss.Height(body)+2 > m.Height-verticalMargin && len(blocks) > 1 {
		half := (len(blocks) + 1) / 2
		left := lipgloss.JoinVertical(lipgloss.Left, blocks[:half]...)
		right := lipgloss.JoinVertical(lipgloss.Left, blocks[half:]...)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gutterWidth), right)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Width(lipgloss.Width(body)).Render(m.Title), body)

	m.viewport.SetContent(content)
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = max(m.Height-verticalMargin, 1)
}

func (m *Model) renderSectionBox(s keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, b := range s.FilterEnabled() {
		table = table.Row(keyStyle.Render(b.Help().Key), m.Theme.Muted.Render(b.Help().Desc))
	}

	title := lipgloss.NewStyle().Foreground(m.Theme.Colors.Orange).Italic(true).Render(s.Name)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, table.String()))
}

// Toggle switches between the footer and the overlay.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions the overlay is centered in.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// SetKeys replaces the bindings shown and refreshes an open overlay.
func (m *Model) SetKeys(keys keymap.Base) {
	m.Keys = keys
	if m.ShowAll {
		m.setViewportContent()
	}
}
