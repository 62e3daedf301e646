package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/numwidget/config"
)

// Base contains the keybindings of the interactive demo.
type Base struct {
	// Widget focus
	FocusNext key.Binding
	FocusPrev key.Binding
	Activate  key.Binding

	// Scene control
	Step key.Binding

	Help key.Binding
	Quit key.Binding
}

// NewBase returns the default keymap (vim style).
func NewBase() Base {
	return DefaultVim()
}

// DefaultVim returns the default vim-style keymap
func DefaultVim() Base {
	return Base{
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "j", "l"),
			key.WithHelp("tab/j", "next widget"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab", "k", "h"),
			key.WithHelp("S-tab/k", "prev widget"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "click"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step scene"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultEmacs returns an emacs-flavoured keymap
func DefaultEmacs() Base {
	b := DefaultVim()
	b.FocusNext = key.NewBinding(
		key.WithKeys("tab", "ctrl+n", "ctrl+f"),
		key.WithHelp("C-n", "next widget"),
	)
	b.FocusPrev = key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+p", "ctrl+b"),
		key.WithHelp("C-p", "prev widget"),
	)
	b.Activate = key.NewBinding(
		key.WithKeys("enter", "ctrl+j"),
		key.WithHelp("RET", "click"),
	)
	b.Step = key.NewBinding(
		key.WithKeys("alt+n"),
		key.WithHelp("M-n", "step scene"),
	)
	b.Quit = key.NewBinding(
		key.WithKeys("ctrl+g", "ctrl+c"),
		key.WithHelp("C-g", "quit"),
	)
	return b
}

// DefaultArrows returns a keymap that avoids letter keys for movement
func DefaultArrows() Base {
	b := DefaultVim()
	b.FocusNext = key.NewBinding(
		key.WithKeys("tab", "down", "right"),
		key.WithHelp("tab/→", "next widget"),
	)
	b.FocusPrev = key.NewBinding(
		key.WithKeys("shift+tab", "up", "left"),
		key.WithHelp("S-tab/←", "prev widget"),
	)
	b.Step = key.NewBinding(
		key.WithKeys("+", "n"),
		key.WithHelp("+", "step scene"),
	)
	b.Quit = key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	)
	return b
}

// Preset returns the named preset, falling back to vim.
func Preset(name string) Base {
	switch name {
	case "emacs":
		return DefaultEmacs()
	case "arrows":
		return DefaultArrows()
	default:
		return DefaultVim()
	}
}

// Load creates a Base keymap from configuration: the tui.keymap preset first,
// then the tui.keybindings overrides. It also returns the override names that
// matched no binding.
func Load(cfg *config.Config) (Base, []string) {
	if cfg == nil || cfg.TUI == nil {
		return DefaultVim(), nil
	}
	base := Preset(cfg.TUI.Keymap)
	unknown := ApplyOverrides(&base, cfg.TUI.Keybindings)
	return base, unknown
}

// ShortHelp returns the bindings shown in the footer.
func (k Base) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Activate, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k Base) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, s := range k.Sections() {
		out = append(out, s.Bindings)
	}
	return out
}

// Sections groups the bindings for the help view.
func (k Base) Sections() []Section {
	return []Section{
		NewSection(SectionWidgets, k.FocusNext, k.FocusPrev, k.Activate),
		NewSection(SectionScene, k.Step),
		NewSection(SectionSystem, k.Help, k.Quit),
	}
}
