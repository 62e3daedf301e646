package config

import (
	"fmt"
	"strings"

	"github.com/grovetools/numwidget/errors"
)

// KeymapPresets lists the accepted values of tui.keymap.
var KeymapPresets = []string{"vim", "emacs", "arrows"}

// Validate checks semantic constraints the schema cannot express
func (c *Config) Validate() error {
	if c.TUI != nil && c.TUI.Keymap != "" && !isKeymapPreset(c.TUI.Keymap) {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown keymap preset '%s' (expected one of: %s)", c.TUI.Keymap, strings.Join(KeymapPresets, ", "))).
			WithDetail("keymap", c.TUI.Keymap)
	}

	if c.TUI != nil {
		for action, keys := range c.TUI.Keybindings {
			if len(keys) == 0 {
				return errors.New(errors.ErrCodeConfigValidation,
					fmt.Sprintf("keybinding '%s' must list at least one key", action)).
					WithDetail("action", action)
			}
		}
	}

	if c.Demo != nil {
		if c.Demo.Width < 0 || c.Demo.Height < 0 {
			return errors.New(errors.ErrCodeConfigValidation, "demo.width and demo.height cannot be negative").
				WithDetail("width", c.Demo.Width).
				WithDetail("height", c.Demo.Height)
		}
	}

	return nil
}

func isKeymapPreset(name string) bool {
	for _, preset := range KeymapPresets {
		if preset == name {
			return true
		}
	}
	return false
}
