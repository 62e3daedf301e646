package config

// mergeConfigs merges override configuration into base. Scalar fields are
// replaced when set in override; maps are merged key by key.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Name != "" {
		result.Name = override.Name
	}
	if override.Version != "" {
		result.Version = override.Version
	}

	if override.TUI != nil {
		if result.TUI == nil {
			tui := *override.TUI
			result.TUI = &tui
		} else {
			merged := *result.TUI
			if override.TUI.Theme != "" {
				merged.Theme = override.TUI.Theme
			}
			if override.TUI.Keymap != "" {
				merged.Keymap = override.TUI.Keymap
			}
			if override.TUI.Mouse != nil {
				merged.Mouse = override.TUI.Mouse
			}
			if override.TUI.AltScreen != nil {
				merged.AltScreen = override.TUI.AltScreen
			}
			if len(override.TUI.Keybindings) > 0 {
				bindings := make(KeybindingSectionConfig, len(merged.Keybindings)+len(override.TUI.Keybindings))
				for action, keys := range merged.Keybindings {
					bindings[action] = keys
				}
				for action, keys := range override.TUI.Keybindings {
					bindings[action] = keys
				}
				merged.Keybindings = bindings
			}
			result.TUI = &merged
		}
	}

	if override.Demo != nil {
		if result.Demo == nil {
			demo := *override.Demo
			result.Demo = &demo
		} else {
			merged := *result.Demo
			if override.Demo.Scene != "" {
				merged.Scene = override.Demo.Scene
			}
			if override.Demo.Width != 0 {
				merged.Width = override.Demo.Width
			}
			if override.Demo.Height != 0 {
				merged.Height = override.Demo.Height
			}
			result.Demo = &merged
		}
	}

	if len(override.Extensions) > 0 {
		extensions := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			extensions[key] = value
		}
		for key, value := range override.Extensions {
			extensions[key] = value
		}
		result.Extensions = extensions
	}

	return &result
}
