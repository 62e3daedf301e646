package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// KeybindingSectionConfig maps action names (e.g. "quit", "activate") to the
// list of key combinations that trigger them.
type KeybindingSectionConfig map[string][]string

// TUIConfig holds settings shared by every interactive view.
type TUIConfig struct {
	Theme       string                  `yaml:"theme,omitempty" toml:"theme,omitempty" jsonschema:"description=Color theme name (kanagawa or gruvbox or terminal)"`
	Keymap      string                  `yaml:"keymap,omitempty" toml:"keymap,omitempty" jsonschema:"description=Keymap preset,enum=vim,enum=emacs,enum=arrows"`
	Keybindings KeybindingSectionConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" jsonschema:"description=Per-action key overrides"`
	Mouse       *bool                   `yaml:"mouse,omitempty" toml:"mouse,omitempty" jsonschema:"description=Enable mouse clicks (default true)"`
	AltScreen   *bool                   `yaml:"alt_screen,omitempty" toml:"alt_screen,omitempty" jsonschema:"description=Run in the alternate screen buffer (default true)"`
}

// DemoConfig configures the demo and render commands.
type DemoConfig struct {
	Scene  string `yaml:"scene,omitempty" toml:"scene,omitempty" jsonschema:"description=Scene shown when none is given on the command line"`
	Width  int    `yaml:"width,omitempty" toml:"width,omitempty" jsonschema:"description=Frame width for render; 0 uses the terminal width,minimum=0"`
	Height int    `yaml:"height,omitempty" toml:"height,omitempty" jsonschema:"description=Frame height for render; 0 uses the terminal height,minimum=0"`
}

// Config is the top-level numwidget.yml structure.
type Config struct {
	Name    string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Version string      `yaml:"version" toml:"version"`
	TUI     *TUIConfig  `yaml:"tui,omitempty" toml:"tui,omitempty"`
	Demo    *DemoConfig `yaml:"demo,omitempty" toml:"demo,omitempty"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// knownKeys lists the top-level keys decoded into typed fields.
var knownKeys = map[string]bool{
	"name":    true,
	"version": true,
	"tui":     true,
	"demo":    true,
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	if c.TUI.Keymap == "" {
		c.TUI.Keymap = "vim"
	}
	if c.TUI.Mouse == nil {
		trueVal := true
		c.TUI.Mouse = &trueVal
	}
	if c.TUI.AltScreen == nil {
		trueVal := true
		c.TUI.AltScreen = &trueVal
	}
	if c.Demo == nil {
		c.Demo = &DemoConfig{}
	}
	if c.Demo.Scene == "" {
		c.Demo.Scene = "counter"
	}
}

// UnmarshalExtension decodes a specific extension's configuration into the
// provided target struct. The target must be a pointer. A missing key is not
// an error; the target is left untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
