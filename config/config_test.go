package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/numwidget/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromBytes_Defaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`name: demo`))
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "1.0", cfg.Version)
	require.NotNil(t, cfg.TUI)
	assert.Equal(t, "vim", cfg.TUI.Keymap)
	require.NotNil(t, cfg.TUI.Mouse)
	assert.True(t, *cfg.TUI.Mouse)
	require.NotNil(t, cfg.Demo)
	assert.Equal(t, "counter", cfg.Demo.Scene)
}

// TestExtensions verifies that unknown top-level keys are kept as extensions
func TestExtensions(t *testing.T) {
	yamlContent := []byte(`
version: "1.0"
tui:
  theme: gruvbox

logging:
  level: debug
  report_caller: true
`)

	cfg, err := LoadFromBytes(yamlContent)
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)

	_, ok := cfg.Extensions["logging"]
	require.True(t, ok, "expected 'logging' extension to be present")
	_, ok = cfg.Extensions["tui"]
	assert.False(t, ok, "typed sections must not leak into extensions")

	type LoggingConfig struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}
	var logCfg LoggingConfig
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)

	var missing LoggingConfig
	require.NoError(t, cfg.UnmarshalExtension("nonexistent", &missing))
	assert.Empty(t, missing.Level)
}

func TestLoadFromBytesFormat_TOML(t *testing.T) {
	tomlContent := []byte(`
version = "1.0"

[tui]
theme = "terminal"
keymap = "emacs"

[tui.keybindings]
activate = ["enter", "x"]

[demo]
scene = "float"
width = 60

[logging]
level = "warn"
`)

	cfg, err := LoadFromBytesFormat(tomlContent, FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "terminal", cfg.TUI.Theme)
	assert.Equal(t, "emacs", cfg.TUI.Keymap)
	assert.Equal(t, []string{"enter", "x"}, cfg.TUI.Keybindings["activate"])
	assert.Equal(t, "float", cfg.Demo.Scene)
	assert.Equal(t, 60, cfg.Demo.Width)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestSchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "valid keymap", content: "tui:\n  keymap: arrows\n"},
		{name: "unknown keymap", content: "tui:\n  keymap: nano\n", wantErr: true},
		{name: "negative width", content: "demo:\n  width: -3\n", wantErr: true},
		{name: "mouse must be bool", content: "tui:\n  mouse: sometimes\n", wantErr: true},
		{name: "numeric version", content: "version: 1.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.content))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_EmptyKeybinding(t *testing.T) {
	cfg := &Config{TUI: &TUIConfig{Keybindings: KeybindingSectionConfig{"quit": {}}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "numwidget configuration", schema["title"])

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"name", "version", "tui", "demo"} {
		assert.Contains(t, props, key)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("NUMWIDGET_TEST_THEME", "gruvbox")

	assert.Equal(t, "theme: gruvbox", expandEnvVars("theme: ${NUMWIDGET_TEST_THEME}"))
	assert.Equal(t, "scene: float", expandEnvVars("scene: ${NUMWIDGET_TEST_UNSET:-float}"))
	assert.Equal(t, "scene: ", expandEnvVars("scene: ${NUMWIDGET_TEST_UNSET}"))
}

func TestLoadFrom_MergesGlobalAndProject(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "numwidget"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "numwidget", "numwidget.yml"), []byte(`
tui:
  theme: gruvbox
  keybindings:
    quit: ["q"]
demo:
  width: 100
logging:
  level: debug
`), 0o644))

	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "numwidget.yml"), []byte(`
tui:
  keymap: arrows
  keybindings:
    activate: ["enter"]
demo:
  scene: styled
`), 0o644))

	nested := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := LoadFrom(nested)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "arrows", cfg.TUI.Keymap)
	assert.Equal(t, []string{"q"}, cfg.TUI.Keybindings["quit"])
	assert.Equal(t, []string{"enter"}, cfg.TUI.Keybindings["activate"])
	assert.Equal(t, "styled", cfg.Demo.Scene)
	assert.Equal(t, 100, cfg.Demo.Width)
	assert.Contains(t, cfg.Extensions, "logging")
}

func TestFindConfigFile_NotFound(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()

	_, err := FindConfigFile(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "numwidget.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))
}

func TestLoad_TOMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numwidget.toml")
	require.NoError(t, os.WriteFile(path, []byte("[demo]\nscene = \"simple\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "simple", cfg.Demo.Scene)
	assert.Equal(t, FormatTOML, FormatForPath(path))
	assert.Equal(t, FormatYAML, FormatForPath("numwidget.yml"))
}
