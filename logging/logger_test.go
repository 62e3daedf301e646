package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
)

func resetLoggers() {
	loggersMu.Lock()
	loggers = make(map[string]*logrus.Entry)
	loggersMu.Unlock()
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(resetLoggers)

	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}

	if again := NewLogger("test-component"); again != logger {
		t.Error("Expected NewLogger to return the cached entry for the same component")
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	entry := logger.WithField("component", "test")
	entry.Info("Test message")

	output := ansi.Strip(buf.String())

	for _, want := range []string{"[INFO]", "[test]", "Test message"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "label created",
				Data: logrus.Fields{
					"component": "demo",
					"scene":     "counter",
					"value":     3,
				},
			},
			want: []string{"[INFO]", "[demo]", "label created", "scene=counter value=3"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "warning message",
				Data: logrus.Fields{
					"component": "demo",
				},
			},
			want:    []string{"[WARN]", "warning message"},
			notWant: []string{"[demo]", "2024"},
		},
		{
			name:   "caller information with function name",
			config: FormatConfig{},
			entry: func() *logrus.Entry {
				logger := logrus.New()
				logger.SetReportCaller(true)
				return &logrus.Entry{
					Logger:  logger,
					Level:   logrus.InfoLevel,
					Message: "with caller",
					Data:    logrus.Fields{"component": "demo"},
					Caller: &runtime.Frame{
						File:     "/path/to/scene.go",
						Line:     42,
						Function: "github.com/example/demo.buildCounter",
					},
				}
			}(),
			want: []string{"[scene.go:42 demo.buildCounter]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &TextFormatter{Config: tt.config}
			tt.entry.Time = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

			output, err := formatter.Format(tt.entry)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			outputStr := ansi.Strip(string(output))

			for _, want := range tt.want {
				if !strings.Contains(outputStr, want) {
					t.Errorf("Expected output to contain '%s', got: %s", want, outputStr)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(outputStr, notWant) {
					t.Errorf("Expected output NOT to contain '%s', got: %s", notWant, outputStr)
				}
			}
		})
	}
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Setenv("NUMWIDGET_LOG_LEVEL", "")
	t.Setenv("NUMWIDGET_LOG_CALLER", "")

	logPath := filepath.Join(t.TempDir(), "logs", "numwidget.log")
	logger := newLoggerFromConfig("file-test", Config{
		Level: "debug",
		File:  FileSinkConfig{Enabled: true, Path: logPath},
		Format: FormatConfig{
			Preset:             "simple",
			StructuredToStderr: "never",
		},
	})

	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}

	logger.WithField("component", "file-test").Debug("written to file")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] written to file") {
		t.Errorf("Unexpected log file content: %q", string(data))
	}
}

func TestEnvironmentVariables(t *testing.T) {
	t.Setenv("NUMWIDGET_LOG_LEVEL", "error")
	t.Setenv("NUMWIDGET_LOG_CALLER", "true")

	logger := newLoggerFromConfig("env-test", Config{Level: "debug"})

	if logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("Expected env level to win, got %v", logger.GetLevel())
	}
	if !logger.ReportCaller {
		t.Error("Expected caller reporting to be enabled")
	}
}

func TestJSONPreset(t *testing.T) {
	logger := newLoggerFromConfig("json-test", Config{Format: FormatConfig{Preset: "json", StructuredToStderr: "never"}})
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", logger.Formatter)
	}
}

func TestGlobalOutputRedirect(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalOutput(&buf)
	t.Cleanup(func() { SetGlobalOutput(os.Stderr) })

	logger := newLoggerFromConfig("global-test", Config{
		Format: FormatConfig{Preset: "simple", StructuredToStderr: "always"},
	})
	logger.Info("through the global writer")

	if !strings.Contains(buf.String(), "through the global writer") {
		t.Errorf("Expected global writer to receive output, got %q", buf.String())
	}
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("config is valid")
	p.Fail("config is invalid", errors.New("bad keymap"))
	p.Fail("scene not found", nil)
	p.Warn("override ignored")
	p.Hint("run config validate")
	p.Field("scene", "counter")
	p.Path("File", "/tmp/numwidget.yml")
	p.Block("{\n  \"code\": \"X\"\n}\n")

	out := ansi.Strip(buf.String())
	for _, want := range []string{
		"✓ config is valid\n",
		"✗ config is invalid: bad keymap\n",
		"✗ scene not found\n",
		"⚠ override ignored\n",
		"run config validate\n",
		"scene: counter\n",
		"File: /tmp/numwidget.yml\n",
		"  {\n    \"code\": \"X\"\n  }\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got %q", want, out)
		}
	}
}
