// Package testutil holds helpers shared by package tests.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// IsolateConfig points the global config directory at an empty temp dir and
// moves the test into a fresh working directory, so no real numwidget.yml is
// picked up. It returns the working directory.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// WriteConfig writes content to dir/name and returns the path.
func WriteConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to write %s", name)
	return path
}

// PlainLines strips ANSI sequences from s and splits it into lines.
func PlainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

// RandomString generates a random hex string of the given length.
func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return hex.EncodeToString(bytes)[:length]
}
