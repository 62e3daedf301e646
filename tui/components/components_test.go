package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderTitleBar(t *testing.T) {
	out := RenderTitleBar("counter", "80x24", 40)
	assert.Equal(t, 40, ansi.StringWidth(out))

	plain := ansi.Strip(out)
	assert.True(t, strings.HasSuffix(plain, "80x24"))
	assert.Contains(t, plain, "counter")
}

func TestRenderTitleBarNarrow(t *testing.T) {
	out := RenderTitleBar("a long scene title", "status", 10)
	assert.LessOrEqual(t, ansi.StringWidth(out), 10)
}

func TestRenderKeyValue(t *testing.T) {
	assert.Equal(t, "scene: float", ansi.Strip(RenderKeyValue("scene", "float")))
}
