package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/tui/keymap"
	"github.com/grovetools/numwidget/tui/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"simple", "styled", "counter", "float", "update"}, Names())
	for _, name := range Names() {
		assert.NotEmpty(t, Describe(name))
	}
	assert.Empty(t, Describe("nope"))
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nope")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownScene, errors.GetCode(err))
}

func TestSimpleScene(t *testing.T) {
	s := widget.NewScreen(80, 24)
	scene := newSimpleScene(s.Root()).(*simpleScene)
	assert.Equal(t, "42", scene.label.Text())
}

func TestStyledScene(t *testing.T) {
	s := widget.NewScreen(120, 40)
	scene := newStyledScene(s.Root()).(*styledScene)
	s.Layout()

	assert.Equal(t, 20, scene.topLeft.Bounds().X)
	assert.Equal(t, 20, scene.topLeft.Bounds().Y)

	br := scene.bottomRight.Bounds()
	assert.Equal(t, 120-20, br.X+br.W)
	assert.Equal(t, 40-20, br.Y+br.H)
}

func TestFloatScene(t *testing.T) {
	s := widget.NewScreen(80, 24)
	scene := newFloatScene(s.Root()).(*floatScene)

	assert.Equal(t, "23.5", scene.temperature.Text())
	assert.Equal(t, "99.99", scene.percent.Text())
	assert.Equal(t, "121", scene.speed.Text())

	s.Layout()
	assert.Equal(t, scene.percent.Bounds().Y-2, scene.temperature.Bounds().Y)
	assert.Equal(t, scene.percent.Bounds().Y+2, scene.speed.Bounds().Y)
}

func TestUpdateScene(t *testing.T) {
	s := widget.NewScreen(80, 24)
	scene := newUpdateScene(s.Root()).(*updateScene)
	require.NotNil(t, scene.label)
	assert.Equal(t, "0", scene.label.Text())

	scene.Step()
	scene.Step()
	assert.Equal(t, "2", scene.label.Text())
	assert.Len(t, s.Root().Children(), 1, "steps reuse the same label")
}

func TestRenderFrame(t *testing.T) {
	out, err := RenderFrame("simple", 20, 7)
	require.NoError(t, err)

	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "      █ █ ███       ", lines[1])

	_, err = RenderFrame("missing", 20, 7)
	assert.Error(t, err)
}

func newModel(t *testing.T, scene string) Model {
	t.Helper()
	m, err := New(scene, keymap.NewBase())
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24 + titleRows + footerRows})
	return updated.(Model)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestModelCounterClick(t *testing.T) {
	m := newModel(t, "counter")
	scene := m.Scene().(*counterScene)

	w, h := m.Screen().Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	m.Screen().Layout()
	b := scene.button.Bounds()
	x, y := b.X+b.W/2, b.Y+b.H/2+titleRows

	m = send(m,
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	assert.Equal(t, int32(1), scene.Value())
	assert.Equal(t, "1", scene.label.Text())

	// Release away from the button does not count.
	m = send(m,
		tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	assert.Equal(t, "1", scene.label.Text())
}

func TestModelCounterKeyboard(t *testing.T) {
	m := newModel(t, "counter")
	scene := m.Scene().(*counterScene)

	m = send(m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	assert.Same(t, scene.button, m.Screen().Focused())
	assert.Equal(t, "2", scene.label.Text())
}

func TestModelStepKey(t *testing.T) {
	m := newModel(t, "update")
	scene := m.Scene().(*updateScene)

	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, "1", scene.label.Text())
}

func TestModelQuit(t *testing.T) {
	m := newModel(t, "simple")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelView(t *testing.T) {
	m, err := New("simple", keymap.NewBase())
	require.NoError(t, err)
	assert.Equal(t, "Initializing...", m.View())

	m = newModel(t, "simple")
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	assert.Contains(t, lines[0], "numwidget · simple")
	assert.Contains(t, lines[0], "80x24")
	assert.Contains(t, view, "███")
	assert.Contains(t, lines[len(lines)-1], "quit")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Contains(t, ansi.Strip(m.View()), "step scene")

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.NotContains(t, ansi.Strip(m.View()), "step scene")
}

func TestModelKeysMsg(t *testing.T) {
	m := newModel(t, "update")
	scene := m.Scene().(*updateScene)

	m = send(m, KeysMsg{Keys: keymap.DefaultEmacs()})
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, "0", scene.label.Text(), "vim step key no longer bound")

	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}, Alt: true})
	assert.Equal(t, "1", scene.label.Text())
}
