package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/numwidget/logging"
	"github.com/grovetools/numwidget/tui/components"
	"github.com/grovetools/numwidget/tui/components/help"
	"github.com/grovetools/numwidget/tui/keymap"
	"github.com/grovetools/numwidget/tui/widget"
	"github.com/sirupsen/logrus"
)

// Rows taken by the title bar above the screen and the footer below it.
const (
	titleRows  = 1
	footerRows = 2
)

// KeysMsg replaces the key bindings of a running model, for example after the
// configuration file changed.
type KeysMsg struct {
	Keys keymap.Base
}

// Model runs one scene inside a bubbletea program.
type Model struct {
	sceneName string
	scene     Scene
	screen    *widget.Screen
	keys      keymap.Base
	help      help.Model
	width     int
	height    int
	log       *logrus.Entry
}

// New builds the named scene. The screen is sized by the first
// tea.WindowSizeMsg.
func New(sceneName string, keys keymap.Base) (Model, error) {
	build, err := Lookup(sceneName)
	if err != nil {
		return Model{}, err
	}

	screen := widget.NewScreen(0, 0)
	m := Model{
		sceneName: sceneName,
		screen:    screen,
		keys:      keys,
		help:      help.New(keys),
		log:       logging.NewLogger("demo"),
	}
	m.scene = build(screen.Root())
	m.log.WithField("scene", sceneName).Debug("Scene built")
	return m, nil
}

// Screen returns the widget screen the scene is drawn on.
func (m Model) Screen() *widget.Screen {
	return m.screen
}

// Scene returns the running scene.
func (m Model) Scene() Scene {
	return m.scene
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height-titleRows-footerRows)
		m.help.SetSize(msg.Width, msg.Height-titleRows)
		return m, nil

	case KeysMsg:
		m.keys = msg.Keys
		m.help.SetKeys(msg.Keys)
		m.log.Debug("Key bindings reloaded")
		return m, nil

	case tea.MouseMsg:
		if m.help.ShowAll {
			return m, nil
		}
		msg.Y -= titleRows
		m.screen.HandleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
		case key.Matches(msg, m.keys.FocusNext):
			m.screen.FocusNext()
		case key.Matches(msg, m.keys.FocusPrev):
			m.screen.FocusPrev()
		case key.Matches(msg, m.keys.Activate):
			m.screen.Activate()
		case key.Matches(msg, m.keys.Step):
			m.scene.Step()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	w, h := m.screen.Size()
	title := components.RenderTitleBar("numwidget · "+m.sceneName, fmt.Sprintf("%dx%d", w, h), m.width)
	if m.help.ShowAll {
		return title + "\n" + m.help.View()
	}
	return title + "\n" + m.screen.Render() + "\n" + components.RenderFooter(m.help.View(), m.width)
}
