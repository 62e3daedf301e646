// Package demo holds the example scenes for number labels and a bubbletea
// model that runs one of them interactively.
package demo

import (
	"github.com/grovetools/numwidget/errors"
	"github.com/grovetools/numwidget/tui/components/numberlabel"
	"github.com/grovetools/numwidget/tui/widget"
)

// Scene is an example built on a parent object.
type Scene interface {
	Name() string
	// Step advances the scene by one tick. Scenes without steps ignore it.
	Step()
}

// Factory builds a scene under root.
type Factory func(root *widget.Object) Scene

type entry struct {
	name        string
	description string
	build       Factory
}

var registry = []entry{
	{"simple", "a single large number", newSimpleScene},
	{"styled", "medium numbers anchored to opposite corners", newStyledScene},
	{"counter", "a counter with an Increment button", newCounterScene},
	{"float", "floats with 1, 2 and 0 decimals", newFloatScene},
	{"update", "a number that grows on every step", newUpdateScene},
}

// Names returns the scene names in presentation order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Describe returns the one-line description of a scene, or "".
func Describe(name string) string {
	for _, e := range registry {
		if e.name == name {
			return e.description
		}
	}
	return ""
}

// Lookup returns the factory for the named scene.
func Lookup(name string) (Factory, error) {
	for _, e := range registry {
		if e.name == name {
			return e.build, nil
		}
	}
	return nil, errors.UnknownScene(name, Names())
}

// RenderFrame builds the named scene on a fresh width x height screen and
// returns one rendered frame.
func RenderFrame(name string, width, height int) (string, error) {
	build, err := Lookup(name)
	if err != nil {
		return "", err
	}
	screen := widget.NewScreen(width, height)
	build(screen.Root())
	return screen.Render(), nil
}

type simpleScene struct {
	label *widget.Object
}

func newSimpleScene(root *widget.Object) Scene {
	return &simpleScene{label: numberlabel.Create(root, 42)}
}

func (s *simpleScene) Name() string { return "simple" }
func (s *simpleScene) Step()        {}

type styledScene struct {
	topLeft, bottomRight *widget.Object
}

func newStyledScene(root *widget.Object) Scene {
	return &styledScene{
		topLeft:     numberlabel.CreateStyled(root, 123, widget.AlignTopLeft, 20, 20),
		bottomRight: numberlabel.CreateStyled(root, 456, widget.AlignBottomRight, -20, -20),
	}
}

func (s *styledScene) Name() string { return "styled" }
func (s *styledScene) Step()        {}

// counterScene keeps the logical value; the label only displays it.
type counterScene struct {
	label  *widget.Object
	button *widget.Object
	value  int32
}

func newCounterScene(root *widget.Object) Scene {
	s := &counterScene{}

	cont := widget.NewObject(root)
	cont.SetSize(36, 14)
	cont.Center()

	s.label = numberlabel.Create(cont, s.value)
	s.label.Align(widget.AlignCenter, 0, -2)

	s.button = widget.NewButton(cont)
	s.button.Align(widget.AlignCenter, 0, 3)
	s.button.AddEventCallback(s.onIncrement, widget.EventClicked, nil)

	text := widget.NewLabel(s.button)
	text.SetText("Increment")
	text.Center()

	return s
}

func (s *counterScene) onIncrement(e *widget.Event) {
	if e.Code != widget.EventClicked {
		return
	}
	s.value++
	numberlabel.Update(s.label, s.value)
}

func (s *counterScene) Name() string { return "counter" }
func (s *counterScene) Step()        {}

// Value returns the counter's logical value.
func (s *counterScene) Value() int32 { return s.value }

type floatScene struct {
	temperature, percent, speed *widget.Object
}

func newFloatScene(root *widget.Object) Scene {
	s := &floatScene{
		temperature: numberlabel.CreateFloat(root, 23.5, 1),
		percent:     numberlabel.CreateFloat(root, 99.99, 2),
		speed:       numberlabel.CreateFloat(root, 120.7, 0),
	}
	s.temperature.Align(widget.AlignCenter, 0, -2)
	s.percent.Align(widget.AlignCenter, 0, 0)
	s.speed.Align(widget.AlignCenter, 0, 2)
	return s
}

func (s *floatScene) Name() string { return "float" }
func (s *floatScene) Step()        {}

// updateScene creates its label on the first step and updates it afterwards.
type updateScene struct {
	root    *widget.Object
	label   *widget.Object
	counter int32
}

func newUpdateScene(root *widget.Object) Scene {
	s := &updateScene{root: root}
	s.Step()
	return s
}

func (s *updateScene) Name() string { return "update" }

func (s *updateScene) Step() {
	if s.label == nil {
		s.label = numberlabel.Create(s.root, s.counter)
		return
	}
	s.counter++
	numberlabel.Update(s.label, s.counter)
}
