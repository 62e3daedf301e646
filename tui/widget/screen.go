package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/grovetools/numwidget/logging"
	"github.com/grovetools/numwidget/tui/theme"
	"github.com/sirupsen/logrus"
)

// Screen is the root of an object tree. It owns the focus cursor and the
// object currently held down by the mouse.
type Screen struct {
	width, height int
	root          *Object
	focused       *Object
	pressed       *Object
	log           *logrus.Entry
}

// NewScreen creates a screen of width x height cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{log: logging.NewLogger("widget")}
	s.root = &Object{id: uuid.New(), kind: KindScreen, screen: s}
	s.Resize(width, height)
	return s
}

// Root returns the screen object all top-level widgets are created under.
func (s *Screen) Root() *Object {
	return s.root
}

// Size returns the screen dimensions in cells.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions. Layout is recomputed on the next
// render or hit test.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.root.width, s.root.height = s.width, s.height
}

// Clean deletes every object on the screen.
func (s *Screen) Clean() {
	s.root.Clean()
	s.focused, s.pressed = nil, nil
}

// Layout computes the bounds of every object on the screen.
func (s *Screen) Layout() {
	s.root.bounds = Rect{W: s.width, H: s.height}
	layoutChildren(s.root)
}

func layoutChildren(o *Object) {
	area := o.contentArea()
	for _, c := range o.children {
		w, h := c.measure()
		x, y := c.align.anchor(area, w, h)
		c.bounds = Rect{X: x + c.xOfs, Y: y + c.yOfs, W: w, H: h}
		layoutChildren(c)
	}
}

// Render lays out the tree and draws it as a string of height lines.
func (s *Screen) Render() string {
	s.Layout()
	c := newCanvas(s.width, s.height)
	s.draw(c, s.root, c.bounds())
	return c.String()
}

func (s *Screen) draw(c *canvas, o *Object, clip Rect) {
	visible := o.bounds.Intersect(clip)
	if visible.Empty() {
		return
	}

	if bg := o.BgColor(); bg != nil {
		c.fill(visible, bg)
	}

	inner := visible
	if on, color := o.border(); on {
		inner = visible.Intersect(o.bounds.Inset(1, 1))
		cs := cellStyle{fg: color}
		if o == s.focused {
			cs = cellStyle{fg: theme.DefaultTheme.Colors.Orange, bold: true}
		}
		if o == s.pressed {
			cs.reverse = true
		}
		c.box(o.bounds, cs, clip)
	}

	s.drawText(c, o, inner)

	for _, child := range o.children {
		s.draw(c, child, inner)
	}
}

func (s *Screen) drawText(c *canvas, o *Object, clip Rect) {
	lines := o.textLines()
	if len(lines) == 0 {
		return
	}
	area := o.contentArea()
	clip = clip.Intersect(area)
	font := o.TextFont()
	cs := cellStyle{fg: o.TextColor(), bg: o.BgColor()}

	for i, line := range lines {
		x := area.X
		switch lw := font.Measure(line); o.TextAlign() {
		case TextAlignCenter:
			x += (area.W - lw) / 2
		case TextAlignRight:
			x += area.W - lw
		}
		for r, row := range font.Render(line) {
			c.drawString(x, area.Y+i*font.Height()+r, row, cs, clip)
		}
	}
}

// HitTest returns the topmost object under (x, y), or nil.
func (s *Screen) HitTest(x, y int) *Object {
	s.Layout()
	return hitTest(s.root, x, y)
}

func hitTest(o *Object, x, y int) *Object {
	if !o.bounds.Contains(x, y) {
		return nil
	}
	for i := len(o.children) - 1; i >= 0; i-- {
		if hit := hitTest(o.children[i], x, y); hit != nil {
			return hit
		}
	}
	return o
}

// clickTarget is the nearest clickable object at or above the hit object.
func (s *Screen) clickTarget(x, y int) *Object {
	for o := s.HitTest(x, y); o != nil; o = o.parent {
		if o.Clickable() {
			return o
		}
	}
	return nil
}

// HandleMouse dispatches a mouse message in screen coordinates. A left press
// on a clickable object sends EventPressed; the release over the same object
// sends EventClicked. It reports whether any object was affected.
func (s *Screen) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		target := s.clickTarget(msg.X, msg.Y)
		s.pressed = target
		if target == nil {
			return false
		}
		s.focused = target
		target.SendEvent(EventPressed)
		return true

	case tea.MouseActionRelease:
		pressed := s.pressed
		s.pressed = nil
		if pressed == nil {
			return false
		}
		if s.clickTarget(msg.X, msg.Y) == pressed {
			s.log.WithField("object", pressed.String()).Debug("Clicked")
			pressed.SendEvent(EventClicked)
		}
		return true
	}
	return false
}

// Focused returns the object keyboard activation goes to.
func (s *Screen) Focused() *Object {
	return s.focused
}

// Pressed returns the object currently held down by the mouse.
func (s *Screen) Pressed() *Object {
	return s.pressed
}

// Focus moves keyboard focus to o if it is clickable and on this screen.
func (s *Screen) Focus(o *Object) {
	if o != nil && o.Clickable() && o.screen == s {
		s.focused = o
	}
}

func (s *Screen) focusables() []*Object {
	var out []*Object
	s.root.walk(func(o *Object) {
		if o.Clickable() {
			out = append(out, o)
		}
	})
	return out
}

// FocusNext moves focus to the next clickable object in tree order.
func (s *Screen) FocusNext() {
	s.moveFocus(1)
}

// FocusPrev moves focus to the previous clickable object in tree order.
func (s *Screen) FocusPrev() {
	s.moveFocus(-1)
}

func (s *Screen) moveFocus(step int) {
	list := s.focusables()
	if len(list) == 0 {
		s.focused = nil
		return
	}
	idx := -1
	for i, o := range list {
		if o == s.focused {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step > 0 {
			s.focused = list[0]
		} else {
			s.focused = list[len(list)-1]
		}
		return
	}
	s.focused = list[(idx+step+len(list))%len(list)]
}

// Activate sends EventClicked to the focused object.
func (s *Screen) Activate() bool {
	if s.focused == nil || !s.focused.Clickable() {
		return false
	}
	s.focused.SendEvent(EventClicked)
	return true
}
