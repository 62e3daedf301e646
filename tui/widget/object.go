package widget

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Kind distinguishes the object types the toolkit knows how to draw.
type Kind int

const (
	KindScreen Kind = iota
	KindObject
	KindLabel
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindScreen:
		return "screen"
	case KindObject:
		return "object"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	default:
		return "unknown"
	}
}

// Object is a node of the widget tree. Objects are owned by their parent and
// destroyed with it.
type Object struct {
	id       uuid.UUID
	kind     Kind
	screen   *Screen
	parent   *Object
	children []*Object

	text     string
	longMode LongMode

	styles []*Style
	local  Style

	align      Align
	xOfs, yOfs int
	width      int
	height     int

	clickable bool
	handlers  []eventHandler

	bounds  Rect
	deleted bool
}

func newObject(parent *Object, kind Kind) *Object {
	o := &Object{
		id:        uuid.New(),
		kind:      kind,
		parent:    parent,
		clickable: kind == KindButton,
	}
	if parent != nil {
		o.screen = parent.screen
		parent.children = append(parent.children, o)
	}
	return o
}

// NewObject creates a plain container under parent.
func NewObject(parent *Object) *Object {
	return newObject(parent, KindObject)
}

// NewLabel creates an empty text label under parent.
func NewLabel(parent *Object) *Object {
	o := newObject(parent, KindLabel)
	o.longMode = LongWrap
	return o
}

// NewButton creates a clickable container under parent.
func NewButton(parent *Object) *Object {
	return newObject(parent, KindButton)
}

func (o *Object) ID() uuid.UUID       { return o.id }
func (o *Object) Kind() Kind          { return o.kind }
func (o *Object) Parent() *Object     { return o.parent }
func (o *Object) Screen() *Screen     { return o.screen }
func (o *Object) Deleted() bool       { return o.deleted }
func (o *Object) Text() string        { return o.text }
func (o *Object) LongMode() LongMode  { return o.longMode }
func (o *Object) Children() []*Object { return slices.Clone(o.children) }

// Styles returns the shared styles in precedence order. Shared entries are
// usually frozen, so setting a property on one yields a copy.
func (o *Object) Styles() []*Style { return slices.Clone(o.styles) }

// Bounds returns the rectangle computed by the last layout pass.
func (o *Object) Bounds() Rect { return o.bounds }

func (o *Object) String() string {
	return fmt.Sprintf("%s(%s)", o.kind, o.id.String()[:8])
}

// SetText replaces the object's text.
func (o *Object) SetText(text string) {
	o.text = text
}

// SetTextFmt formats the object's text with fmt.Sprintf.
func (o *Object) SetTextFmt(format string, args ...any) {
	o.text = fmt.Sprintf(format, args...)
}

func (o *Object) SetLongMode(m LongMode) {
	o.longMode = m
}

// SetSize sets an explicit size. Zero in either dimension sizes that
// dimension to content.
func (o *Object) SetSize(w, h int) {
	o.width, o.height = max(w, 0), max(h, 0)
}

// Size returns the explicit size set with SetSize.
func (o *Object) Size() (int, int) {
	return o.width, o.height
}

// Align places the object at anchor a of its parent, shifted by (x, y).
func (o *Object) Align(a Align, x, y int) {
	o.align, o.xOfs, o.yOfs = a, x, y
}

// Center is Align(AlignCenter, 0, 0).
func (o *Object) Center() {
	o.Align(AlignCenter, 0, 0)
}

// Alignment returns the anchor and offsets set with Align.
func (o *Object) Alignment() (Align, int, int) {
	return o.align, o.xOfs, o.yOfs
}

// AddStyle appends a shared style. Styles added later take precedence.
func (o *Object) AddStyle(s *Style) {
	if s != nil {
		o.styles = append(o.styles, s)
	}
}

// SetStyleTextColor sets the text color on the object's local style.
func (o *Object) SetStyleTextColor(c lipgloss.TerminalColor) {
	o.local.SetTextColor(c)
}

// SetStyleBgColor sets the background color on the object's local style.
func (o *Object) SetStyleBgColor(c lipgloss.TerminalColor) {
	o.local.SetBgColor(c)
}

// SetClickable controls whether the object receives pointer and keyboard clicks.
func (o *Object) SetClickable(on bool) {
	o.clickable = on
}

func (o *Object) Clickable() bool {
	return o.clickable && !o.deleted
}

// resolve finds the style that defines p: the local style first, then shared
// styles from the most recently added, then the kind's defaults.
func (o *Object) resolve(p styleProp) *Style {
	if o.local.has(p) {
		return &o.local
	}
	for i := len(o.styles) - 1; i >= 0; i-- {
		if o.styles[i].has(p) {
			return o.styles[i]
		}
	}
	if d := kindDefaults(o.kind); d.has(p) {
		return d
	}
	return nil
}

// TextFont returns the font the object's text is drawn with.
func (o *Object) TextFont() *Font {
	if s := o.resolve(propFont); s != nil && s.font != nil {
		return s.font
	}
	return FontDefault
}

// TextColor returns the resolved text color, or nil when none is set.
func (o *Object) TextColor() lipgloss.TerminalColor {
	if s := o.resolve(propTextColor); s != nil {
		return s.textColor
	}
	return nil
}

// BgColor returns the resolved background color, or nil when none is set.
func (o *Object) BgColor() lipgloss.TerminalColor {
	if s := o.resolve(propBgColor); s != nil {
		return s.bgColor
	}
	return nil
}

func (o *Object) TextAlign() TextAlign {
	if s := o.resolve(propTextAlign); s != nil {
		return s.textAlign
	}
	return TextAlignAuto
}

func (o *Object) border() (bool, lipgloss.TerminalColor) {
	if s := o.resolve(propBorder); s != nil {
		return s.border, s.borderColor
	}
	return false, nil
}

func (o *Object) padding() (int, int) {
	if s := o.resolve(propPadding); s != nil {
		return s.padX, s.padY
	}
	return 0, 0
}

// frame returns the horizontal and vertical inset of the content area.
func (o *Object) frame() (int, int) {
	px, py := o.padding()
	if on, _ := o.border(); on {
		px++
		py++
	}
	return px, py
}

// contentArea is the object's bounds minus border and padding.
func (o *Object) contentArea() Rect {
	fx, fy := o.frame()
	return o.bounds.Inset(fx, fy)
}

// textLines splits the text into display lines, wrapping at the explicit
// width in LongWrap mode.
func (o *Object) textLines() []string {
	if o.text == "" {
		return nil
	}
	lines := strings.Split(o.text, "\n")
	if o.longMode != LongWrap || o.width <= 0 {
		return lines
	}
	fx, _ := o.frame()
	font := o.TextFont()
	var out []string
	for _, l := range lines {
		out = append(out, font.wrapLine(l, o.width-2*fx)...)
	}
	return out
}

// measure returns the object's size: explicit dimensions win, the rest is
// taken from the text or the largest child.
func (o *Object) measure() (int, int) {
	w, h := o.width, o.height
	if w > 0 && h > 0 {
		return w, h
	}

	var cw, ch int
	if lines := o.textLines(); len(lines) > 0 {
		font := o.TextFont()
		for _, l := range lines {
			cw = max(cw, font.Measure(l))
		}
		ch = len(lines) * font.Height()
	}
	for _, c := range o.children {
		kw, kh := c.measure()
		cw, ch = max(cw, kw), max(ch, kh)
	}

	fx, fy := o.frame()
	if w <= 0 {
		w = cw + 2*fx
	}
	if h <= 0 {
		h = ch + 2*fy
	}
	return w, h
}

// AddEventCallback registers cb for events matching filter. EventAll
// receives every event.
func (o *Object) AddEventCallback(cb EventCallback, filter EventCode, userData any) {
	o.handlers = append(o.handlers, eventHandler{cb: cb, filter: filter, userData: userData})
}

// SendEvent runs the callbacks of o that match code.
func (o *Object) SendEvent(code EventCode) {
	if o.deleted && code != EventDelete {
		return
	}
	for _, h := range o.handlers {
		if h.filter != EventAll && h.filter != code {
			continue
		}
		h.cb(&Event{Code: code, Target: o, Current: o, UserData: h.userData})
	}
}

// Delete destroys o and its children. Every object in the subtree receives
// EventDelete before it is detached.
func (o *Object) Delete() {
	if o.deleted {
		return
	}
	o.walk(func(n *Object) {
		n.SendEvent(EventDelete)
	})
	if s := o.screen; s != nil {
		if s.focused != nil && s.focused.within(o) {
			s.focused = nil
		}
		if s.pressed != nil && s.pressed.within(o) {
			s.pressed = nil
		}
	}
	if p := o.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c *Object) bool { return c == o })
	}
	o.walk(func(n *Object) {
		n.deleted = true
		n.handlers = nil
	})
	o.parent = nil
}

// Clean deletes every child of o.
func (o *Object) Clean() {
	for _, c := range slices.Clone(o.children) {
		c.Delete()
	}
}

// walk visits o and its descendants in tree order.
func (o *Object) walk(fn func(*Object)) {
	fn(o)
	for _, c := range o.children {
		c.walk(fn)
	}
}

// within reports whether o is anc or one of its descendants.
func (o *Object) within(anc *Object) bool {
	for n := o; n != nil; n = n.parent {
		if n == anc {
			return true
		}
	}
	return false
}
