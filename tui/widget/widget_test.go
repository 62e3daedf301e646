package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchors(t *testing.T) {
	tests := []struct {
		align Align
		x, y  int
	}{
		{AlignDefault, 0, 0},
		{AlignTopLeft, 0, 0},
		{AlignTopMid, 8, 0},
		{AlignTopRight, 16, 0},
		{AlignLeftMid, 0, 4},
		{AlignCenter, 8, 4},
		{AlignRightMid, 16, 4},
		{AlignBottomLeft, 0, 8},
		{AlignBottomMid, 8, 8},
		{AlignBottomRight, 16, 8},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			s := NewScreen(20, 10)
			o := NewLabel(s.Root())
			o.SetSize(4, 2)
			o.Align(tt.align, 0, 0)
			s.Layout()
			assert.Equal(t, Rect{X: tt.x, Y: tt.y, W: 4, H: 2}, o.Bounds())
		})
	}
}

func TestOffsetsAddedAfterAnchor(t *testing.T) {
	s := NewScreen(20, 10)
	o := NewLabel(s.Root())
	o.SetSize(4, 2)
	o.Align(AlignBottomRight, -3, -1)
	s.Layout()
	assert.Equal(t, Rect{X: 13, Y: 7, W: 4, H: 2}, o.Bounds())
}

func TestChildrenUseParentContentArea(t *testing.T) {
	s := NewScreen(40, 20)
	cont := NewObject(s.Root())
	cont.SetSize(20, 10)
	cont.Align(AlignTopLeft, 5, 2)

	child := NewLabel(cont)
	child.SetText("x")
	s.Layout()

	// Container default style: border of 1 and horizontal padding of 1.
	assert.Equal(t, Rect{X: 5, Y: 2, W: 20, H: 10}, cont.Bounds())
	assert.Equal(t, Rect{X: 7, Y: 3, W: 1, H: 1}, child.Bounds())
}

func TestButtonSizedToContent(t *testing.T) {
	s := NewScreen(40, 20)
	btn := NewButton(s.Root())
	l := NewLabel(btn)
	l.SetText("Increment")
	l.Center()
	s.Layout()

	assert.Equal(t, 9+4, btn.Bounds().W)
	assert.Equal(t, 3, btn.Bounds().H)
	assert.Equal(t, btn.Bounds().X+2, l.Bounds().X)
	assert.Equal(t, btn.Bounds().Y+1, l.Bounds().Y)
}

func TestStyleResolutionOrder(t *testing.T) {
	s := NewScreen(10, 10)
	o := NewLabel(s.Root())

	assert.Equal(t, FontDefault, o.TextFont())
	assert.Nil(t, o.TextColor())

	o.AddStyle(NewStyle().SetTextFont(FontMedium).SetTextColor(PaletteMain(PaletteRed)))
	o.AddStyle(NewStyle().SetTextFont(FontLarge))
	assert.Equal(t, FontLarge, o.TextFont(), "later shared styles win")
	assert.Equal(t, PaletteMain(PaletteRed), o.TextColor(), "unset properties fall through")

	o.SetStyleTextColor(PaletteMain(PaletteGreen))
	assert.Equal(t, PaletteMain(PaletteGreen), o.TextColor(), "local style wins")
}

func TestFrozenStyleCopiesOnWrite(t *testing.T) {
	shared := NewStyle().SetTextFont(FontLarge).Freeze()
	s := NewScreen(10, 10)
	a, b := NewLabel(s.Root()), NewLabel(s.Root())
	a.AddStyle(shared)
	b.AddStyle(shared)

	changed := a.Styles()[0].SetTextColor(PaletteMain(PaletteRed))
	assert.NotSame(t, shared, changed)
	assert.False(t, changed.Frozen())
	assert.True(t, shared.Frozen())
	assert.Nil(t, b.TextColor(), "shared style must stay untouched")
	assert.Nil(t, a.TextColor(), "a copy only applies once added")

	a.AddStyle(changed)
	assert.Equal(t, PaletteMain(PaletteRed), a.TextColor())
	assert.Equal(t, FontLarge, a.TextFont(), "the copy keeps the shared properties")
	assert.Nil(t, b.TextColor())

	unfrozen := NewStyle()
	assert.Same(t, unfrozen, unfrozen.SetPadding(1, 1), "unfrozen styles are changed in place")
}

func TestLabelWrap(t *testing.T) {
	s := NewScreen(20, 10)
	o := NewLabel(s.Root())
	o.SetText("1234567")
	o.SetSize(3, 0)
	s.Layout()

	assert.Equal(t, []string{"123", "456", "7"}, o.textLines())
	assert.Equal(t, 3, o.Bounds().H)

	o.SetLongMode(LongClip)
	assert.Equal(t, []string{"1234567"}, o.textLines())
}

func TestRender(t *testing.T) {
	s := NewScreen(7, 3)
	btn := NewButton(s.Root())
	l := NewLabel(btn)
	l.SetText("ok")
	btn.Center()

	out := ansi.Strip(s.Render())
	assert.Equal(t, strings.Join([]string{
		"╭────╮ ",
		"│ ok │ ",
		"╰────╯ ",
	}, "\n"), out)
}

func TestRenderClipsChildrenToParent(t *testing.T) {
	s := NewScreen(6, 3)
	cont := NewObject(s.Root())
	cont.SetSize(6, 3)
	l := NewLabel(cont)
	l.SetText("abcdefgh")
	l.SetLongMode(LongClip)

	lines := strings.Split(ansi.Strip(s.Render()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "│ abc│", lines[1])
}

func TestHitTest(t *testing.T) {
	s := NewScreen(40, 20)
	btn := NewButton(s.Root())
	l := NewLabel(btn)
	l.SetText("Increment")
	btn.Align(AlignTopLeft, 2, 2)
	s.Layout()

	assert.Same(t, l, s.HitTest(4, 3))
	assert.Same(t, btn, s.HitTest(2, 2))
	assert.Same(t, s.Root(), s.HitTest(30, 15))
	assert.Nil(t, s.HitTest(50, 5))
	assert.Same(t, btn, s.clickTarget(4, 3), "labels inside a button click the button")
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestClickDispatch(t *testing.T) {
	s := NewScreen(40, 20)
	btn := NewButton(s.Root())
	NewLabel(btn).SetText("go")

	var codes []EventCode
	var data []any
	btn.AddEventCallback(func(e *Event) {
		codes = append(codes, e.Code)
		data = append(data, e.UserData)
		assert.Same(t, btn, e.Target)
	}, EventAll, "payload")

	clicks := 0
	btn.AddEventCallback(func(e *Event) { clicks++ }, EventClicked, nil)

	assert.True(t, s.HandleMouse(press(1, 1)))
	assert.Same(t, btn, s.Pressed())
	assert.True(t, s.HandleMouse(release(1, 1)))

	assert.Equal(t, []EventCode{EventPressed, EventClicked}, codes)
	assert.Equal(t, []any{"payload", "payload"}, data)
	assert.Equal(t, 1, clicks)
	assert.Nil(t, s.Pressed())
	assert.Same(t, btn, s.Focused())
}

func TestReleaseElsewhereDoesNotClick(t *testing.T) {
	s := NewScreen(40, 20)
	btn := NewButton(s.Root())
	NewLabel(btn).SetText("go")

	clicks := 0
	btn.AddEventCallback(func(e *Event) { clicks++ }, EventClicked, nil)

	s.HandleMouse(press(1, 1))
	s.HandleMouse(release(30, 10))
	assert.Zero(t, clicks)

	assert.False(t, s.HandleMouse(press(30, 10)), "nothing clickable there")
	assert.False(t, s.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}))
}

func TestKeyboardFocusAndActivate(t *testing.T) {
	s := NewScreen(40, 20)
	a := NewButton(s.Root())
	b := NewButton(s.Root())
	NewLabel(s.Root()).SetText("not focusable")

	var got []*Object
	cb := func(e *Event) { got = append(got, e.Target) }
	a.AddEventCallback(cb, EventClicked, nil)
	b.AddEventCallback(cb, EventClicked, nil)

	assert.False(t, s.Activate(), "nothing focused yet")

	s.FocusNext()
	assert.Same(t, a, s.Focused())
	s.FocusNext()
	assert.Same(t, b, s.Focused())
	s.FocusNext()
	assert.Same(t, a, s.Focused(), "focus wraps")
	s.FocusPrev()
	assert.Same(t, b, s.Focused())

	assert.True(t, s.Activate())
	assert.Equal(t, []*Object{b}, got)
}

func TestDelete(t *testing.T) {
	s := NewScreen(40, 20)
	cont := NewObject(s.Root())
	btn := NewButton(cont)
	label := NewLabel(btn)

	var deleted []Kind
	for _, o := range []*Object{cont, btn, label} {
		o.AddEventCallback(func(e *Event) { deleted = append(deleted, e.Target.Kind()) }, EventDelete, nil)
	}
	clicks := 0
	btn.AddEventCallback(func(e *Event) { clicks++ }, EventClicked, nil)

	s.Focus(btn)
	s.HandleMouse(press(3, 2))
	require.Same(t, btn, s.Pressed())

	cont.Delete()

	assert.Equal(t, []Kind{KindObject, KindButton, KindLabel}, deleted)
	assert.Empty(t, s.Root().Children())
	assert.Nil(t, cont.Parent())
	assert.True(t, label.Deleted())
	assert.Nil(t, s.Focused())
	assert.Nil(t, s.Pressed())

	btn.SendEvent(EventClicked)
	assert.Zero(t, clicks, "deleted objects ignore events")

	assert.NotPanics(t, cont.Delete)
}

func TestScreenClean(t *testing.T) {
	s := NewScreen(10, 10)
	NewLabel(s.Root())
	NewButton(s.Root())
	s.Clean()
	assert.Empty(t, s.Root().Children())
	assert.Nil(t, s.Focused())
}

func TestParseAlign(t *testing.T) {
	a, err := ParseAlign("Bottom_Right")
	require.NoError(t, err)
	assert.Equal(t, AlignBottomRight, a)

	a, err = ParseAlign("center")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)

	_, err = ParseAlign("middle")
	assert.Error(t, err)
}

func TestObjectIDsUnique(t *testing.T) {
	s := NewScreen(10, 10)
	a, b := NewLabel(s.Root()), NewLabel(s.Root())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Same(t, s, a.Screen())
}

func TestSetTextFmt(t *testing.T) {
	o := NewLabel(nil)
	o.SetTextFmt("%d", -42)
	assert.Equal(t, "-42", o.Text())
}
