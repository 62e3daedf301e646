// Package numberlabel creates widget labels that display a number with a
// preset look. The label holds no numeric state; callers keep the value and
// call Update whenever it changes.
package numberlabel

import (
	"strconv"
	"sync"

	"github.com/grovetools/numwidget/tui/widget"
)

// Shared style descriptors, built on first use and frozen so that a label's
// Styles() cannot alter every other label.
var (
	largeStyle = sync.OnceValue(func() *widget.Style {
		return widget.NewStyle().SetTextFont(widget.FontLarge).Freeze()
	})
	mediumStyle = sync.OnceValue(func() *widget.Style {
		return widget.NewStyle().
			SetTextFont(widget.FontMedium).
			SetTextAlign(widget.TextAlignCenter).
			Freeze()
	})
)

// FormatInt renders v in base 10 without grouping.
func FormatInt(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// FormatFloat renders v in fixed point with the given number of fractional
// digits. Only 1, 2 and 3 are honoured; anything else means 0.
func FormatFloat(v float32, decimals uint8) string {
	prec := int(decimals)
	if decimals < 1 || decimals > 3 {
		prec = 0
	}
	return strconv.FormatFloat(float64(v), 'f', prec, 64)
}

// Create adds a large, blue, centered label showing value under parent.
func Create(parent *widget.Object, value int32) *widget.Object {
	label := widget.NewLabel(parent)
	label.SetText(FormatInt(value))
	label.SetLongMode(widget.LongWrap)
	label.Center()
	label.SetStyleTextColor(widget.PaletteMain(widget.PaletteBlue))
	label.AddStyle(largeStyle())
	return label
}

// Update replaces the label's text with value. A nil label is ignored.
func Update(label *widget.Object, value int32) {
	if label == nil {
		return
	}
	label.SetText(FormatInt(value))
}

// CreateStyled adds a medium-font blue label placed at align shifted by
// (xOffset, yOffset).
func CreateStyled(parent *widget.Object, value int32, align widget.Align, xOffset, yOffset int) *widget.Object {
	label := widget.NewLabel(parent)
	label.SetText(FormatInt(value))
	label.Align(align, xOffset, yOffset)
	label.SetStyleTextColor(widget.PaletteMain(widget.PaletteBlue))
	label.AddStyle(mediumStyle())
	return label
}

// CreateFloat adds a centered label showing value with decimals fractional
// digits. No font or color is applied.
func CreateFloat(parent *widget.Object, value float32, decimals uint8) *widget.Object {
	label := widget.NewLabel(parent)
	label.SetText(FormatFloat(value, decimals))
	label.Center()
	return label
}
