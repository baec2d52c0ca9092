package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ============ FIXED-SIZE NOTE CELL WIDGET ============

// noteCell is a button padded to a uniform minimum size so every fretboard
// cell lines up regardless of how wide its note name renders.
type noteCell struct {
	widget.Button
	minSize fyne.Size
}

func newNoteCell(label string, minSize fyne.Size, onTap func()) *noteCell {
	c := &noteCell{minSize: minSize}
	c.Text = label
	c.OnTapped = onTap
	c.ExtendBaseWidget(c)
	return c
}

func (c *noteCell) MinSize() fyne.Size {
	min := c.Button.MinSize()
	if min.Width < c.minSize.Width {
		min.Width = c.minSize.Width
	}
	if min.Height < c.minSize.Height {
		min.Height = c.minSize.Height
	}
	return min
}
