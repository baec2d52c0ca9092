package fretboard

// Orientation maps board positions to display rows and columns. The board
// itself is orientation-agnostic; this is the only place display layout
// leaks into the package, and it stays a pure index mapping.
type Orientation int

const (
	// Horizontal draws strings as rows and frets as columns.
	Horizontal Orientation = iota
	// Vertical draws frets as rows and strings as columns, with the string
	// order reversed so the low string ends up on the left.
	Vertical
)

// Dimensions returns the display grid size (rows, cols) for a board.
func (o Orientation) Dimensions(b Board) (int, int) {
	if o == Vertical {
		return b.Frets(), b.Strings()
	}
	return b.Strings(), b.Frets()
}

// Cell converts a display (row, col) back to a board (string, fret).
func (o Orientation) Cell(b Board, row, col int) (str, fret int) {
	if o == Vertical {
		return b.Strings() - 1 - col, row
	}
	return row, col
}
