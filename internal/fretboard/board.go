// Package fretboard computes fretboard grids: which note sounds at every
// (string, fret) position for a given tuning, and which cells belong to the
// chord the user typed.
package fretboard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/strumkit/fretfinder/internal/theory"
)

// Tuning is the ordered list of open-string notes. Index 0 is the string
// drawn first, so the standard guitar preset runs high E down to low E.
type Tuning []theory.Note

// StandardGuitar is standard tuning with the string order reversed for
// display, high E first.
var StandardGuitar = Tuning{
	{Class: theory.E, Octave: 4},
	{Class: theory.B, Octave: 3},
	{Class: theory.G, Octave: 3},
	{Class: theory.D, Octave: 3},
	{Class: theory.A, Octave: 2},
	{Class: theory.E, Octave: 2},
}

// MaxFretCeiling is the largest supported fret count. It keeps every cell of
// the standard tunings inside the representable note-id range.
const MaxFretCeiling = 21

// ErrUnresolvable marks a cell whose note falls outside the representable
// identifier range.
var ErrUnresolvable = errors.New("unresolvable fretboard cell")

// Resolve returns the note sounding at the given fret of a string with the
// given open note. Fret 0 is the open string.
func Resolve(open theory.Note, fret int) (theory.Note, error) {
	if fret < 0 {
		return theory.Note{}, fmt.Errorf("%w: negative fret %d", ErrUnresolvable, fret)
	}
	id, err := open.ID().Transpose(fret)
	if err != nil {
		return theory.Note{}, fmt.Errorf("%w: %s fret %d: %v", ErrUnresolvable, open, fret, err)
	}
	note, err := id.Note()
	if err != nil {
		return theory.Note{}, fmt.Errorf("%w: %s fret %d: %v", ErrUnresolvable, open, fret, err)
	}
	return note, nil
}

// cell holds one resolved position; ok is false for unresolvable cells.
type cell struct {
	note theory.Note
	ok   bool
}

// Board is the resolved grid for one tuning and fret count.
type Board struct {
	tuning  Tuning
	maxFret int
	cells   [][]cell
}

// Generate resolves the full grid for a tuning. Unresolvable cells are kept
// in place so the board shape stays Strings()×Frets() regardless. maxFret is
// clamped into [1, MaxFretCeiling]; Frets() reports the clamped value.
func Generate(tuning Tuning, maxFret int) Board {
	if maxFret > MaxFretCeiling {
		maxFret = MaxFretCeiling
	}
	if maxFret < 1 {
		maxFret = 1
	}
	cells := make([][]cell, len(tuning))
	for s, open := range tuning {
		row := make([]cell, maxFret)
		for f := 0; f < maxFret; f++ {
			note, err := Resolve(open, f)
			row[f] = cell{note: note, ok: err == nil}
		}
		cells[s] = row
	}
	return Board{tuning: tuning, maxFret: maxFret, cells: cells}
}

// Strings returns the number of strings on the board.
func (b Board) Strings() int {
	return len(b.cells)
}

// Frets returns the number of fret positions per string, counting the open
// string as fret 0.
func (b Board) Frets() int {
	return b.maxFret
}

// Note returns the note at (string, fret). ok is false when the position is
// off the board or the cell is unresolvable.
func (b Board) Note(str, fret int) (theory.Note, bool) {
	if str < 0 || str >= len(b.cells) || fret < 0 || fret >= b.maxFret {
		return theory.Note{}, false
	}
	c := b.cells[str][fret]
	return c.note, c.ok
}

// markerFrets are the conventional fretboard inlay positions.
var markerFrets = map[int]bool{
	3: true, 5: true, 7: true, 9: true, 12: true, 15: true, 17: true, 19: true, 21: true,
}

// FretLabel returns the label shown above a fret column: "Open" for the open
// string, the fret number at marker positions, "" elsewhere.
func FretLabel(fret int) string {
	switch {
	case fret == 0:
		return "Open"
	case markerFrets[fret]:
		return strconv.Itoa(fret)
	default:
		return ""
	}
}
