package fretboard

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strumkit/fretfinder/internal/theory"
)

func TestResolveIsSemitonePerFret(t *testing.T) {
	for _, open := range StandardGuitar {
		prev, err := Resolve(open, 0)
		assert.NoError(t, err)
		assert.Equal(t, open, prev, "fret 0 is the open string")

		for fret := 1; fret < MaxFretCeiling; fret++ {
			note, err := Resolve(open, fret)
			assert.NoError(t, err)
			assert.Equal(t, int(prev.ID())+1, int(note.ID()),
				"%s fret %d should be one semitone up", open, fret)
			prev = note
		}
	}
}

func TestResolveWrapsOctaveAtTwelfthFret(t *testing.T) {
	assert := assert.New(t)

	e2 := theory.Note{Class: theory.E, Octave: 2}
	note, err := Resolve(e2, 12)
	assert.NoError(err)
	assert.Equal(theory.Note{Class: theory.E, Octave: 3}, note)

	a2 := theory.Note{Class: theory.A, Octave: 2}
	note, err = Resolve(a2, 3)
	assert.NoError(err)
	assert.Equal(theory.Note{Class: theory.C, Octave: 3}, note)
}

func TestResolveReportsUnresolvableCells(t *testing.T) {
	assert := assert.New(t)

	top := theory.Note{Class: theory.G, Octave: 9} // key 127
	_, err := Resolve(top, 1)
	assert.ErrorIs(err, ErrUnresolvable)

	_, err = Resolve(theory.Note{Class: theory.E, Octave: 2}, -1)
	assert.ErrorIs(err, ErrUnresolvable)
}

func TestGenerateStandardBoard(t *testing.T) {
	assert := assert.New(t)

	board := Generate(StandardGuitar, 17)
	assert.Equal(6, board.Strings())
	assert.Equal(17, board.Frets())

	for s := 0; s < board.Strings(); s++ {
		for f := 0; f < board.Frets(); f++ {
			note, ok := board.Note(s, f)
			assert.True(ok, "string %d fret %d", s, f)
			want, err := Resolve(StandardGuitar[s], f)
			assert.NoError(err)
			assert.Equal(want, note)
		}
	}

	_, ok := board.Note(6, 0)
	assert.False(ok)
	_, ok = board.Note(0, 17)
	assert.False(ok)
	_, ok = board.Note(-1, -1)
	assert.False(ok)
}

func TestGenerateKeepsUnresolvableCellsInPlace(t *testing.T) {
	assert := assert.New(t)

	high := Tuning{{Class: theory.C, Octave: 9}} // key 120, runs out after 7 frets
	board := Generate(high, 12)
	assert.Equal(12, board.Frets())

	for f := 0; f <= 7; f++ {
		_, ok := board.Note(0, f)
		assert.True(ok, "fret %d", f)
	}
	for f := 8; f < 12; f++ {
		_, ok := board.Note(0, f)
		assert.False(ok, "fret %d", f)
	}
}

func TestGenerateClampsFretCount(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MaxFretCeiling, Generate(StandardGuitar, 40).Frets())
	assert.Equal(1, Generate(StandardGuitar, 0).Frets())
}

func TestFretLabel(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Open", FretLabel(0))
	for _, marked := range []int{3, 5, 7, 9, 12, 15, 17, 19, 21} {
		assert.Equal(strconv.Itoa(marked), FretLabel(marked))
	}
	for _, plain := range []int{1, 2, 4, 6, 8, 10, 11, 13, 14, 16, 18, 20} {
		assert.Empty(FretLabel(plain), "fret %d", plain)
	}
}

func TestParseTuning(t *testing.T) {
	assert := assert.New(t)

	tuning, err := ParseTuning([]string{"E4", "B3", "G3", "D3", "A2", "E2"})
	assert.NoError(err)
	assert.Equal(StandardGuitar, tuning)

	_, err = ParseTuning(nil)
	assert.Error(err)
	_, err = ParseTuning([]string{"E4", "H3"})
	assert.Error(err)
}
