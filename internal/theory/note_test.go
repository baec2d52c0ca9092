package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteIDRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for id := NoteID(0); id <= 127; id++ {
		note, err := id.Note()
		assert.NoError(err)
		assert.Equal(id, note.ID())
	}
}

func TestNoteIDDecodeFailsOutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, err := NoteID(-1).Note()
	assert.ErrorIs(err, ErrInvalidNoteID)

	_, err = NoteID(128).Note()
	assert.ErrorIs(err, ErrInvalidNoteID)
}

func TestMiddleCEncoding(t *testing.T) {
	assert := assert.New(t)

	c4 := Note{Class: C, Octave: 4}
	assert.Equal(NoteID(60), c4.ID())
	assert.Equal("C4", c4.String())
}

func TestTransposeWrapsOctave(t *testing.T) {
	assert := assert.New(t)

	b3 := Note{Class: B, Octave: 3}
	id, err := b3.ID().Transpose(1)
	assert.NoError(err)
	note, err := id.Note()
	assert.NoError(err)
	assert.Equal(Note{Class: C, Octave: 4}, note)
}

func TestTransposeFailsPastRange(t *testing.T) {
	g9 := Note{Class: G, Octave: 9} // key 127, the top of the range
	_, err := g9.ID().Transpose(1)
	assert.ErrorIs(t, err, ErrInvalidNoteID)
}

func TestParseNote(t *testing.T) {
	cases := []struct {
		in   string
		want Note
	}{
		{"E4", Note{Class: E, Octave: 4}},
		{"A#2", Note{Class: ASharp, Octave: 2}},
		{"Bb2", Note{Class: ASharp, Octave: 2}},
		{"C-1", Note{Class: C, Octave: -1}},
		{"Cb3", Note{Class: B, Octave: 3}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseNote(c.in)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	for _, bad := range []string{"", "H4", "E", "4", "E4x"} {
		_, err := ParseNote(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
