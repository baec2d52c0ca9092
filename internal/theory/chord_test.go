package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pitchClasses(c Chord) []PitchClass {
	seen := make(map[PitchClass]bool)
	var out []PitchClass
	for _, n := range c.Notes() {
		if !seen[n.Class] {
			seen[n.Class] = true
			out = append(out, n.Class)
		}
	}
	return out
}

func TestParseChordQualities(t *testing.T) {
	cases := []struct {
		symbol string
		root   PitchClass
		want   []PitchClass
	}{
		{"C", C, []PitchClass{C, E, G}},
		{"Cmaj", C, []PitchClass{C, E, G}},
		{"Cmaj7", C, []PitchClass{C, E, G, B}},
		{"Am", A, []PitchClass{A, C, E}},
		{"Amin7", A, []PitchClass{A, C, E, G}},
		{"C#m7", CSharp, []PitchClass{CSharp, E, GSharp, B}},
		{"Bdim", B, []PitchClass{B, D, F}},
		{"Caug", C, []PitchClass{C, E, GSharp}},
		{"Dsus2", D, []PitchClass{D, E, A}},
		{"Dsus4", D, []PitchClass{D, G, A}},
		{"G7", G, []PitchClass{G, B, D, F}},
		{"C9", C, []PitchClass{C, E, G, ASharp, D}},
		{"C6", C, []PitchClass{C, E, G, A}},
		{"Cadd9", C, []PitchClass{C, E, G, D}},
		{"Bb", ASharp, []PitchClass{ASharp, D, F}},
	}

	for _, c := range cases {
		t.Run(c.symbol, func(t *testing.T) {
			chord, err := ParseChord(c.symbol)
			assert.NoError(t, err)
			assert.Equal(t, c.root, chord.Root())
			assert.Equal(t, c.want, pitchClasses(chord))
		})
	}
}

func TestParseChordSlashBass(t *testing.T) {
	assert := assert.New(t)

	chord, err := ParseChord("C/G")
	assert.NoError(err)

	notes := chord.Notes()
	assert.Equal(Note{Class: G, Octave: 3}, notes[0], "bass comes first, an octave below the root")
	assert.Equal(Note{Class: C, Octave: 4}, notes[1])
}

func TestParseChordErrors(t *testing.T) {
	for _, bad := range []string{"", "  ", "H", "Xyz", "Cfoo", "C/", "C/H", "C/G7"} {
		_, err := ParseChord(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseChordKeepsSymbolAsName(t *testing.T) {
	chord, err := ParseChord(" Am/G ")
	assert.NoError(t, err)
	assert.Equal(t, "Am/G", chord.Name)
}
