package fretboard

import "github.com/strumkit/fretfinder/internal/theory"

// PitchClassSet is a set of pitch classes stored as a 12-bit mask.
type PitchClassSet uint16

// NewPitchClassSet collects the distinct pitch classes of the given notes.
func NewPitchClassSet(notes []theory.Note) PitchClassSet {
	var set PitchClassSet
	for _, n := range notes {
		set |= 1 << (n.Class % 12)
	}
	return set
}

// Empty reports whether the set contains no pitch classes.
func (s PitchClassSet) Empty() bool {
	return s == 0
}

// Contains reports membership of a single pitch class.
func (s PitchClassSet) Contains(pc theory.PitchClass) bool {
	return s&(1<<(pc%12)) != 0
}

// Enabled decides whether a cell is interactive. An empty set means no chord
// is active and the whole board stays enabled; otherwise only cells whose
// pitch class belongs to the chord are enabled.
func Enabled(note theory.Note, set PitchClassSet) bool {
	return set.Empty() || set.Contains(note.Class)
}
