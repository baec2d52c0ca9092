package theory

import (
	"fmt"
	"strconv"
)

// ParseNote reads a note name like "E4", "A#2" or "Bb-1": a root letter, an
// optional accidental, and an octave.
func ParseNote(s string) (Note, error) {
	pc, n, err := parseRoot(s)
	if err != nil {
		return Note{}, fmt.Errorf("invalid note name %q: %w", s, err)
	}
	octave, err := strconv.Atoi(s[n:])
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in note name %q", s)
	}
	return Note{Class: pc, Octave: octave}, nil
}
