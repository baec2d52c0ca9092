package theory

import (
	"errors"
	"fmt"
	"strings"
)

// Chord is the parsed form of a chord symbol like "Cmaj7" or "Am/G". Once
// parsed it is read-only; the constituent notes are voiced around octave 4
// with a slash bass one octave below the root.
type Chord struct {
	Name  string
	root  PitchClass
	notes []Note
}

// Root returns the pitch class of the chord root.
func (c Chord) Root() PitchClass {
	return c.root
}

// Notes returns the constituent notes in voicing order, bass first.
func (c Chord) Notes() []Note {
	return c.notes
}

var ErrEmptyChord = errors.New("empty chord symbol")

const chordOctave = 4

var rootOffsets = map[byte]PitchClass{
	'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B,
}

// parseRoot reads a root letter with an optional accidental and returns the
// pitch class plus the number of bytes consumed.
func parseRoot(s string) (PitchClass, int, error) {
	if s == "" {
		return 0, 0, ErrEmptyChord
	}
	pc, ok := rootOffsets[s[0]]
	if !ok {
		return 0, 0, fmt.Errorf("invalid root note %q", s[0])
	}
	if len(s) > 1 {
		switch s[1] {
		case '#':
			return (pc + 1) % 12, 2, nil
		case 'b':
			return (pc + 11) % 12, 2, nil
		}
	}
	return pc, 1, nil
}

// ParseChord parses a chord symbol into its constituent notes. The grammar
// covers root + accidental, the qualities m/min/dim/aug/sus2/sus4 (major by
// default), a sixth/seventh/extension suffix, and a slash bass.
func ParseChord(text string) (Chord, error) {
	symbol := strings.TrimSpace(text)
	if symbol == "" {
		return Chord{}, ErrEmptyChord
	}

	base := symbol
	bass := ""
	hasBass := false
	if i := strings.IndexByte(symbol, '/'); i >= 0 {
		base = strings.TrimSpace(symbol[:i])
		bass = strings.TrimSpace(symbol[i+1:])
		hasBass = true
	}

	root, n, err := parseRoot(base)
	if err != nil {
		return Chord{}, err
	}
	rest := base[n:]

	third, fifth := 4, 7
	switch {
	case strings.HasPrefix(rest, "maj"):
		// major quality; "maj" belongs to the extension (maj7, maj9)
	case strings.HasPrefix(rest, "min"):
		third = 3
		rest = rest[3:]
	case strings.HasPrefix(rest, "m"):
		third = 3
		rest = rest[1:]
	case strings.HasPrefix(rest, "dim"):
		third, fifth = 3, 6
		rest = rest[3:]
	case strings.HasPrefix(rest, "aug"):
		fifth = 8
		rest = rest[3:]
	case strings.HasPrefix(rest, "sus2"):
		third = 2
		rest = rest[4:]
	case strings.HasPrefix(rest, "sus4"):
		third = 5
		rest = rest[4:]
	}

	intervals := []int{0, third, fifth}
	switch rest {
	case "", "5", "maj":
	case "6":
		intervals = append(intervals, 9)
	case "7":
		intervals = append(intervals, 10)
	case "maj7":
		intervals = append(intervals, 11)
	case "9":
		intervals = append(intervals, 10, 14)
	case "maj9":
		intervals = append(intervals, 11, 14)
	case "11":
		intervals = append(intervals, 10, 14, 17)
	case "13":
		intervals = append(intervals, 10, 14, 17, 21)
	case "add9":
		intervals = append(intervals, 14)
	case "add11":
		intervals = append(intervals, 17)
	case "add13":
		intervals = append(intervals, 21)
	default:
		return Chord{}, fmt.Errorf("unrecognized chord suffix %q in %q", rest, symbol)
	}

	rootID := Note{Class: root, Octave: chordOctave}.ID()
	var notes []Note
	for _, interval := range intervals {
		id, err := rootID.Transpose(interval)
		if err != nil {
			continue // extensions past the representable range are dropped
		}
		note, _ := id.Note()
		notes = append(notes, note)
	}

	if hasBass {
		bassClass, n, err := parseRoot(bass)
		if err != nil {
			return Chord{}, fmt.Errorf("invalid bass note in %q: %w", symbol, err)
		}
		if bass[n:] != "" {
			return Chord{}, fmt.Errorf("unrecognized bass suffix %q in %q", bass[n:], symbol)
		}
		notes = append([]Note{{Class: bassClass, Octave: chordOctave - 1}}, notes...)
	}

	return Chord{Name: symbol, root: root, notes: notes}, nil
}
