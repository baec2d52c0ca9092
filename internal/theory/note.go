package theory

import (
	"errors"
	"fmt"
)

// PitchClass is one of the 12 equivalence classes of pitch under octave
// identification. 0 = C, 11 = B.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var pitchClassNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

func (pc PitchClass) String() string {
	return pitchClassNames[pc%12]
}

// Note is a concrete pitch: a pitch class in a specific octave.
// C4 (middle C) is {Class: C, Octave: 4}.
type Note struct {
	Class  PitchClass
	Octave int
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Class, n.Octave)
}

// NoteID is the integral identifier for a pitch+octave, laid out as a MIDI
// key number: id = (octave+1)*12 + class, so C-1 = 0 and G9 = 127.
type NoteID int

// ErrInvalidNoteID is returned when an identifier falls outside the
// representable 0..127 range.
var ErrInvalidNoteID = errors.New("note id out of range")

// ID returns the identifier for a note. The result may be out of range for
// extreme octaves; Note reports the failure on decode.
func (n Note) ID() NoteID {
	return NoteID((n.Octave+1)*12 + int(n.Class)%12)
}

// Note decodes an identifier back into a Note.
func (id NoteID) Note() (Note, error) {
	if id < 0 || id > 127 {
		return Note{}, fmt.Errorf("%w: %d", ErrInvalidNoteID, int(id))
	}
	return Note{
		Class:  PitchClass(int(id) % 12),
		Octave: int(id)/12 - 1,
	}, nil
}

// Transpose shifts the identifier up by the given number of semitones and
// fails if the result is not decodable.
func (id NoteID) Transpose(semitones int) (NoteID, error) {
	shifted := NoteID(int(id) + semitones)
	if _, err := shifted.Note(); err != nil {
		return 0, err
	}
	return shifted, nil
}

// Key returns the identifier as a MIDI key number. Callers must only use it
// on identifiers already validated by Note or Transpose.
func (id NoteID) Key() uint8 {
	return uint8(id)
}
