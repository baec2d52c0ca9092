package fretboard

import (
	"fmt"

	"github.com/strumkit/fretfinder/internal/theory"
)

// ParseTuning converts a list of open-string note names, display order
// first, into a Tuning.
func ParseTuning(names []string) (Tuning, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("tuning has no strings")
	}
	tuning := make(Tuning, 0, len(names))
	for i, name := range names {
		note, err := theory.ParseNote(name)
		if err != nil {
			return nil, fmt.Errorf("string %d: %w", i+1, err)
		}
		tuning = append(tuning, note)
	}
	return tuning, nil
}
