package note

import (
	"strings"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

// flatNames folds the common flat spellings onto the sharp names used
// everywhere else.
var flatNames = map[string]string{
	"Bb": "A#",
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
}

// Parse resolves a note name to its pitch class. Sharp names are
// canonical; the usual flat spellings are accepted and folded onto
// their sharp equivalents.
func Parse(name string) (model.Note, error) {
	cleaned := strings.TrimSpace(name)
	if len(cleaned) > 0 {
		cleaned = strings.ToUpper(cleaned[:1]) + cleaned[1:]
	}
	if folded, ok := flatNames[cleaned]; ok {
		cleaned = folded
	}
	for i, candidate := range model.NoteNames {
		if candidate == cleaned {
			return model.Note(i), nil
		}
	}
	return 0, &model.InvalidNoteError{Name: name}
}

// ParseAll parses a list of note names, failing on the first bad one.
func ParseAll(names []string) (model.Notes, error) {
	notes := make(model.Notes, 0, len(names))
	for _, name := range names {
		n, err := Parse(name)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// Index returns the chromatic index of a note name, A = 0.
func Index(name string) (int, error) {
	n, err := Parse(name)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// FromIndex normalizes any integer, including negatives, onto the
// twelve-tone circle.
func FromIndex(i int) model.Note {
	i %= 12
	if i < 0 {
		i += 12
	}
	return model.Note(i)
}

// Transpose moves a note by some number of semitones, wrapping around
// the octave in either direction.
func Transpose(n model.Note, semitones int) model.Note {
	return FromIndex(int(n) + semitones)
}

// At returns the pitch class sounding at the given fret of a string
// whose open pitch class is open.
func At(open model.Note, fret int) model.Note {
	return FromIndex(int(open) + fret)
}

// FromMidi maps a MIDI key onto the A-based pitch classes used here.
// MIDI counts classes from C, so the index shifts by three.
func FromMidi(key uint8) model.Note {
	return FromIndex(int(key) + 3)
}
