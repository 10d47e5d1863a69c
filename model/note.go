package model

import "encoding/json"

// NoteNames is the canonical chromatic alphabet, spelled with sharps. A Note
// is an index into this table, so all note arithmetic is modulo 12.
var NoteNames = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// Note is one of the 12 chromatic pitch classes. Equality is by integer, not
// by name, so enharmonic spellings (Bb vs A#) compare equal once parsed.
type Note uint8

type Notes = []Note

func (n Note) String() string {
	return NoteNames[n%12]
}

// MarshalJSON emits the canonical display name instead of the raw index.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i := range NoteNames {
		if NoteNames[i] == name {
			*n = Note(i)
			return nil
		}
	}
	return &InvalidNoteError{Name: name}
}

// InvalidNoteError reports a note name that is not part of the chromatic
// alphabet. It is a caller contract violation, never swallowed silently.
type InvalidNoteError struct {
	Name string
}

func (e *InvalidNoteError) Error() string {
	return "invalid note name: " + e.Name
}
