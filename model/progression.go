package model

// RomanStep is one step of a Roman-numeral progression formula: a signed
// semitone offset from the tonic plus the explicit chord quality of that
// degree. Quality is never re-derived from the degree number; the formula
// table is the source of truth.
type RomanStep struct {
	Numeral string       `json:"numeral"`
	Offset  int          `json:"offset"`
	Quality ChordQuality `json:"quality"`
}

// ProgressionFormula is a named 4-step chord progression recipe. MinorKey
// only records how the numerals are spelled (against a minor tonic); it
// carries no quality information of its own.
type ProgressionFormula struct {
	Label    string      `json:"label"`
	Steps    []RomanStep `json:"steps"`
	MinorKey bool        `json:"minor_key"`
}

// ChordProgressionEntry is one slot of a generated 4-chord progression. The
// root fret is a display position hint, not a music-theoretic property.
type ChordProgressionEntry struct {
	ChordName string `json:"chord_name"`
	RootFret  int    `json:"root_fret"`
}
