package model

// Fretboard dimensions. Every position scan, window clamp and progression
// fret hint is bounded by these.
const (
	NumStrings = 6
	MaxFret    = 12
)

// Tuning is the open-string notes of a 6-string instrument, index 0 being
// the highest-pitched string and index 5 the lowest. Note that this is the
// reverse of the physical top-to-bottom order in most diagrams.
type Tuning []Note
