package fretboard

import (
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
	"github.com/iCodeForBananas/SimpleGuitarTools/util"
)

// Position is one way to fret a pitch class: string index 0 is the
// highest-pitched string, fret 0 the open string.
type Position struct {
	StringIndex int `json:"string"`
	Fret        int `json:"fret"`
}

// FindPositions lists every way to play a pitch class within the fret
// window, ordered by string then fret.
func FindPositions(n model.Note, tuning model.Tuning, minFret int, maxFret int) []Position {
	minFret = util.Clamp(minFret, 0, model.MaxFret)
	maxFret = util.Clamp(maxFret, 0, model.MaxFret)
	target := note.FromIndex(int(n))
	var res []Position
	for s, open := range tuning {
		for f := minFret; f <= maxFret; f++ {
			if note.At(open, f) == target {
				res = append(res, Position{StringIndex: s, Fret: f})
			}
		}
	}
	return res
}

// FilterByWindow keeps positions whose fret lies within half of width
// on either side of center, clamped to the physical fret range.
func FilterByWindow(positions []Position, center int, width int) []Position {
	low := util.Max(0, center-width/2)
	high := util.Min(model.MaxFret, center+width/2)
	var res []Position
	for _, p := range positions {
		if p.Fret >= low && p.Fret <= high {
			res = append(res, p)
		}
	}
	return res
}

// Index precomputes every playable position per pitch class for one
// tuning.
type Index struct {
	Tuning    model.Tuning
	positions [12][]Position
}

func NewIndex(tuning model.Tuning) *Index {
	idx := &Index{Tuning: tuning}
	for class := 0; class < 12; class++ {
		idx.positions[class] = FindPositions(model.Note(class), tuning, 0, model.MaxFret)
	}
	return idx
}

func (i *Index) Positions(n model.Note) []Position {
	return i.positions[note.FromIndex(int(n))]
}

func (i *Index) Window(n model.Note, center int, width int) []Position {
	return FilterByWindow(i.Positions(n), center, width)
}

// standardOpenPitches are the MIDI keys of the open strings in standard
// tuning, highest-pitched string first.
var standardOpenPitches = [model.NumStrings]int{64, 59, 55, 50, 45, 40}

// midiClass converts an A-based pitch class to MIDI's C-based one.
func midiClass(n model.Note) int {
	return (int(n) + 9) % 12
}

// OpenStringPitches assigns a concrete MIDI key to each open string by
// moving the standard-tuning reference to the nearest matching octave.
func OpenStringPitches(tuning model.Tuning) [model.NumStrings]int {
	res := standardOpenPitches
	for s := 0; s < model.NumStrings && s < len(tuning); s++ {
		ref := standardOpenPitches[s]
		d := ((midiClass(tuning[s]) - ref%12) + 12) % 12
		if d > 6 {
			d -= 12
		}
		res[s] = ref + d
	}
	return res
}
