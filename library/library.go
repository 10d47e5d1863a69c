package library

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
	"github.com/iCodeForBananas/SimpleGuitarTools/util"
)

var chordIntervals = map[model.ChordQuality][]int{
	model.ChordMajor: {0, 4, 7},
	model.ChordMinor: {0, 3, 7},
	model.ChordMaj7:  {0, 4, 7, 11},
	model.ChordDom7:  {0, 4, 7, 10},
	model.ChordMin7:  {0, 3, 7, 10},
	model.ChordSus4:  {0, 5, 7},
	model.ChordAdd9:  {0, 4, 7, 14},
}

var scaleIntervals = map[model.ScaleQuality][]int{
	model.ScaleMajor:            {0, 2, 4, 5, 7, 9, 11},
	model.ScaleMinor:            {0, 2, 3, 5, 7, 8, 10},
	model.ScalePentatonicMajor:  {0, 2, 4, 7, 9},
	model.ScalePentatonicMinor:  {0, 3, 5, 7, 10},
	model.ScaleBlues:            {0, 3, 5, 6, 7, 10},
	model.ScaleHarmonicMinor:    {0, 2, 3, 5, 7, 8, 11},
	model.ScaleMelodicMinor:     {0, 2, 3, 5, 7, 9, 11},
	model.ScalePhrygian:         {0, 1, 3, 5, 7, 8, 10},
	model.ScalePhrygianDominant: {0, 1, 4, 5, 7, 8, 10},
}

// Library holds every chord and scale for all twelve roots, keyed by
// display name ("C# Min7", "A Pentatonic Minor").
type Library struct {
	Chords map[string]model.ChordDefinition
	Scales map[string]model.ScaleDefinition

	chordsByKey map[string]string
}

func buildNotes(root model.Note, intervals []int) model.Notes {
	notes := make(model.Notes, 0, len(intervals))
	for _, iv := range intervals {
		notes = append(notes, note.Transpose(root, iv))
	}
	return notes
}

// CreateSetKey reduces notes to a canonical pitch-class set key such as
// "0-4-7". Duplicates and octave spellings collapse onto one class.
func CreateSetKey(notes model.Notes) string {
	seen := make(map[model.Note]bool)
	var classes []int
	for _, n := range notes {
		c := note.FromIndex(int(n))
		if !seen[c] {
			seen[c] = true
			classes = append(classes, int(c))
		}
	}
	sort.Ints(classes)
	var res string
	for i, c := range classes {
		res += fmt.Sprintf("%v", c)
		if i < len(classes)-1 {
			res += "-"
		}
	}
	return res
}

// Build constructs the full library. Chord pitch-class sets also feed a
// reverse index so played notes can be named; on a key collision the
// first chord built wins.
func Build() *Library {
	lib := &Library{
		Chords:      make(map[string]model.ChordDefinition),
		Scales:      make(map[string]model.ScaleDefinition),
		chordsByKey: make(map[string]string),
	}
	for root := 0; root < 12; root++ {
		for _, quality := range model.ChordQualities() {
			def := model.ChordDefinition{
				Name:      fmt.Sprintf("%v %v", model.Note(root), quality),
				Root:      model.Note(root),
				Quality:   quality,
				Intervals: chordIntervals[quality],
				Notes:     buildNotes(model.Note(root), chordIntervals[quality]),
			}
			lib.Chords[def.Name] = def
			key := CreateSetKey(def.Notes)
			if _, taken := lib.chordsByKey[key]; !taken {
				lib.chordsByKey[key] = def.Name
			}
		}
		for _, quality := range model.ScaleQualities() {
			def := model.ScaleDefinition{
				Name:      fmt.Sprintf("%v %v", model.Note(root), quality),
				Root:      model.Note(root),
				Quality:   quality,
				Intervals: scaleIntervals[quality],
				Notes:     buildNotes(model.Note(root), scaleIntervals[quality]),
			}
			lib.Scales[def.Name] = def
		}
	}
	return lib
}

var (
	defaultLib  *Library
	defaultOnce sync.Once
)

// Default returns the shared library, built once on first use.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLib = Build()
	})
	return defaultLib
}

func (l *Library) Chord(name string) (model.ChordDefinition, bool) {
	def, ok := l.Chords[name]
	return def, ok
}

func (l *Library) Scale(name string) (model.ScaleDefinition, bool) {
	def, ok := l.Scales[name]
	return def, ok
}

// ChordNotes returns the notes of a chord, or nil when the name is not
// in the library.
func (l *Library) ChordNotes(name string) model.Notes {
	if def, ok := l.Chords[name]; ok {
		return def.Notes
	}
	return nil
}

// ScaleNotes returns the notes of a scale, or nil when the name is not
// in the library.
func (l *Library) ScaleNotes(name string) model.Notes {
	if def, ok := l.Scales[name]; ok {
		return def.Notes
	}
	return nil
}

func (l *Library) ChordNames() []string {
	return util.GetSortedKeys(l.Chords)
}

func (l *Library) ScaleNames() []string {
	return util.GetSortedKeys(l.Scales)
}

// DisplayString renders a library entry as "C Major [C, E, G]".
// Unknown names come back unchanged.
func (l *Library) DisplayString(name string) string {
	var notes model.Notes
	if def, ok := l.Chord(name); ok {
		notes = def.Notes
	} else if def, ok := l.Scale(name); ok {
		notes = def.Notes
	} else {
		return name
	}
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.String())
	}
	return fmt.Sprintf("%v [%v]", name, strings.Join(parts, ", "))
}

// Identify names the chord spelled by a set of notes, ignoring order
// and octave duplicates. The bool reports whether anything matched.
func (l *Library) Identify(notes model.Notes) (string, bool) {
	if len(notes) == 0 {
		return "", false
	}
	name, ok := l.chordsByKey[CreateSetKey(notes)]
	return name, ok
}
