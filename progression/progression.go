package progression

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
	"github.com/iCodeForBananas/SimpleGuitarTools/util"
)

// Rand is the randomness a generator call needs. *rand.Rand satisfies
// it, as does anything seedable a test wants to swap in.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Randomly chosen base frets land in [minBaseFret, MaxFret-minBaseFret].
const minBaseFret = 4

type InvalidFormulaError struct {
	Label string
	Count int
}

func (e *InvalidFormulaError) Error() string {
	return fmt.Sprintf("progression formula %v has %v steps, want 4", e.Label, e.Count)
}

var formulas = []model.ProgressionFormula{
	{
		Label: "Folk",
		Steps: []model.RomanStep{
			{Numeral: "I", Offset: 0, Quality: model.ChordMajor},
			{Numeral: "V", Offset: 7, Quality: model.ChordMajor},
			{Numeral: "vi", Offset: 9, Quality: model.ChordMinor},
			{Numeral: "IV", Offset: 5, Quality: model.ChordMajor},
		},
	},
	{
		Label: "Pop",
		Steps: []model.RomanStep{
			{Numeral: "I", Offset: 0, Quality: model.ChordMajor},
			{Numeral: "vi", Offset: 9, Quality: model.ChordMinor},
			{Numeral: "IV", Offset: 5, Quality: model.ChordMajor},
			{Numeral: "V", Offset: 7, Quality: model.ChordMajor},
		},
	},
	{
		Label:    "Sad Pop",
		MinorKey: true,
		Steps: []model.RomanStep{
			{Numeral: "i", Offset: 0, Quality: model.ChordMinor},
			{Numeral: "VI", Offset: 8, Quality: model.ChordMajor},
			{Numeral: "III", Offset: 3, Quality: model.ChordMajor},
			{Numeral: "VII", Offset: 10, Quality: model.ChordMajor},
		},
	},
	{
		Label: "Indie",
		Steps: []model.RomanStep{
			{Numeral: "I", Offset: 0, Quality: model.ChordMajor},
			{Numeral: "iii", Offset: 4, Quality: model.ChordMinor},
			{Numeral: "vi", Offset: 9, Quality: model.ChordMinor},
			{Numeral: "IV", Offset: 5, Quality: model.ChordMajor},
		},
	},
	{
		Label: "Cinematic",
		Steps: []model.RomanStep{
			{Numeral: "I", Offset: 0, Quality: model.ChordMajor},
			{Numeral: "V", Offset: 7, Quality: model.ChordMajor},
			{Numeral: "bVII", Offset: 10, Quality: model.ChordMajor},
			{Numeral: "IV", Offset: 5, Quality: model.ChordMajor},
		},
	},
	{
		Label: "Classic Rock",
		Steps: []model.RomanStep{
			{Numeral: "I", Offset: 0, Quality: model.ChordMajor},
			{Numeral: "IV", Offset: 5, Quality: model.ChordMajor},
			{Numeral: "V", Offset: 7, Quality: model.ChordMajor},
			{Numeral: "IV", Offset: 5, Quality: model.ChordMajor},
		},
	},
	{
		Label:    "Melancholy Minor",
		MinorKey: true,
		Steps: []model.RomanStep{
			{Numeral: "i", Offset: 0, Quality: model.ChordMinor},
			{Numeral: "VII", Offset: 10, Quality: model.ChordMajor},
			{Numeral: "v", Offset: 7, Quality: model.ChordMinor},
			{Numeral: "VI", Offset: 8, Quality: model.ChordMajor},
		},
	},
	{
		Label:    "Dramatic Minor",
		MinorKey: true,
		Steps: []model.RomanStep{
			{Numeral: "i", Offset: 0, Quality: model.ChordMinor},
			{Numeral: "iv", Offset: 5, Quality: model.ChordMinor},
			{Numeral: "VI", Offset: 8, Quality: model.ChordMajor},
			{Numeral: "V", Offset: 7, Quality: model.ChordMajor},
		},
	},
	{
		Label:    "Spanish",
		MinorKey: true,
		Steps: []model.RomanStep{
			{Numeral: "i", Offset: 0, Quality: model.ChordMinor},
			{Numeral: "bII", Offset: 1, Quality: model.ChordMajor},
			{Numeral: "III", Offset: 3, Quality: model.ChordMajor},
			{Numeral: "bII", Offset: 1, Quality: model.ChordMajor},
		},
	},
	{
		Label:    "Spanish Romantic",
		MinorKey: true,
		Steps: []model.RomanStep{
			{Numeral: "i", Offset: 0, Quality: model.ChordMinor},
			{Numeral: "VII", Offset: 10, Quality: model.ChordMajor},
			{Numeral: "VI", Offset: 8, Quality: model.ChordMajor},
			{Numeral: "V", Offset: 7, Quality: model.ChordMajor},
		},
	},
}

// Formulas returns the styles in their curated order.
func Formulas() []model.ProgressionFormula {
	res := make([]model.ProgressionFormula, len(formulas))
	copy(res, formulas)
	return res
}

// Labels returns the style names sorted for display.
func Labels() []string {
	labels := make([]string, 0, len(formulas))
	for _, f := range formulas {
		labels = append(labels, f.Label)
	}
	sort.Strings(labels)
	return labels
}

func FormulaByLabel(label string) (model.ProgressionFormula, bool) {
	for _, f := range formulas {
		if f.Label == label {
			return f, true
		}
	}
	return model.ProgressionFormula{}, false
}

// Generate spells out a four-chord progression in the given key. A
// negative baseFret picks a starting fret at random; each later chord
// walks two frets down the neck, stopping at the nut.
func Generate(key model.Note, formula model.ProgressionFormula, baseFret int, rng Rand) ([]model.ChordProgressionEntry, error) {
	if len(formula.Steps) != 4 {
		return nil, &InvalidFormulaError{Label: formula.Label, Count: len(formula.Steps)}
	}
	if rng == nil {
		rng = globalRand{}
	}
	if baseFret < 0 {
		baseFret = minBaseFret + rng.Intn(model.MaxFret-2*minBaseFret+1)
	}
	entries := make([]model.ChordProgressionEntry, 0, len(formula.Steps))
	for i, step := range formula.Steps {
		root := note.Transpose(key, step.Offset)
		entries = append(entries, model.ChordProgressionEntry{
			ChordName: fmt.Sprintf("%v %v", root, step.Quality),
			RootFret:  util.Max(baseFret-2*i, 0),
		})
	}
	return entries, nil
}
