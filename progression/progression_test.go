package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

type fakeRand struct {
	vals []int
	i    int
}

func (f *fakeRand) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v % n
}

func chordNames(entries []model.ChordProgressionEntry) []string {
	res := make([]string, 0, len(entries))
	for _, e := range entries {
		res = append(res, e.ChordName)
	}
	return res
}

func TestEveryFormulaHasFourSteps(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Formulas() {
		assert.Len(t, f.Steps, 4)
		assert.False(t, seen[f.Label])
		seen[f.Label] = true
		assert.Equal(t, 0, f.Steps[0].Offset)
		if f.MinorKey {
			assert.Equal(t, model.ChordMinor, f.Steps[0].Quality)
		} else {
			assert.Equal(t, model.ChordMajor, f.Steps[0].Quality)
		}
	}
	assert.Len(t, Labels(), len(Formulas()))
}

func TestFormulaByLabel(t *testing.T) {
	f, ok := FormulaByLabel("Spanish Romantic")
	assert.True(t, ok)
	assert.True(t, f.MinorKey)

	_, ok = FormulaByLabel("Bebop")
	assert.False(t, ok)
}

func TestGenerateSpanishRomanticInA(t *testing.T) {
	key, _ := note.Parse("A")
	f, _ := FormulaByLabel("Spanish Romantic")
	entries, err := Generate(key, f, 5, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A Minor", "G Major", "F Major", "E Major"}, chordNames(entries))
}

func TestGenerateSpanishRomanticInD(t *testing.T) {
	key, _ := note.Parse("D")
	f, _ := FormulaByLabel("Spanish Romantic")
	entries, err := Generate(key, f, 5, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"D Minor", "C Major", "A# Major", "A Major"}, chordNames(entries))
}

func TestGenerateFolkInC(t *testing.T) {
	key, _ := note.Parse("C")
	f, _ := FormulaByLabel("Folk")
	entries, err := Generate(key, f, 7, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C Major", "G Major", "A Minor", "F Major"}, chordNames(entries))
}

func TestGeneratePopInG(t *testing.T) {
	key, _ := note.Parse("G")
	f, _ := FormulaByLabel("Pop")
	entries, err := Generate(key, f, 7, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"G Major", "E Minor", "C Major", "D Major"}, chordNames(entries))
}

func TestGenerateWalksTowardNut(t *testing.T) {
	key, _ := note.Parse("A")
	f, _ := FormulaByLabel("Pop")
	entries, err := Generate(key, f, 5, nil)
	assert.NoError(t, err)
	frets := []int{entries[0].RootFret, entries[1].RootFret, entries[2].RootFret, entries[3].RootFret}
	assert.Equal(t, []int{5, 3, 1, 0}, frets)
}

func TestGenerateRandomBaseFret(t *testing.T) {
	key, _ := note.Parse("E")
	f, _ := FormulaByLabel("Folk")

	entries, err := Generate(key, f, -1, &fakeRand{vals: []int{0}})
	assert.NoError(t, err)
	assert.Equal(t, 4, entries[0].RootFret)

	entries, err = Generate(key, f, -1, &fakeRand{vals: []int{4}})
	assert.NoError(t, err)
	assert.Equal(t, 8, entries[0].RootFret)

	for i := 0; i < 20; i++ {
		entries, err = Generate(key, f, -1, nil)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, entries[0].RootFret, 4)
		assert.LessOrEqual(t, entries[0].RootFret, model.MaxFret-4)
	}
}

func TestGenerateRejectsMalformedFormula(t *testing.T) {
	key, _ := note.Parse("A")
	bad := model.ProgressionFormula{Label: "Truncated", Steps: []model.RomanStep{
		{Numeral: "i", Offset: 0, Quality: model.ChordMinor},
	}}
	_, err := Generate(key, bad, 5, nil)
	var invalid *InvalidFormulaError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Count)
}
