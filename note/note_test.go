package note

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

func TestParseCanonicalNames(t *testing.T) {
	for i, name := range model.NoteNames {
		n, err := Parse(name)
		assert.NoError(t, err)
		assert.Equal(t, model.Note(i), n)
		assert.Equal(t, name, n.String())
	}
}

func TestParseFlatSpellings(t *testing.T) {
	cases := map[string]string{
		"Bb": "A#",
		"Db": "C#",
		"Eb": "D#",
		"Gb": "F#",
		"Ab": "G#",
	}
	for flat, sharp := range cases {
		n, err := Parse(flat)
		assert.NoError(t, err)
		assert.Equal(t, sharp, n.String())
	}
}

func TestParseToleratesCaseAndSpace(t *testing.T) {
	n, err := Parse(" f# ")
	assert.NoError(t, err)
	assert.Equal(t, "F#", n.String())
}

func TestParseRejectsUnknownName(t *testing.T) {
	_, err := Parse("H")
	var invalid *model.InvalidNoteError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "H", invalid.Name)
}

func TestParseAll(t *testing.T) {
	notes, err := ParseAll([]string{"A", "C", "E"})
	assert.NoError(t, err)
	assert.Equal(t, model.Notes{0, 3, 7}, notes)

	_, err = ParseAll([]string{"A", "X"})
	assert.Error(t, err)
}

func TestFromIndexWrapsNegatives(t *testing.T) {
	assert.Equal(t, model.Note(11), FromIndex(-1))
	assert.Equal(t, model.Note(0), FromIndex(12))
	assert.Equal(t, model.Note(9), FromIndex(-15))
	assert.Equal(t, model.Note(1), FromIndex(25))
}

func TestTransposeOctavePeriodicity(t *testing.T) {
	for i := 0; i < 12; i++ {
		n := model.Note(i)
		assert.Equal(t, n, Transpose(n, 12))
		assert.Equal(t, n, Transpose(n, -12))
		assert.Equal(t, n, Transpose(n, 0))
	}
}

func TestTranspose(t *testing.T) {
	e, _ := Parse("E")
	assert.Equal(t, "G", Transpose(e, 3).String())
	assert.Equal(t, "C#", Transpose(e, -3).String())
}

func TestAt(t *testing.T) {
	e, _ := Parse("E")
	assert.Equal(t, "E", At(e, 0).String())
	assert.Equal(t, "A", At(e, 5).String())
	assert.Equal(t, "E", At(e, 12).String())
}

func TestFromMidi(t *testing.T) {
	assert.Equal(t, "E", FromMidi(64).String())
	assert.Equal(t, "A", FromMidi(45).String())
	assert.Equal(t, "C", FromMidi(60).String())
	assert.Equal(t, "C", FromMidi(72).String())
}
