package tab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

func TestRender(t *testing.T) {
	phrase := model.TabPhrase{
		ChordName: "A Minor",
		Pattern:   model.PatternArpeggiated,
		Notes: []model.TabNote{
			{StringIndex: 0, Fret: 5},
			{StringIndex: 1, Fret: 5},
			{StringIndex: 2, Fret: 5},
		},
	}
	want := "A Minor (arpeggiated)\n" +
		"E |-5-----|\n" +
		"B |---5---|\n" +
		"G |-----5-|\n" +
		"D |-------|\n" +
		"A |-------|\n" +
		"E |-------|\n"
	assert.Equal(t, want, Render(phrase, fretboard.StandardTuning()))
}

func TestRenderWidensForDoubleDigitFrets(t *testing.T) {
	phrase := model.TabPhrase{
		Notes: []model.TabNote{
			{StringIndex: 0, Fret: 10},
			{StringIndex: 1, Fret: 5},
		},
	}
	out := Render(phrase, fretboard.StandardTuning())
	assert.Contains(t, out, "E |-10----|\n")
	assert.Contains(t, out, "B |-----5-|\n")
}

func TestRenderEmptyPhrase(t *testing.T) {
	out := Render(model.TabPhrase{}, fretboard.StandardTuning())
	assert.False(t, strings.Contains(out, "("))
	assert.Contains(t, out, "E |-|\n")
	assert.Equal(t, model.NumStrings, strings.Count(out, "|-"))
}

func TestRenderUnknownTuningSlots(t *testing.T) {
	out := Render(model.TabPhrase{}, nil)
	assert.Contains(t, out, "? |-|\n")
}

func TestRenderAll(t *testing.T) {
	phrases := []model.TabPhrase{
		{ChordName: "A Minor", Notes: []model.TabNote{{StringIndex: 0, Fret: 5}}},
		{ChordName: "E Major", Notes: []model.TabNote{{StringIndex: 1, Fret: 5}}},
	}
	out := RenderAll(phrases, fretboard.StandardTuning())
	assert.Contains(t, out, "A Minor (arpeggiated)")
	assert.Contains(t, out, "E Major (arpeggiated)")
	assert.Equal(t, 1, strings.Count(out, "\n\n"))
}
