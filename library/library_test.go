package library

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

func noteNames(notes model.Notes) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.String())
	}
	return res
}

func TestChordNotes(t *testing.T) {
	lib := Default()
	assert.Equal(t, []string{"C", "E", "G"}, noteNames(lib.ChordNotes("C Major")))
	assert.Equal(t, []string{"A", "C", "E"}, noteNames(lib.ChordNotes("A Minor")))
	assert.Equal(t, []string{"A", "C", "E", "G"}, noteNames(lib.ChordNotes("A Min7")))
	assert.Equal(t, []string{"D", "G", "A"}, noteNames(lib.ChordNotes("D Sus4")))
	assert.Equal(t, []string{"E", "G#", "B", "F#"}, noteNames(lib.ChordNotes("E Add9")))
	assert.Nil(t, lib.ChordNotes("H Major"))
}

func TestScaleNotes(t *testing.T) {
	lib := Default()
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, noteNames(lib.ScaleNotes("C Major")))
	assert.Equal(t, []string{"A", "C", "D", "D#", "E", "G"}, noteNames(lib.ScaleNotes("A Blues")))
	assert.Equal(t, []string{"E", "F", "G#", "A", "B", "C", "D"}, noteNames(lib.ScaleNotes("E Phrygian Dominant")))
	assert.Nil(t, lib.ScaleNotes("A Dorian"))
}

func TestBuildCoversEveryRootAndQuality(t *testing.T) {
	lib := Build()
	assert.Equal(t, 12*len(model.ChordQualities()), len(lib.Chords))
	assert.Equal(t, 12*len(model.ScaleQualities()), len(lib.Scales))

	names := lib.ChordNames()
	assert.Equal(t, len(lib.Chords), len(names))
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestCreateSetKey(t *testing.T) {
	a, _ := note.Parse("A")
	c, _ := note.Parse("C")
	e, _ := note.Parse("E")
	assert.Equal(t, "0-3-7", CreateSetKey(model.Notes{a, c, e}))

	// order and duplicates do not matter
	assert.Equal(t, "0-3-7", CreateSetKey(model.Notes{e, a, c, a}))
	assert.Equal(t, "", CreateSetKey(nil))
}

func TestIdentifyRoundTrip(t *testing.T) {
	lib := Default()
	for name, def := range lib.Chords {
		found, ok := lib.Identify(def.Notes)
		assert.True(t, ok)
		assert.Equal(t, name, found)
	}
}

func TestIdentifyIgnoresVoicing(t *testing.T) {
	lib := Default()
	notes, err := note.ParseAll([]string{"E", "C", "G", "C", "E"})
	assert.NoError(t, err)
	name, ok := lib.Identify(notes)
	assert.True(t, ok)
	assert.Equal(t, "C Major", name)
}

func TestIdentifyUnknown(t *testing.T) {
	lib := Default()
	notes, _ := note.ParseAll([]string{"A", "A#"})
	_, ok := lib.Identify(notes)
	assert.False(t, ok)

	_, ok = lib.Identify(nil)
	assert.False(t, ok)
}

func TestChordAndScaleLookup(t *testing.T) {
	lib := Default()

	chord, ok := lib.Chord("A Minor")
	assert.True(t, ok)
	assert.Equal(t, "A Minor", chord.Name)
	assert.Equal(t, model.ChordMinor, chord.Quality)
	assert.Equal(t, []string{"A", "C", "E"}, noteNames(chord.Notes))

	scale, ok := lib.Scale("A Blues")
	assert.True(t, ok)
	assert.Equal(t, []int{0, 3, 5, 6, 7, 10}, scale.Intervals)

	_, ok = lib.Chord("A Blues")
	assert.False(t, ok)
	_, ok = lib.Scale("A Minor7")
	assert.False(t, ok)
}

func TestDisplayString(t *testing.T) {
	lib := Default()
	assert.Equal(t, "C Major [C, E, G]", lib.DisplayString("C Major"))
	assert.Equal(t, "A Pentatonic Minor [A, C, D, E, G]", lib.DisplayString("A Pentatonic Minor"))
	assert.Equal(t, "mystery", lib.DisplayString("mystery"))
}
