package fretboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

func tuningNames(t model.Tuning) []string {
	res := make([]string, 0, len(t))
	for _, n := range t {
		res = append(res, n.String())
	}
	return res
}

func TestStandardTuning(t *testing.T) {
	assert.Equal(t, []string{"E", "B", "G", "D", "A", "E"}, tuningNames(StandardTuning()))
}

func TestTuningNamesOrder(t *testing.T) {
	names := TuningNames()
	assert.Equal(t, "Standard", names[0])
	assert.Len(t, names, 6)
}

func TestNamedTuningIgnoresCase(t *testing.T) {
	tuning, ok := NamedTuning("drop d")
	assert.True(t, ok)
	assert.Equal(t, []string{"E", "B", "G", "D", "A", "D"}, tuningNames(tuning))

	_, ok = NamedTuning("Nashville")
	assert.False(t, ok)
}

func TestParseTuning(t *testing.T) {
	tuning, err := ParseTuning("DADGAD")
	assert.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "G", "D", "A", "D"}, tuningNames(tuning))

	tuning, err = ParseTuning("D, A, F#, D, A, D")
	assert.NoError(t, err)
	assert.Equal(t, []string{"D", "A", "F#", "D", "A", "D"}, tuningNames(tuning))

	tuning, err = ParseTuning("")
	assert.NoError(t, err)
	assert.Equal(t, StandardTuning(), tuning)
}

func TestParseTuningErrors(t *testing.T) {
	_, err := ParseTuning("E,B,G,D,A")
	var invalid *InvalidTuningError
	assert.ErrorAs(t, err, &invalid)

	_, err = ParseTuning("E,B,G,D,A,X")
	assert.ErrorAs(t, err, &invalid)
	var badNote *model.InvalidNoteError
	assert.ErrorAs(t, err, &badNote)
	assert.Equal(t, "X", badNote.Name)
}

func TestNamedTuningReturnsCopy(t *testing.T) {
	a, _ := NamedTuning("Open G")
	a[0] = 0
	b, _ := NamedTuning("Open G")
	assert.Equal(t, "D", b[0].String())
}
