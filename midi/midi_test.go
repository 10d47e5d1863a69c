package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

func collectNoteOns(s *smf.SMF) []uint8 {
	var keys []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel uint8
			var key uint8
			var vel uint8
			if event.Message.GetNoteOn(&channel, &key, &vel) {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func TestBuildPitches(t *testing.T) {
	phrases := []model.TabPhrase{{
		ChordName: "A Minor",
		Notes: []model.TabNote{
			{StringIndex: 0, Fret: 5},
			{StringIndex: 1, Fret: 3},
			{StringIndex: 5, Fret: 0},
		},
	}}
	s := Build(phrases, fretboard.StandardTuning(), 0)
	// open pitches 64/59/40 plus the fret
	assert.Equal(t, []uint8{69, 62, 40}, collectNoteOns(s))
}

func TestBuildDurations(t *testing.T) {
	phrases := []model.TabPhrase{{
		ChordName: "E Major",
		Notes: []model.TabNote{
			{StringIndex: 0, Fret: 0},
			{StringIndex: 0, Fret: 2, Timing: model.TimingQuarter},
			{StringIndex: 0, Fret: 4, Timing: model.TimingHalf},
		},
	}}
	s := Build(phrases, fretboard.StandardTuning(), 0)
	var durations []uint32
	for _, event := range s.Tracks[0] {
		var channel uint8
		var key uint8
		var vel uint8
		if event.Message.GetNoteOff(&channel, &key, &vel) {
			durations = append(durations, event.Delta)
		}
	}
	assert.Equal(t, []uint32{480, 960, 1920}, durations)
}

func TestBuildMarkersAndVelocity(t *testing.T) {
	phrases := []model.TabPhrase{
		{ChordName: "A Minor", Notes: []model.TabNote{{StringIndex: 2, Fret: 2}}},
		{ChordName: "E Major", Notes: []model.TabNote{{StringIndex: 2, Fret: 1}}},
	}
	s := Build(phrases, fretboard.StandardTuning(), 0)
	var markers []string
	for _, event := range s.Tracks[0] {
		var text string
		if event.Message.GetMetaMarker(&text) {
			markers = append(markers, text)
		}
		var channel uint8
		var key uint8
		var vel uint8
		if event.Message.GetNoteOn(&channel, &key, &vel) {
			assert.Equal(t, uint8(velocity), vel)
		}
	}
	assert.Equal(t, []string{"A Minor", "E Major"}, markers)
}

func TestBuildTempo(t *testing.T) {
	phrases := []model.TabPhrase{{
		ChordName: "A Minor",
		Notes:     []model.TabNote{{StringIndex: 0, Fret: 5}},
	}}

	tempoOf := func(s *smf.SMF) float64 {
		for _, event := range s.Tracks[0] {
			var bpm float64
			if event.Message.GetMetaTempo(&bpm) {
				return bpm
			}
		}
		return 0
	}

	assert.Equal(t, float64(DefaultBPM), tempoOf(Build(phrases, fretboard.StandardTuning(), 0)))
	assert.Equal(t, 90.0, tempoOf(Build(phrases, fretboard.StandardTuning(), 90)))
}

func TestBuildSkipsOutOfRangeStrings(t *testing.T) {
	phrases := []model.TabPhrase{{
		ChordName: "A Minor",
		Notes: []model.TabNote{
			{StringIndex: -1, Fret: 5},
			{StringIndex: 9, Fret: 5},
			{StringIndex: 4, Fret: 0},
		},
	}}
	s := Build(phrases, fretboard.StandardTuning(), 0)
	assert.Equal(t, []uint8{45}, collectNoteOns(s))
}

func TestWriteMidiFileRoundTrip(t *testing.T) {
	phrases := []model.TabPhrase{{
		ChordName: "D Major",
		Notes:     []model.TabNote{{StringIndex: 1, Fret: 3}, {StringIndex: 2, Fret: 2}},
	}}
	path := filepath.Join(t.TempDir(), "phrase.mid")
	err := WriteMidiFile(path, phrases, fretboard.StandardTuning(), 90)
	assert.NoError(t, err)

	dat, err := os.ReadFile(path)
	assert.NoError(t, err)
	parsed, err := smf.ReadFrom(bytes.NewReader(dat))
	assert.NoError(t, err)
	assert.Equal(t, []uint8{62, 57}, collectNoteOns(parsed))
}
