package midi

import (
	"bytes"
	"fmt"
	"os"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

// quarterTicks is the metric resolution of exported files.
const quarterTicks = 960

const velocity = 100

// DefaultBPM is the tempo written when the caller does not pick one.
const DefaultBPM = 120

func durationTicks(timing model.Timing) uint32 {
	switch timing {
	case model.TimingQuarter:
		return quarterTicks
	case model.TimingHalf:
		return 2 * quarterTicks
	default:
		return quarterTicks / 2
	}
}

// Build lays phrases out on a single track, one note after another,
// each phrase announced by a marker carrying its chord name. Untagged
// notes play as eighths.
func Build(phrases []model.TabPhrase, tuning model.Tuning, bpm float64) *smf.SMF {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(quarterTicks)

	openPitches := fretboard.OpenStringPitches(tuning)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("SimpleGuitarTools"))
	tr.Add(0, smf.MetaTempo(bpm))
	var delta uint32
	for _, p := range phrases {
		if p.ChordName != "" {
			tr.Add(delta, smf.MetaMarker(p.ChordName))
			delta = 0
		}
		for _, tn := range p.Notes {
			if tn.StringIndex < 0 || tn.StringIndex >= model.NumStrings {
				continue
			}
			key := uint8(openPitches[tn.StringIndex] + tn.Fret)
			tr.Add(delta, gomidi.NoteOn(0, key, velocity))
			tr.Add(durationTicks(tn.Timing), gomidi.NoteOff(0, key))
			delta = 0
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// WriteMidiFile renders phrases to a standard midi file on disk.
func WriteMidiFile(path string, phrases []model.TabPhrase, tuning model.Tuning, bpm float64) error {
	s := Build(phrases, tuning, bpm)
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return fmt.Errorf("encoding midi file: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing midi file: %w", err)
	}
	return nil
}
