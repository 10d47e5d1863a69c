package model

import "encoding/json"

// Timing is the optional rhythmic weight of a tab note. It is a tag the MIDI
// exporter maps to a fixed duration, not a rhythm engine.
type Timing string

const (
	TimingEighth  Timing = "eighth"
	TimingQuarter Timing = "quarter"
	TimingHalf    Timing = "half"
)

// TabNote is one playable fretboard location in a phrase. StringIndex 0 is
// the highest-pitched string as tuned, 5 the lowest; the same convention is
// used by Tuning, position lookup and rendering.
type TabNote struct {
	StringIndex int    `json:"string"`
	Fret        int    `json:"fret"`
	Timing      Timing `json:"timing,omitempty"`
}

// PatternType selects the note-sequence strategy of the phrase generator.
type PatternType int

const (
	PatternArpeggiated PatternType = iota
	PatternAscendingRun
	PatternDescendingRun
	PatternMixed
)

var patternNames = [...]string{"arpeggiated", "ascending-run", "descending-run", "mixed"}

func (p PatternType) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "unknown"
}

// ParsePattern maps a pattern name back to its PatternType.
func ParsePattern(s string) (PatternType, bool) {
	for i := range patternNames {
		if patternNames[i] == s {
			return PatternType(i), true
		}
	}
	return PatternArpeggiated, false
}

func (p PatternType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PatternType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, _ := ParsePattern(name)
	*p = parsed
	return nil
}

// TabPhrase is a generated melodic phrase over one chord. Phrases are built
// fresh on every generation request and never mutated afterwards.
type TabPhrase struct {
	ChordName string      `json:"chord_name"`
	Notes     []TabNote   `json:"notes"`
	Pattern   PatternType `json:"pattern"`
}
