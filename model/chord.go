package model

// ChordQuality enumerates the chord kinds the library builds for every root.
type ChordQuality int

const (
	ChordMajor ChordQuality = iota
	ChordMinor
	ChordMaj7
	ChordDom7
	ChordMin7
	ChordSus4
	ChordAdd9
)

var chordQualityNames = [...]string{"Major", "Minor", "Maj7", "Dom7", "Min7", "Sus4", "Add9"}

func (q ChordQuality) String() string {
	if int(q) < len(chordQualityNames) {
		return chordQualityNames[q]
	}
	return "unknown"
}

// ChordQualities lists every quality in registration order.
func ChordQualities() []ChordQuality {
	qs := make([]ChordQuality, len(chordQualityNames))
	for i := range qs {
		qs[i] = ChordQuality(i)
	}
	return qs
}

// ScaleQuality enumerates the scale kinds the library builds for every root.
type ScaleQuality int

const (
	ScaleMajor ScaleQuality = iota
	ScaleMinor
	ScalePentatonicMajor
	ScalePentatonicMinor
	ScaleBlues
	ScaleHarmonicMinor
	ScaleMelodicMinor
	ScalePhrygian
	ScalePhrygianDominant
)

var scaleQualityNames = [...]string{
	"Major",
	"Minor",
	"Pentatonic Major",
	"Pentatonic Minor",
	"Blues",
	"Harmonic Minor",
	"Melodic Minor",
	"Phrygian",
	"Phrygian Dominant",
}

func (q ScaleQuality) String() string {
	if int(q) < len(scaleQualityNames) {
		return scaleQualityNames[q]
	}
	return "unknown"
}

// ScaleQualities lists every quality in registration order.
func ScaleQualities() []ScaleQuality {
	qs := make([]ScaleQuality, len(scaleQualityNames))
	for i := range qs {
		qs[i] = ScaleQuality(i)
	}
	return qs
}

// ChordDefinition is an immutable chord: a root, a quality, the semitone
// offsets of the quality's formula, and the notes those offsets produce.
type ChordDefinition struct {
	Name      string       `json:"name"`
	Root      Note         `json:"root"`
	Quality   ChordQuality `json:"-"`
	Intervals []int        `json:"intervals"`
	Notes     Notes        `json:"notes"`
}

// ScaleDefinition is the scale counterpart of ChordDefinition.
type ScaleDefinition struct {
	Name      string       `json:"name"`
	Root      Note         `json:"root"`
	Quality   ScaleQuality `json:"-"`
	Intervals []int        `json:"intervals"`
	Notes     Notes        `json:"notes"`
}
