package phrase

import (
	"math/rand"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/util"
)

// Rand is the randomness a generation call needs. *rand.Rand satisfies
// it; tests swap in a deterministic source.
type Rand interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

const (
	MinLength = 4
	MaxLength = 12

	// Progression phrases stay a little shorter per chord.
	maxProgressionLength = 8
)

// Options tunes phrase generation. Start from DefaultOptions and
// override what you need. An unset Length, Window or Rand falls back
// to its default; Anchor 0 is a real position at the nut, and
// EmphasizeChordTones false turns emphasis off.
type Options struct {
	Length              int
	Anchor              int
	Window              int
	EmphasizeChordTones bool
	Pattern             model.PatternType
	Rand                Rand
}

func DefaultOptions() Options {
	return Options{
		Length:              6,
		Anchor:              5,
		Window:              4,
		EmphasizeChordTones: true,
		Pattern:             model.PatternArpeggiated,
	}
}

func (o Options) normalized() Options {
	if o.Length <= 0 {
		o.Length = 6
	}
	o.Length = util.Clamp(o.Length, MinLength, MaxLength)
	if o.Window <= 0 {
		o.Window = 4
	}
	if o.Anchor < 0 {
		o.Anchor = 5
	}
	o.Anchor = util.Clamp(o.Anchor, 0, model.MaxFret)
	if o.Rand == nil {
		o.Rand = globalRand{}
	}
	return o
}

// GeneratePhrase builds a playable phrase over one chord. Missing chord
// notes fall back to the scale; when both are empty the phrase comes
// back with no notes rather than an error.
func GeneratePhrase(chordName string, chordNotes model.Notes, scaleNotes model.Notes, tuning model.Tuning, opts Options) model.TabPhrase {
	return generatePhrase(chordName, chordNotes, scaleNotes, fretboard.NewIndex(tuning), opts)
}

func generatePhrase(chordName string, chordNotes model.Notes, scaleNotes model.Notes, idx *fretboard.Index, opts Options) model.TabPhrase {
	opts = opts.normalized()
	phrase := model.TabPhrase{
		ChordName: chordName,
		Notes:     []model.TabNote{},
		Pattern:   opts.Pattern,
	}
	for _, n := range buildSequence(chordNotes, scaleNotes, opts) {
		p, ok := selectBestPosition(n, chordNotes, idx, opts)
		if !ok {
			continue
		}
		phrase.Notes = append(phrase.Notes, model.TabNote{StringIndex: p.StringIndex, Fret: p.Fret})
	}
	return phrase
}

// GenerateConnectingPhrase builds a transition that starts on the chord
// being left and resolves into the chord being entered. The final note
// lands on a destination chord tone when the working scale contains one.
func GenerateConnectingPhrase(fromNotes, toNotes, scaleNotes model.Notes, tuning model.Tuning, opts Options) model.TabPhrase {
	opts = opts.normalized()
	opts.Pattern = model.PatternMixed
	phrase := model.TabPhrase{Notes: []model.TabNote{}, Pattern: opts.Pattern}

	fromSrc := fromNotes
	if len(fromSrc) == 0 {
		fromSrc = scaleNotes
	}
	toSrc := toNotes
	if len(toSrc) == 0 {
		toSrc = scaleNotes
	}
	if len(fromSrc) == 0 {
		fromSrc = toSrc
	}
	if len(toSrc) == 0 {
		toSrc = fromSrc
	}
	if len(fromSrc) == 0 {
		return phrase
	}

	half := (opts.Length + 1) / 2
	seq := make(model.Notes, 0, opts.Length)
	contexts := make([]model.Notes, 0, opts.Length)
	for i := 0; i < opts.Length; i++ {
		if i < half {
			seq = append(seq, fromSrc[i%len(fromSrc)])
			contexts = append(contexts, fromNotes)
		} else {
			seq = append(seq, toSrc[(i-half)%len(toSrc)])
			contexts = append(contexts, toNotes)
		}
	}
	if len(scaleNotes) > 0 {
		for _, ct := range toNotes {
			if containsNote(scaleNotes, ct) {
				seq[len(seq)-1] = ct
				break
			}
		}
	}

	idx := fretboard.NewIndex(tuning)
	for i, n := range seq {
		p, ok := selectBestPosition(n, contexts[i], idx, opts)
		if !ok {
			continue
		}
		phrase.Notes = append(phrase.Notes, model.TabNote{StringIndex: p.StringIndex, Fret: p.Fret})
	}
	return phrase
}

// progressionAnchor cycles the hand position one fret down, home, one
// fret up as the progression advances, clamped to the neck's middle.
func progressionAnchor(base, i int) int {
	return util.Clamp(base+i%3-1, 3, 9)
}

// GenerateProgressionPhrases renders one phrase per progression entry,
// nudging length and hand position chord to chord so the phrases do not
// all sit in the same spot. Entries with an empty or unknown chord name
// are skipped, not padded. The position index is built once and shared
// by every phrase.
func GenerateProgressionPhrases(entries []model.ChordProgressionEntry, lib *library.Library, scaleNotes model.Notes, tuning model.Tuning, opts Options) []model.TabPhrase {
	opts = opts.normalized()
	if lib == nil {
		lib = library.Default()
	}
	idx := fretboard.NewIndex(tuning)
	phrases := make([]model.TabPhrase, 0, len(entries))
	for i, entry := range entries {
		if entry.ChordName == "" {
			continue
		}
		chordNotes := lib.ChordNotes(entry.ChordName)
		if len(chordNotes) == 0 {
			continue
		}
		chordOpts := opts
		chordOpts.Length = util.Clamp(opts.Length+opts.Rand.Intn(3)-1, MinLength, maxProgressionLength)
		chordOpts.Anchor = progressionAnchor(opts.Anchor, i)
		phrases = append(phrases, generatePhrase(entry.ChordName, chordNotes, scaleNotes, idx, chordOpts))
	}
	return phrases
}
