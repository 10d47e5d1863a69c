package phrase

import (
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/util"
)

func containsNote(notes model.Notes, n model.Note) bool {
	for _, candidate := range notes {
		if candidate == n {
			return true
		}
	}
	return false
}

// nearestChordTone returns the chord tone closest to n on the twelve
// tone circle. Ties go to the earlier chord tone; an empty chord leaves
// n unchanged.
func nearestChordTone(n model.Note, chordNotes model.Notes) model.Note {
	best := n
	bestDist := 127
	for _, ct := range chordNotes {
		d := util.Abs(int(n) - int(ct))
		if d > 6 {
			d = 12 - d
		}
		if d < bestDist {
			bestDist = d
			best = ct
		}
	}
	return best
}

// buildSequence produces the abstract notes of a phrase before any
// fretboard placement happens.
func buildSequence(chordNotes, scaleNotes model.Notes, opts Options) model.Notes {
	switch opts.Pattern {
	case model.PatternAscendingRun, model.PatternDescendingRun, model.PatternMixed:
		return buildRun(chordNotes, scaleNotes, opts)
	default:
		return buildArpeggio(chordNotes, scaleNotes, opts.Length)
	}
}

// buildArpeggio cycles the chord tones in order, falling back to the
// scale when no chord is active.
func buildArpeggio(chordNotes, scaleNotes model.Notes, length int) model.Notes {
	source := chordNotes
	if len(source) == 0 {
		source = scaleNotes
	}
	if len(source) == 0 {
		return nil
	}
	seq := make(model.Notes, 0, length)
	for i := 0; i < length; i++ {
		seq = append(seq, source[i%len(source)])
	}
	return seq
}

// buildRun walks the scale in index order: forward for an ascending
// run, backward from the top for a descending one, and as a random
// neighbor walk for mixed. With chord emphasis on, every other pick is
// pulled to the nearest chord tone.
func buildRun(chordNotes, scaleNotes model.Notes, opts Options) model.Notes {
	source := scaleNotes
	if len(source) == 0 {
		source = chordNotes
	}
	if len(source) == 0 {
		return nil
	}
	seq := make(model.Notes, 0, opts.Length)
	switch opts.Pattern {
	case model.PatternAscendingRun:
		for i := 0; i < opts.Length; i++ {
			seq = append(seq, source[i%len(source)])
		}
	case model.PatternDescendingRun:
		for i := 0; i < opts.Length; i++ {
			idx := ((len(source)-1-i)%len(source) + len(source)) % len(source)
			seq = append(seq, source[idx])
		}
	default:
		idx := opts.Rand.Intn(len(source))
		for i := 0; i < opts.Length; i++ {
			seq = append(seq, source[idx])
			if opts.Rand.Intn(2) == 0 {
				idx = (idx + 1) % len(source)
			} else {
				idx = (idx - 1 + len(source)) % len(source)
			}
		}
	}
	if opts.EmphasizeChordTones && len(chordNotes) > 0 {
		for i := 0; i < len(seq); i += 2 {
			seq[i] = nearestChordTone(seq[i], chordNotes)
		}
	}
	return seq
}
