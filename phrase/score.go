package phrase

import (
	"sort"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/util"
)

// scorePosition rates one candidate placement of a note against the
// active chord and anchor fret.
func scorePosition(p fretboard.Position, n model.Note, chordNotes model.Notes, opts Options) int {
	score := 0
	if opts.EmphasizeChordTones && containsNote(chordNotes, n) {
		score += 10
	}
	score += util.Max(0, 5-util.Abs(p.Fret-opts.Anchor))
	if p.StringIndex >= 1 && p.StringIndex <= 4 {
		score += 3
	}
	if p.Fret == 0 {
		score -= 2
	}
	if p.Fret >= 3 && p.Fret <= 9 {
		score += 2
	}
	return score
}

// selectBestPosition places a note, preferring the fret window around
// the anchor but never dropping a note that is reachable anywhere on
// the neck. One of the top three scored candidates is picked at random.
func selectBestPosition(n model.Note, chordNotes model.Notes, idx *fretboard.Index, opts Options) (fretboard.Position, bool) {
	all := idx.Positions(n)
	if len(all) == 0 {
		return fretboard.Position{}, false
	}
	candidates := idx.Window(n, opts.Anchor, opts.Window)
	if len(candidates) == 0 {
		// sort a copy, the index owns the full list
		candidates = append([]fretboard.Position(nil), all...)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return scorePosition(candidates[i], n, chordNotes, opts) > scorePosition(candidates[j], n, chordNotes, opts)
	})
	top := util.Min(3, len(candidates))
	return candidates[opts.Rand.Intn(top)], true
}
