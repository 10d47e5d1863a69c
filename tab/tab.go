package tab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

// Render draws a phrase as six tab lines, highest-pitched string on
// top, one column per note. Lines are labeled with the open-string
// note of the tuning.
func Render(p model.TabPhrase, tuning model.Tuning) string {
	width := 2
	for _, tn := range p.Notes {
		if tn.Fret > 9 {
			width = 3
		}
	}

	var b strings.Builder
	if p.ChordName != "" {
		fmt.Fprintf(&b, "%v (%v)\n", p.ChordName, p.Pattern)
	}
	for s := 0; s < model.NumStrings; s++ {
		label := "?"
		if s < len(tuning) {
			label = tuning[s].String()
		}
		fmt.Fprintf(&b, "%-2v|", label)
		for _, tn := range p.Notes {
			if tn.StringIndex == s {
				digits := strconv.Itoa(tn.Fret)
				b.WriteString(strings.Repeat("-", width-len(digits)))
				b.WriteString(digits)
			} else {
				b.WriteString(strings.Repeat("-", width))
			}
		}
		b.WriteString("-|\n")
	}
	return b.String()
}

// RenderAll stacks one rendered block per phrase, blank line between.
func RenderAll(phrases []model.TabPhrase, tuning model.Tuning) string {
	blocks := make([]string, 0, len(phrases))
	for _, p := range phrases {
		blocks = append(blocks, Render(p, tuning))
	}
	return strings.Join(blocks, "\n")
}
