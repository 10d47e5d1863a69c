package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/midi"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/phrase"
	"github.com/iCodeForBananas/SimpleGuitarTools/tab"
)

var (
	phraseChord      string
	phraseFrom       string
	phraseTo         string
	phraseScale      string
	phraseTuning     string
	phraseLength     int
	phrasePosition   int
	phraseRange      int
	phrasePattern    string
	phraseNoEmphasis bool
	phraseSeed       int64
	phraseSave       string
	phraseMidi       string
	phraseBpm        int
)

func init() {
	rootCmd.AddCommand(phraseCmd)
	phraseCmd.Flags().StringVar(&phraseChord, "chord", "", "chord to phrase over, e.g. \"A Minor\"")
	phraseCmd.Flags().StringVar(&phraseFrom, "from", "", "chord a connecting phrase leaves")
	phraseCmd.Flags().StringVar(&phraseTo, "to", "", "chord a connecting phrase resolves into")
	phraseCmd.Flags().StringVar(&phraseScale, "scale", "", "working scale, e.g. \"A Pentatonic Minor\"")
	phraseCmd.Flags().StringVar(&phraseTuning, "tuning", "", "named tuning or six comma-separated notes")
	phraseCmd.Flags().IntVar(&phraseLength, "length", 0, "notes in the phrase (4-12)")
	phraseCmd.Flags().IntVar(&phrasePosition, "position", 0, "anchor fret")
	phraseCmd.Flags().IntVar(&phraseRange, "range", 0, "fret window width around the anchor")
	phraseCmd.Flags().StringVar(&phrasePattern, "pattern", "", "arpeggiated, ascending-run, descending-run or mixed")
	phraseCmd.Flags().BoolVar(&phraseNoEmphasis, "no-emphasis", false, "do not pull picks toward chord tones")
	phraseCmd.Flags().Int64Var(&phraseSeed, "seed", 0, "seed for reproducible output, 0 for random")
	phraseCmd.Flags().StringVar(&phraseSave, "save", "", "save the phrase under this name")
	phraseCmd.Flags().StringVar(&phraseMidi, "midi", "", "also write the phrase to this midi file")
	phraseCmd.Flags().IntVar(&phraseBpm, "bpm", midi.DefaultBPM, "tempo of the midi file")
}

var phraseCmd = &cobra.Command{
	Use:   "phrase",
	Short: "Generates a playable tab phrase",
	Long: `Generates a playable tab phrase over one chord, or a connecting phrase
between two chords when --from and --to are given.`,
	Run: func(cmd *cobra.Command, args []string) {
		runPhrase()
	},
}

func phraseCmdOptions() phrase.Options {
	opts := phrase.DefaultOptions()
	if phraseLength > 0 {
		opts.Length = phraseLength
	}
	if phrasePosition > 0 {
		opts.Anchor = phrasePosition
	}
	if phraseRange > 0 {
		opts.Window = phraseRange
	}
	opts.EmphasizeChordTones = !phraseNoEmphasis
	if phrasePattern != "" {
		pattern, ok := model.ParsePattern(phrasePattern)
		if !ok {
			panic("Unknown pattern: " + phrasePattern)
		}
		opts.Pattern = pattern
	}
	if rng := seededRand(phraseSeed); rng != nil {
		opts.Rand = rng
	}
	return opts
}

func mustChordNotes(lib *library.Library, name string) model.Notes {
	def, ok := lib.Chord(name)
	if !ok {
		panic("Unknown chord: " + name)
	}
	return def.Notes
}

func runPhrase() {
	tuning, err := fretboard.ParseTuning(phraseTuning)
	if err != nil {
		panic("Bad tuning: " + err.Error())
	}
	lib := library.Default()
	var scaleNotes model.Notes
	if phraseScale != "" {
		if scaleNotes = lib.ScaleNotes(phraseScale); scaleNotes == nil {
			panic("Unknown scale: " + phraseScale)
		}
	}
	opts := phraseCmdOptions()

	var p model.TabPhrase
	switch {
	case phraseFrom != "" || phraseTo != "":
		if phraseFrom == "" || phraseTo == "" {
			panic("Need both --from and --to...")
		}
		p = phrase.GenerateConnectingPhrase(
			mustChordNotes(lib, phraseFrom),
			mustChordNotes(lib, phraseTo),
			scaleNotes,
			tuning,
			opts,
		)
		p.ChordName = phraseFrom + " > " + phraseTo
	case phraseChord != "":
		p = phrase.GeneratePhrase(phraseChord, mustChordNotes(lib, phraseChord), scaleNotes, tuning, opts)
	default:
		panic("Need --chord, or --from and --to...")
	}

	fmt.Print(tab.Render(p, tuning))

	if phraseSave != "" {
		d := openDB()
		record := &model.SavedTab{
			Name:      phraseSave,
			ChordName: p.ChordName,
			Pattern:   p.Pattern.String(),
			Tuning:    tuning,
			Notes:     p.Notes,
		}
		if err := d.SaveTab(record); err != nil {
			panic("Could not save tab: " + err.Error())
		}
		fmt.Printf("Saved tab %v as %v\n", record.ID, record.Name)
	}
	if phraseMidi != "" {
		if err := midi.WriteMidiFile(phraseMidi, []model.TabPhrase{p}, tuning, float64(phraseBpm)); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", phraseMidi)
	}
}
