package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
	"github.com/iCodeForBananas/SimpleGuitarTools/phrase"
	"github.com/iCodeForBananas/SimpleGuitarTools/progression"
	"github.com/iCodeForBananas/SimpleGuitarTools/tab"
)

var (
	progressionKey      string
	progressionStyle    string
	progressionPosition int
	progressionList     bool
	progressionTab      bool
	progressionScale    string
	progressionTuning   string
	progressionSeed     int64
)

func init() {
	rootCmd.AddCommand(progressionCmd)
	progressionCmd.Flags().StringVar(&progressionKey, "key", "A", "key root note")
	progressionCmd.Flags().StringVar(&progressionStyle, "style", "Pop", "progression style")
	progressionCmd.Flags().IntVar(&progressionPosition, "position", -1, "base fret, -1 picks one at random")
	progressionCmd.Flags().BoolVar(&progressionList, "list", false, "list the styles and exit")
	progressionCmd.Flags().BoolVar(&progressionTab, "tab", false, "also render a tab phrase per chord")
	progressionCmd.Flags().StringVar(&progressionScale, "scale", "", "scale for --tab, defaults to the key's major or minor scale")
	progressionCmd.Flags().StringVar(&progressionTuning, "tuning", "", "tuning for --tab")
	progressionCmd.Flags().Int64Var(&progressionSeed, "seed", 0, "seed for reproducible output, 0 for random")
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Generates a 4-chord progression",
	Long:  `Generates a 4-chord progression for a key and style, optionally with a tab phrase per chord.`,
	Run: func(cmd *cobra.Command, args []string) {
		runProgression()
	},
}

func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func runProgression() {
	if progressionList {
		for _, label := range progression.Labels() {
			fmt.Println(label)
		}
		return
	}

	key, err := note.Parse(progressionKey)
	if err != nil {
		panic("Bad key: " + err.Error())
	}
	formula, ok := progression.FormulaByLabel(progressionStyle)
	if !ok {
		panic("Unknown style: " + progressionStyle)
	}
	rng := seededRand(progressionSeed)
	entries, err := progression.Generate(key, formula, progressionPosition, rng)
	if err != nil {
		panic("Could not generate progression: " + err.Error())
	}
	for i, entry := range entries {
		fmt.Printf("%-4v %v (fret %v)\n", formula.Steps[i].Numeral, entry.ChordName, entry.RootFret)
	}

	if !progressionTab {
		return
	}
	scaleName := progressionScale
	if scaleName == "" {
		if formula.MinorKey {
			scaleName = fmt.Sprintf("%v Minor", key)
		} else {
			scaleName = fmt.Sprintf("%v Major", key)
		}
	}
	tuning, err := fretboard.ParseTuning(progressionTuning)
	if err != nil {
		panic("Bad tuning: " + err.Error())
	}
	opts := phrase.DefaultOptions()
	if rng != nil {
		opts.Rand = rng
	}
	phrases := phrase.GenerateProgressionPhrases(entries, nil, library.Default().ScaleNotes(scaleName), tuning, opts)
	fmt.Println()
	fmt.Print(tab.RenderAll(phrases, tuning))
}
