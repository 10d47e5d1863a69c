package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

var (
	positionsTuning string
	positionsMin    int
	positionsMax    int
)

func init() {
	rootCmd.AddCommand(positionsCmd)
	positionsCmd.Flags().StringVar(&positionsTuning, "tuning", "", "named tuning or six comma-separated notes, highest string first")
	positionsCmd.Flags().IntVar(&positionsMin, "min", 0, "lowest fret to search")
	positionsCmd.Flags().IntVar(&positionsMax, "max", model.MaxFret, "highest fret to search")
}

var positionsCmd = &cobra.Command{
	Use:   "positions [note]",
	Short: "Lists fretboard positions for a note",
	Long:  `Lists every string and fret that sounds the given note in the chosen tuning.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 note...")
		}
		showPositions(args[0])
	},
}

func showPositions(name string) {
	n, err := note.Parse(name)
	if err != nil {
		panic("Bad note: " + err.Error())
	}
	tuning, err := fretboard.ParseTuning(positionsTuning)
	if err != nil {
		panic("Bad tuning: " + err.Error())
	}
	for _, p := range fretboard.FindPositions(n, tuning, positionsMin, positionsMax) {
		fmt.Printf("string %v (%v) fret %v\n", p.StringIndex, tuning[p.StringIndex], p.Fret)
	}
}
