package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify [notes...]",
	Short: "Names the chord spelled by the given notes",
	Long:  `Names the chord spelled by the given notes, in any order and octave.`,
	Run: func(cmd *cobra.Command, args []string) {
		identify(args)
	},
}

func identify(args []string) {
	if len(args) == 0 {
		panic("Need at least 1 note...")
	}
	notes, err := note.ParseAll(args)
	if err != nil {
		panic("Bad note: " + err.Error())
	}
	lib := library.Default()
	name, ok := lib.Identify(notes)
	if !ok {
		fmt.Println("No matching chord")
		return
	}
	fmt.Println(lib.DisplayString(name))
}
