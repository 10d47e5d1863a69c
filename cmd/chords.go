package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [root]",
	Short: "Lists chords and their notes",
	Long:  `Lists every chord in the library, optionally limited to one root note.`,
	Run: func(cmd *cobra.Command, args []string) {
		listChords(args)
	},
}

func rootFilter(args []string) string {
	if len(args) == 0 {
		return ""
	}
	n, err := note.Parse(args[0])
	if err != nil {
		panic("Bad root note: " + err.Error())
	}
	return n.String() + " "
}

func listChords(args []string) {
	prefix := rootFilter(args)
	lib := library.Default()
	for _, name := range lib.ChordNames() {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		fmt.Println(lib.DisplayString(name))
	}
}
