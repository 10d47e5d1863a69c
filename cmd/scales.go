package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/library"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales [root]",
	Short: "Lists scales and their notes",
	Long:  `Lists every scale in the library, optionally limited to one root note.`,
	Run: func(cmd *cobra.Command, args []string) {
		listScales(args)
	},
}

func listScales(args []string) {
	prefix := rootFilter(args)
	lib := library.Default()
	for _, name := range lib.ScaleNames() {
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		fmt.Println(lib.DisplayString(name))
	}
}
