package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/constants"
	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/midi"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

var (
	exportOut string
	exportBpm int
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "midi file to write, defaults to a fresh file in the data dir")
	exportCmd.Flags().IntVar(&exportBpm, "bpm", midi.DefaultBPM, "tempo of the exported file")
}

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Writes a saved tab to a midi file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			panic("Need the id of a saved tab...")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			panic("Bad tab id: " + args[0])
		}

		d := openDB()
		saved, err := d.GetTab(uint(id))
		if err != nil {
			panic("Could not load tab: " + err.Error())
		}

		tuning := saved.Tuning
		if len(tuning) == 0 {
			tuning = fretboard.StandardTuning()
		}
		out := exportOut
		if out == "" {
			out = filepath.Join(constants.GetDataDir(), uuid.NewString()+".mid")
		}
		if err := midi.WriteMidiFile(out, []model.TabPhrase{saved.Phrase()}, tuning, float64(exportBpm)); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", out)
	},
}
