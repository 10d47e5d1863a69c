package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/constants"
	"github.com/iCodeForBananas/SimpleGuitarTools/db"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "sgt",
	Short: "Simple guitar tools",
	Long:  `Music-theory helpers for guitar: chords, scales, progressions and playable tab phrases.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// openDB opens the local tab store, creating the data dir on first use.
func openDB() *db.DB {
	if err := os.MkdirAll(constants.GetDataDir(), 0755); err != nil {
		panic("Could not create data dir: " + err.Error())
	}
	d, err := db.Open(constants.GetDBPath())
	if err != nil {
		panic("Could not open tab database: " + err.Error())
	}
	return d
}

func Execute() {
	godotenv.Load()
	cobra.CheckErr(rootCmd.Execute())
}
