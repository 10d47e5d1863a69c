package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/tab"
)

var (
	tabsShow   int
	tabsDelete int
)

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.Flags().IntVar(&tabsShow, "show", 0, "render the saved tab with this id")
	tabsCmd.Flags().IntVar(&tabsDelete, "delete", 0, "delete the saved tab with this id")
}

var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "Lists, shows or deletes saved tabs",
	Run: func(cmd *cobra.Command, args []string) {
		d := openDB()
		switch {
		case tabsShow > 0:
			saved, err := d.GetTab(uint(tabsShow))
			if err != nil {
				panic("Could not load tab: " + err.Error())
			}
			tuning := saved.Tuning
			if len(tuning) == 0 {
				tuning = fretboard.StandardTuning()
			}
			fmt.Print(tab.Render(saved.Phrase(), tuning))
		case tabsDelete > 0:
			if err := d.DeleteTab(uint(tabsDelete)); err != nil {
				panic("Could not delete tab: " + err.Error())
			}
			fmt.Printf("Deleted tab %v\n", tabsDelete)
		default:
			tabs, err := d.ListTabs()
			if err != nil {
				panic("Could not list tabs: " + err.Error())
			}
			for _, t := range tabs {
				fmt.Printf("%v: %v (%v) saved %v\n", t.ID, t.Name, t.ChordName, t.CreatedAt.Format("2006-01-02"))
			}
		}
	},
}
