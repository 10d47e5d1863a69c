package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"

	"github.com/iCodeForBananas/SimpleGuitarTools/constants"
	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a midi input",
	Long:  `Listens to the first midi input port and prints the name of whatever chord is held down.`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

var (
	heldMu sync.Mutex
	held   = make(map[uint8]bool)
)

func identifyHeld() {
	heldMu.Lock()
	notes := make(model.Notes, 0, len(held))
	for key := range held {
		notes = append(notes, note.FromMidi(key))
	}
	heldMu.Unlock()

	if len(notes) == 0 {
		return
	}
	lib := library.Default()
	if name, ok := lib.Identify(notes); ok {
		fmt.Println(lib.DisplayString(name))
	}
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a midi input port")
		return
	}

	debounced := debounce.New(constants.DebounceMillis * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			heldMu.Lock()
			held[key] = true
			heldMu.Unlock()
			debounced(identifyHeld)
		case msg.GetNoteEnd(&ch, &key):
			heldMu.Lock()
			delete(held, key)
			heldMu.Unlock()
			debounced(identifyHeld)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
