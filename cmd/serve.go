package cmd

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/iCodeForBananas/SimpleGuitarTools/constants"
	"github.com/iCodeForBananas/SimpleGuitarTools/db"
)

var serveDB *db.DB

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generators over HTTP",
	Long:  `Serves the chord and scale library, the progression and phrase generators and the saved tab store as a JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// InitServe opens the saved tab store the handlers use. It is split out of
// serve so tests can point the handlers at a throwaway database.
func InitServe(dbPath string) error {
	d, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	serveDB = d
	return nil
}

// NewRouter mounts every API route.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/library", HandleLibrary).Methods("GET")
	router.HandleFunc("/api/tunings", HandleTunings).Methods("GET")
	router.HandleFunc("/api/progression", HandleProgression).Methods("POST")
	router.HandleFunc("/api/phrase", HandlePhrase).Methods("POST")
	router.HandleFunc("/api/phrase/connect", HandleConnect).Methods("POST")
	router.HandleFunc("/api/phrases", HandlePhrases).Methods("POST")
	router.HandleFunc("/api/identify", HandleIdentify).Methods("POST")
	router.HandleFunc("/api/tabs", HandleListTabs).Methods("GET")
	router.HandleFunc("/api/tabs", HandleSaveTab).Methods("POST")
	router.HandleFunc("/api/tabs/{id}", HandleGetTab).Methods("GET")
	router.HandleFunc("/api/tabs/{id}", HandleDeleteTab).Methods("DELETE")
	return router
}

func serve() {
	if err := os.MkdirAll(constants.GetDataDir(), 0755); err != nil {
		panic("Could not create data dir: " + err.Error())
	}
	if err := InitServe(constants.GetDBPath()); err != nil {
		panic("Could not open tab database: " + err.Error())
	}

	handler := cors.AllowAll().Handler(NewRouter())
	slog.Info("listening", "port", constants.GetPort())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
