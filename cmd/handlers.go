package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/iCodeForBananas/SimpleGuitarTools/fretboard"
	"github.com/iCodeForBananas/SimpleGuitarTools/library"
	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
	"github.com/iCodeForBananas/SimpleGuitarTools/phrase"
	"github.com/iCodeForBananas/SimpleGuitarTools/progression"
	"github.com/iCodeForBananas/SimpleGuitarTools/tab"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// phraseOptions applies the optional request knobs on top of the defaults.
func phraseOptions(body model.PhraseOptionsBody) (phrase.Options, error) {
	opts := phrase.DefaultOptions()
	if body.Length > 0 {
		opts.Length = body.Length
	}
	if body.Position > 0 {
		opts.Anchor = body.Position
	}
	if body.Range > 0 {
		opts.Window = body.Range
	}
	if body.Pattern != "" {
		pattern, ok := model.ParsePattern(body.Pattern)
		if !ok {
			return opts, fmt.Errorf("unknown pattern: %v", body.Pattern)
		}
		opts.Pattern = pattern
	}
	if body.EmphasizeChordTones != nil {
		opts.EmphasizeChordTones = *body.EmphasizeChordTones
	}
	if body.Seed != nil {
		opts.Rand = rand.New(rand.NewSource(*body.Seed))
	}
	return opts, nil
}

func libraryEntries(lib *library.Library, names []string, notesOf func(string) model.Notes) []model.LibraryEntry {
	entries := make([]model.LibraryEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, model.LibraryEntry{
			Name:    name,
			Notes:   notesOf(name),
			Display: lib.DisplayString(name),
		})
	}
	return entries
}

func HandleLibrary(w http.ResponseWriter, r *http.Request) {
	lib := library.Default()
	res := model.LibraryResponse{
		Chords:  libraryEntries(lib, lib.ChordNames(), lib.ChordNotes),
		Scales:  libraryEntries(lib, lib.ScaleNames(), lib.ScaleNotes),
		Styles:  progression.Labels(),
		Tunings: fretboard.TuningNames(),
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleTunings(w http.ResponseWriter, r *http.Request) {
	names := fretboard.TuningNames()
	entries := make([]model.LibraryEntry, 0, len(names))
	for _, name := range names {
		tuning, _ := fretboard.NamedTuning(name)
		parts := make([]string, 0, len(tuning))
		for _, n := range tuning {
			parts = append(parts, n.String())
		}
		entries = append(entries, model.LibraryEntry{
			Name:    name,
			Notes:   model.Notes(tuning),
			Display: fmt.Sprintf("%v [%v]", name, strings.Join(parts, " ")),
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func HandleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	key, err := note.Parse(input.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	formula, ok := progression.FormulaByLabel(input.Style)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown style: "+input.Style)
		return
	}
	baseFret := -1
	if input.Position != nil {
		if *input.Position < 0 || *input.Position > model.MaxFret {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("position must be between 0 and %v", model.MaxFret))
			return
		}
		baseFret = *input.Position
	}

	entries, err := progression.Generate(key, formula, baseFret, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.ProgressionResponse{
		Key:     key.String(),
		Style:   formula.Label,
		Entries: entries,
	})
}

// scaleNotesFor resolves an optional scale name. Empty means "no scale".
func scaleNotesFor(lib *library.Library, name string) (model.Notes, error) {
	if name == "" {
		return nil, nil
	}
	def, ok := lib.Scale(name)
	if !ok {
		return nil, fmt.Errorf("unknown scale: %v", name)
	}
	return def.Notes, nil
}

func HandlePhrase(w http.ResponseWriter, r *http.Request) {
	var input model.PhraseRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	tuning, err := fretboard.TuningFromNames(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lib := library.Default()
	chordNotes := lib.ChordNotes(input.Chord)
	if chordNotes == nil {
		writeError(w, http.StatusBadRequest, "unknown chord: "+input.Chord)
		return
	}
	scaleNotes, err := scaleNotesFor(lib, input.Scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := phraseOptions(input.PhraseOptionsBody)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := phrase.GeneratePhrase(input.Chord, chordNotes, scaleNotes, tuning, opts)
	writeJSON(w, http.StatusOK, model.PhraseResponse{Phrase: p, Tab: tab.Render(p, tuning)})
}

func HandleConnect(w http.ResponseWriter, r *http.Request) {
	var input model.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if input.From == "" || input.To == "" {
		writeError(w, http.StatusBadRequest, "need both a from and a to chord")
		return
	}

	tuning, err := fretboard.TuningFromNames(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lib := library.Default()
	fromNotes := lib.ChordNotes(input.From)
	if fromNotes == nil {
		writeError(w, http.StatusBadRequest, "unknown chord: "+input.From)
		return
	}
	toNotes := lib.ChordNotes(input.To)
	if toNotes == nil {
		writeError(w, http.StatusBadRequest, "unknown chord: "+input.To)
		return
	}
	scaleNotes, err := scaleNotesFor(lib, input.Scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := phrase.DefaultOptions()
	if input.Seed != nil {
		opts.Rand = rand.New(rand.NewSource(*input.Seed))
	}

	p := phrase.GenerateConnectingPhrase(fromNotes, toNotes, scaleNotes, tuning, opts)
	p.ChordName = input.From + " > " + input.To
	writeJSON(w, http.StatusOK, model.PhraseResponse{Phrase: p, Tab: tab.Render(p, tuning)})
}

func HandlePhrases(w http.ResponseWriter, r *http.Request) {
	var input model.PhrasesRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if len(input.Entries) == 0 {
		writeError(w, http.StatusBadRequest, "need at least 1 progression entry")
		return
	}

	tuning, err := fretboard.TuningFromNames(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lib := library.Default()
	scaleNotes, err := scaleNotesFor(lib, input.Scale)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := phraseOptions(input.PhraseOptionsBody)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	phrases := phrase.GenerateProgressionPhrases(input.Entries, lib, scaleNotes, tuning, opts)
	writeJSON(w, http.StatusOK, model.PhrasesResponse{Phrases: phrases, Tab: tab.RenderAll(phrases, tuning)})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, http.StatusBadRequest, "need at least 1 note")
		return
	}

	notes, err := note.ParseAll(input.Notes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	name, found := library.Default().Identify(notes)
	writeJSON(w, http.StatusOK, model.IdentifyResponse{Name: name, Found: found})
}

func HandleListTabs(w http.ResponseWriter, r *http.Request) {
	tabs, err := serveDB.ListTabs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tabs)
}

func HandleSaveTab(w http.ResponseWriter, r *http.Request) {
	var input model.SaveTabRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	tuning, err := fretboard.TuningFromNames(input.Tuning)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, n := range input.Phrase.Notes {
		if n.StringIndex < 0 || n.StringIndex >= model.NumStrings || n.Fret < 0 || n.Fret > model.MaxFret {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("tab note out of range: string %v fret %v", n.StringIndex, n.Fret))
			return
		}
	}
	name := input.Name
	if name == "" {
		name = input.Phrase.ChordName
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "need a name for the tab")
		return
	}

	record := &model.SavedTab{
		Name:      name,
		ChordName: input.Phrase.ChordName,
		Pattern:   input.Phrase.Pattern.String(),
		Tuning:    tuning,
		Notes:     input.Phrase.Notes,
	}
	if err := serveDB.SaveTab(record); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

func tabID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad tab id: %v", raw)
	}
	return uint(id), nil
}

func HandleGetTab(w http.ResponseWriter, r *http.Request) {
	id, err := tabID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := serveDB.GetTab(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func HandleDeleteTab(w http.ResponseWriter, r *http.Request) {
	id, err := tabID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := serveDB.DeleteTab(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
