package model

// Wire models for the JSON API the web UI consumes.

// LibraryEntry is one chord or scale as it appears in a selection control.
type LibraryEntry struct {
	Name    string `json:"name"`
	Notes   Notes  `json:"notes"`
	Display string `json:"display"`
}

type LibraryResponse struct {
	Chords  []LibraryEntry `json:"chords"`
	Scales  []LibraryEntry `json:"scales"`
	Styles  []string       `json:"styles"`
	Tunings []string       `json:"tunings"`
}

type ProgressionRequest struct {
	Key   string `json:"key"`
	Style string `json:"style"`
	// Position is the base fret hint; omitted means pick one at random.
	Position *int `json:"position,omitempty"`
}

type ProgressionResponse struct {
	Key     string                  `json:"key"`
	Style   string                  `json:"style"`
	Entries []ChordProgressionEntry `json:"entries"`
}

// PhraseOptionsBody carries the optional generator knobs shared by the
// phrase endpoints. Zero values mean "use the default".
type PhraseOptionsBody struct {
	Length              int    `json:"length,omitempty"`
	Position            int    `json:"position,omitempty"`
	Range               int    `json:"range,omitempty"`
	Pattern             string `json:"pattern,omitempty"`
	EmphasizeChordTones *bool  `json:"emphasize_chord_tones,omitempty"`
	Seed                *int64 `json:"seed,omitempty"`
}

type PhraseRequest struct {
	Chord string `json:"chord"`
	Scale string `json:"scale"`
	// Tuning is six note names, highest-pitched string first; empty means
	// standard tuning.
	Tuning []string `json:"tuning,omitempty"`
	PhraseOptionsBody
}

type ConnectRequest struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Scale  string   `json:"scale"`
	Tuning []string `json:"tuning,omitempty"`
	Seed   *int64   `json:"seed,omitempty"`
}

type PhrasesRequest struct {
	Entries []ChordProgressionEntry `json:"entries"`
	Scale   string                  `json:"scale"`
	Tuning  []string                `json:"tuning,omitempty"`
	PhraseOptionsBody
}

type PhraseResponse struct {
	Phrase TabPhrase `json:"phrase"`
	Tab    string    `json:"tab"`
}

type PhrasesResponse struct {
	Phrases []TabPhrase `json:"phrases"`
	Tab     string      `json:"tab"`
}

type IdentifyRequest struct {
	Notes []string `json:"notes"`
}

type IdentifyResponse struct {
	Name  string `json:"name,omitempty"`
	Found bool   `json:"found"`
}

type SaveTabRequest struct {
	Name   string    `json:"name"`
	Phrase TabPhrase `json:"phrase"`
	Tuning []string  `json:"tuning,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
