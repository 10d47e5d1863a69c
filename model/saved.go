package model

import "time"

// SavedTab is a phrase a user chose to keep, persisted in the local sqlite
// file. Notes and tuning are stored as JSON columns; everything needed to
// re-render or re-export the tab later is self-contained.
type SavedTab struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index" json:"name"`
	ChordName string    `json:"chord_name"`
	Pattern   string    `json:"pattern"`
	Tuning    Tuning    `gorm:"serializer:json" json:"tuning"`
	Notes     []TabNote `gorm:"serializer:json" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// Phrase reassembles the stored columns into a TabPhrase.
func (t *SavedTab) Phrase() TabPhrase {
	pattern, _ := ParsePattern(t.Pattern)
	return TabPhrase{ChordName: t.ChordName, Notes: t.Notes, Pattern: pattern}
}
