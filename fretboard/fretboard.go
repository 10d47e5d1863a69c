package fretboard

import (
	"fmt"
	"strings"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
	"github.com/iCodeForBananas/SimpleGuitarTools/note"
)

type InvalidTuningError struct {
	Value string
	Err   error
}

func (e *InvalidTuningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid tuning %v: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid tuning %v", e.Value)
}

func (e *InvalidTuningError) Unwrap() error { return e.Err }

// Named tunings, notes ordered highest-pitched string first.
var namedTunings = []struct {
	Name  string
	Notes []string
}{
	{"Standard", []string{"E", "B", "G", "D", "A", "E"}},
	{"Drop D", []string{"E", "B", "G", "D", "A", "D"}},
	{"Half-Step Down", []string{"D#", "A#", "F#", "C#", "G#", "D#"}},
	{"DADGAD", []string{"D", "A", "G", "D", "A", "D"}},
	{"Open G", []string{"D", "B", "G", "D", "G", "D"}},
	{"Open D", []string{"D", "A", "F#", "D", "A", "D"}},
}

var tuningsByName = map[string]model.Tuning{}

func init() {
	for _, nt := range namedTunings {
		tuning, err := TuningFromNames(nt.Notes)
		if err != nil {
			panic("Could not build named tuning: " + err.Error())
		}
		tuningsByName[nt.Name] = tuning
	}
}

// StandardTuning returns a copy of EADGBE, highest string first.
func StandardTuning() model.Tuning {
	return append(model.Tuning{}, tuningsByName["Standard"]...)
}

// TuningNames lists the named tunings in display order.
func TuningNames() []string {
	names := make([]string, 0, len(namedTunings))
	for _, nt := range namedTunings {
		names = append(names, nt.Name)
	}
	return names
}

// NamedTuning looks a tuning up by name, ignoring case.
func NamedTuning(name string) (model.Tuning, bool) {
	for _, nt := range namedTunings {
		if strings.EqualFold(nt.Name, name) {
			return append(model.Tuning{}, tuningsByName[nt.Name]...), true
		}
	}
	return nil, false
}

// TuningFromNames builds a tuning from six note names, highest string
// first. Empty input means standard.
func TuningFromNames(names []string) (model.Tuning, error) {
	if len(names) == 0 {
		return StandardTuning(), nil
	}
	if len(names) != model.NumStrings {
		return nil, &InvalidTuningError{
			Value: strings.Join(names, ","),
			Err:   fmt.Errorf("want %v strings, got %v", model.NumStrings, len(names)),
		}
	}
	notes, err := note.ParseAll(names)
	if err != nil {
		return nil, &InvalidTuningError{Value: strings.Join(names, ","), Err: err}
	}
	return model.Tuning(notes), nil
}

// ParseTuning accepts a named tuning ("Drop D") or six comma-separated
// note names ordered highest string first. Empty input means standard.
func ParseTuning(s string) (model.Tuning, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return StandardTuning(), nil
	}
	if tuning, ok := NamedTuning(trimmed); ok {
		return tuning, nil
	}
	parts := strings.Split(trimmed, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	tuning, err := TuningFromNames(parts)
	if err != nil {
		return nil, err
	}
	return tuning, nil
}
