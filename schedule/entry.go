// Package schedule persists successful dosing calculations as schedule-log
// entries. The engine itself never writes to storage; front-ends hand each
// computed plan to a Store here.
package schedule

import (
	"time"

	"github.com/google/uuid"

	"gardenpip/dosing"
)

// Entry is one logged calculation. The field set and JSON names are a
// stable on-disk shape: entries are persisted and later re-read for history
// display, so changes here break existing logs.
type Entry struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Manufacturer  string   `json:"manufacturer"`
	Series        string   `json:"series"`
	Stage         string   `json:"stage"`
	PlantCategory string   `json:"plant_category"`
	Unit          string   `json:"unit"`
	Volume        float64  `json:"volume"`
	CalMag        string   `json:"cal_mag,omitempty"`
	Lines         []string `json:"lines"`
}

// Store is the interface front-ends log through. Implementations must
// serialize their own writes; the engine may be driven from several
// sessions at once.
type Store interface {
	Append(Entry) error
	All() ([]Entry, error)
}

// NewEntry builds the log payload for one successful calculation. The
// "None" supplement sentinel is normalized to an absent CalMag field.
func NewEntry(sel dosing.Selection, result *dosing.Result, now time.Time) Entry {
	calMag := sel.CalMag
	if calMag == dosing.NoSupplement {
		calMag = ""
	}
	return Entry{
		ID:            uuid.NewString(),
		Date:          now.Format(time.RFC3339),
		Manufacturer:  sel.Manufacturer,
		Series:        sel.Series,
		Stage:         sel.Stage,
		PlantCategory: sel.PlantCategory,
		Unit:          sel.Unit,
		Volume:        sel.Volume,
		CalMag:        calMag,
		Lines:         result.Lines,
	}
}
