package history

import (
	"time"

	"holdem-stepper-server/pkg/poker/texasholdem"
)

// Record is a finished hand as it is kept for later review
type Record struct {
	texasholdem.HandHistory
	CreatedAt time.Time `json:"createdAt"`
}

// NewRecord wraps the history of a finished hand
func NewRecord(h *texasholdem.HandHistory) *Record {
	return &Record{
		HandHistory: *h,
		CreatedAt:   time.Now().UTC(),
	}
}
