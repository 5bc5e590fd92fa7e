// README: Itinerary history records, storage errors and the display window.
package history

import "errors"

var (
	// ErrStorage wraps every I/O or decode failure of a history backend.
	ErrStorage       = errors.New("history storage error")
	ErrInvalidUser   = errors.New("invalid user name")
	ErrInvalidRecord = errors.New("invalid itinerary record")
	ErrNotFound      = errors.New("itinerary not found")
)

// DefaultRecent is the number of records shown in the "past trips" view.
const DefaultRecent = 3

// Record is one stored generation result. The JSON keys are the on-disk format.
type Record struct {
	City        string `json:"city" validate:"required"`
	Days        int    `json:"days" validate:"min=1,max=30"`
	Budget      int    `json:"budget" validate:"min=1"`
	Preferences string `json:"preferences"`
	Itinerary   string `json:"itinerary" validate:"required"`
}

// Entry is a record together with its 1-based position in the history.
type Entry struct {
	Index int `json:"index"`
	Record
}

// Latest returns at most n records from h, newest first. h is not modified.
func Latest(h []Record, n int) []Record {
	if n <= 0 {
		n = DefaultRecent
	}
	if n > len(h) {
		n = len(h)
	}
	out := make([]Record, 0, n)
	for i := len(h) - 1; i >= len(h)-n; i-- {
		out = append(out, h[i])
	}
	return out
}
