// README: Trip request and tagged generation result.
package planner

// WarningMarker prefixes every user-facing failure message.
const WarningMarker = "⚠️"

// TripRequest carries the form inputs. Values are passed to the prompt as-is.
type TripRequest struct {
	City        string
	Days        int
	Budget      int
	Preferences string
}

type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Result is either a generated itinerary (StatusOK, Text) or a failure
// (StatusFailed, Reason). Callers branch on OK, not on the text.
type Result struct {
	Status Status
	Text   string
	Reason string
	Model  string
}

func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Message is the text to show the user: the itinerary on success, otherwise a
// warning-marked error line.
func (r Result) Message() string {
	if r.OK() {
		return r.Text
	}
	return WarningMarker + " Error generating itinerary: " + r.Reason
}

func succeeded(text, model string) Result {
	return Result{Status: StatusOK, Text: text, Model: model}
}

func failed(reason, model string) Result {
	return Result{Status: StatusFailed, Reason: reason, Model: model}
}
