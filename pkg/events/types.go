package events

import "encoding/json"

// Event name constants
const (
	NotificationShown = "notification.shown"
)

// Event is a generic SSE event from the daemon.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // Raw JSON payload
}

// NotificationShownEvent is the typed payload for notification.shown.
type NotificationShownEvent struct {
	Level    string  `json:"level"`
	Message  string  `json:"message"`
	Icon     string  `json:"icon"`
	Capacity float64 `json:"capacity"`
	Status   string  `json:"status"`
	Ts       int64   `json:"ts"`
}

// DecodeAs decodes the event payload into the caller-specified type T. It
// ignores the event name and simply unmarshals Data into T. If Data is
// empty, it returns the zero value of T with a nil error.
func DecodeAs[T any](ev Event) (T, error) {
	var out T
	if len(ev.Data) == 0 {
		return out, nil
	}
	err := json.Unmarshal(ev.Data, &out)
	return out, err
}
