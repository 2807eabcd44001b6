package chat

import "encoding/json"

// Push event types delivered over the live connection.
const (
	EventOrderApproved  = "order_approved"
	EventOrderCancelled = "order_cancelled"
	EventNewOrder       = "new_order"
)

// Event is a server-originated notification pushed outside the
// request/response flow.
type Event struct {
	Type    string `json:"type"`
	OrderID int64  `json:"order_id"`
}

// DecodeEvent parses a raw frame into an Event. A malformed or untyped
// frame reports ok=false; the caller drops it and keeps the connection.
func DecodeEvent(data []byte) (Event, bool) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, false
	}
	if ev.Type == "" {
		return Event{}, false
	}
	return ev, true
}
