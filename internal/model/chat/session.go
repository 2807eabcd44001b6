package chat

// SessionSummary describes one conversation in the admin chat list.
type SessionSummary struct {
	SessionID string `json:"session_id"`
	MsgCount  int    `json:"msg_count"`
	LastTime  string `json:"last_time,omitempty"`
}
