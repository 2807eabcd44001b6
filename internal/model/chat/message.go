package chat

// Roles as the server stores them.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry of a conversation.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}
