package client

import (
	"context"
	"log"

	"github.com/huynh044/ChatBot-BookStore/internal/api"
	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

// historyFallback is shown when the transcript cannot be fetched.
const historyFallback = "Không tải được lịch sử chat."

// HistoryLoader repaints the transcript view from the server's stored
// history, independent of live-connection state.
type HistoryLoader struct {
	api  *api.Client
	view *Transcript
}

// NewHistoryLoader creates a loader writing into view.
func NewHistoryLoader(apiClient *api.Client, view *Transcript) *HistoryLoader {
	return &HistoryLoader{api: apiClient, view: view}
}

// Load fetches the ordered transcript for sessionID and replaces the view
// with it. A failed fetch appends a single localized error entry instead;
// it never propagates and never touches the connection.
func (l *HistoryLoader) Load(ctx context.Context, sessionID string) {
	messages, err := l.api.History(ctx, sessionID)
	if err != nil {
		log.Printf("[history] load session=%s failed: %v", sessionID, err)
		l.view.Append(chat.Message{Role: chat.RoleAssistant, Content: historyFallback})
		return
	}
	l.view.Replace(messages)
}
