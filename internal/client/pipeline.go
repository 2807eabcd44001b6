package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/huynh044/ChatBot-BookStore/internal/api"
	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

// Mode badge values derived from the send response state.
const (
	ModeOrdering = "Ordering"
	ModeCatalog  = "Catalog"
)

// Localized texts shown in place of server content.
const (
	sendFallback   = "Xin lỗi, có lỗi mạng. Thử lại sau nhé."
	emptyReply     = "[no reply]"
	orderApproved  = "Đơn #%d đã được duyệt."
	orderCancelled = "Đơn #%d đã bị hủy."
)

// Pipeline sends user messages and merges replies and pushed order events
// into the transcript view.
type Pipeline struct {
	api    *api.Client
	view   *Transcript
	onMode func(string)
}

// NewPipeline creates a pipeline writing into view. onMode observes the
// informational mode badge and may be nil.
func NewPipeline(apiClient *api.Client, view *Transcript, onMode func(string)) *Pipeline {
	return &Pipeline{api: apiClient, view: view, onMode: onMode}
}

// Send posts one user message for sessionID. Whitespace-only input is a
// no-op: no network call, no entry. Otherwise the user entry is appended
// immediately and the reply (or the localized fallback on a network
// failure) follows it; the optimistic entry is never retracted.
func (p *Pipeline) Send(ctx context.Context, sessionID, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	p.view.Append(chat.Message{Role: chat.RoleUser, Content: text})

	result, err := p.api.Send(ctx, sessionID, text)
	if err != nil {
		log.Printf("[chat] send session=%s failed: %v", sessionID, err)
		p.view.Append(chat.Message{Role: chat.RoleAssistant, Content: sendFallback})
		return
	}

	reply := result.Reply
	if reply == "" {
		reply = emptyReply
	}
	p.view.Append(chat.Message{Role: chat.RoleAssistant, Content: reply})

	if p.onMode != nil {
		p.onMode(modeFor(result.State))
	}
}

// HandleEvent merges one pushed event into the transcript. Unrecognized
// types are ignored; connection state is never touched here.
func (p *Pipeline) HandleEvent(ev chat.Event) {
	switch ev.Type {
	case chat.EventOrderApproved:
		p.view.Append(chat.Message{Role: chat.RoleAssistant, Content: fmt.Sprintf(orderApproved, ev.OrderID)})
	case chat.EventOrderCancelled:
		p.view.Append(chat.Message{Role: chat.RoleAssistant, Content: fmt.Sprintf(orderCancelled, ev.OrderID)})
	}
}

func modeFor(state string) string {
	if state == "order_collect" || state == "await_confirm" {
		return ModeOrdering
	}
	return ModeCatalog
}
