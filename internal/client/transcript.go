package client

import (
	"sync"

	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

// Transcript is the client-side view of one conversation: an append-only,
// arrival-ordered list of entries. Renderers subscribe via callbacks.
type Transcript struct {
	mu        sync.Mutex
	entries   []chat.Message
	onAppend  func(chat.Message)
	onReplace func([]chat.Message)
}

// NewTranscript creates an empty transcript view.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// OnAppend registers the renderer for single appended entries.
func (t *Transcript) OnAppend(fn func(chat.Message)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAppend = fn
}

// OnReplace registers the renderer for full repaints.
func (t *Transcript) OnReplace(fn func([]chat.Message)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onReplace = fn
}

// Append adds one entry at the end, in arrival order.
func (t *Transcript) Append(m chat.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, m)
	if t.onAppend != nil {
		t.onAppend(m)
	}
}

// Replace discards the current view and installs entries as returned by
// the server. Replace(nil) clears the transcript.
func (t *Transcript) Replace(entries []chat.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append([]chat.Message(nil), entries...)
	if t.onReplace != nil {
		t.onReplace(append([]chat.Message(nil), t.entries...))
	}
}

// Entries returns a copy of the current view.
func (t *Transcript) Entries() []chat.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]chat.Message(nil), t.entries...)
}
