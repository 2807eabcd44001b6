package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huynh044/ChatBot-BookStore/internal/api"
	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

func TestLoadReplacesTranscript(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/history", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("session_id"); got != "s1" {
			t.Errorf("unexpected session_id: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"messages": []chat.Message{
				{Role: chat.RoleUser, Content: "xin chào"},
				{Role: chat.RoleAssistant, Content: "Chào bạn!"},
			},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	view := NewTranscript()
	view.Append(chat.Message{Role: chat.RoleAssistant, Content: "leftover from another session"})

	l := NewHistoryLoader(api.New(srv.URL), view)
	l.Load(context.Background(), "s1")

	entries := view.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected full repaint with 2 entries, got %d", len(entries))
	}
	if entries[0].Content != "xin chào" || entries[1].Content != "Chào bạn!" {
		t.Fatalf("server order not preserved: %v", entries)
	}
}

func TestLoadFailureAppendsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	view := NewTranscript()
	view.Append(chat.Message{Role: chat.RoleUser, Content: "still here"})

	l := NewHistoryLoader(api.New(srv.URL), view)
	l.Load(context.Background(), "gone")

	entries := view.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected prior entry plus fallback, got %d", len(entries))
	}
	if entries[1].Role != chat.RoleAssistant || entries[1].Content != historyFallback {
		t.Fatalf("expected localized fallback entry, got %+v", entries[1])
	}
}

func TestLoadEmptyTranscript(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/history", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"messages": []chat.Message{}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	view := NewTranscript()
	view.Append(chat.Message{Role: chat.RoleUser, Content: "old"})

	l := NewHistoryLoader(api.New(srv.URL), view)
	l.Load(context.Background(), "fresh")

	if got := view.Entries(); len(got) != 0 {
		t.Fatalf("empty history should clear the view, got %v", got)
	}
}
