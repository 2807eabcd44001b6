package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huynh044/ChatBot-BookStore/internal/api"
)

func TestHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/history", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("session_id"); got != "s1" {
			t.Errorf("unexpected session_id: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"Chào!"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.New(srv.URL)
	messages, err := c.History(context.Background(), "s1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(messages) != 2 || messages[0].Content != "hi" {
		t.Fatalf("unexpected messages: %v", messages)
	}
}

func TestSend(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if payload["session_id"] != "s1" || payload["message"] != "hello" {
			t.Errorf("unexpected payload: %v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"ok","state":"catalog"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.New(srv.URL)
	result, err := c.Send(context.Background(), "s1", "hello")
	if err != nil {
		t.Fatalf("Send err: %v", err)
	}
	if result.Reply != "ok" || result.State != "catalog" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestResetOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/reset", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"session_id":"abc123"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.New(srv.URL)
	id, err := c.Reset(context.Background())
	if err != nil {
		t.Fatalf("Reset err: %v", err)
	}
	if id != "abc123" {
		t.Fatalf("unexpected session id: %s", id)
	}
}

func TestResetRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat/reset", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.New(srv.URL)
	if _, err := c.Reset(context.Background()); !errors.Is(err, api.ErrResetFailed) {
		t.Fatalf("expected ErrResetFailed, got %v", err)
	}
}

func TestNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := api.New(srv.URL)
	if _, err := c.History(context.Background(), "s1"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestListSessions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/api/chats", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "abc" {
			t.Errorf("unexpected q: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"session_id":"abc123","msg_count":4,"last_time":"2024-01-01T00:00:00Z"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.New(srv.URL)
	items, err := c.ListSessions(context.Background(), "abc")
	if err != nil {
		t.Fatalf("ListSessions err: %v", err)
	}
	if len(items) != 1 || items[0].SessionID != "abc123" || items[0].MsgCount != 4 {
		t.Fatalf("unexpected items: %v", items)
	}
}

func TestTranscript(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/api/chats/abc123", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"role":"user","content":"mua sách"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.New(srv.URL)
	messages, err := c.Transcript(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(messages) != 1 || messages[0].Content != "mua sách" {
		t.Fatalf("unexpected messages: %v", messages)
	}
}
