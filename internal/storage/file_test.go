package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "sessions.json")

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile err: %v", err)
	}

	if _, ok := store.Get("chat_sessions"); ok {
		t.Fatal("fresh store should be empty")
	}

	if err := store.Set("chat_sessions", `["a","b"]`); err != nil {
		t.Fatalf("Set err: %v", err)
	}

	reopened, err := NewFile(path)
	if err != nil {
		t.Fatalf("reopen err: %v", err)
	}
	value, ok := reopened.Get("chat_sessions")
	if !ok || value != `["a","b"]` {
		t.Fatalf("value did not survive reopen: %q %v", value, ok)
	}
}

func TestFileCorruptTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile on corrupt file err: %v", err)
	}
	if _, ok := store.Get("anything"); ok {
		t.Fatal("corrupt store should read as empty")
	}

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set after corruption err: %v", err)
	}
	if value, ok := store.Get("k"); !ok || value != "v" {
		t.Fatalf("unexpected value: %q %v", value, ok)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get("k"); ok {
		t.Fatal("fresh memory store should be empty")
	}
	if err := m.Set("k", "v1"); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	if err := m.Set("k", "v2"); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	if value, _ := m.Get("k"); value != "v2" {
		t.Fatalf("expected latest value, got %q", value)
	}
}
