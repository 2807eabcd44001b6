package client

import (
	"encoding/json"
	"sync"

	"github.com/huynh044/ChatBot-BookStore/internal/storage"
)

const (
	// registryKey is the namespaced storage key holding the session list.
	registryKey = "chat_sessions"
	// registryCap bounds the list; the oldest entries beyond it are dropped.
	registryCap = 100
)

// Registry remembers the session identifiers the user has touched, most
// recent first, persisted through the injected store so the list survives
// restarts.
type Registry struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRegistry creates a registry backed by store.
func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store}
}

// Remember inserts id at the front, or promotes it there when already
// present. The list never holds duplicates and never exceeds capacity.
func (r *Registry) Remember(id string) error {
	if id == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.loadLocked()
	out := make([]string, 0, len(ids)+1)
	out = append(out, id)
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	if len(out) > registryCap {
		out = out[:registryCap]
	}

	data, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return r.store.Set(registryKey, string(data))
}

// List returns the remembered identifiers, most recent first. An empty
// list is a valid state.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

// loadLocked tolerates missing or corrupt persisted state by treating it
// as an empty list.
func (r *Registry) loadLocked() []string {
	raw, ok := r.store.Get(registryKey)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}
