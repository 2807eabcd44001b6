// Package chat holds the in-memory conversation store behind the
// development stub server. It mirrors the shapes of the production
// backend closely enough to exercise the client engine end to end.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

var ErrOrderNotFound = errors.New("order not found")

const (
	StateCatalog            = "catalog"
	StateAwaitAdminDecision = "await_admin_decision"
)

// Service encapsulates session, transcript and pending-order state.
type Service struct {
	mu        sync.RWMutex
	created   map[string]time.Time
	messages  map[string][]chat.Message
	orders    map[int64]string
	nextOrder int64
}

// NewService bootstraps the in-memory store.
func NewService() *Service {
	return &Service{
		created:  make(map[string]time.Time),
		messages: make(map[string][]chat.Message),
		orders:   make(map[int64]string),
	}
}

// CreateSession provisions a fresh anonymous session and returns its id.
func (s *Service) CreateSession(_ context.Context) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.created[id] = time.Now().UTC()
	s.messages[id] = make([]chat.Message, 0, 16)
	s.mu.Unlock()

	return id
}

// Append records one transcript entry, creating the session on first use.
func (s *Service) Append(_ context.Context, sessionID, role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.created[sessionID]; !ok {
		s.created[sessionID] = time.Now().UTC()
	}
	s.messages[sessionID] = append(s.messages[sessionID], chat.Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// Transcript returns the stored messages for a session in insertion
// order. An unknown session yields an empty transcript, not an error.
func (s *Service) Transcript(_ context.Context, sessionID string) []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := s.messages[sessionID]
	copied := make([]chat.Message, len(messages))
	copy(copied, messages)
	return copied
}

// ListSessions summarizes known sessions, most recently active first,
// optionally filtered by a substring of the session id.
func (s *Service) ListSessions(_ context.Context, q string) []chat.SessionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]chat.SessionSummary, 0, len(s.created))
	for id := range s.created {
		if q != "" && !strings.Contains(id, q) {
			continue
		}
		msgs := s.messages[id]
		summary := chat.SessionSummary{SessionID: id, MsgCount: len(msgs)}
		if len(msgs) > 0 {
			summary.LastTime = msgs[len(msgs)-1].CreatedAt
		} else {
			summary.LastTime = s.created[id].Format(time.RFC3339)
		}
		items = append(items, summary)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].LastTime > items[j].LastTime
	})
	return items
}

// Reply produces the stub assistant turn for one user message. A message
// starting with "mua" opens a pending order owned by the session; the
// returned order id is non-zero only in that case.
func (s *Service) Reply(_ context.Context, sessionID, text string) (reply, state string, orderID int64) {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(text)), "mua") {
		s.mu.Lock()
		s.nextOrder++
		orderID = s.nextOrder
		s.orders[orderID] = sessionID
		s.mu.Unlock()

		reply = fmt.Sprintf("Đã tạo đơn #%d (chờ duyệt). Mình sẽ báo ngay khi Admin duyệt/hủy.", orderID)
		return reply, StateAwaitAdminDecision, orderID
	}

	return "Mình đã nhận được: " + text, StateCatalog, 0
}

// OrderSession resolves the session that owns an order.
func (s *Service) OrderSession(_ context.Context, orderID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessionID, ok := s.orders[orderID]
	if !ok {
		return "", ErrOrderNotFound
	}
	return sessionID, nil
}
