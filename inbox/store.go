// Package inbox owns the persisted in-app notification inbox, distinct
// from the transient toast mechanism.
package inbox

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	log *zap.Logger

	// Accounts whose inbox has been loaded at least once this process.
	// The welcome entry is seeded only on the very first load with no
	// stored inbox; after an explicit ClearAll the inbox stays empty.
	seeded map[string]bool
}

func NewStore(kv storage.KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log, seeded: make(map[string]bool)}
}

// List returns the account's inbox, newest first. The first load for an
// account with no stored inbox synthesizes one unread welcome entry.
func (s *Store) List(accountID string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(accountID)
}

// Append assigns a generated id and current timestamp and prepends the
// entry.
func (s *Store) Append(accountID string, n models.Notification) models.Notification {
	if accountID == "" {
		return n
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = "notification-" + uuid.NewString()
	n.Timestamp = time.Now().UnixMilli()
	n.Time = "Just now"
	n.IsRead = false

	entries := s.load(accountID)
	s.save(accountID, append([]models.Notification{n}, entries...))
	return n
}

// MarkRead flips one entry's read flag. Ordering is untouched.
func (s *Store) MarkRead(accountID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(accountID)
	for i := range entries {
		if entries[i].ID == id {
			entries[i].IsRead = true
		}
	}
	s.save(accountID, entries)
}

// MarkAllRead flips every entry's read flag.
func (s *Store) MarkAllRead(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(accountID)
	for i := range entries {
		entries[i].IsRead = true
	}
	s.save(accountID, entries)
}

// ClearAll empties the inbox and removes the storage entry outright.
func (s *Store) ClearAll(accountID string) {
	if accountID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seeded[accountID] = true
	if err := s.kv.Delete(storage.InboxKey(accountID)); err != nil {
		s.log.Warn("clear inbox", zap.Error(err))
	}
}

// UnreadCount counts entries whose read flag is still false.
func (s *Store) UnreadCount(accountID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.load(accountID) {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *Store) load(accountID string) []models.Notification {
	if accountID == "" {
		return nil
	}
	var entries []models.Notification
	ok, err := storage.GetJSON(s.kv, storage.InboxKey(accountID), &entries)
	if err != nil {
		s.log.Warn("read inbox, resetting", zap.Error(err))
		return nil
	}
	if !ok && !s.seeded[accountID] {
		entries = []models.Notification{s.welcome()}
		s.save(accountID, entries)
	}
	s.seeded[accountID] = true
	return entries
}

func (s *Store) save(accountID string, entries []models.Notification) {
	if err := storage.SetJSON(s.kv, storage.InboxKey(accountID), entries); err != nil {
		s.log.Error("save inbox", zap.Error(err))
	}
}

func (s *Store) welcome() models.Notification {
	return models.Notification{
		ID:        "welcome-" + uuid.NewString(),
		Kind:      models.NotificationSystem,
		Title:     "Welcome to Campus Eats! 🎉",
		Message:   "Start ordering from your favourite campus cafés. Explore the menu and enjoy fast delivery!",
		Time:      "Just now",
		Timestamp: time.Now().UnixMilli(),
		IsRead:    false,
	}
}
