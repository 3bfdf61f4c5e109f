// Package cart owns the per-account cart: an ordered list of line items
// keyed by (item id, note).
package cart

import (
	"sync"

	"go.uber.org/zap"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

// Store is the cart store. One shared instance serves every caller; an
// empty accountID always reads as an empty cart and drops writes.
type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	log *zap.Logger
}

func NewStore(kv storage.KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Items returns the account's cart lines in insertion order.
func (s *Store) Items(accountID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(accountID)
}

// Add merges into an existing line when (id, note) matches, otherwise
// appends a new line. There is no upper bound on quantity and no stock
// check — the data model has no stock.
func (s *Store) Add(accountID string, item models.CartItem, quantity int) {
	if accountID == "" || quantity < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(accountID)
	for i := range items {
		if items[i].ID == item.ID && items[i].Note == item.Note {
			items[i].Quantity += quantity
			s.save(accountID, items)
			return
		}
	}
	item.Quantity = quantity
	s.save(accountID, append(items, item))
}

// UpdateQuantity overwrites a line's quantity; zero or below removes the
// line entirely.
func (s *Store) UpdateQuantity(accountID, id, note string, quantity int) {
	if quantity <= 0 {
		s.Remove(accountID, id, note)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(accountID)
	for i := range items {
		if items[i].ID == id && items[i].Note == note {
			items[i].Quantity = quantity
		}
	}
	s.save(accountID, items)
}

// Remove filters the matching line out.
func (s *Store) Remove(accountID, id, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(accountID)
	kept := items[:0]
	for _, it := range items {
		if it.ID == id && it.Note == note {
			continue
		}
		kept = append(kept, it)
	}
	s.save(accountID, kept)
}

// Clear empties the account's cart and removes its storage entry.
func (s *Store) Clear(accountID string) {
	if accountID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(storage.CartKey(accountID)); err != nil {
		s.log.Warn("clear cart", zap.Error(err))
	}
}

// ClearVenue drops only the lines for one venue, leaving other venues'
// lines intact. Used after checkout so only the just-ordered venue's
// cart disappears.
func (s *Store) ClearVenue(accountID, venue string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(accountID)
	kept := items[:0]
	for _, it := range items {
		if it.Venue != venue {
			kept = append(kept, it)
		}
	}
	s.save(accountID, kept)
}

// Count is the sum of quantities across all lines.
func (s *Store) Count(accountID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.load(accountID) {
		total += it.Quantity
	}
	return total
}

// Total is the sum of price×quantity across all lines.
func (s *Store) Total(accountID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.load(accountID) {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// VenueItems returns only the lines for one venue.
func (s *Store) VenueItems(accountID, venue string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CartItem
	for _, it := range s.load(accountID) {
		if it.Venue == venue {
			out = append(out, it)
		}
	}
	return out
}

// Venues lists the distinct venues present, in first-seen order.
func (s *Store) Venues(accountID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var venues []string
	for _, it := range s.load(accountID) {
		if !seen[it.Venue] {
			seen[it.Venue] = true
			venues = append(venues, it.Venue)
		}
	}
	return venues
}

func (s *Store) load(accountID string) []models.CartItem {
	if accountID == "" {
		return nil
	}
	var items []models.CartItem
	if _, err := storage.GetJSON(s.kv, storage.CartKey(accountID), &items); err != nil {
		s.log.Warn("read cart, resetting", zap.Error(err))
		return nil
	}
	return items
}

func (s *Store) save(accountID string, items []models.CartItem) {
	if accountID == "" {
		return
	}
	if err := storage.SetJSON(s.kv, storage.CartKey(accountID), items); err != nil {
		s.log.Error("save cart", zap.Error(err))
	}
}
