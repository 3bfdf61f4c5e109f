// Package favorites owns the per-account favorites set, a tagged union
// of dishes and venues with uniqueness by (id, kind).
package favorites

import (
	"sync"

	"go.uber.org/zap"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

type Store struct {
	mu  sync.Mutex
	kv  storage.KV
	log *zap.Logger
}

func NewStore(kv storage.KV, log *zap.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// All returns the account's favorites in insertion order.
func (s *Store) All(accountID string) []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(accountID)
}

// Add appends the favorite unless an entry with the same (id, kind)
// already exists, in which case it no-ops.
func (s *Store) Add(accountID string, fav models.Favorite) {
	if accountID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.load(accountID)
	for _, f := range favs {
		if f.ID == fav.ID && f.Kind == fav.Kind {
			return
		}
	}
	s.save(accountID, append(favs, fav))
}

// Remove filters by id within the matching kind only — a dish and a
// venue sharing an id never collide.
func (s *Store) Remove(accountID, id string, kind models.FavoriteKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := s.load(accountID)
	kept := favs[:0]
	for _, f := range favs {
		if f.ID == id && f.Kind == kind {
			continue
		}
		kept = append(kept, f)
	}
	s.save(accountID, kept)
}

// IsFavorite is a membership test scoped by kind.
func (s *Store) IsFavorite(accountID, id string, kind models.FavoriteKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.load(accountID) {
		if f.ID == id && f.Kind == kind {
			return true
		}
	}
	return false
}

// Dishes returns only the favorited dishes.
func (s *Store) Dishes(accountID string) []models.Favorite {
	return s.byKind(accountID, models.FavoriteDish)
}

// Venues returns only the favorited venues.
func (s *Store) Venues(accountID string) []models.Favorite {
	return s.byKind(accountID, models.FavoriteVenue)
}

func (s *Store) byKind(accountID string, kind models.FavoriteKind) []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Favorite
	for _, f := range s.load(accountID) {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) load(accountID string) []models.Favorite {
	if accountID == "" {
		return nil
	}
	var favs []models.Favorite
	if _, err := storage.GetJSON(s.kv, storage.FavoritesKey(accountID), &favs); err != nil {
		s.log.Warn("read favorites, resetting", zap.Error(err))
		return nil
	}
	return favs
}

func (s *Store) save(accountID string, favs []models.Favorite) {
	if accountID == "" {
		return
	}
	if err := storage.SetJSON(s.kv, storage.FavoritesKey(accountID), favs); err != nil {
		s.log.Error("save favorites", zap.Error(err))
	}
}
