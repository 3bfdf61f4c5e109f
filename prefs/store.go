// Package prefs holds the small preference flags: onboarding-seen and
// first-login per account, and the process-wide dark-mode setting.
package prefs

import (
	"sync"

	"go.uber.org/zap"

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

// DarkMode reports the process-wide dark-mode preference. It is not
// per-account.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var on bool
	if _, err := storage.GetJSON(s.kv, storage.DarkModeKey(), &on); err != nil {
		s.log.Warn("read dark mode", zap.Error(err))
		return false
	}
	return on
}

func (s *Store) SetDarkMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := storage.SetJSON(s.kv, storage.DarkModeKey(), on); err != nil {
		s.log.Error("save dark mode", zap.Error(err))
	}
}

// MarkFirstLogin flags the account so onboarding fires on the next
// signup-driven login. Set at registration time.
func (s *Store) MarkFirstLogin(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := storage.SetJSON(s.kv, storage.FirstLoginKey(accountID), true); err != nil {
		s.log.Error("save first-login flag", zap.Error(err))
	}
}

// ShouldShowOnboarding reports whether onboarding must be shown now and
// consumes the first-login flag, so it answers true at most once per
// account: right after the first signup-driven login.
func (s *Store) ShouldShowOnboarding(accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seen bool
	if _, err := storage.GetJSON(s.kv, storage.OnboardingKey(accountID), &seen); err == nil && seen {
		return false
	}
	var first bool
	ok, err := storage.GetJSON(s.kv, storage.FirstLoginKey(accountID), &first)
	if err != nil || !ok || !first {
		return false
	}
	if err := s.kv.Delete(storage.FirstLoginKey(accountID)); err != nil {
		s.log.Warn("clear first-login flag", zap.Error(err))
	}
	return true
}

// MarkOnboardingSeen records that the account has completed onboarding.
func (s *Store) MarkOnboardingSeen(accountID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := storage.SetJSON(s.kv, storage.OnboardingKey(accountID), true); err != nil {
		s.log.Error("save onboarding flag", zap.Error(err))
	}
}

// OnboardingSeen reports whether the account has completed onboarding.
func (s *Store) OnboardingSeen(accountID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var seen bool
	if _, err := storage.GetJSON(s.kv, storage.OnboardingKey(accountID), &seen); err != nil {
		return false
	}
	return seen
}
