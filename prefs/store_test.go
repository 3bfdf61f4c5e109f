package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"campus-eats-api/storage"
)

const user = "user_1"

func newTestStore() *Store {
	return NewStore(storage.NewMemory(), zap.NewNop())
}

func TestDarkMode(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.DarkMode())
	s.SetDarkMode(true)
	assert.True(t, s.DarkMode())
	s.SetDarkMode(false)
	assert.False(t, s.DarkMode())
}

func TestOnboardingShownExactlyOnce(t *testing.T) {
	s := newTestStore()

	// plain login, never signed up through this flow
	assert.False(t, s.ShouldShowOnboarding(user))

	s.MarkFirstLogin(user)
	assert.True(t, s.ShouldShowOnboarding(user))
	// flag consumed — never again
	assert.False(t, s.ShouldShowOnboarding(user))
}

func TestOnboardingSeenWins(t *testing.T) {
	s := newTestStore()
	s.MarkOnboardingSeen(user)
	s.MarkFirstLogin(user)
	assert.False(t, s.ShouldShowOnboarding(user))
	assert.True(t, s.OnboardingSeen(user))
}

func TestFlagsArePerAccount(t *testing.T) {
	s := newTestStore()
	s.MarkFirstLogin("user_1")
	assert.False(t, s.ShouldShowOnboarding("user_2"))
	assert.True(t, s.ShouldShowOnboarding("user_1"))
}
