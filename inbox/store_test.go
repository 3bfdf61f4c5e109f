package inbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campus-eats-api/models"
	"campus-eats-api/storage"
)

const user = "user_1"

func newTestStore() *Store {
	return NewStore(storage.NewMemory(), zap.NewNop())
}

func TestWelcomeSeed(t *testing.T) {
	s := newTestStore()

	entries := s.List(user)
	require.Len(t, entries, 1)
	assert.Equal(t, models.NotificationSystem, entries[0].Kind)
	assert.False(t, entries[0].IsRead)
	assert.Equal(t, 1, s.UnreadCount(user))

	// second load does not seed again
	assert.Len(t, s.List(user), 1)
}

func TestAppendPrepends(t *testing.T) {
	s := newTestStore()
	s.List(user) // seeds welcome

	n := s.Append(user, models.Notification{
		Kind:    models.NotificationOrder,
		Title:   "Order #1234 delivered",
		Message: "Enjoy!",
	})
	assert.NotEmpty(t, n.ID)
	assert.NotZero(t, n.Timestamp)

	entries := s.List(user)
	require.Len(t, entries, 2)
	assert.Equal(t, n.ID, entries[0].ID)
	assert.Equal(t, 2, s.UnreadCount(user))
}

func TestMarkRead(t *testing.T) {
	s := newTestStore()
	entries := s.List(user)
	require.Len(t, entries, 1)

	s.MarkRead(user, entries[0].ID)
	assert.Equal(t, 0, s.UnreadCount(user))

	// ordering untouched
	after := s.List(user)
	require.Len(t, after, 1)
	assert.Equal(t, entries[0].ID, after[0].ID)
	assert.True(t, after[0].IsRead)
}

func TestMarkAllRead(t *testing.T) {
	s := newTestStore()
	s.List(user)
	s.Append(user, models.Notification{Kind: models.NotificationPromotion, Title: "Deal", Message: "20% off"})
	s.Append(user, models.Notification{Kind: models.NotificationDelivery, Title: "On the way", Message: "5 min"})
	require.Equal(t, 3, s.UnreadCount(user))

	s.MarkAllRead(user)
	assert.Equal(t, 0, s.UnreadCount(user))
}

func TestClearAll(t *testing.T) {
	kv := storage.NewMemory()
	s := NewStore(kv, zap.NewNop())
	s.List(user)
	s.Append(user, models.Notification{Kind: models.NotificationOrder, Title: "t", Message: "m"})

	s.ClearAll(user)

	assert.Empty(t, s.List(user))
	assert.Equal(t, 0, s.UnreadCount(user))
	_, ok, err := kv.Get(storage.InboxKey(user))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNoAccount(t *testing.T) {
	s := newTestStore()
	assert.Empty(t, s.List(""))
	assert.Equal(t, 0, s.UnreadCount(""))
}
