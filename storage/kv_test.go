package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	kv := NewMemory()

	t.Run("get absent key", func(t *testing.T) {
		_, ok, err := kv.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, kv.Set("a", "1"))
		v, ok, err := kv.Get("a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1", v)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, kv.Set("a", "2"))
		v, _, _ := kv.Get("a")
		assert.Equal(t, "2", v)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, kv.Delete("a"))
		_, ok, _ := kv.Get("a")
		assert.False(t, ok)
		// deleting again is not an error
		require.NoError(t, kv.Delete("a"))
	})

	t.Run("keys by prefix", func(t *testing.T) {
		require.NoError(t, kv.Set(Prefix+"cart_u1", "[]"))
		require.NoError(t, kv.Set(Prefix+"cart_u2", "[]"))
		require.NoError(t, kv.Set("other", "x"))
		keys, err := kv.Keys(Prefix + "cart_")
		require.NoError(t, err)
		assert.Equal(t, []string{Prefix + "cart_u1", Prefix + "cart_u2"}, keys)
	})
}

func TestSQLiteKV(t *testing.T) {
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", `{"n":1}`))
	require.NoError(t, kv.Set("k", `{"n":2}`))
	v, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"n":2}`, v)

	require.NoError(t, kv.Set("k2", "x"))
	keys, err := kv.Keys("k")
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "k2"}, keys)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONHelpers(t *testing.T) {
	kv := NewMemory()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	ok, err := GetJSON(kv, "p", &payload{})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetJSON(kv, "p", payload{Name: "laksa", Count: 2}))

	var got payload
	ok, err = GetJSON(kv, "p", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Name: "laksa", Count: 2}, got)

	require.NoError(t, kv.Set("bad", "{not json"))
	_, err = GetJSON(kv, "bad", &got)
	assert.Error(t, err)
}
