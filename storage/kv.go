package storage

import (
	"encoding/json"
	"fmt"
)

// KV is the local key-value store backing every collection in the app.
// Values are JSON blobs under namespaced string keys, mirroring the
// browser-storage shape of the demo this backend serves. It is the only
// shared resource in the process; implementations must be safe for
// concurrent use.
type KV interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes the full value for a key, replacing any previous value.
	Set(key, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	// Keys lists all keys with the given prefix.
	Keys(prefix string) ([]string, error)
}

// GetJSON unmarshals the value at key into v. Returns false with no
// error when the key is absent.
func GetJSON(kv KV, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and writes it at key.
func SetJSON(kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Set(key, string(raw))
}
