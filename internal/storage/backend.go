package storage

import "encoding/json"

// Document keys. The suffixes version the stored document shapes, not
// the export payload.
const (
	KeyAppointments = "app_appointments_v2"
	KeyCategories   = "app_categories_v2"
	KeyPreferences  = "app_preferences_v1"
)

// Backend is a durable key-value document store. Both operations are
// tolerant: a failed or missing read reports ok=false, and a failed
// write is dropped silently. The session keeps working without
// durability when the environment is degraded; the store chooses to
// accept that trade by policy.
type Backend interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// ReadJSON decodes the document at key, returning fallback on any
// missing, unreadable, or malformed value.
func ReadJSON[T any](b Backend, key string, fallback T) T {
	raw, ok := b.Get(key)
	if !ok || len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

// WriteJSON encodes v into the document at key. Failures are swallowed.
func WriteJSON(b Backend, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	b.Set(key, raw)
}
