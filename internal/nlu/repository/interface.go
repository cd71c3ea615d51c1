package repository

import "voice-assistant-nlu/internal/model"

// SessionStore is the session-table abstraction. The engine only depends on
// this logical schema, so the in-memory table can be swapped for an external
// key-value store without touching extraction or classification.
//
// Implementations own idle expiry: a Get after the idle timeout must miss, and
// every Put refreshes the entry's timeout.
type SessionStore interface {
	// Get returns the live session for a key, if any.
	Get(key string) (model.Session, bool)

	// Put stores the session under key and resets its idle timeout.
	Put(key string, session model.Session)

	// Delete removes the session for a key.
	Delete(key string)

	// Len returns the number of live sessions.
	Len() int
}
