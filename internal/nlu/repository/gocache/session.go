package gocache

import "voice-assistant-nlu/internal/model"

// Get returns the live session for a key. go-cache checks expiry on read, so
// an idle-timed-out session misses here even before the janitor sweeps it.
func (s *Store) Get(key string) (model.Session, bool) {
	value, ok := s.cache.Get(key)
	if !ok {
		return model.Session{}, false
	}
	session, ok := value.(model.Session)
	return session, ok
}

// Put stores the session and resets its idle timeout.
func (s *Store) Put(key string, session model.Session) {
	s.cache.SetDefault(key, session)
}

// Delete removes the session for a key.
func (s *Store) Delete(key string) {
	s.cache.Delete(key)
}

// Len returns the number of live sessions. go-cache's Items() filters expired
// entries, unlike ItemCount which may still include unswept ones.
func (s *Store) Len() int {
	return len(s.cache.Items())
}
