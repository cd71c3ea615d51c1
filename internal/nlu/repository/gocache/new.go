package gocache

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/nlu/repository"
	pkgLog "voice-assistant-nlu/pkg/log"
)

// Store is the in-memory session table backed by go-cache. Idle sessions are
// purged by the cache's background janitor; a purged key is indistinguishable
// from one that never existed.
type Store struct {
	l     pkgLog.Logger
	cache *cache.Cache
}

// Ensure Store implements the session store interface.
var _ repository.SessionStore = (*Store)(nil)

// New creates a session store with the given idle TTL and janitor sweep
// interval. Evicted sessions are logged with their final turn count.
func New(l pkgLog.Logger, ttl, sweepInterval time.Duration) *Store {
	c := cache.New(ttl, sweepInterval)
	c.OnEvicted(func(key string, value interface{}) {
		if session, ok := value.(model.Session); ok {
			l.Infof(context.Background(), "Session expired: key=%s turns=%d idle_since=%s",
				key, session.Turn, session.LastActivity.Format(time.RFC3339))
		}
	})

	return &Store{l: l, cache: c}
}
