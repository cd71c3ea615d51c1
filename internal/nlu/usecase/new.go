package usecase

import (
	"sync"
	"time"

	"voice-assistant-nlu/internal/nlu/repository"
	"voice-assistant-nlu/internal/schema"
	pkgLog "voice-assistant-nlu/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	registry *schema.Registry
	store    repository.SessionStore

	// locks serializes turns per (user, domain) key. Different keys proceed
	// concurrently; the same key runs at most one turn at a time.
	locks sync.Map // string → *sync.Mutex

	now func() time.Time
}

// New creates the NLU engine usecase. The registry is immutable and shared;
// the store owns idle expiry.
func New(l pkgLog.Logger, registry *schema.Registry, store repository.SessionStore) *implUseCase {
	return &implUseCase{
		l:        l,
		registry: registry,
		store:    store,
		now:      time.Now,
	}
}

// lock returns the per-key mutex, creating it on first use.
func (uc *implUseCase) lock(key string) *sync.Mutex {
	mu, _ := uc.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
