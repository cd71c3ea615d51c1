package usecase

import (
	"context"
	"fmt"

	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/nlu"
)

// Domains lists the loaded domain schemas.
func (uc *implUseCase) Domains(ctx context.Context) nlu.DomainsOutput {
	names := uc.registry.Names()
	infos := make([]nlu.DomainInfo, 0, len(names))
	for _, name := range names {
		d, _ := uc.registry.Get(name)
		infos = append(infos, nlu.DomainInfo{
			Name:        d.Name,
			DisplayName: d.DisplayName,
			Intents:     len(d.Intents),
			Slots:       len(d.Slots),
		})
	}
	return nlu.DomainsOutput{Domains: infos, Count: len(infos)}
}

// SessionSnapshot returns a copy of the caller's session for a domain. Reads
// go through the same per-key lock as turns, so a snapshot never observes a
// half-merged session.
func (uc *implUseCase) SessionSnapshot(ctx context.Context, sc model.Scope, domain string) (nlu.SnapshotOutput, error) {
	if _, ok := uc.registry.Get(domain); !ok {
		return nlu.SnapshotOutput{}, fmt.Errorf("%w: %q", nlu.ErrUnknownDomain, domain)
	}

	key := model.SessionKey(sc.UserID, domain)
	mu := uc.lock(key)
	mu.Lock()
	defer mu.Unlock()

	session, ok := uc.store.Get(key)
	if !ok {
		return nlu.SnapshotOutput{}, nlu.ErrSessionNotFound
	}
	return nlu.SnapshotOutput{Session: session}, nil
}
