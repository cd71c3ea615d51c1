package nlu

import (
	"context"

	"voice-assistant-nlu/internal/model"
)

// UseCase is the business logic interface for the NLU engine.
type UseCase interface {
	// HandleTurn processes one user utterance end to end: extraction,
	// classification, session merge, and reply composition.
	HandleTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)

	// Domains lists the loaded domain schemas.
	Domains(ctx context.Context) DomainsOutput

	// SessionSnapshot returns a copy of the caller's session for a domain.
	SessionSnapshot(ctx context.Context, sc model.Scope, domain string) (SnapshotOutput, error)
}
