package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voice-assistant-nlu/internal/classifier"
	"voice-assistant-nlu/internal/composer"
	"voice-assistant-nlu/internal/extractor"
	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/nlu"
	"voice-assistant-nlu/internal/schema"
	"voice-assistant-nlu/pkg/textnorm"
)

// HandleTurn processes one utterance end to end: extract, classify, merge into
// the session, decide the state transition, and compose the reply.
// Turns for the same (user, domain) key are serialized; an empty or blank
// utterance yields a fallback result without mutating session state.
func (uc *implUseCase) HandleTurn(ctx context.Context, sc model.Scope, input nlu.TurnInput) (nlu.TurnOutput, error) {
	domain, ok := uc.registry.Get(input.Domain)
	if !ok {
		return nlu.TurnOutput{}, fmt.Errorf("%w: %q", nlu.ErrUnknownDomain, input.Domain)
	}

	key := model.SessionKey(sc.UserID, domain.Name)
	mu := uc.lock(key)
	mu.Lock()
	defer mu.Unlock()

	session, exists := uc.store.Get(key)
	if !exists {
		session = uc.newSession(sc.UserID, domain.Name)
	}

	text := strings.TrimSpace(input.Text)
	if textnorm.Normalize(text) == "" {
		// Recovered locally: a graceful fallback reply, no state mutation.
		uc.l.Warnf(ctx, "HandleTurn: empty input for key=%s", key)
		return uc.fallbackTurn(session, domain), nil
	}

	ext := extractor.Extract(text, domain)
	outcome := classifier.Classify(textnorm.Words(text), ext, domain)
	uc.l.Infof(ctx, "HandleTurn: key=%s intent=%s confidence=%.2f candidates=%d",
		key, outcome.Intent, outcome.Confidence, len(ext.Candidates))

	activeIntent, activeConfidence := uc.resolveActive(session, outcome)

	var activeDef schema.Intent
	if activeIntent != classifier.IntentFallback {
		def, defined := domain.Intent(activeIntent)
		if !defined {
			return nlu.TurnOutput{}, fmt.Errorf("%w: active intent %q not in domain %q",
				nlu.ErrSessionCorrupted, activeIntent, domain.Name)
		}
		activeDef = def
	}

	// The active intent disambiguates same-confidence readings of a span.
	session.Slots = mergeSlots(session.Slots, ext, activeDef)
	session.Turn++

	var (
		status  nlu.TurnStatus
		missing []string
	)
	switch {
	case activeIntent == classifier.IntentFallback:
		status = nlu.StatusFallback
		session.State = model.SessionStateCollecting
	default:
		missing = missingSlots(activeDef, session.Slots)
		if len(missing) == 0 {
			status = nlu.StatusResolved
			session.State = model.SessionStateResolved
			session.PendingIntent = ""
			session.PendingConfidence = 0
		} else {
			status = nlu.StatusIncomplete
			session.State = model.SessionStateCollecting
			session.PendingIntent = activeIntent
			session.PendingConfidence = activeConfidence
		}
	}

	// Resolved and missing slots are mutually exclusive by construction;
	// a violation here is a programming defect, not a user error. Fallback
	// turns carry no missing-slot list and are exempt.
	if status != nlu.StatusFallback && (status == nlu.StatusResolved) != (len(missing) == 0) {
		return nlu.TurnOutput{}, fmt.Errorf("%w: status=%s with %d missing slots",
			nlu.ErrSessionCorrupted, status, len(missing))
	}

	reply := composer.Compose(composer.Input{
		Intent:  activeIntent,
		Status:  status,
		Slots:   flattenSlots(session.Slots),
		Missing: missing,
		Turn:    session.Turn,
	}, domain)

	now := uc.now()
	session.LastActivity = now
	session.History = appendHistory(session.History,
		model.HistoryEntry{Role: "user", Content: text, Timestamp: now},
		model.HistoryEntry{Role: "assistant", Content: reply, Intent: activeIntent, Timestamp: now},
	)
	uc.store.Put(key, session)

	return nlu.TurnOutput{
		Intent:     activeIntent,
		Confidence: activeConfidence,
		Status:     status,
		Slots:      flattenSlots(session.Slots),
		Missing:    missing,
		Reply:      reply,
		SessionID:  session.ID,
		Turn:       session.Turn,
	}, nil
}

// fallbackTurn renders a graceful reply off the current session without
// writing anything back.
func (uc *implUseCase) fallbackTurn(session model.Session, domain schema.Domain) nlu.TurnOutput {
	reply := composer.Compose(composer.Input{
		Intent: classifier.IntentFallback,
		Status: nlu.StatusFallback,
		Turn:   session.Turn,
	}, domain)

	return nlu.TurnOutput{
		Intent:    classifier.IntentFallback,
		Status:    nlu.StatusFallback,
		Slots:     flattenSlots(session.Slots),
		Reply:     reply,
		SessionID: session.ID,
		Turn:      session.Turn,
	}
}

// resolveActive applies the pending-intent rule: a mid-collection session
// keeps its pending intent unless the new turn carries a genuinely stronger
// intent signal, so a low-confidence utterance cannot hijack slot filling.
func (uc *implUseCase) resolveActive(session model.Session, outcome classifier.Outcome) (string, float64) {
	if session.PendingIntent == "" {
		return outcome.Intent, outcome.Confidence
	}
	if outcome.Fallback() {
		return session.PendingIntent, session.PendingConfidence
	}
	if outcome.Intent == session.PendingIntent {
		if outcome.Confidence > session.PendingConfidence {
			return outcome.Intent, outcome.Confidence
		}
		return session.PendingIntent, session.PendingConfidence
	}
	if outcome.Confidence > session.PendingConfidence {
		return outcome.Intent, outcome.Confidence
	}
	return session.PendingIntent, session.PendingConfidence
}

// newSession creates a fresh session value for a key's first turn.
func (uc *implUseCase) newSession(userID, domain string) model.Session {
	now := uc.now()
	return model.Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		Domain:       domain,
		State:        model.SessionStateNew,
		Slots:        map[string]model.FilledSlot{},
		CreatedAt:    now,
		LastActivity: now,
	}
}
