package model

import (
	"fmt"
	"time"
)

// SessionState is the lifecycle state of a conversation session.
type SessionState string

const (
	SessionStateNew        SessionState = "new"
	SessionStateCollecting SessionState = "collecting"
	SessionStateResolved   SessionState = "resolved"
)

// FilledSlot is one accumulated slot value together with the confidence of the
// extraction that produced it. A later candidate replaces it only at equal or
// higher confidence.
type FilledSlot struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// HistoryEntry is one user or assistant message in the session transcript.
type HistoryEntry struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the accumulated conversation state for one (user, domain) pair.
// It is owned by the NLU usecase; readers outside a turn only ever see a copy.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Domain string `json:"domain"`

	State             SessionState          `json:"state"`
	Slots             map[string]FilledSlot `json:"slots"`
	PendingIntent     string                `json:"pending_intent,omitempty"`
	PendingConfidence float64               `json:"pending_confidence,omitempty"`

	Turn         int            `json:"turn"`
	History      []HistoryEntry `json:"history"`
	CreatedAt    time.Time      `json:"created_at"`
	LastActivity time.Time      `json:"last_activity"`
}

// SessionKey builds the session-table key for a (user, domain) pair.
func SessionKey(userID, domain string) string {
	return fmt.Sprintf("%s:%s", userID, domain)
}
