package nlu

import "voice-assistant-nlu/internal/model"

// TurnStatus is the outcome class of one processed turn.
type TurnStatus string

const (
	StatusResolved   TurnStatus = "resolved"
	StatusIncomplete TurnStatus = "incomplete"
	StatusFallback   TurnStatus = "fallback"
)

// TurnInput is one inbound user utterance for a domain.
type TurnInput struct {
	Domain string
	Text   string
}

// TurnOutput is the structured result of one turn.
type TurnOutput struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Status     TurnStatus        `json:"status"`
	Slots      map[string]string `json:"slots"`
	Missing    []string          `json:"missing_slots"`
	Reply      string            `json:"reply"`
	SessionID  string            `json:"session_id"`
	Turn       int               `json:"turn"`
}

// DomainInfo describes one loaded domain for listing.
type DomainInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Intents     int    `json:"intents"`
	Slots       int    `json:"slots"`
}

// DomainsOutput is the result of listing loaded domains.
type DomainsOutput struct {
	Domains []DomainInfo `json:"domains"`
	Count   int          `json:"count"`
}

// SnapshotOutput is a read-only copy of one session's state.
type SnapshotOutput struct {
	Session model.Session `json:"session"`
}
