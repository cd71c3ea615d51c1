package http

import (
	"time"

	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/nlu"
)

// --- Request DTOs ---

type processTextReq struct {
	UserID string `json:"user_id" binding:"required,min=1,max=128"`
	Domain string `json:"domain"  binding:"required,min=1,max=64"`
	Text   string `json:"text"    binding:"max=2000"`
}

func (r processTextReq) validate() error { return nil }

func (r processTextReq) toInput() nlu.TurnInput {
	return nlu.TurnInput{
		Domain: r.Domain,
		Text:   r.Text,
	}
}

func (r processTextReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// ---

type sessionDetailReq struct {
	Domain string `form:"-"`
	UserID string `form:"user_id" binding:"required,min=1,max=128"`
}

func (r sessionDetailReq) validate() error { return nil }

func (r sessionDetailReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// --- Response DTOs ---

type processTextResp struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Status     string            `json:"status"`
	Slots      map[string]string `json:"slots"`
	Missing    []string          `json:"missing_slots,omitempty"`
	Reply      string            `json:"reply"`
	SessionID  string            `json:"session_id"`
	Turn       int               `json:"turn"`
}

func (h *handler) newProcessTextResp(out nlu.TurnOutput) processTextResp {
	return processTextResp{
		Intent:     out.Intent,
		Confidence: out.Confidence,
		Status:     string(out.Status),
		Slots:      out.Slots,
		Missing:    out.Missing,
		Reply:      out.Reply,
		SessionID:  out.SessionID,
		Turn:       out.Turn,
	}
}

type domainResp struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Intents     int    `json:"intents"`
	Slots       int    `json:"slots"`
}

type listDomainsResp struct {
	Domains []domainResp `json:"domains"`
	Count   int          `json:"count"`
}

func (h *handler) newListDomainsResp(out nlu.DomainsOutput) listDomainsResp {
	domains := make([]domainResp, len(out.Domains))
	for i, d := range out.Domains {
		domains[i] = domainResp{
			Name:        d.Name,
			DisplayName: d.DisplayName,
			Intents:     d.Intents,
			Slots:       d.Slots,
		}
	}
	return listDomainsResp{Domains: domains, Count: out.Count}
}

type slotResp struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

type historyEntryResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type sessionDetailResp struct {
	SessionID     string              `json:"session_id"`
	Domain        string              `json:"domain"`
	State         string              `json:"state"`
	Turn          int                 `json:"turn"`
	PendingIntent string              `json:"pending_intent,omitempty"`
	Slots         map[string]slotResp `json:"slots"`
	History       []historyEntryResp  `json:"history"`
	CreatedAt     time.Time           `json:"created_at"`
	LastActivity  time.Time           `json:"last_activity"`
}

func (h *handler) newSessionDetailResp(out nlu.SnapshotOutput) sessionDetailResp {
	s := out.Session

	slots := make(map[string]slotResp, len(s.Slots))
	for name, slot := range s.Slots {
		slots[name] = slotResp{Value: slot.Value, Confidence: slot.Confidence}
	}

	history := make([]historyEntryResp, len(s.History))
	for i, entry := range s.History {
		history[i] = historyEntryResp{
			Role:      entry.Role,
			Content:   entry.Content,
			Intent:    entry.Intent,
			Timestamp: entry.Timestamp,
		}
	}

	return sessionDetailResp{
		SessionID:     s.ID,
		Domain:        s.Domain,
		State:         string(s.State),
		Turn:          s.Turn,
		PendingIntent: s.PendingIntent,
		Slots:         slots,
		History:       history,
		CreatedAt:     s.CreatedAt,
		LastActivity:  s.LastActivity,
	}
}
