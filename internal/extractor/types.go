package extractor

import "voice-assistant-nlu/internal/schema"

// Span is a half-open token-index range [Start, End) in the normalized token
// stream.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Candidate is one possible slot filling found in the text. Ambiguous spans
// produce multiple candidates with different slots; none are dropped here.
type Candidate struct {
	Slot       string          `json:"slot"`
	Type       schema.SlotType `json:"type"`
	Span       Span            `json:"span"`
	Raw        string          `json:"raw"`
	Value      string          `json:"value"`
	Confidence float64         `json:"confidence"`
}

// Result is the ordered candidate list for one input text.
type Result struct {
	Candidates []Candidate
}

// Has reports whether any candidate exists for the slot.
func (r Result) Has(slot string) bool {
	for _, c := range r.Candidates {
		if c.Slot == slot {
			return true
		}
	}
	return false
}

// Best returns the highest-confidence candidate for the slot. Equal confidence
// keeps the earlier candidate, so the choice is deterministic.
func (r Result) Best(slot string) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range r.Candidates {
		if c.Slot != slot {
			continue
		}
		if !found || c.Confidence > best.Confidence {
			best = c
			found = true
		}
	}
	return best, found
}

// Slots returns the distinct slot names with candidates, in first-seen order.
func (r Result) Slots() []string {
	seen := make(map[string]bool, len(r.Candidates))
	out := make([]string, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if !seen[c.Slot] {
			seen[c.Slot] = true
			out = append(out, c.Slot)
		}
	}
	return out
}
