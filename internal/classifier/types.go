package classifier

// Outcome is the classification result for one turn.
type Outcome struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"` // 0-1
	Score      int     `json:"score"`      // raw match score, kept for audit logs
}

// Fallback reports whether the outcome is the distinguished no-match intent.
func (o Outcome) Fallback() bool {
	return o.Intent == IntentFallback
}
