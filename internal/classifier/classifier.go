package classifier

import (
	"strings"

	"voice-assistant-nlu/internal/extractor"
	"voice-assistant-nlu/internal/schema"
)

// Classify scores every intent of the domain against the normalized token
// stream and the extraction result, and returns the best match. It is a pure
// function: identical input always yields the identical outcome.
//
// Score per intent: the character length of every matched trigger pattern,
// plus a bonus per required/optional slot present in the extraction. Ties are
// broken by higher priority, then more required slots satisfied, then earlier
// definition order, so the choice is total and reproducible.
func Classify(tokens []string, ext extractor.Result, domain schema.Domain) Outcome {
	best := Outcome{Intent: IntentFallback, Confidence: 0}
	bestPriority := 0
	bestRequired := -1

	for _, intent := range domain.Intents {
		score := 0
		for _, pattern := range intent.Patterns {
			if matchPattern(tokens, pattern) {
				score += len(pattern)
			}
		}
		if score == 0 {
			// Slot bonuses never rescue an intent with no pattern match.
			continue
		}

		required := 0
		for _, slot := range intent.RequiredSlots {
			if ext.Has(slot) {
				score += RequiredSlotBonus
				required++
			}
		}
		for _, slot := range intent.OptionalSlots {
			if ext.Has(slot) {
				score += OptionalSlotBonus
			}
		}

		if better(score, intent.Priority, required, best.Score, bestPriority, bestRequired) {
			best = Outcome{Intent: intent.Name, Score: score}
			bestPriority = intent.Priority
			bestRequired = required
		}
	}

	if best.Score < MinScore {
		return Outcome{Intent: IntentFallback, Confidence: 0}
	}

	best.Confidence = float64(best.Score) / confidenceScale
	if best.Confidence > 1 {
		best.Confidence = 1
	}
	return best
}

// better implements the deterministic total order over intent matches.
// Earlier definition order wins all remaining ties because intents are
// evaluated in order and a strict improvement is required to replace the
// current best.
func better(score, priority, required, bestScore, bestPriority, bestRequired int) bool {
	if score != bestScore {
		return score > bestScore
	}
	if priority != bestPriority {
		return priority > bestPriority
	}
	return required > bestRequired
}

// matchPattern reports whether the pattern's words occur as a consecutive
// sequence in the token stream. Patterns are compared in normalized form.
func matchPattern(tokens []string, pattern string) bool {
	words := strings.Fields(strings.ToLower(pattern))
	if len(words) == 0 {
		return false
	}
	for i := 0; i+len(words) <= len(tokens); i++ {
		match := true
		for j, w := range words {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
