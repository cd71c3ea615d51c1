package classifier

// IntentFallback is the distinguished "no confident match" intent. It is never
// defined in a domain schema.
const IntentFallback = "fallback"

// Scoring knobs. Pattern weight is the pattern's character length, so longer,
// more specific phrases dominate single keywords.
const (
	// MinScore is the threshold below which classification falls back.
	MinScore = 3

	// RequiredSlotBonus is added per required slot present in the extraction.
	RequiredSlotBonus = 2

	// OptionalSlotBonus is added per optional slot present in the extraction.
	OptionalSlotBonus = 1

	// confidenceScale maps a raw score onto 0-1; scores at or above it cap out.
	confidenceScale = 10.0
)
