package extractor

// Confidence levels assigned to candidates. The exact values only matter
// relative to each other: marked-with-context > marked > context > bare >
// crossed-signal.
const (
	ConfidenceMarkedContext = 0.98 // explicit type signal plus a nearby context keyword
	ConfidenceMarked        = 0.95 // explicit type signal (currency symbol or unit word)

	ConfidenceAdjacent = 0.90 // number near a slot context keyword
	ConfidenceExact    = 0.90 // exact gazetteer match
	ConfidenceCategory = 0.85 // exact enumerated-category match
	ConfidenceBare     = 0.45 // bare number, no contextual signal
	ConfidenceFreeText = 0.30 // whole-utterance free-text capture
	ConfidenceCrossed  = 0.15 // number carrying a signal for a different type
)

// currencyWords are unit words that mark a preceding number as a money amount.
var currencyWords = map[string]bool{
	"dollar": true, "dollars": true,
	"pound": true, "pounds": true,
	"euro": true, "euros": true,
	"usd": true, "gbp": true, "eur": true,
}
