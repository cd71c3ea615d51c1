package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"voice-assistant-nlu/internal/schema"
	"voice-assistant-nlu/pkg/textnorm"
)

// Extract scans the text for slot-value matches against every slot of the
// domain. It is a pure function of (text, domain): no state, no side effects.
// Ambiguous spans yield one candidate per plausible slot type; the classifier
// and state manager pick between them downstream.
func Extract(text string, domain schema.Domain) Result {
	tokens := textnorm.Tokenize(text)
	if len(tokens) == 0 {
		return Result{}
	}

	var result Result
	for i, tok := range tokens {
		if amount, numeric := textnorm.ParseAmount(tok.Text); numeric {
			result.Candidates = append(result.Candidates, numericCandidates(domain, tokens, i, tok, amount)...)
			continue
		}
		// Attached unit forms like "3br" or "2bed".
		result.Candidates = append(result.Candidates, attachedUnitCandidates(domain, i, tok)...)
	}

	result.Candidates = append(result.Candidates, valueCandidates(domain, tokens)...)
	result.Candidates = append(result.Candidates, freeTextCandidates(domain, text)...)
	return result
}

// numericCandidates produces candidates for a numeric token against every
// integer and currency slot of the domain.
func numericCandidates(domain schema.Domain, tokens []textnorm.Token, i int, tok textnorm.Token, amount int64) []Candidate {
	marked := hasCurrencyMark(tokens, i)
	value := strconv.FormatInt(amount, 10)

	var out []Candidate
	for _, slot := range domain.Slots {
		switch slot.Type {
		case schema.SlotTypeCurrency:
			conf := ConfidenceBare
			near := nearContext(tokens, i, slot.Context)
			switch {
			case marked && near:
				conf = ConfidenceMarkedContext
			case marked:
				conf = ConfidenceMarked
			case near:
				conf = ConfidenceAdjacent
			}
			out = append(out, Candidate{
				Slot:       slot.Name,
				Type:       slot.Type,
				Span:       Span{Start: i, End: i + 1},
				Raw:        tok.Text,
				Value:      value,
				Confidence: conf,
			})

		case schema.SlotTypeInteger:
			conf := ConfidenceBare
			if marked {
				// A currency-marked number is a poor room count, but the span
				// is still kept rather than silently dropped.
				conf = ConfidenceCrossed
			} else if nearContext(tokens, i, slot.Context) {
				conf = ConfidenceAdjacent
			}
			out = append(out, Candidate{
				Slot:       slot.Name,
				Type:       slot.Type,
				Span:       Span{Start: i, End: i + 1},
				Raw:        tok.Text,
				Value:      value,
				Confidence: conf,
			})
		}
	}
	return out
}

// attachedUnitRe splits tokens like "3br" into the number and its unit.
var attachedUnitRe = regexp.MustCompile(`^(\d+)([a-z]+)$`)

// attachedUnitCandidates handles numbers glued to a context keyword, e.g.
// "3br". The unit must be one of the slot's context keywords.
func attachedUnitCandidates(domain schema.Domain, i int, tok textnorm.Token) []Candidate {
	m := attachedUnitRe.FindStringSubmatch(tok.Text)
	if m == nil {
		return nil
	}

	var out []Candidate
	for _, slot := range domain.Slots {
		if slot.Type != schema.SlotTypeInteger {
			continue
		}
		for _, keyword := range slot.Context {
			if m[2] != keyword {
				continue
			}
			out = append(out, Candidate{
				Slot:       slot.Name,
				Type:       slot.Type,
				Span:       Span{Start: i, End: i + 1},
				Raw:        tok.Text,
				Value:      m[1],
				Confidence: ConfidenceAdjacent,
			})
			break
		}
	}
	return out
}

// valueCandidates matches place gazetteers and category value sets with
// case-insensitive exact token-sequence matching. No fuzzy matching.
func valueCandidates(domain schema.Domain, tokens []textnorm.Token) []Candidate {
	var out []Candidate
	for _, slot := range domain.Slots {
		if slot.Type != schema.SlotTypePlace && slot.Type != schema.SlotTypeCategory {
			continue
		}
		conf := ConfidenceExact
		if slot.Type == schema.SlotTypeCategory {
			conf = ConfidenceCategory
		}

		for _, value := range slot.Values {
			words := strings.Fields(strings.ToLower(value))
			if len(words) == 0 {
				continue
			}
			at := findSequence(tokens, words)
			if at < 0 {
				continue
			}
			out = append(out, Candidate{
				Slot:       slot.Name,
				Type:       slot.Type,
				Span:       Span{Start: at, End: at + len(words)},
				Raw:        strings.Join(words, " "),
				Value:      strings.Join(words, " "),
				Confidence: conf,
			})
		}
	}
	return out
}

// freeTextCandidates feeds the whole normalized utterance into text slots at
// low confidence. The merge layer only accepts these when the active intent
// uses the slot.
func freeTextCandidates(domain schema.Domain, text string) []Candidate {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return nil
	}

	var out []Candidate
	for _, slot := range domain.Slots {
		if slot.Type != schema.SlotTypeText {
			continue
		}
		out = append(out, Candidate{
			Slot:       slot.Name,
			Type:       slot.Type,
			Span:       Span{Start: 0, End: len(strings.Fields(normalized))},
			Raw:        normalized,
			Value:      normalized,
			Confidence: ConfidenceFreeText,
		})
	}
	return out
}

// hasCurrencyMark reports whether the numeric token at i carries an explicit
// money signal: a currency symbol in the token itself or a unit word right
// after it ("5500 dollars").
func hasCurrencyMark(tokens []textnorm.Token, i int) bool {
	if strings.ContainsAny(tokens[i].Text, "$£€") {
		return true
	}
	if i+1 < len(tokens) && currencyWords[tokens[i+1].Text] {
		return true
	}
	return false
}

// contextWindow is how many tokens either side of a number a context keyword
// may sit, covering phrasings like "budget is $5500".
const contextWindow = 2

// nearContext reports whether a token within the context window is one of the
// slot's context keywords.
func nearContext(tokens []textnorm.Token, i int, context []string) bool {
	lo := i - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := i + contextWindow
	if hi > len(tokens)-1 {
		hi = len(tokens) - 1
	}
	for j := lo; j <= hi; j++ {
		if j == i {
			continue
		}
		for _, keyword := range context {
			if tokens[j].Text == keyword {
				return true
			}
		}
	}
	return false
}

// findSequence returns the first token index where words occur as an exact
// consecutive sequence, or -1.
func findSequence(tokens []textnorm.Token, words []string) int {
	for i := 0; i+len(words) <= len(tokens); i++ {
		match := true
		for j, w := range words {
			if tokens[i+j].Text != w {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
