package usecase

import (
	"voice-assistant-nlu/internal/extractor"
	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/schema"
)

// mergeSlots folds the turn's extraction into the accumulated slots.
//
// Two rules preserve the merge invariants:
//   - Per span, only an unambiguous winner merges: the single candidate with
//     highest confidence for that stretch of text, with the active intent's
//     slot membership breaking exact ties. A bare number that reads equally
//     well as price or room count, with neither slot favored by the intent,
//     fills neither.
//   - Per slot, a winner overwrites the accumulated value only at equal or
//     higher confidence, so a confident earlier value survives a vague later
//     mention.
func mergeSlots(current map[string]model.FilledSlot, ext extractor.Result, intent schema.Intent) map[string]model.FilledSlot {
	merged := make(map[string]model.FilledSlot, len(current))
	for name, slot := range current {
		merged[name] = slot
	}

	for _, winner := range spanWinners(ext, intent) {
		// Whole-utterance free-text captures merge only when the active
		// intent uses that slot; otherwise every turn would churn it.
		if winner.Type == schema.SlotTypeText && intentStanding(intent, winner.Slot) == 0 {
			continue
		}
		existing, exists := merged[winner.Slot]
		if exists && winner.Confidence < existing.Confidence {
			continue
		}
		merged[winner.Slot] = model.FilledSlot{
			Value:      winner.Value,
			Confidence: winner.Confidence,
		}
	}
	return merged
}

// spanWinners picks, per text span, the unique highest-confidence reading.
// Exact confidence ties go to the slot the active intent cares about more
// (required over optional over unrelated); a tie at the same standing leaves
// the span ambiguous. Candidate order is deterministic, so the winner list
// is too.
func spanWinners(ext extractor.Result, intent schema.Intent) []extractor.Candidate {
	type spanBest struct {
		best      extractor.Candidate
		ambiguous bool
	}

	order := make([]extractor.Span, 0, len(ext.Candidates))
	bySpan := make(map[extractor.Span]*spanBest, len(ext.Candidates))

	for _, c := range ext.Candidates {
		entry, seen := bySpan[c.Span]
		if !seen {
			order = append(order, c.Span)
			bySpan[c.Span] = &spanBest{best: c}
			continue
		}
		switch {
		case c.Confidence > entry.best.Confidence:
			entry.best = c
			entry.ambiguous = false
		case c.Confidence == entry.best.Confidence && c.Slot != entry.best.Slot:
			switch {
			case intentStanding(intent, c.Slot) > intentStanding(intent, entry.best.Slot):
				entry.best = c
				entry.ambiguous = false
			case intentStanding(intent, c.Slot) < intentStanding(intent, entry.best.Slot):
				// keep the current best
			default:
				entry.ambiguous = true
			}
		}
	}

	winners := make([]extractor.Candidate, 0, len(order))
	for _, span := range order {
		if entry := bySpan[span]; !entry.ambiguous {
			winners = append(winners, entry.best)
		}
	}
	return winners
}

// intentStanding ranks how much an intent cares about a slot.
func intentStanding(intent schema.Intent, slot string) int {
	for _, name := range intent.RequiredSlots {
		if name == slot {
			return 2
		}
	}
	for _, name := range intent.OptionalSlots {
		if name == slot {
			return 1
		}
	}
	return 0
}

// missingSlots returns the intent's required slots not yet accumulated, in
// definition order.
func missingSlots(intent schema.Intent, slots map[string]model.FilledSlot) []string {
	var missing []string
	for _, name := range intent.RequiredSlots {
		if _, ok := slots[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// flattenSlots projects accumulated slots to plain name→value pairs.
func flattenSlots(slots map[string]model.FilledSlot) map[string]string {
	out := make(map[string]string, len(slots))
	for name, slot := range slots {
		out[name] = slot.Value
	}
	return out
}

// appendHistory adds entries and trims the transcript to its cap.
func appendHistory(history []model.HistoryEntry, entries ...model.HistoryEntry) []model.HistoryEntry {
	history = append(history, entries...)
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}
	return history
}
