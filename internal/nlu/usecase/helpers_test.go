package usecase

import (
	"testing"

	"voice-assistant-nlu/internal/extractor"
	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/schema"
)

func TestMergeSlots(t *testing.T) {
	searchIntent := schema.Intent{
		Name:          "search_property",
		RequiredSlots: []string{"price", "location", "rooms"},
	}

	t.Run("intent breaks same confidence tie", func(t *testing.T) {
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "price", Span: extractor.Span{Start: 0, End: 1}, Value: "5500", Confidence: extractor.ConfidenceMarked},
			{Slot: "down_payment", Span: extractor.Span{Start: 0, End: 1}, Value: "5500", Confidence: extractor.ConfidenceMarked},
		}}

		merged := mergeSlots(nil, ext, searchIntent)
		if got := merged["price"].Value; got != "5500" {
			t.Errorf("price = %q, want 5500", got)
		}
		if _, ok := merged["down_payment"]; ok {
			t.Error("down_payment must lose the tie to the intent's required slot")
		}
	})

	t.Run("unresolvable tie fills nothing", func(t *testing.T) {
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "price", Span: extractor.Span{Start: 0, End: 1}, Value: "3", Confidence: extractor.ConfidenceBare},
			{Slot: "rooms", Span: extractor.Span{Start: 0, End: 1}, Value: "3", Confidence: extractor.ConfidenceBare},
		}}

		merged := mergeSlots(nil, ext, searchIntent)
		if len(merged) != 0 {
			t.Errorf("both readings required by the intent, expected no fill, got %v", merged)
		}
	})

	t.Run("higher confidence wins span outright", func(t *testing.T) {
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "price", Span: extractor.Span{Start: 0, End: 1}, Value: "3", Confidence: extractor.ConfidenceBare},
			{Slot: "rooms", Span: extractor.Span{Start: 0, End: 1}, Value: "3", Confidence: extractor.ConfidenceAdjacent},
		}}

		merged := mergeSlots(nil, ext, searchIntent)
		if got := merged["rooms"].Value; got != "3" {
			t.Errorf("rooms = %q, want 3", got)
		}
		if _, ok := merged["price"]; ok {
			t.Error("lower confidence reading must not fill")
		}
	})

	t.Run("accumulated value survives weaker mention", func(t *testing.T) {
		current := map[string]model.FilledSlot{
			"price": {Value: "5500", Confidence: extractor.ConfidenceMarked},
		}
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "price", Span: extractor.Span{Start: 0, End: 1}, Value: "7", Confidence: extractor.ConfidenceBare},
		}}

		merged := mergeSlots(current, ext, searchIntent)
		if got := merged["price"].Value; got != "5500" {
			t.Errorf("price = %q, want the earlier confident 5500", got)
		}
	})

	t.Run("equal confidence overwrites", func(t *testing.T) {
		current := map[string]model.FilledSlot{
			"price": {Value: "5500", Confidence: extractor.ConfidenceMarked},
		}
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "price", Span: extractor.Span{Start: 0, End: 1}, Value: "6000", Confidence: extractor.ConfidenceMarked},
		}}

		merged := mergeSlots(current, ext, searchIntent)
		if got := merged["price"].Value; got != "6000" {
			t.Errorf("price = %q, want the newer 6000", got)
		}
	})

	t.Run("free text merges only for the active intent's slots", func(t *testing.T) {
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "notes", Type: schema.SlotTypeText, Span: extractor.Span{Start: 0, End: 4}, Value: "i need a room", Confidence: extractor.ConfidenceFreeText},
		}}

		merged := mergeSlots(nil, ext, searchIntent)
		if _, ok := merged["notes"]; ok {
			t.Error("free-text capture must not fill a slot the intent does not use")
		}

		notesIntent := schema.Intent{Name: "leave_note", RequiredSlots: []string{"notes"}}
		merged = mergeSlots(nil, ext, notesIntent)
		if got := merged["notes"].Value; got != "i need a room" {
			t.Errorf("notes = %q, want the captured utterance", got)
		}
	})

	t.Run("does not mutate input map", func(t *testing.T) {
		current := map[string]model.FilledSlot{
			"price": {Value: "5500", Confidence: extractor.ConfidenceMarked},
		}
		ext := extractor.Result{Candidates: []extractor.Candidate{
			{Slot: "price", Span: extractor.Span{Start: 0, End: 1}, Value: "6000", Confidence: extractor.ConfidenceMarked},
		}}

		mergeSlots(current, ext, searchIntent)
		if current["price"].Value != "5500" {
			t.Error("mergeSlots must copy, not mutate")
		}
	})
}

func TestMissingSlots_DefinitionOrder(t *testing.T) {
	intent := schema.Intent{RequiredSlots: []string{"price", "location", "rooms"}}
	slots := map[string]model.FilledSlot{"location": {Value: "london"}}

	missing := missingSlots(intent, slots)
	if len(missing) != 2 || missing[0] != "price" || missing[1] != "rooms" {
		t.Errorf("missing = %v, want [price rooms]", missing)
	}
}
