package schema_test

import (
	"os"
	"path/filepath"
	"testing"

	"voice-assistant-nlu/internal/schema"
)

func writeDomainFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const realEstateJSON = `{
  "domain_name": "real_estate",
  "display_name": "Real Estate",
  "persona": {"name": "Emma", "greeting": "Hi, I'm Emma!"},
  "slots": [
    {"name": "price", "type": "currency", "context": ["budget", "price"]},
    {"name": "location", "type": "place", "values": ["london", "paris"]},
    {"name": "rooms", "type": "integer", "context": ["room", "rooms"]}
  ],
  "intents": [
    {
      "name": "search_property",
      "patterns": ["house", "apartment", "room"],
      "required_slots": ["price", "location", "rooms"]
    }
  ]
}`

const restaurantJSON = `{
  "domain_name": "restaurant",
  "slots": [
    {"name": "cuisine", "type": "category", "values": ["italian", "thai"]}
  ],
  "intents": [
    {"name": "book_table", "patterns": ["book", "table"], "optional_slots": ["cuisine"]}
  ]
}`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDomainFile(t, dir, "real_estate.json", realEstateJSON)
	writeDomainFile(t, dir, "restaurant.json", restaurantJSON)
	writeDomainFile(t, dir, "notes.txt", "not a schema")

	registry, err := schema.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if registry.Count() != 2 {
		t.Fatalf("Count = %d, want 2", registry.Count())
	}

	names := registry.Names()
	if names[0] != "real_estate" || names[1] != "restaurant" {
		t.Errorf("Names = %v, want file-name order", names)
	}

	d, ok := registry.Get("real_estate")
	if !ok {
		t.Fatal("real_estate not found")
	}
	if d.DisplayName != "Real Estate" || d.Persona.Name != "Emma" {
		t.Errorf("unexpected domain header %+v", d)
	}

	slot, ok := d.Slot("rooms")
	if !ok || slot.Type != schema.SlotTypeInteger {
		t.Errorf("rooms slot = %+v, ok=%v", slot, ok)
	}
	intent, ok := d.Intent("search_property")
	if !ok || len(intent.RequiredSlots) != 3 {
		t.Errorf("search_property intent = %+v, ok=%v", intent, ok)
	}

	if _, ok := registry.Get("telepathy"); ok {
		t.Error("unknown domain must not resolve")
	}
}

func TestLoad_MissingDir(t *testing.T) {
	if _, err := schema.Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoad_RejectsInvalidSchemas(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed json",
			content: `{"domain_name": "broken"`,
		},
		{
			name:    "missing domain name",
			content: `{"slots": [], "intents": [{"name": "x", "patterns": ["x"]}]}`,
		},
		{
			name:    "no intents",
			content: `{"domain_name": "d", "slots": [], "intents": []}`,
		},
		{
			name: "duplicate slot",
			content: `{"domain_name": "d",
				"slots": [{"name": "a", "type": "text"}, {"name": "a", "type": "text"}],
				"intents": [{"name": "x", "patterns": ["x"]}]}`,
		},
		{
			name: "unknown slot type",
			content: `{"domain_name": "d",
				"slots": [{"name": "a", "type": "boolean"}],
				"intents": [{"name": "x", "patterns": ["x"]}]}`,
		},
		{
			name: "place slot without values",
			content: `{"domain_name": "d",
				"slots": [{"name": "a", "type": "place"}],
				"intents": [{"name": "x", "patterns": ["x"]}]}`,
		},
		{
			name: "intent without patterns",
			content: `{"domain_name": "d", "slots": [],
				"intents": [{"name": "x", "patterns": []}]}`,
		},
		{
			name: "required slot undefined",
			content: `{"domain_name": "d", "slots": [],
				"intents": [{"name": "x", "patterns": ["x"], "required_slots": ["ghost"]}]}`,
		},
		{
			name: "duplicate intent",
			content: `{"domain_name": "d", "slots": [],
				"intents": [{"name": "x", "patterns": ["x"]}, {"name": "x", "patterns": ["y"]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeDomainFile(t, dir, "domain.json", tt.content)
			if _, err := schema.Load(dir); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_DuplicateDomainAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeDomainFile(t, dir, "a.json", restaurantJSON)
	writeDomainFile(t, dir, "b.json", restaurantJSON)

	if _, err := schema.Load(dir); err == nil {
		t.Error("expected duplicate domain error")
	}
}
