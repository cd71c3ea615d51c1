package schema

// SlotType is the semantic type of a slot value.
type SlotType string

const (
	SlotTypeInteger  SlotType = "integer"  // bare count, e.g. number of rooms
	SlotTypeCurrency SlotType = "currency" // monetary amount, symbols stripped
	SlotTypePlace    SlotType = "place"    // gazetteer-matched place name
	SlotTypeCategory SlotType = "category" // one of an enumerated value set
	SlotTypeText     SlotType = "text"     // free text, taken verbatim
)

// Slot defines one piece of structured information intents can require.
type Slot struct {
	Name string   `json:"name"`
	Type SlotType `json:"type"`

	// Values is the gazetteer for place slots and the allowed set for
	// category slots. Matching is case-insensitive and exact, never fuzzy.
	Values []string `json:"values,omitempty"`

	// Context keywords disambiguate bare numbers: a number adjacent to one of
	// these reads as this slot with high confidence ("3 rooms" → rooms).
	Context []string `json:"context,omitempty"`

	// Prompts are the rotating ask-texts used while this slot is missing.
	Prompts []string `json:"prompts,omitempty"`
}

// Intent defines one user goal within a domain.
type Intent struct {
	Name          string   `json:"name"`
	Patterns      []string `json:"patterns"`
	RequiredSlots []string `json:"required_slots,omitempty"`
	OptionalSlots []string `json:"optional_slots,omitempty"`

	// Priority breaks score ties; higher wins.
	Priority int `json:"priority,omitempty"`

	// Acknowledgements are the rotating reply templates used once the intent
	// resolves. {slot_name} placeholders are filled from the merged slot set.
	Acknowledgements []string `json:"acknowledgements,omitempty"`
}

// Persona is the conversational identity of a domain assistant.
type Persona struct {
	Name     string `json:"name,omitempty"`
	Greeting string `json:"greeting,omitempty"`
	Goodbye  string `json:"goodbye,omitempty"`
	Help     string `json:"help,omitempty"`
}

// Domain is one business vertical's immutable NLU schema. Loaded once at
// startup and never mutated afterwards.
type Domain struct {
	Name        string   `json:"domain_name"`
	DisplayName string   `json:"display_name,omitempty"`
	Persona     Persona  `json:"persona,omitempty"`
	Slots       []Slot   `json:"slots"`
	Intents     []Intent `json:"intents"`

	// FallbackResponses rotate when no intent matches confidently.
	FallbackResponses []string `json:"fallback_responses,omitempty"`
}

// Slot returns the slot definition by name.
func (d Domain) Slot(name string) (Slot, bool) {
	for _, s := range d.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// Intent returns the intent definition by name.
func (d Domain) Intent(name string) (Intent, bool) {
	for _, in := range d.Intents {
		if in.Name == name {
			return in, true
		}
	}
	return Intent{}, false
}
