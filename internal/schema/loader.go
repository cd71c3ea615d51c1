package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads every *.json domain schema under dir, validates each one, and
// returns an immutable registry. Called once at process start.
func Load(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading domains dir %q: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	domains := make([]Domain, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		var d Domain
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("invalid domain schema %q: %w", path, err)
		}
		domains = append(domains, d)
	}

	return NewRegistry(domains)
}

// validate checks internal consistency of a single domain schema.
func validate(d Domain) error {
	if d.Name == "" {
		return fmt.Errorf("domain_name is required")
	}
	if len(d.Intents) == 0 {
		return fmt.Errorf("domain %q has no intents", d.Name)
	}

	slotNames := make(map[string]bool, len(d.Slots))
	for _, s := range d.Slots {
		if s.Name == "" {
			return fmt.Errorf("domain %q: slot with empty name", d.Name)
		}
		if slotNames[s.Name] {
			return fmt.Errorf("domain %q: duplicate slot %q", d.Name, s.Name)
		}
		slotNames[s.Name] = true

		switch s.Type {
		case SlotTypeInteger, SlotTypeCurrency, SlotTypeText:
		case SlotTypePlace, SlotTypeCategory:
			if len(s.Values) == 0 {
				return fmt.Errorf("domain %q: slot %q of type %q needs values", d.Name, s.Name, s.Type)
			}
		default:
			return fmt.Errorf("domain %q: slot %q has unknown type %q", d.Name, s.Name, s.Type)
		}
	}

	intentNames := make(map[string]bool, len(d.Intents))
	for _, in := range d.Intents {
		if in.Name == "" {
			return fmt.Errorf("domain %q: intent with empty name", d.Name)
		}
		if intentNames[in.Name] {
			return fmt.Errorf("domain %q: duplicate intent %q", d.Name, in.Name)
		}
		intentNames[in.Name] = true

		if len(in.Patterns) == 0 {
			return fmt.Errorf("domain %q: intent %q has no patterns", d.Name, in.Name)
		}
		for _, slot := range in.RequiredSlots {
			if !slotNames[slot] {
				return fmt.Errorf("domain %q: intent %q requires undefined slot %q", d.Name, in.Name, slot)
			}
		}
		for _, slot := range in.OptionalSlots {
			if !slotNames[slot] {
				return fmt.Errorf("domain %q: intent %q references undefined optional slot %q", d.Name, in.Name, slot)
			}
		}
	}

	return nil
}
