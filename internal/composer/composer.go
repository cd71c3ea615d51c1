package composer

import (
	"fmt"
	"sort"
	"strings"

	"voice-assistant-nlu/internal/nlu"
	"voice-assistant-nlu/internal/schema"
)

// Input is the turn summary the composer renders a reply from.
type Input struct {
	Intent  string
	Status  nlu.TurnStatus
	Slots   map[string]string
	Missing []string
	Turn    int // session turn counter, drives template rotation
}

// Compose maps a turn result to reply text. Pure formatting: the template is
// picked by turn counter modulo the rotation pool size, so consecutive turns
// cycle through phrasings instead of repeating the same line.
func Compose(in Input, domain schema.Domain) string {
	switch in.Status {
	case nlu.StatusFallback:
		return rotate(pool(domain.FallbackResponses, defaultFallbackTemplates), in.Turn)
	case nlu.StatusIncomplete:
		return askMissing(in, domain)
	case nlu.StatusResolved:
		return acknowledge(in, domain)
	}
	return rotate(defaultFallbackTemplates, in.Turn)
}

// askMissing prompts for the first missing required slot and mentions the rest.
func askMissing(in Input, domain schema.Domain) string {
	if len(in.Missing) == 0 {
		return rotate(defaultFallbackTemplates, in.Turn)
	}

	first := in.Missing[0]
	var prompts []string
	if slot, ok := domain.Slot(first); ok {
		prompts = slot.Prompts
	}

	var b strings.Builder
	template := rotate(pool(prompts, defaultAskTemplates), in.Turn)
	if strings.Contains(template, "%s") {
		b.WriteString(fmt.Sprintf(template, humanize(first)))
	} else {
		b.WriteString(template)
	}

	if rest := in.Missing[1:]; len(rest) > 0 {
		names := make([]string, len(rest))
		for i, name := range rest {
			names[i] = humanize(name)
		}
		b.WriteString(fmt.Sprintf(rotate(defaultAskMoreSuffixes, in.Turn), strings.Join(names, ", ")))
	}
	return b.String()
}

// acknowledge renders the resolved reply for the active intent.
func acknowledge(in Input, domain schema.Domain) string {
	switch in.Intent {
	case intentGreet:
		return rotate(preferCustom(personaPool(domain.Persona.Greeting), defaultGreetings), in.Turn)
	case intentGoodbye:
		return rotate(preferCustom(personaPool(domain.Persona.Goodbye), defaultGoodbyes), in.Turn)
	case intentHelp:
		return rotate(preferCustom(personaPool(domain.Persona.Help), defaultHelp), in.Turn)
	}

	var templates []string
	if intent, ok := domain.Intent(in.Intent); ok {
		templates = intent.Acknowledgements
	}

	template := rotate(preferCustom(templates, defaultResolvedTemplates), in.Turn)
	reply := fillPlaceholders(template, in.Slots)
	if strings.Contains(reply, "%s") {
		reply = fmt.Sprintf(reply, humanize(in.Intent))
	}
	if len(in.Slots) > 0 && reply == template && !strings.Contains(template, "{") {
		// Default template with no placeholders: append the captured values so
		// the user can confirm what was understood.
		reply += " (" + slotSummary(in.Slots) + ")"
	}
	return reply
}

// preferCustom uses schema-provided texts when any exist. A resolved intent may
// legitimately repeat its ack; the variation guarantee only binds incomplete
// and fallback turns.
func preferCustom(custom, defaults []string) []string {
	if len(custom) > 0 {
		return custom
	}
	return defaults
}

// pool prepends schema-provided texts to the default rotation set.
func pool(custom, defaults []string) []string {
	if len(custom) == 0 {
		return defaults
	}
	return append(append([]string{}, custom...), defaults...)
}

func personaPool(text string) []string {
	if text == "" {
		return nil
	}
	return []string{text}
}

// rotate picks templates[turn mod len]. The pool is never empty.
func rotate(templates []string, turn int) string {
	if turn < 0 {
		turn = 0
	}
	return templates[turn%len(templates)]
}

// fillPlaceholders substitutes {slot_name} markers with merged slot values.
func fillPlaceholders(template string, slots map[string]string) string {
	out := template
	for name, value := range slots {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

// slotSummary renders the merged slots as "name value" pairs in sorted order.
func slotSummary(slots map[string]string) string {
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %s", humanize(name), slots[name])
	}
	return strings.Join(parts, ", ")
}

// humanize turns a snake_case identifier into words.
func humanize(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
