package composer

// Default template pools. Schema-provided texts are prepended to these, so
// every rotation pool has at least two entries and consecutive turns with the
// same missing-slot set never render byte-identical replies.

var defaultAskTemplates = []string{
	"Could you tell me the %s?",
	"What %s should I go with?",
	"I still need the %s to continue.",
	"One more thing: what's the %s?",
}

var defaultAskMoreSuffixes = []string{
	" I'll also need: %s.",
	" After that, just %s to go.",
	" Still open: %s.",
}

var defaultResolvedTemplates = []string{
	"All set! I have everything I need for %s.",
	"Perfect, that's everything for %s. On it!",
	"Great, %s is good to go.",
}

var defaultFallbackTemplates = []string{
	"I'm not sure I caught that. Could you say it another way?",
	"Hmm, that didn't match anything I can help with here. Mind rephrasing?",
	"I didn't quite get that one. What would you like to do?",
}

var defaultGreetings = []string{
	"Hi! How can I help you today?",
	"Hello! What can I do for you?",
}

var defaultGoodbyes = []string{
	"Great chatting with you! Come back anytime.",
	"Bye for now, happy to help again later.",
}

var defaultHelp = []string{
	"I'm here to help! What do you need?",
	"Tell me what you're after and I'll do my best.",
}

// Intents treated as conversational small talk rather than slot filling.
const (
	intentGreet   = "greet"
	intentGoodbye = "goodbye"
	intentHelp    = "help"
)
