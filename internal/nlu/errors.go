package nlu

import "errors"

// Domain-specific errors for the nlu package.
var (
	// ErrEmptyInput marks empty or blank turn text. Recovered inside the
	// usecase into a fallback turn; never mutates session state.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrUnknownDomain rejects a turn for a domain id with no loaded schema.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrSessionNotFound is returned by snapshot lookups only.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupted marks an internal invariant violation, e.g. a
	// resolved turn with missing slots. A programming defect, never ignored.
	ErrSessionCorrupted = errors.New("session state corrupted")
)
