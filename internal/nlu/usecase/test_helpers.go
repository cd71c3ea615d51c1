package usecase

import (
	"context"
	"sync"

	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/schema"
)

// mockLogger discards everything; tests only care about behavior.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mapStore is a plain map-backed SessionStore without expiry, enough for
// state-machine tests and a worked example of swapping the store backend.
type mapStore struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

func newMapStore() *mapStore {
	return &mapStore{sessions: map[string]model.Session{}}
}

func (s *mapStore) Get(key string) (model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[key]
	return session, ok
}

func (s *mapStore) Put(key string, session model.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = session
}

func (s *mapStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

func (s *mapStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// realEstateDomain mirrors the real_estate schema shipped in config/domains.
func realEstateDomain() schema.Domain {
	return schema.Domain{
		Name:        "real_estate",
		DisplayName: "Real Estate",
		Slots: []schema.Slot{
			{
				Name:    "price",
				Type:    schema.SlotTypeCurrency,
				Context: []string{"budget", "price", "rent"},
				Prompts: []string{"What budget are we working with?"},
			},
			{
				Name:    "location",
				Type:    schema.SlotTypePlace,
				Values:  []string{"london", "new york", "paris", "brooklyn", "manhattan"},
				Prompts: []string{"Which area would you like to live in?"},
			},
			{
				Name:    "rooms",
				Type:    schema.SlotTypeInteger,
				Context: []string{"room", "rooms", "bed", "bedroom", "bedrooms", "br"},
				Prompts: []string{"How many rooms do you need?"},
			},
		},
		Intents: []schema.Intent{
			{
				Name:          "search_property",
				Patterns:      []string{"house", "apartment", "property", "room", "rooms", "place", "need a", "looking for"},
				RequiredSlots: []string{"price", "location", "rooms"},
				Priority:      1,
				Acknowledgements: []string{
					"Perfect! Looking for a {rooms}-room place in {location} around ${price}. Searching now!",
				},
			},
			{
				Name:          "calculate_mortgage",
				Patterns:      []string{"mortgage", "calculate mortgage", "loan", "finance"},
				RequiredSlots: []string{"price", "down_payment"},
			},
			{Name: "greet", Patterns: []string{"hello", "hi", "hey"}},
		},
	}
}

func mortgageSlots() []schema.Slot {
	return []schema.Slot{
		{Name: "down_payment", Type: schema.SlotTypeCurrency, Context: []string{"down", "deposit"}},
	}
}

func newTestUseCase() (*implUseCase, *mapStore) {
	domain := realEstateDomain()
	domain.Slots = append(domain.Slots, mortgageSlots()...)

	registry, err := schema.NewRegistry([]schema.Domain{domain})
	if err != nil {
		panic(err)
	}

	store := newMapStore()
	return New(&mockLogger{}, registry, store), store
}
