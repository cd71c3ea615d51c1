package gocache_test

import (
	"context"
	"testing"
	"time"

	"voice-assistant-nlu/internal/model"
	"voice-assistant-nlu/internal/nlu/repository/gocache"
)

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

func TestStore_PutGet(t *testing.T) {
	store := gocache.New(&mockLogger{}, time.Minute, time.Minute)

	key := model.SessionKey("user1", "real_estate")
	session := model.Session{
		ID:     "abc",
		UserID: "user1",
		Domain: "real_estate",
		State:  model.SessionStateCollecting,
		Turn:   2,
	}

	if _, ok := store.Get(key); ok {
		t.Fatal("expected miss before Put")
	}

	store.Put(key, session)
	got, ok := store.Get(key)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if got.ID != "abc" || got.Turn != 2 {
		t.Errorf("got %+v, want stored session", got)
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestStore_Delete(t *testing.T) {
	store := gocache.New(&mockLogger{}, time.Minute, time.Minute)
	key := model.SessionKey("user1", "banking")

	store.Put(key, model.Session{ID: "x"})
	store.Delete(key)
	if _, ok := store.Get(key); ok {
		t.Error("expected miss after Delete")
	}
}

func TestStore_IdleExpiry(t *testing.T) {
	store := gocache.New(&mockLogger{}, 30*time.Millisecond, 10*time.Millisecond)
	key := model.SessionKey("user1", "travel")

	store.Put(key, model.Session{ID: "x", Turn: 5})
	time.Sleep(60 * time.Millisecond)

	if _, ok := store.Get(key); ok {
		t.Error("expected expired session to miss")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0 after expiry", store.Len())
	}
}

func TestStore_PutRefreshesTTL(t *testing.T) {
	store := gocache.New(&mockLogger{}, 50*time.Millisecond, 10*time.Millisecond)
	key := model.SessionKey("user1", "travel")

	store.Put(key, model.Session{Turn: 1})
	time.Sleep(30 * time.Millisecond)
	store.Put(key, model.Session{Turn: 2})
	time.Sleep(30 * time.Millisecond)

	// 60ms after the first Put, but only 30ms after the refresh.
	got, ok := store.Get(key)
	if !ok {
		t.Fatal("expected session to survive, Put should reset the idle timeout")
	}
	if got.Turn != 2 {
		t.Errorf("Turn = %d, want 2", got.Turn)
	}
}

func TestStore_KeysIsolated(t *testing.T) {
	store := gocache.New(&mockLogger{}, time.Minute, time.Minute)

	store.Put(model.SessionKey("user1", "banking"), model.Session{ID: "a"})
	store.Put(model.SessionKey("user2", "banking"), model.Session{ID: "b"})
	store.Put(model.SessionKey("user1", "travel"), model.Session{ID: "c"})

	got, _ := store.Get(model.SessionKey("user1", "banking"))
	if got.ID != "a" {
		t.Errorf("wrong session for user1/banking: %+v", got)
	}
	if store.Len() != 3 {
		t.Errorf("Len = %d, want 3", store.Len())
	}
}
