package dialogue_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"test-data-assistant/internal/dialogue"
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

func newStore() *dialogue.Store {
	return dialogue.New(&mockLogger{})
}

func TestGetOrCreate(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	state := store.GetOrCreate(ctx, "thread_1")
	assert.Equal(t, "thread_1", state.ThreadID)
	assert.Equal(t, 0, state.TurnCount)
	assert.False(t, state.CreatedAt.IsZero())
	assert.True(t, state.LastUpdatedAt.IsZero())

	// Second call returns the existing state, mutation-free.
	again := store.GetOrCreate(ctx, "thread_1")
	assert.Equal(t, state.CreatedAt, again.CreatedAt)
	assert.Equal(t, 0, again.TurnCount)
}

func TestUpdateIncrementsTurnCount(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		state := store.Update(ctx, "thread_1", fmt.Sprintf("user %d", i), fmt.Sprintf("assistant %d", i))
		require.Equal(t, i, state.TurnCount)
	}

	state, ok := store.Get("thread_1")
	require.True(t, ok)
	assert.Equal(t, 5, state.TurnCount)
	assert.Equal(t, "user 5", state.LastUserMessage)
	assert.Equal(t, "assistant 5", state.LastAssistantResponse)
	assert.False(t, state.LastUpdatedAt.IsZero())
}

func TestGetAndIsActive(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.False(t, store.IsActive("missing"))

	store.GetOrCreate(ctx, "thread_1")
	assert.True(t, store.IsActive("thread_1"))
}

func TestClear(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	store.GetOrCreate(ctx, "thread_1")
	store.GetOrCreate(ctx, "thread_2")

	store.Clear(ctx, "thread_1")
	assert.False(t, store.IsActive("thread_1"))
	assert.True(t, store.IsActive("thread_2"))

	store.ClearAll(ctx)
	assert.False(t, store.IsActive("thread_2"))
	_, ok := store.CurrentThreadID()
	assert.False(t, ok)
}

func TestCurrentThreadID(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		_, ok := store.CurrentThreadID()
		assert.False(t, ok)
	})

	t.Run("after update it is the updated thread", func(t *testing.T) {
		store.GetOrCreate(ctx, "thread_a")
		store.GetOrCreate(ctx, "thread_b")
		store.Update(ctx, "thread_a", "hi", "hello")

		current, ok := store.CurrentThreadID()
		require.True(t, ok)
		assert.Equal(t, "thread_a", current)
	})

	t.Run("later update wins", func(t *testing.T) {
		store.Update(ctx, "thread_b", "more", "sure")

		current, ok := store.CurrentThreadID()
		require.True(t, ok)
		assert.Equal(t, "thread_b", current)
	})
}

func TestStateCopiesAreDefensive(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	store.SetContext(ctx, "thread_1", "sku", "SKU-1")
	state, ok := store.Get("thread_1")
	require.True(t, ok)

	state.Context["sku"] = "tampered"
	state.TurnCount = 99

	fresh, _ := store.Get("thread_1")
	assert.Equal(t, "SKU-1", fresh.Context["sku"])
	assert.Equal(t, 0, fresh.TurnCount)
}

func TestConcurrentUpdates(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	const goroutines = 8
	const updates = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < updates; i++ {
				store.Update(ctx, "thread_1", "u", "a")
			}
		}()
	}
	wg.Wait()

	state, ok := store.Get("thread_1")
	require.True(t, ok)
	assert.Equal(t, goroutines*updates, state.TurnCount)
}
