package dialogue

import (
	"context"
	"time"
)

// GetOrCreate returns the state for threadID, creating it with a zero turn
// count if absent. The returned value is a copy.
func (s *Store) GetOrCreate(ctx context.Context, threadID string) ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getOrCreateLocked(ctx, threadID).clone()
}

func (s *Store) getOrCreateLocked(ctx context.Context, threadID string) *ConversationState {
	if state, ok := s.states[threadID]; ok {
		return state
	}

	state := &ConversationState{
		ThreadID:  threadID,
		CreatedAt: time.Now(),
		Context:   make(map[string]any),
	}
	s.states[threadID] = state
	s.l.Infof(ctx, "Created new conversation state for thread: %s", threadID)
	return state
}

// SetAssistantID records which assistant owns the thread.
func (s *Store) SetAssistantID(ctx context.Context, threadID, assistantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getOrCreateLocked(ctx, threadID).AssistantID = assistantID
}

// Update records a completed exchange: last messages, update timestamp and
// turn counter change together under one lock.
func (s *Store) Update(ctx context.Context, threadID, userMessage, assistantResponse string) ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.getOrCreateLocked(ctx, threadID)
	state.LastUserMessage = userMessage
	state.LastAssistantResponse = assistantResponse
	state.LastUpdatedAt = time.Now()
	state.TurnCount++
	return state.clone()
}

// SetContext stores an auxiliary key/value pair on the thread's state.
func (s *Store) SetContext(ctx context.Context, threadID, key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.getOrCreateLocked(ctx, threadID).Context[key] = value
}

// Get returns a copy of the state for threadID, if present.
func (s *Store) Get(threadID string) (ConversationState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[threadID]
	if !ok {
		return ConversationState{}, false
	}
	return state.clone(), true
}

// IsActive reports whether the thread has local state.
func (s *Store) IsActive(threadID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.states[threadID]
	return ok
}

// Clear removes a single thread's state.
func (s *Store) Clear(ctx context.Context, threadID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, threadID)
	s.l.Infof(ctx, "Cleared conversation state for thread: %s", threadID)
}

// ClearAll removes every conversation state.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states = make(map[string]*ConversationState)
	s.l.Info(ctx, "Cleared all conversation states from memory")
}

// CurrentThreadID returns the most recently updated (or, if never updated,
// most recently created) thread. Equal timestamps are broken by lexical
// thread ID order so the result is deterministic.
func (s *Store) CurrentThreadID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		best      *ConversationState
		bestTime  time.Time
		bestFound bool
	)
	for _, state := range s.states {
		t := state.effectiveTime()
		if !bestFound || t.After(bestTime) || (t.Equal(bestTime) && state.ThreadID > best.ThreadID) {
			best = state
			bestTime = t
			bestFound = true
		}
	}

	if !bestFound {
		return "", false
	}
	return best.ThreadID, true
}
