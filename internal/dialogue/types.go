package dialogue

import "time"

// ConversationState tracks one thread's local turn state. The thread ID is
// assigned by the remote API; nothing here is persisted, so a process
// restart loses all conversations and orphans their remote threads.
type ConversationState struct {
	ThreadID              string
	AssistantID           string
	LastUserMessage       string
	LastAssistantResponse string
	CreatedAt             time.Time
	LastUpdatedAt         time.Time // zero until the first completed turn
	TurnCount             int
	Context               map[string]any
}

// effectiveTime is the recency key for current-thread selection.
func (s *ConversationState) effectiveTime() time.Time {
	if !s.LastUpdatedAt.IsZero() {
		return s.LastUpdatedAt
	}
	return s.CreatedAt
}

// clone returns a defensive copy safe to hand out of the store.
func (s *ConversationState) clone() ConversationState {
	out := *s
	out.Context = make(map[string]any, len(s.Context))
	for k, v := range s.Context {
		out.Context[k] = v
	}
	return out
}
