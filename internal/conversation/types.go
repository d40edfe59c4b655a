package conversation

// ChatInput is one inbound chat turn.
type ChatInput struct {
	Message  string
	ThreadID string // empty starts a new conversation
}

// ChatOutput is the result of a chat turn.
type ChatOutput struct {
	ThreadID     string
	Response     string
	Success      bool
	ErrorMessage string
	TurnCount    int
}

// NewConversationInput controls conversation reset behavior.
type NewConversationInput struct {
	DeleteCurrentThread bool
}

// NewConversationOutput is the fresh, threadless ready state.
type NewConversationOutput struct {
	Response string
}

// StatusOutput reports a thread's local turn state.
type StatusOutput struct {
	ThreadID  string
	TurnCount int
}
