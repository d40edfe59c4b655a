package conversation

import "context"

// UseCase is the conversation domain's public interface.
type UseCase interface {
	// Chat runs one full turn: safety check, turn initiation, polling the
	// remote run to a terminal state and updating dialogue state. A nil
	// error with Success=false means the turn was served but the remote
	// run did not produce a response (business failure).
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// NewConversation clears all local state and optionally deletes the
	// current remote thread.
	NewConversation(ctx context.Context, input NewConversationInput) (NewConversationOutput, error)

	// Status returns the turn count for a known thread.
	Status(ctx context.Context, threadID string) (StatusOutput, error)
}
