package usecase

import (
	"context"

	"test-data-assistant/internal/conversation"
)

// NewConversation clears all local conversation state and, when requested,
// deletes the current remote thread. Remote deletion failure degrades to a
// logged warning; the reset always succeeds.
func (uc *implUseCase) NewConversation(ctx context.Context, input conversation.NewConversationInput) (conversation.NewConversationOutput, error) {
	if input.DeleteCurrentThread {
		if currentThreadID, ok := uc.store.CurrentThreadID(); ok {
			uc.l.Infof(ctx, "Deleting thread: %s", currentThreadID)

			deleted, err := uc.openai.DeleteThread(ctx, currentThreadID)
			if err != nil {
				uc.l.Warnf(ctx, "Error deleting thread %s: %v", currentThreadID, err)
				deleted = false
			}
			if deleted {
				uc.l.Infof(ctx, "Successfully deleted thread: %s", currentThreadID)
			} else {
				uc.l.Warnf(ctx, "Failed to delete thread: %s", currentThreadID)
			}
		}
	}

	uc.store.ClearAll(ctx)

	return conversation.NewConversationOutput{Response: MsgConversationReady}, nil
}

// Status returns the turn count of a locally known thread.
func (uc *implUseCase) Status(ctx context.Context, threadID string) (conversation.StatusOutput, error) {
	state, ok := uc.store.Get(threadID)
	if !ok {
		return conversation.StatusOutput{}, conversation.ErrThreadNotFound
	}

	return conversation.StatusOutput{
		ThreadID:  threadID,
		TurnCount: state.TurnCount,
	}, nil
}
