package usecase

import (
	"context"
	"fmt"
	"strings"

	"test-data-assistant/internal/conversation"
)

// Chat runs one full turn against the remote assistant.
func (uc *implUseCase) Chat(ctx context.Context, input conversation.ChatInput) (conversation.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return conversation.ChatOutput{}, conversation.ErrEmptyMessage
	}

	result := uc.filter.SanitizeAndValidate(ctx, input.Message)
	if !result.Allowed {
		return conversation.ChatOutput{}, &conversation.RejectionError{Reason: result.Reason}
	}
	message := result.Sanitized

	threadID, runID, err := uc.initiateTurn(ctx, input.ThreadID, message)
	if err != nil {
		return conversation.ChatOutput{}, err
	}

	poll := uc.pollForResponse(ctx, threadID, runID)
	if !poll.success {
		// Business failure: the turn was served but the run produced no
		// response. Dialogue state is left untouched.
		return conversation.ChatOutput{
			ThreadID:     threadID,
			Success:      false,
			ErrorMessage: poll.message,
		}, nil
	}

	state := uc.store.Update(ctx, threadID, message, poll.message)

	return conversation.ChatOutput{
		ThreadID:  threadID,
		Response:  poll.message,
		Success:   true,
		TurnCount: state.TurnCount,
	}, nil
}

// initiateTurn decides between the combined creation endpoint (brand-new
// threads only) and the add-message/start-run pair. Remote failure here is
// fatal for the request.
func (uc *implUseCase) initiateTurn(ctx context.Context, threadID, message string) (string, string, error) {
	isFirstMessage := threadID == "" || !uc.store.IsActive(threadID)

	if isFirstMessage {
		uc.l.Info(ctx, "Creating new thread and run for first message")
		threadRun, err := uc.openai.CreateThreadAndRun(ctx, message)
		if err != nil {
			return "", "", fmt.Errorf("failed to create thread and run: %w", err)
		}

		uc.store.GetOrCreate(ctx, threadRun.ThreadID)
		uc.store.SetAssistantID(ctx, threadRun.ThreadID, uc.openai.AssistantID())
		return threadRun.ThreadID, threadRun.RunID, nil
	}

	uc.l.Infof(ctx, "Adding message to existing thread: %s", threadID)
	messageID, err := uc.openai.AddMessage(ctx, threadID, message)
	if err != nil {
		return "", "", fmt.Errorf("failed to add message to thread: %w", err)
	}
	uc.l.Debugf(ctx, "Added message %s to thread %s", messageID, threadID)

	runID, err := uc.openai.StartRun(ctx, threadID)
	if err != nil {
		return "", "", fmt.Errorf("failed to start run: %w", err)
	}

	return threadID, runID, nil
}
