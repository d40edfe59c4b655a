package usecase

import (
	"context"
	"time"

	"test-data-assistant/pkg/openai"
)

// pollResult is a terminal poll outcome: either the assistant's response or
// a user-facing failure message.
type pollResult struct {
	success bool
	message string
}

// pollForResponse drives the run to a terminal state. Completed runs fetch
// the latest assistant message without sleeping; a requires_action run that
// submitted outputs re-polls immediately without consuming a poll attempt
// (tool rounds have their own cap); everything else sleeps one interval.
// Each wait is a suspend point on the request context.
func (uc *implUseCase) pollForResponse(ctx context.Context, threadID, runID string) pollResult {
	attempt := 0
	toolRounds := 0

	for attempt < uc.cfg.PollMaxAttempts {
		run, err := uc.openai.GetRunDetails(ctx, threadID, runID)
		if err != nil {
			uc.l.Errorf(ctx, "Error polling for response: %v", err)
			return pollResult{success: false, message: MsgPollError}
		}

		switch run.Status {
		case openai.RunStatusCompleted:
			text, err := uc.openai.LatestAssistantMessage(ctx, threadID)
			if err != nil {
				uc.l.Errorf(ctx, "Error fetching assistant response: %v", err)
				return pollResult{success: false, message: MsgPollError}
			}
			return pollResult{success: true, message: text}

		case openai.RunStatusRequiresAction:
			uc.l.Info(ctx, "Run requires action - processing tool calls")
			if uc.resolveToolCalls(ctx, threadID, runID, run) {
				toolRounds++
				if toolRounds >= uc.cfg.MaxToolRounds {
					uc.l.Warnf(ctx, "Run %s exceeded %d tool-resolution rounds", runID, uc.cfg.MaxToolRounds)
					return pollResult{success: false, message: MsgToolLoopExceeded}
				}
				continue
			}
			// Nothing was resolved; fall through to the sleep path so an
			// unresolvable action eventually exhausts the attempt budget.

		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired:
			uc.l.Warnf(ctx, "Run %s reached terminal status: %s", runID, run.Status)
			return pollResult{success: false, message: MsgRunFailed}
		}

		// queued, in_progress or unrecognized: wait one interval.
		select {
		case <-ctx.Done():
			uc.l.Warnf(ctx, "Polling interrupted: %v", ctx.Err())
			return pollResult{success: false, message: MsgInterrupted}
		case <-time.After(uc.cfg.PollInterval):
		}
		attempt++
	}

	return pollResult{success: false, message: MsgTimeout}
}
