package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"test-data-assistant/internal/conversation"
	"test-data-assistant/internal/conversation/usecase"
	"test-data-assistant/pkg/openai"
	"test-data-assistant/pkg/orderapi"
)

func chat(t *testing.T, uc conversation.UseCase) conversation.ChatOutput {
	t.Helper()
	out, err := uc.Chat(context.Background(), conversation.ChatInput{Message: "generate test data"})
	require.NoError(t, err)
	return out
}

func TestPollTimeoutAfterMaxAttempts(t *testing.T) {
	// Empty runs queue: the mock reports in_progress forever.
	ai := &mockOpenAI{}
	uc, store := newFixture(ai, &mockOrderAPI{}, fastConfig())

	out := chat(t, uc)

	assert.False(t, out.Success)
	assert.Equal(t, usecase.MsgTimeout, out.ErrorMessage)
	assert.Equal(t, 30, ai.statusCalls, "expected exactly one status check per attempt")

	state, _ := store.Get("thread_new")
	assert.Zero(t, state.TurnCount)
}

func TestPollRequiresActionFastPath(t *testing.T) {
	ai := &mockOpenAI{
		runs: []*openai.Run{
			requiresActionRun(orderToolCall("call_1", `{"sku_id":"SKU-7"}`)),
			completedRun(),
		},
		latestText: "Order placed.",
	}
	orders := &mockOrderAPI{resp: orderapi.CreateOrderResponse{
		OrderNumber: "1724930000000",
		SKUID:       "SKU-7",
		Success:     true,
		Message:     "Order created successfully",
	}}

	// A long interval proves the fast path skips the sleep: with one sleep
	// the test would take 5s.
	cfg := usecase.Config{PollMaxAttempts: 30, PollInterval: 5 * time.Second, MaxToolRounds: 10}
	uc, _ := newFixture(ai, orders, cfg)

	start := time.Now()
	out := chat(t, uc)
	elapsed := time.Since(start)

	assert.True(t, out.Success)
	assert.Equal(t, "Order placed.", out.Response)
	assert.Less(t, elapsed, time.Second, "tool submission must re-poll without sleeping")

	require.Equal(t, 1, ai.submitCalls)
	require.Len(t, ai.submittedOut[0], 1)
	assert.Equal(t, "call_1", ai.submittedOut[0][0].ToolCallID)
	assert.Equal(t, "Order created successfully. Order Number: 1724930000000, SKU: SKU-7", ai.submittedOut[0][0].Output)
	assert.Equal(t, "SKU-7", orders.lastSKU)
	assert.Equal(t, 2, ai.statusCalls)
}

func TestPollToolRoundsAreBounded(t *testing.T) {
	// The remote side re-enters requires_action forever.
	ai := &mockOpenAI{
		runs: []*openai.Run{requiresActionRun(orderToolCall("call_1", `{"sku_id":"SKU-7"}`))},
	}
	orders := &mockOrderAPI{resp: orderapi.CreateOrderResponse{Success: true, OrderNumber: "1", SKUID: "SKU-7"}}

	cfg := usecase.Config{PollMaxAttempts: 30, PollInterval: 5 * time.Second, MaxToolRounds: 3}
	uc, _ := newFixture(ai, orders, cfg)

	out := chat(t, uc)

	assert.False(t, out.Success)
	assert.Equal(t, usecase.MsgToolLoopExceeded, out.ErrorMessage)
	assert.Equal(t, 3, ai.submitCalls)
}

func TestPollMalformedAndUnknownToolCalls(t *testing.T) {
	unknownCall := openai.ToolCall{
		ID:       "call_2",
		Type:     "function",
		Function: openai.FunctionCall{Name: "mystery_function", Arguments: `{}`},
	}
	malformedCall := orderToolCall("call_3", `{not json`)

	ai := &mockOpenAI{
		runs: []*openai.Run{
			requiresActionRun(malformedCall, unknownCall),
			completedRun(),
		},
		latestText: "done",
	}
	uc, _ := newFixture(ai, &mockOrderAPI{}, fastConfig())

	out := chat(t, uc)

	assert.True(t, out.Success)
	require.Equal(t, 1, ai.submitCalls)
	require.Len(t, ai.submittedOut[0], 1, "malformed payload must be skipped, not fatal")
	assert.Equal(t, "call_2", ai.submittedOut[0][0].ToolCallID)
	assert.Equal(t, "Unknown function: mystery_function", ai.submittedOut[0][0].Output)
}

func TestPollMissingSKU(t *testing.T) {
	ai := &mockOpenAI{
		runs: []*openai.Run{
			requiresActionRun(orderToolCall("call_1", `{}`)),
			completedRun(),
		},
		latestText: "done",
	}
	orders := &mockOrderAPI{}
	uc, _ := newFixture(ai, orders, fastConfig())

	out := chat(t, uc)

	assert.True(t, out.Success)
	require.Equal(t, 1, ai.submitCalls)
	assert.Equal(t, "Error: SKU ID is required but not provided", ai.submittedOut[0][0].Output)
	assert.Zero(t, orders.calls)
}

func TestPollOrderFailureBecomesToolOutput(t *testing.T) {
	ai := &mockOpenAI{
		runs: []*openai.Run{
			requiresActionRun(orderToolCall("call_1", `{"sku_id":"SKU-9"}`)),
			completedRun(),
		},
		latestText: "sorry",
	}
	orders := &mockOrderAPI{resp: orderapi.CreateOrderResponse{Success: false, Message: "SKU not stocked"}}
	uc, _ := newFixture(ai, orders, fastConfig())

	out := chat(t, uc)

	assert.True(t, out.Success)
	require.Equal(t, 1, ai.submitCalls)
	assert.Equal(t, "Failed to create order: SKU not stocked", ai.submittedOut[0][0].Output)
}

func TestPollUnknownActionTypeStalls(t *testing.T) {
	stalled := &openai.Run{
		ID:       "run_1",
		ThreadID: "thread_new",
		Status:   openai.RunStatusRequiresAction,
		RequiredAction: &openai.RequiredAction{
			Type: "approve_something",
		},
	}
	ai := &mockOpenAI{
		runs:       []*openai.Run{stalled, completedRun()},
		latestText: "eventually",
	}
	uc, _ := newFixture(ai, &mockOrderAPI{}, fastConfig())

	out := chat(t, uc)

	// Unresolvable actions take the sleep path; nothing is submitted.
	assert.True(t, out.Success)
	assert.Zero(t, ai.submitCalls)
	assert.Equal(t, 2, ai.statusCalls)
}

func TestPollCancellation(t *testing.T) {
	ai := &mockOpenAI{} // in_progress forever
	cfg := usecase.Config{PollMaxAttempts: 30, PollInterval: 5 * time.Second, MaxToolRounds: 10}
	uc, _ := newFixture(ai, &mockOrderAPI{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := uc.Chat(ctx, conversation.ChatInput{Message: "generate test data"})
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Equal(t, usecase.MsgInterrupted, out.ErrorMessage)
	assert.Equal(t, 1, ai.statusCalls)
}
