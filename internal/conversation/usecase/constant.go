package usecase

import "time"

// Poll loop defaults.
const (
	DefaultPollMaxAttempts = 30
	DefaultPollInterval    = 1000 * time.Millisecond

	// DefaultMaxToolRounds bounds how many times a run may re-enter
	// requires_action with submitted outputs before the turn is abandoned.
	// Counted separately from poll attempts because tool submissions
	// re-poll without sleeping.
	DefaultMaxToolRounds = 10
)

// FunctionGenerateTestOrder is the single tool function this service resolves.
const FunctionGenerateTestOrder = "generate_test_order_only_on_request"

// Terminal user-facing messages.
const (
	MsgRunFailed        = "The assistant run failed. Please try again."
	MsgTimeout          = "Request timed out. Please try again."
	MsgPollError        = "Error retrieving response. Please try again."
	MsgInterrupted      = "Request was interrupted. Please try again."
	MsgToolLoopExceeded = "The assistant could not complete its tool calls. Please try again."

	MsgConversationReady = "New conversation ready. Send your first message to start!"
)
