package openai

const (
	// DefaultBaseURL is the default OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// BetaHeader opts into the Assistants v2 API surface.
	BetaHeader      = "OpenAI-Beta"
	BetaHeaderValue = "assistants=v2"
)

// Run lifecycle statuses as reported by the API.
const (
	RunStatusQueued         = "queued"
	RunStatusInProgress     = "in_progress"
	RunStatusRequiresAction = "requires_action"
	RunStatusCompleted      = "completed"
	RunStatusFailed         = "failed"
	RunStatusCancelled      = "cancelled"
	RunStatusExpired        = "expired"
)

// RequiredActionSubmitToolOutputs is the only required_action type this
// client understands.
const RequiredActionSubmitToolOutputs = "submit_tool_outputs"

// NoResponseAvailable is returned when a thread holds no assistant message.
const NoResponseAvailable = "No response available"
