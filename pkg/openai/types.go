package openai

// Config holds client configuration.
type Config struct {
	APIKey      string
	BaseURL     string
	AssistantID string
}

// ThreadRun is the result of the combined thread+run creation endpoint.
type ThreadRun struct {
	ThreadID string
	RunID    string
}

// Run is a run object as returned by GET /threads/{id}/runs/{id}.
type Run struct {
	ID             string          `json:"id"`
	ThreadID       string          `json:"thread_id"`
	Status         string          `json:"status"`
	RequiredAction *RequiredAction `json:"required_action,omitempty"`
}

// RequiredAction describes what the API needs before the run can continue.
type RequiredAction struct {
	Type              string             `json:"type"`
	SubmitToolOutputs *SubmitToolOutputs `json:"submit_tool_outputs,omitempty"`
}

// SubmitToolOutputs carries the pending tool calls of a requires_action run.
type SubmitToolOutputs struct {
	ToolCalls []ToolCall `json:"tool_calls"`
}

// ToolCall is a single pending function invocation requested by the assistant.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the function name and its raw JSON arguments string.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolOutput is one resolved tool result to submit back to the run.
type ToolOutput struct {
	ToolCallID string `json:"tool_call_id"`
	Output     string `json:"output"`
}

// MessageList is the thread message listing; the API returns messages in
// reverse chronological order (newest first).
type MessageList struct {
	Data []Message `json:"data"`
}

// Message is a single thread message.
type Message struct {
	ID      string           `json:"id"`
	Role    string           `json:"role"`
	Content []MessageContent `json:"content"`
}

// MessageContent is one content block of a message.
type MessageContent struct {
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

// MessageText is the text payload of a content block.
type MessageText struct {
	Value string `json:"value"`
}

// --- wire request/response shapes (internal) ---

type threadRunRequest struct {
	AssistantID string        `json:"assistant_id"`
	Stream      bool          `json:"stream"`
	Thread      threadPayload `json:"thread"`
}

type threadPayload struct {
	Messages []messageRequest `json:"messages"`
}

type messageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type runRequest struct {
	AssistantID string `json:"assistant_id"`
	Stream      bool   `json:"stream"`
}

type submitToolOutputsRequest struct {
	ToolOutputs []ToolOutput `json:"tool_outputs"`
}

type idResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ErrorResponse is the API error body.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
