package openai

import "context"

// IOpenAI defines the interface for the Assistants v2 client.
type IOpenAI interface {
	AssistantID() string
	CreateThreadAndRun(ctx context.Context, message string) (ThreadRun, error)
	AddMessage(ctx context.Context, threadID, message string) (string, error)
	StartRun(ctx context.Context, threadID string) (string, error)
	GetRunDetails(ctx context.Context, threadID, runID string) (*Run, error)
	SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) error
	ListMessages(ctx context.Context, threadID string) (*MessageList, error)
	LatestAssistantMessage(ctx context.Context, threadID string) (string, error)
	DeleteThread(ctx context.Context, threadID string) (bool, error)
}
