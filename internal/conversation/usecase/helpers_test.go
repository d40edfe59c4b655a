package usecase_test

import (
	"context"
	"sync"
	"time"

	"test-data-assistant/internal/conversation"
	"test-data-assistant/internal/conversation/usecase"
	"test-data-assistant/internal/dialogue"
	"test-data-assistant/internal/safety"
	"test-data-assistant/pkg/openai"
	"test-data-assistant/pkg/orderapi"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockOpenAI implements openai.IOpenAI. Run statuses are served from the
// runs queue in order; the last entry repeats once the queue is exhausted.
type mockOpenAI struct {
	mu sync.Mutex

	runs       []*openai.Run
	runIdx     int
	latestText string

	createErr error
	addErr    error
	startErr  error
	submitErr error
	deleteErr error
	deleted   bool

	createCalls  int
	addCalls     int
	startCalls   int
	statusCalls  int
	submitCalls  int
	deleteCalls  int
	submittedOut [][]openai.ToolOutput
}

func (m *mockOpenAI) AssistantID() string { return "asst_test" }

func (m *mockOpenAI) CreateThreadAndRun(ctx context.Context, message string) (openai.ThreadRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.createErr != nil {
		return openai.ThreadRun{}, m.createErr
	}
	return openai.ThreadRun{ThreadID: "thread_new", RunID: "run_1"}, nil
}

func (m *mockOpenAI) AddMessage(ctx context.Context, threadID, message string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++
	return "msg_1", m.addErr
}

func (m *mockOpenAI) StartRun(ctx context.Context, threadID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls++
	return "run_1", m.startErr
}

func (m *mockOpenAI) GetRunDetails(ctx context.Context, threadID, runID string) (*openai.Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCalls++
	if len(m.runs) == 0 {
		return &openai.Run{ID: runID, ThreadID: threadID, Status: openai.RunStatusInProgress}, nil
	}
	run := m.runs[m.runIdx]
	if m.runIdx < len(m.runs)-1 {
		m.runIdx++
	}
	return run, nil
}

func (m *mockOpenAI) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []openai.ToolOutput) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls++
	m.submittedOut = append(m.submittedOut, outputs)
	return m.submitErr
}

func (m *mockOpenAI) ListMessages(ctx context.Context, threadID string) (*openai.MessageList, error) {
	return &openai.MessageList{}, nil
}

func (m *mockOpenAI) LatestAssistantMessage(ctx context.Context, threadID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.latestText == "" {
		return openai.NoResponseAvailable, nil
	}
	return m.latestText, nil
}

func (m *mockOpenAI) DeleteThread(ctx context.Context, threadID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls++
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	return m.deleted, nil
}

type mockOrderAPI struct {
	resp orderapi.CreateOrderResponse
	err  error

	calls   int
	lastSKU string
}

func (m *mockOrderAPI) CreateOrder(ctx context.Context, skuID string) (orderapi.CreateOrderResponse, error) {
	m.calls++
	m.lastSKU = skuID
	return m.resp, m.err
}

// completedRun and friends build run fixtures.
func completedRun() *openai.Run {
	return &openai.Run{ID: "run_1", ThreadID: "thread_new", Status: openai.RunStatusCompleted}
}

func inProgressRun() *openai.Run {
	return &openai.Run{ID: "run_1", ThreadID: "thread_new", Status: openai.RunStatusInProgress}
}

func failedRun() *openai.Run {
	return &openai.Run{ID: "run_1", ThreadID: "thread_new", Status: openai.RunStatusFailed}
}

func requiresActionRun(calls ...openai.ToolCall) *openai.Run {
	return &openai.Run{
		ID:       "run_1",
		ThreadID: "thread_new",
		Status:   openai.RunStatusRequiresAction,
		RequiredAction: &openai.RequiredAction{
			Type:              openai.RequiredActionSubmitToolOutputs,
			SubmitToolOutputs: &openai.SubmitToolOutputs{ToolCalls: calls},
		},
	}
}

func orderToolCall(id, argsJSON string) openai.ToolCall {
	return openai.ToolCall{
		ID:   id,
		Type: "function",
		Function: openai.FunctionCall{
			Name:      usecase.FunctionGenerateTestOrder,
			Arguments: argsJSON,
		},
	}
}

// newFixture wires a usecase with the full safety filter and the given poll
// config. The store is returned so tests can seed and inspect state.
func newFixture(ai *mockOpenAI, orders *mockOrderAPI, cfg usecase.Config) (conversation.UseCase, *dialogue.Store) {
	store := dialogue.New(&mockLogger{})
	filter := safety.New(&mockLogger{}, safety.Config{
		FilterEnabled:             true,
		JailbreakDetectionEnabled: true,
		DomainValidationEnabled:   true,
	})
	uc := usecase.New(&mockLogger{}, ai, orders, filter, store, cfg)
	return uc, store
}

func fastConfig() usecase.Config {
	return usecase.Config{
		PollMaxAttempts: 30,
		PollInterval:    time.Millisecond,
		MaxToolRounds:   10,
	}
}
