package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client implements IOpenAI against the Assistants v2 HTTP API.
// Every call is a single attempt; retries and backoff are the caller's
// concern.
type Client struct {
	apiKey      string
	baseURL     string
	assistantID string
	client      *http.Client
}

// New creates a new OpenAI Assistants client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.AssistantID == "" {
		return nil, fmt.Errorf("assistant ID is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		assistantID: cfg.AssistantID,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// AssistantID returns the configured assistant identifier.
func (c *Client) AssistantID() string {
	return c.assistantID
}

// CreateThreadAndRun creates a thread seeded with the first user message and
// starts a run on it in one API call.
func (c *Client) CreateThreadAndRun(ctx context.Context, message string) (ThreadRun, error) {
	req := threadRunRequest{
		AssistantID: c.assistantID,
		Stream:      false,
		Thread: threadPayload{
			Messages: []messageRequest{{Role: "user", Content: message}},
		},
	}

	var resp idResponse
	if err := c.post(ctx, "/threads/runs", req, &resp); err != nil {
		return ThreadRun{}, fmt.Errorf("failed to create thread and run: %w", err)
	}

	return ThreadRun{ThreadID: resp.ThreadID, RunID: resp.ID}, nil
}

// AddMessage appends a user message to an existing thread and returns the
// message ID.
func (c *Client) AddMessage(ctx context.Context, threadID, message string) (string, error) {
	req := messageRequest{Role: "user", Content: message}

	var resp idResponse
	if err := c.post(ctx, "/threads/"+threadID+"/messages", req, &resp); err != nil {
		return "", fmt.Errorf("failed to add message to thread %s: %w", threadID, err)
	}

	return resp.ID, nil
}

// StartRun starts a new run of the configured assistant on an existing
// thread and returns the run ID.
func (c *Client) StartRun(ctx context.Context, threadID string) (string, error) {
	req := runRequest{AssistantID: c.assistantID, Stream: false}

	var resp idResponse
	if err := c.post(ctx, "/threads/"+threadID+"/runs", req, &resp); err != nil {
		return "", fmt.Errorf("failed to start run on thread %s: %w", threadID, err)
	}

	return resp.ID, nil
}

// GetRunDetails fetches the current run object, including any
// required_action payload.
func (c *Client) GetRunDetails(ctx context.Context, threadID, runID string) (*Run, error) {
	var run Run
	if err := c.get(ctx, "/threads/"+threadID+"/runs/"+runID, &run); err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", runID, err)
	}
	return &run, nil
}

// SubmitToolOutputs submits a batch of resolved tool outputs back to a
// requires_action run.
func (c *Client) SubmitToolOutputs(ctx context.Context, threadID, runID string, outputs []ToolOutput) error {
	req := submitToolOutputsRequest{ToolOutputs: outputs}

	var resp idResponse
	if err := c.post(ctx, "/threads/"+threadID+"/runs/"+runID+"/submit_tool_outputs", req, &resp); err != nil {
		return fmt.Errorf("failed to submit tool outputs for run %s: %w", runID, err)
	}
	return nil
}

// ListMessages returns the thread messages, newest first.
func (c *Client) ListMessages(ctx context.Context, threadID string) (*MessageList, error) {
	var list MessageList
	if err := c.get(ctx, "/threads/"+threadID+"/messages", &list); err != nil {
		return nil, fmt.Errorf("failed to list messages of thread %s: %w", threadID, err)
	}
	return &list, nil
}

// LatestAssistantMessage returns the text of the most recent assistant
// message in the thread, or NoResponseAvailable if there is none.
func (c *Client) LatestAssistantMessage(ctx context.Context, threadID string) (string, error) {
	list, err := c.ListMessages(ctx, threadID)
	if err != nil {
		return "", err
	}

	// Messages arrive newest first, so the first assistant entry wins.
	for _, msg := range list.Data {
		if msg.Role != "assistant" {
			continue
		}
		for _, content := range msg.Content {
			if content.Text != nil {
				return content.Text.Value, nil
			}
		}
	}

	return NoResponseAvailable, nil
}

// DeleteThread deletes a thread and reports the API's deleted flag. Callers
// are expected to degrade an error to a logged warning and false.
func (c *Client) DeleteThread(ctx context.Context, threadID string) (bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/threads/"+threadID, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	var resp deleteResponse
	if err := c.do(httpReq, &resp); err != nil {
		return false, fmt.Errorf("failed to delete thread %s: %w", threadID, err)
	}
	return resp.Deleted, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	return c.do(httpReq, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(httpReq)

	return c.do(httpReq, out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set(BetaHeader, BetaHeaderValue)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
		}
		return fmt.Errorf("API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
