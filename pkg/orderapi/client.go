package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL points at the local order endpoint hosted by this service.
const DefaultBaseURL = "http://localhost:8080"

// Client is the order-creation API client. Calls are synchronous and
// single-attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new order API client.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CreateOrder requests a synthesized order for the given SKU.
func (c *Client) CreateOrder(ctx context.Context, skuID string) (CreateOrderResponse, error) {
	body, err := json.Marshal(CreateOrderRequest{SKUID: skuID})
	if err != nil {
		return CreateOrderResponse{}, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders/create", bytes.NewReader(body))
	if err != nil {
		return CreateOrderResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CreateOrderResponse{}, fmt.Errorf("failed to call order API: %w", err)
	}
	defer resp.Body.Close()

	var result CreateOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return CreateOrderResponse{}, fmt.Errorf("failed to decode order response: %w", err)
	}

	return result, nil
}
