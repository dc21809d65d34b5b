// Package payout provides the HTTP client for the external payment rail that
// moves funds to travelers and back to clients.
package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

const (
	maxAttempts    = 3
	retryBaseDelay = 200 * time.Millisecond
	requestTimeout = 10 * time.Second
)

// Client calls the payout provider's REST API. Transient failures (network
// errors and 5xx responses) are retried a bounded number of times; a 4xx
// response is final. Callers treat the whole operation as at-least-once and
// reconcile failed payouts out of band.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a payout client for the given provider endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type payoutRequest struct {
	DestinationAccount string `json:"destinationAccount"`
	Amount             int64  `json:"amount"`
}

type payoutResponse struct {
	ConfirmationID string `json:"confirmationId"`
}

// Payout moves the amount to the destination account and returns the rail's
// confirmation ID.
func (c *Client) Payout(ctx context.Context, destinationAccount string, amount kernel.Money) (string, error) {
	body, err := json.Marshal(payoutRequest{
		DestinationAccount: destinationAccount,
		Amount:             amount.Amount(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal payout request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryBaseDelay * time.Duration(attempt-1)):
			}
		}

		confirmationID, retryable, attemptErr := c.attempt(ctx, body)
		if attemptErr == nil {
			return confirmationID, nil
		}
		if !retryable {
			return "", attemptErr
		}
		lastErr = attemptErr
	}

	return "", fmt.Errorf("payout failed after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) attempt(ctx context.Context, body []byte) (confirmationID string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payouts", bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("build payout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("send payout request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var parsed payoutResponse
		if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return "", false, fmt.Errorf("decode payout response: %w", err)
		}
		return parsed.ConfirmationID, false, nil
	case resp.StatusCode >= 500:
		return "", true, fmt.Errorf("payout provider returned status %d", resp.StatusCode)
	default:
		return "", false, fmt.Errorf("payout rejected with status %d", resp.StatusCode)
	}
}

var _ ports.PayoutClient = (*Client)(nil)
