// Package gateway implements the Evolution API client used to transmit
// campaign messages through a connected WhatsApp instance.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/dmfreire/zapdispatch/internal/config"
)

var digitsOnly = regexp.MustCompile(`[^\d]`)

// Outbound is one message bound for one destination.
type Outbound struct {
	Number      string
	Text        string
	DelayMillis int
	Content     Content
}

// SendResult carries the provider message id and the raw response body.
type SendResult struct {
	MessageID string
	Raw       json.RawMessage
}

// APIError is a non-2xx gateway response; the body is preserved so the
// dispatch record can store it.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway returned status %d", e.StatusCode)
}

// Client posts message payloads to the Evolution API behind a circuit
// breaker, so a dead provider trips fast instead of stalling every
// campaign loop on timeouts.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

func NewClient(cfg *config.GatewayConfig, logger *zap.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        "evolution-gateway",
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
		Timeout:     time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.CircuitBreaker.ConsecutiveFails &&
				failureRatio >= cfg.CircuitBreaker.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Gateway circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Send transmits one message. The delay hint is forwarded to the
// provider; the caller's own sleep between contacts is what actually
// paces the campaign.
func (c *Client) Send(ctx context.Context, instance string, out Outbound) (*SendResult, error) {
	body := out.Content.fields(out)
	body["number"] = FormatNumber(out.Number)
	body["delay"] = out.DelayMillis

	url := fmt.Sprintf("%s/message/%s/%s", c.baseURL, out.Content.endpoint(), instance)

	raw, err := c.post(ctx, url, body)
	if err != nil {
		return nil, err
	}

	return &SendResult{
		MessageID: gjson.GetBytes(raw, "key.id").String(),
		Raw:       raw,
	}, nil
}

// ConnectionState queries the instance's connection status.
func (c *Client) ConnectionState(ctx context.Context, instance string) (string, error) {
	url := fmt.Sprintf("%s/instance/connectionState/%s", c.baseURL, instance)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query connection state: %w", err)
	}
	defer c.closeBody(resp)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	return gjson.GetBytes(raw, "instance.state").String(), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]interface{}) (json.RawMessage, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("apikey", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to send request: %w", err)
		}
		defer c.closeBody(resp)

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: raw}
		}

		return json.RawMessage(raw), nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			c.logger.Warn("Gateway circuit breaker rejected request", zap.Error(err))
			return nil, fmt.Errorf("gateway unavailable: %w", err)
		}
		return nil, err
	}

	return result.(json.RawMessage), nil
}

func (c *Client) closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.Warn("Failed to close response body", zap.Error(err))
	}
}

// FormatNumber converts a destination to the provider's handle format.
func FormatNumber(number string) string {
	if strings.Contains(number, "@s.whatsapp.net") {
		return number
	}
	return digitsOnly.ReplaceAllString(number, "") + "@s.whatsapp.net"
}
