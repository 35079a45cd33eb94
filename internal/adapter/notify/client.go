// Package notify integrates with the outbound notification gateway that
// delivers customer-facing messages (WhatsApp templates behind an HTTP API).
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/okunev/orderdesk/internal/domain/model"
)

// Sender delivers a confirmed notification intent. A failed delivery is
// reported through SendResult, never as a hard error into the caller's
// order-mutation path; only transport-level problems surface as errors.
type Sender interface {
	Send(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error)
}

// HTTPClient implements Sender via the gateway HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload returned by the gateway.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPClient creates an HTTP gateway client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse notify url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("notify url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the intent payload to the route endpoint of the gateway.
func (c *HTTPClient) Send(ctx context.Context, intent *model.NotificationIntent) (*model.SendResult, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/send/", string(intent.Route))

	body, err := json.Marshal(intent.Payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		result := model.SendResult{Success: true, Message: "sent"}
		if len(raw) > 0 {
			var data response
			if err := json.Unmarshal(raw, &data); err == nil {
				result.Success = data.Success
				if data.Message != "" {
					result.Message = data.Message
				}
			}
		}
		return &result, nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return &model.SendResult{
			Success: false,
			Message: fmt.Sprintf("gateway rate limited, retry after %s", retryAfter),
		}, nil
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("notification send failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return &model.SendResult{Success: false, Message: resp.Status}, nil
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
