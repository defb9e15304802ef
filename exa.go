// Package exa is a typed client for the Exa search API. All three
// operations (Search, FindSimilar, GetContents) share one dispatch path:
// serialize the request, POST it with the API key header, classify the
// status, and decode either the typed response or the typed error payload.
//
// The client performs no retries, caching, or rate limiting; a call is a
// single request/response exchange governed by the caller's context.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public Exa API endpoint.
	DefaultBaseURL = "https://api.exa.ai"

	// APIKeyHeader carries the raw API key on every request.
	APIKeyHeader = "x-api-key"

	// APIKeyEnv is the environment variable consulted when Config.APIKey
	// is empty. It is read once, at construction.
	APIKeyEnv = "EXA_API_KEY"
)

type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Observer   Observer
}

// Observer receives one observation per completed HTTP exchange. Status
// is 0 when the request never produced a response (transport failure).
type Observer interface {
	Observe(endpoint string, status int, duration time.Duration)
}

// InFlightTracker is an optional Observer extension. When the configured
// observer implements it, the client brackets every HTTP exchange with
// an Inc/Dec pair.
type InFlightTracker interface {
	IncRequestsInFlight()
	DecRequestsInFlight()
}

// Client is safe for concurrent use: its configuration is immutable after
// New and no per-call state is shared.
type Client struct {
	apiKey   Secret
	baseURL  string
	client   *http.Client
	observer Observer
	logger   *zap.Logger
}

// New resolves the API key (explicit value first, then EXA_API_KEY) and
// builds a client. It performs no network I/O; a missing key is the only
// construction failure.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv(APIKeyEnv)
	}
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:   NewSecret(key),
		baseURL:  cfg.BaseURL,
		client:   cfg.HTTPClient,
		observer: cfg.Observer,
		logger:   logger,
	}, nil
}

// validator lets response types reject bodies with missing required
// fields; a 200 either decodes fully or fails as a DecodeError.
type validator interface {
	validate() error
}

// post is the shared dispatch pipeline. Methods cannot take type
// parameters, so every endpoint method delegates here.
func post[Req, Resp any](ctx context.Context, c *Client, path string, req Req) (*Resp, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(APIKeyHeader, c.apiKey.expose())

	if tracker, ok := c.observer.(InFlightTracker); ok {
		tracker.IncRequestsInFlight()
		defer tracker.DecRequestsInFlight()
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.observe(path, 0, time.Since(start))
		return nil, &TransportError{Err: err}
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	elapsed := time.Since(start)
	c.observe(path, resp.StatusCode, elapsed)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.logger.Debug("exa request finished",
		zap.String("endpoint", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", elapsed),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload errorPayload
		if err := json.Unmarshal(respBody, &payload); err != nil {
			return nil, &DecodeError{Endpoint: path, Err: err}
		}
		if err := payload.validate(); err != nil {
			return nil, &DecodeError{Endpoint: path, Err: err}
		}
		return nil, &HTTPError{
			Status:  resp.StatusCode,
			Code:    *payload.Code,
			Message: *payload.Message,
		}
	}

	var out Resp
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, &DecodeError{Endpoint: path, Err: err}
	}
	if v, ok := any(&out).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, &DecodeError{Endpoint: path, Err: err}
		}
	}
	return &out, nil
}

func (c *Client) observe(endpoint string, status int, duration time.Duration) {
	if c.observer != nil {
		c.observer.Observe(endpoint, status, duration)
	}
}
