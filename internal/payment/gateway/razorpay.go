// Package gateway talks to the Razorpay Orders API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/gog-commerce/internal/payment/domain"
	"github.com/tair/gog-commerce/pkg/circuitbreaker"
	"github.com/tair/gog-commerce/pkg/logger"
)

// DefaultBaseURL is the public Razorpay API endpoint
const DefaultBaseURL = "https://api.razorpay.com"

// Config holds the Razorpay credentials and client tuning
type Config struct {
	BaseURL     string
	KeyID       string
	KeySecret   string
	Timeout     time.Duration
	MaxFailures int
	OpenTimeout time.Duration // how long the breaker stays open
}

// StatusError is a non-2xx reply from the gateway
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

// rejected reports whether the gateway refused the request itself. Such
// replies prove the gateway is up and do not trip the breaker.
func rejected(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500
}

// RazorpayClient creates gateway orders over HTTPS
type RazorpayClient struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
	breaker   *circuitbreaker.CircuitBreaker
}

// NewRazorpayClient creates a new Razorpay client
func NewRazorpayClient(cfg Config) *RazorpayClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	return &RazorpayClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: circuitbreaker.New("razorpay", cfg.MaxFailures, cfg.OpenTimeout),
	}
}

// CreateOrder posts req to /v1/orders and returns the decoded order object
func (c *RazorpayClient) CreateOrder(ctx context.Context, req domain.OrderRequest) (domain.GatewayOrder, error) {
	var (
		order     domain.GatewayOrder
		rejectErr error
	)
	err := c.breaker.Call(func() error {
		var err error
		order, err = c.createOrder(ctx, req)
		if rejected(err) {
			rejectErr = err
			return nil
		}
		return err
	})
	if err == nil {
		err = rejectErr
	}
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("receipt", req.Receipt).
			Str("circuit_state", string(c.breaker.State())).
			Msg("Gateway order creation failed")
		return nil, err
	}
	return order, nil
}

func (c *RazorpayClient) createOrder(ctx context.Context, req domain.OrderRequest) (domain.GatewayOrder, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}

	var order domain.GatewayOrder
	if err := json.Unmarshal(payload, &order); err != nil {
		return nil, fmt.Errorf("failed to decode gateway order: %w", err)
	}
	return order, nil
}

// CircuitStats reports the state of the breaker guarding the gateway
func (c *RazorpayClient) CircuitStats() map[string]interface{} {
	return c.breaker.Stats()
}
