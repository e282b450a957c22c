package walletdash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Error codes the client produces for failures that never yielded a service
// error envelope.
const (
	ErrCodeNetwork         = "network_error"
	ErrCodeInvalidResponse = "invalid_response"
	ErrCodeServiceError    = "service_error"
)

// APIError is the normalized failure for every WalletDash call: explicit
// {success:false} envelopes, non-2xx statuses, network failures and malformed
// bodies all end up here.
type APIError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("walletdash: %s: %s", e.Code, e.Message)
}

// Client talks to the WalletDash wallet/payment service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
	log        *zap.Logger
}

// NewClient builds a client for the given base URL. The timeout bounds every
// call including body read; WalletDash performs on-chain work so callers
// typically configure this generously (the default config uses 150s).
// Pass a nil observer to disable request reporting.
func NewClient(baseURL string, timeout time.Duration, observer Observer, log *zap.Logger) *Client {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		observer:   observer,
		log:        log,
	}
}

// envelope is the failure discriminant shared by all endpoints. A missing
// success field means success.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) CreateWallet(ctx context.Context, req CreateWalletRequest) (*CreateWalletResponse, error) {
	var resp CreateWalletResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreatePractice(ctx context.Context, req CreatePracticeRequest) (*CreatePracticeResponse, error) {
	var resp CreatePracticeResponse
	if err := c.do(ctx, http.MethodPost, "/practice/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateService(ctx context.Context, req CreateServiceRequest) (*CreateServiceResponse, error) {
	var resp CreateServiceResponse
	if err := c.do(ctx, http.MethodPost, "/service/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) PurchaseService(ctx context.Context, req PurchaseServiceRequest) (*PurchaseServiceResponse, error) {
	var resp PurchaseServiceResponse
	if err := c.do(ctx, http.MethodPost, "/service/purchase", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ClaimStatus(ctx context.Context, claimToken string) (*ClaimStatusResponse, error) {
	var resp ClaimStatusResponse
	if err := c.do(ctx, http.MethodGet, "/wallet/claim-status/"+claimToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) OracleHealth(ctx context.Context) (*OracleHealthResponse, error) {
	var resp OracleHealthResponse
	if err := c.do(ctx, http.MethodGet, "/oracle/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UserTypeAnalytics(ctx context.Context) (*UserTypeAnalyticsResponse, error) {
	var resp UserTypeAnalyticsResponse
	if err := c.do(ctx, http.MethodGet, "/analytics/user-types", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do runs one round trip and normalizes every failure mode into *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Code: ErrCodeInvalidResponse, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &APIError{Code: ErrCodeNetwork, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, path, 0, start, err.Error())
		return &APIError{Code: ErrCodeNetwork, Message: fmt.Sprintf("walletdash unavailable: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, path, resp.StatusCode, start, err.Error())
		return &APIError{Code: ErrCodeNetwork, Message: fmt.Sprintf("read response: %v", err)}
	}

	// The envelope takes precedence over HTTP status: the service reports
	// failures as {success:false} even on some 200 responses.
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Success != nil && !*env.Success {
		apiErr := &APIError{Code: env.Error, Message: env.Message}
		if apiErr.Code == "" {
			apiErr.Code = ErrCodeServiceError
		}
		c.observe(method, path, resp.StatusCode, start, apiErr.Message)
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Code:    ErrCodeServiceError,
			Message: fmt.Sprintf("walletdash returned %d: %s", resp.StatusCode, string(data)),
		}
		c.observe(method, path, resp.StatusCode, start, apiErr.Message)
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.observe(method, path, resp.StatusCode, start, err.Error())
		return &APIError{Code: ErrCodeInvalidResponse, Message: fmt.Sprintf("decode response: %v", err)}
	}

	c.observe(method, path, resp.StatusCode, start, "")
	return nil
}

func (c *Client) observe(method, path string, status int, start time.Time, errMsg string) {
	defer func() {
		if r := recover(); r != nil && c.log != nil {
			c.log.Warn("walletdash observer panicked", zap.Any("panic", r))
		}
	}()
	c.observer.ObserveRequest(Entry{
		Timestamp: start,
		Method:    method,
		Endpoint:  path,
		Status:    status,
		Latency:   time.Since(start),
		Err:       errMsg,
	})
}
