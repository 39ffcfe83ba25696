package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/motionhq/motion/api/internal/model"
	"github.com/tidwall/gjson"
)

const (
	defaultBackendTimeout   = 60 * time.Second
	maxBackendResponseBytes = 10 << 20 // 10 MiB
	backendHealthPath       = "/health"
)

// BackendConfig holds configuration for the AI/places backend client
type BackendConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// BackendClient forwards requests to the AI/places backend and relays its replies
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient creates a new backend client
func NewBackendClient(cfg BackendConfig) *BackendClient {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultBackendTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &BackendClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the configured backend base URL
func (c *BackendClient) BaseURL() string {
	return c.baseURL
}

// Forward POSTs a JSON body to path on the backend.
// A 2xx reply is returned unchanged. Any other reply keeps its status and
// carries {"error": <upstream message>} as the body. Transport failures wrap
// ErrBackendUnreachable.
func (c *BackendClient) Forward(ctx context.Context, path string, body []byte, requestID string) (*model.ProxyResponse, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, ErrBackendPathInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBackendResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrBackendUnreachable, err)
	}

	if isSuccess(resp.StatusCode) {
		contentType := resp.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/json"
		}
		return &model.ProxyResponse{
			Status:      resp.StatusCode,
			ContentType: contentType,
			Body:        respBody,
		}, nil
	}

	errBody, err := json.Marshal(map[string]string{
		"error": UpstreamErrorMessage(resp.StatusCode, respBody),
	})
	if err != nil {
		return nil, fmt.Errorf("encode upstream error: %w", err)
	}
	return &model.ProxyResponse{
		Status:      resp.StatusCode,
		ContentType: "application/json",
		Body:        errBody,
	}, nil
}

// CheckHealth probes the backend's /health endpoint.
// The result is always populated; err is non-nil only when the backend
// could not be reached.
func (c *BackendClient) CheckHealth(ctx context.Context) (*model.HealthCheckResult, error) {
	result := &model.HealthCheckResult{BackendURL: c.baseURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+backendHealthPath, nil)
	if err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("%w: %v", ErrBackendUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBackendResponseBytes))
	if err != nil {
		result.Error = err.Error()
		return result, fmt.Errorf("%w: read response: %v", ErrBackendUnreachable, err)
	}

	result.Status = resp.StatusCode
	result.Success = isSuccess(resp.StatusCode)
	result.Data = responseData(body)
	if result.Success {
		result.Message = "Backend is reachable"
	} else {
		result.Message = fmt.Sprintf("Backend responded with status %d", resp.StatusCode)
	}
	return result, nil
}

// UpstreamErrorMessage extracts the message to relay from a failed backend reply:
// the "error" field of a JSON body, else the raw text, else the status text.
func UpstreamErrorMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		if field := gjson.GetBytes(body, "error"); field.Exists() {
			if field.Type == gjson.String {
				return field.String()
			}
			if msg := field.Get("message"); msg.Exists() {
				return msg.String()
			}
			return field.Raw
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// responseData keeps JSON bodies as JSON and anything else as text
func responseData(body []byte) interface{} {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if gjson.ValidBytes(trimmed) {
		return json.RawMessage(trimmed)
	}
	return string(trimmed)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
