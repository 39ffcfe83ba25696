package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	maxSupabaseResponseBytes  = 8 << 20  // 8 MiB
	maxSupabaseErrorBodyBytes = 32 << 10 // 32 KiB
)

// SupabaseConfig holds Supabase REST settings
type SupabaseConfig struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// SupabaseClient performs PostgREST calls against a Supabase project
type SupabaseClient struct {
	restURL    string
	apiKey     string
	httpClient *http.Client
}

// SupabaseError is a non-2xx PostgREST reply
type SupabaseError struct {
	Status  int
	Message string
}

func (e *SupabaseError) Error() string {
	return fmt.Sprintf("supabase API error %d: %s", e.Status, e.Message)
}

// Unwrap lets callers match ErrQuery
func (e *SupabaseError) Unwrap() error {
	return ErrQuery
}

// NewSupabaseClient creates a Supabase REST client
func NewSupabaseClient(cfg SupabaseConfig) (*SupabaseClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("supabase URL is required")
	}
	parsed, err := url.Parse(cfg.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("supabase URL must be an absolute URL, got %q", cfg.URL)
	}
	if cfg.APIKey == "" {
		return nil, errors.New("supabase API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &SupabaseClient{
		restURL:    strings.TrimRight(cfg.URL, "/") + "/rest/v1",
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// Eq builds a PostgREST equality filter value
func Eq(value string) string {
	return "eq." + value
}

// Select reads rows from a table
func (c *SupabaseClient) Select(ctx context.Context, table string, query url.Values) ([]byte, error) {
	return c.request(ctx, http.MethodGet, table, query, nil, "")
}

// Insert creates rows and returns their stored representation
func (c *SupabaseClient) Insert(ctx context.Context, table string, body interface{}) ([]byte, error) {
	return c.request(ctx, http.MethodPost, table, nil, body, "return=representation")
}

// Upsert inserts rows, merging into existing rows that collide on onConflict
func (c *SupabaseClient) Upsert(ctx context.Context, table string, body interface{}, onConflict string) ([]byte, error) {
	var query url.Values
	if onConflict != "" {
		query = url.Values{"on_conflict": {onConflict}}
	}
	return c.request(ctx, http.MethodPost, table, query, body, "resolution=merge-duplicates,return=representation")
}

// Update patches the rows matched by query and returns them
func (c *SupabaseClient) Update(ctx context.Context, table string, query url.Values, body interface{}) ([]byte, error) {
	return c.request(ctx, http.MethodPatch, table, query, body, "return=representation")
}

// Delete removes the rows matched by query and returns them
func (c *SupabaseClient) Delete(ctx context.Context, table string, query url.Values) ([]byte, error) {
	return c.request(ctx, http.MethodDelete, table, query, nil, "return=representation")
}

// Ping checks that the REST endpoint accepts the configured key
func (c *SupabaseClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.restURL+"/", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxSupabaseErrorBodyBytes))

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: supabase returned %d", ErrConnection, resp.StatusCode)
	}
	return nil
}

func (c *SupabaseClient) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// request makes an HTTP request to the Supabase REST API
func (c *SupabaseClient) request(ctx context.Context, method, table string, query url.Values, body interface{}, prefer string) ([]byte, error) {
	if table == "" {
		return nil, errors.New("table is required")
	}

	endpoint := c.restURL + "/" + url.PathEscape(table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxSupabaseErrorBodyBytes))
		return nil, &SupabaseError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(respBody)),
		}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxSupabaseResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(respBody) > maxSupabaseResponseBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrQuery, maxSupabaseResponseBytes)
	}

	return respBody, nil
}
