package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/peter941221/scanhawk/internal/model"
)

// DefaultBaseURL is used when New is called with an empty base URL.
const DefaultBaseURL = "http://localhost:8080"

const defaultTimeout = 10 * time.Second

// Client is a stateless facade over the scan service's REST API. It holds
// no mutable state beyond the configured base URL, so sequential use and
// independent instances are both safe.
type Client struct {
	baseURL    string
	apiBase    string
	httpClient *http.Client
	timeout    time.Duration
	now        func() time.Time
	sleep      func(time.Duration)
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport. The client is copied
// before any timeout override is applied, so the caller's client is never
// mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout, regardless of option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	c := &Client{
		baseURL: baseURL,
		apiBase: baseURL + "/api/v1",
		now:     func() time.Time { return time.Now().UTC() },
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the configured service root, trailing slash stripped.
func (c *Client) BaseURL() string { return c.baseURL }

// HealthCheck probes the service root. It reports true only for a 2xx
// response from /health; every failure mode, transport included, maps to
// false and is never surfaced as an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// InitiateScan submits a scan request and returns the service's
// acknowledgment. The returned scan ID is immediately usable in
// GetScanStatus. RepoURL is the only locally validated field; the service
// is authoritative for everything else.
func (c *Client) InitiateScan(ctx context.Context, req model.ScanRequest) (*model.ScanAck, error) {
	if req.RepoURL == "" {
		return nil, fmt.Errorf("initiate scan: repo URL is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("initiate scan: encode request: %w", err)
	}

	var ack model.ScanAck
	if err := c.doJSON(ctx, "initiate scan", http.MethodPost, c.apiBase+"/scan", payload, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// GetScanStatus fetches the current snapshot of one scan. Unknown scan IDs
// come back as a RequestError with the service's not-found status.
func (c *Client) GetScanStatus(ctx context.Context, scanID string) (*model.ScanResult, error) {
	if scanID == "" {
		return nil, fmt.Errorf("scan status: scan ID is required")
	}

	query := url.Values{"scan_id": []string{scanID}}
	var result model.ScanResult
	if err := c.doJSON(ctx, "scan status", http.MethodGet, c.apiBase+"/scan/status?"+query.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListScans fetches every scan the service knows about.
func (c *Client) ListScans(ctx context.Context) (*model.ScanList, error) {
	var list model.ScanList
	if err := c.doJSON(ctx, "list scans", http.MethodGet, c.apiBase+"/scans", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) doJSON(ctx context.Context, op string, method string, rawURL string, payload []byte, out any) error {
	var bodyReader io.Reader
	if len(payload) > 0 {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "scanhawk")
	if len(payload) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, URL: rawURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
