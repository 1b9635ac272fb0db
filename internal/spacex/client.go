package spacex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnavailable marks every failed fetch: transport errors, timeouts, non-2xx
// responses and undecodable payloads.
var ErrUnavailable = errors.New("launch data unavailable")

// FetchError records which URL failed and why. It matches ErrUnavailable.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// Source defines the read-only endpoints the launch loaders depend on.
// This interface is implemented by *Client and can be faked in tests.
type Source interface {
	Rockets(ctx context.Context) ([]Rocket, error)
	Launchpads(ctx context.Context) ([]Launchpad, error)
	UpcomingLaunches(ctx context.Context) ([]Launch, error)
	PastLaunches(ctx context.Context) ([]Launch, error)
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to the SpaceX HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public v5 API root.
	DefaultBaseURL = "https://api.spacexdata.com/v5"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 15 * time.Second

	defaultUserAgent = "launchtrack/0.1"
)

// Option customises a Client.
type Option func(*Client)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for baseURL. An empty baseURL uses DefaultBaseURL and
// a non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client resolves paths against.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// Rockets retrieves the full rocket collection.
func (c *Client) Rockets(ctx context.Context) ([]Rocket, error) {
	var payload []Rocket
	if err := c.Get(ctx, "/rockets", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Launchpads retrieves the full launchpad collection.
func (c *Client) Launchpads(ctx context.Context) ([]Launchpad, error) {
	var payload []Launchpad
	if err := c.Get(ctx, "/launchpads", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// UpcomingLaunches retrieves every launch the API considers upcoming.
func (c *Client) UpcomingLaunches(ctx context.Context) ([]Launch, error) {
	var payload []Launch
	if err := c.Get(ctx, "/launches/upcoming", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// PastLaunches retrieves every launch the API considers past.
func (c *Client) PastLaunches(ctx context.Context) ([]Launch, error) {
	var payload []Launch
	if err := c.Get(ctx, "/launches/past", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Get issues a single GET for path relative to the base URL and decodes the JSON
// body into dest. Every failure is returned as a *FetchError.
func (c *Client) Get(ctx context.Context, path string, dest any) error {
	if c == nil {
		return &FetchError{URL: path, Err: fmt.Errorf("client is nil")}
	}
	reqURL := c.resolve(path)
	if err := c.doURL(ctx, reqURL, dest); err != nil {
		return &FetchError{URL: reqURL, Err: err}
	}
	return nil
}

func (c *Client) resolve(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(c.baseURL.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	return u.String()
}

func (c *Client) doURL(ctx context.Context, reqURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base %q: missing host", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
