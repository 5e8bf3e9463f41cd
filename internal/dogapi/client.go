package dogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/breedview/breeds/internal/breed"
)

// Fetcher defines the Dog API calls used by the gateway.
// This interface is implemented by *Client and can be replaced in tests.
type Fetcher interface {
	FetchAllBreeds(ctx context.Context) (breed.List, error)
	FetchBreedImages(ctx context.Context, name string) ([]string, error)
	FetchSubBreedImages(ctx context.Context, name, sub string) ([]string, error)
	FetchRandomImage(ctx context.Context) (string, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrStatus is returned when the API answers with an HTTP error or a
// non-success envelope.
var ErrStatus = errors.New("dog api error")

// DefaultBaseURL is the public Dog CEO API root.
const DefaultBaseURL = "https://dog.ceo/api"

const (
	defaultUserAgent = "breeds/0.1"
	requestTimeout   = 10 * time.Second
	statusSuccess    = "success"
)

// Client talks to the Dog CEO HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HTTPClient exposes the underlying http.Client so image downloads share its
// timeout and transport.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// FetchAllBreeds retrieves the breed catalog from /breeds/list/all.
func (c *Client) FetchAllBreeds(ctx context.Context) (breed.List, error) {
	var list breed.List
	if err := c.get(ctx, &list, "breeds", "list", "all"); err != nil {
		return nil, err
	}
	if list == nil {
		list = breed.List{}
	}
	return list, nil
}

// FetchBreedImages retrieves every image URL for a breed.
func (c *Client) FetchBreedImages(ctx context.Context, name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("breed required")
	}
	var images []string
	if err := c.get(ctx, &images, "breed", name, "images"); err != nil {
		return nil, err
	}
	return images, nil
}

// FetchSubBreedImages retrieves every image URL for a breed and sub-breed.
func (c *Client) FetchSubBreedImages(ctx context.Context, name, sub string) ([]string, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(sub) == "" {
		return nil, fmt.Errorf("breed and sub-breed required")
	}
	var images []string
	if err := c.get(ctx, &images, "breed", name, sub, "images"); err != nil {
		return nil, err
	}
	return images, nil
}

// FetchRandomImage retrieves one random image URL.
func (c *Client) FetchRandomImage(ctx context.Context) (string, error) {
	var src string
	if err := c.get(ctx, &src, "breeds", "image", "random"); err != nil {
		return "", err
	}
	return src, nil
}

// envelope mirrors the {message, status} wrapper of every response.
type envelope struct {
	Message json.RawMessage `json:"message"`
	Status  string          `json:"status"`
}

func (c *Client) get(ctx context.Context, dest any, segments ...string) error {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = url.PathEscape(seg)
	}
	reqURL := c.baseURL.JoinPath(escaped...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
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

	path := "/" + strings.Join(segments, "/")
	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode >= 400 {
		if detail := envelopeText(env); decodeErr == nil && detail != "" {
			return fmt.Errorf("%w: %s returned status %d: %s", ErrStatus, path, resp.StatusCode, detail)
		}
		return fmt.Errorf("%w: %s returned status %d", ErrStatus, path, resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}
	if env.Status != statusSuccess {
		return fmt.Errorf("%w: %s returned status %q", ErrStatus, path, env.Status)
	}
	if err := json.Unmarshal(env.Message, dest); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}

func envelopeText(env envelope) string {
	var msg string
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		return ""
	}
	return msg
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
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
