// Package remote fetches a movie catalog from an HTTP API that serves
// GET /api/movies and GET /api/genres as JSON arrays.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/vidly/internal/catalog"
)

// Ensure Client implements catalog.Source at compile time.
var _ catalog.Source = (*Client)(nil)

// Client talks to a movie catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL    = "127.0.0.1:3900"
	defaultUserAgent = "vidly/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for apiURL, which may be a bare host:port.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// FetchMovies implements catalog.Source.
func (c *Client) FetchMovies(ctx context.Context) ([]catalog.Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []catalog.Movie
	if err := c.get(ctx, "/api/movies", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// FetchGenres implements catalog.Source.
func (c *Client) FetchGenres(ctx context.Context) ([]catalog.Genre, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []catalog.Genre
	if err := c.get(ctx, "/api/genres", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
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

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
