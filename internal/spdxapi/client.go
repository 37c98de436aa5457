// ABOUTME: HTTP client for the SPDX license-list-data and FSF metadata endpoints.
// ABOUTME: All GETs route through an optional response cache keyed by URL.

package spdxapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hamidahoderinwale/licences-db/internal/config"
)

// ErrNotFound reports that an endpoint has no record for the identifier.
// For the FSF API this is the normal case for most licences, not a failure.
var ErrNotFound = errors.New("record not found")

// Store is the response cache surface the client needs.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, val []byte) error
}

// Client fetches licence metadata. The zero value is not usable; use New.
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
	store      Store
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithStore attaches a response cache.
func WithStore(s Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client for the endpoints in cfg.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches a URL, serving from and filling the cache when one is attached.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if c.store != nil {
		if body, ok := c.store.Get(url); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	if c.store != nil {
		if err := c.store.Set(url, body); err != nil {
			return nil, fmt.Errorf("cache %s: %w", url, err)
		}
	}

	return body, nil
}
