// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aur talks to the AUR RPC interface (version 5).
//
// Client.Fetch performs exactly one GET per call and returns the raw body.
// DecodeSearch and DecodeInfo turn that body into typed records and reject
// anything that does not match the documented response shape.
package aur

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/aurman/internal/httputil"
	"github.com/pdiddy/aurman/pkg/types"
)

// DefaultBaseURL is the public AUR web root.
const DefaultBaseURL = "https://aur.archlinux.org"

// Kind selects the RPC endpoint.
type Kind string

const (
	KindSearch Kind = "search"
	KindInfo   Kind = "info"
)

var (
	// ErrNetwork reports a failed transport or a non-200 response.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse reports a body that is not a valid RPC document.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrRemote reports an error document returned by the RPC interface,
	// such as "Too many package results.".
	ErrRemote = errors.New("AUR returned an error")
)

// Client queries the AUR RPC interface.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// NewClient builds a client from cfg, falling back to DefaultBaseURL.
func NewClient(cfg types.AURConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   strings.TrimRight(base, "/"),
		UserAgent: cfg.UserAgent,
	}
}

// URL returns the endpoint for kind and query. The query is a single
// escaped path segment.
func (c *Client) URL(kind Kind, query string) string {
	return fmt.Sprintf("%s/rpc/v5/%s/%s", c.BaseURL, kind, url.PathEscape(query))
}

// Fetch performs one GET against the endpoint for kind and returns the raw
// body. Every failure wraps ErrNetwork.
func (c *Client) Fetch(ctx context.Context, kind Kind, query string) ([]byte, error) {
	body, err := httputil.Get(ctx, c.HTTP, c.URL(kind, query), c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("%w: AUR %s %q: %w", ErrNetwork, kind, query, err)
	}
	return body, nil
}
