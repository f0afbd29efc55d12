// Package rest provides a generic JSON-over-HTTP backend for the
// exercise catalog. It targets any endpoint returning a JSON array of
// row objects, such as a Supabase/PostgREST table endpoint.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	shared "fitcatalog/pkg"
	"fitcatalog/pkg/catalog"
	apperrors "fitcatalog/pkg/errors"
	"fitcatalog/pkg/source"
)

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

func init() {
	source.Register(source.Manifest{
		ID:          "rest",
		Name:        "REST",
		Description: "JSON array endpoint (PostgREST-style)",
	}, func(_ context.Context, cfg source.Config) (shared.RemoteSource, error) {
		if cfg.Endpoint == "" {
			return nil, apperrors.New(apperrors.CodeSourceUnconfigured, "rest backend requires an endpoint")
		}
		c := NewClient(cfg.Endpoint, cfg.APIKey)
		if cfg.Timeout > 0 {
			c.HTTPClient.Timeout = cfg.Timeout
		}
		return c, nil
	})
}

// Client fetches exercise rows from a single JSON endpoint.
type Client struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) Name() string {
	return "rest"
}

// FetchExercises GETs the endpoint and decodes a JSON array of rows.
// Any non-2xx status or undecodable body is a bad-response error; the
// caller falls back to cached data.
func (c *Client) FetchExercises(ctx context.Context) ([]catalog.RawRow, error) {
	if c.Endpoint == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeSourceFetchFailed, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		// PostgREST-style auth: same key in both headers.
		req.Header.Set("apikey", c.APIKey)
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrSourceUnavailable.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, apperrors.New(apperrors.CodeSourceBadResponse, fmt.Sprintf("unexpected status %d", resp.StatusCode)).
			WithMetadata("status", resp.Status)
	}

	var rows []catalog.RawRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, apperrors.ErrSourceBadResponse.WithCause(err)
	}
	return rows, nil
}
