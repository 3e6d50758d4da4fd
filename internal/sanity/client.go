// Package sanity is a read-only client for the Sanity content lake HTTP
// query API.
package sanity

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

// ErrFetch is matched by every error the client returns. Callers do not get
// to tell a transport failure from a bad response; both mean the content is
// unavailable.
var ErrFetch = errors.New("content fetch failed")

// FetchError describes a failed query.
type FetchError struct {
	Query  string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("sanity query %q: status %d: %v", e.Query, e.Status, e.Err)
	}
	return fmt.Sprintf("sanity query %q: %v", e.Query, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// Fetcher runs a named query and decodes its result into dst.
type Fetcher interface {
	Fetch(ctx context.Context, q Query, dst any) error
}

// Config selects the project and dataset to read from.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	// APIHost replaces the derived https://<project>.api.sanity.io host.
	APIHost string
	Timeout time.Duration
	// HTTPClient is used as-is when set; Timeout is then ignored.
	HTTPClient *http.Client
}

// Client issues GROQ queries. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	base  string
	token string
	http  *http.Client
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

type errorResponse struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

// NewClient builds a client from cfg. Missing dataset and API version fall
// back to "production" and "2024-01-01". A missing project ID is not an
// error here; queries will simply fail.
func NewClient(cfg Config) *Client {
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}

	host := strings.TrimRight(cfg.APIHost, "/")
	if host == "" {
		sub := "api"
		if cfg.UseCDN && cfg.Token == "" {
			sub = "apicdn"
		}
		host = fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, sub)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		base:  fmt.Sprintf("%s/v%s/data/query/%s", host, strings.TrimPrefix(cfg.APIVersion, "v"), url.PathEscape(cfg.Dataset)),
		token: cfg.Token,
		http:  hc,
	}
}

// Endpoint returns the query URL for q.
func (c *Client) Endpoint(q Query) string {
	return c.base + "?query=" + url.QueryEscape(q.GROQ)
}

// Fetch runs q and decodes the result into dst. A null result leaves dst
// untouched and is not an error.
func (c *Client) Fetch(ctx context.Context, q Query, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(q), nil)
	if err != nil {
		return &FetchError{Query: q.Name, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Query: q.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Query: q.Name, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Query: q.Name, Status: resp.StatusCode, Err: describeError(body)}
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &FetchError{Query: q.Name, Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}

	raw := bytes.TrimSpace(envelope.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &FetchError{Query: q.Name, Status: resp.StatusCode, Err: fmt.Errorf("decoding %s result: %w", q.Kind, err)}
	}
	return nil
}

func describeError(body []byte) error {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil {
		switch {
		case e.Error.Description != "":
			return errors.New(e.Error.Description)
		case e.Message != "":
			return errors.New(e.Message)
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	if text == "" {
		text = "empty response"
	}
	return errors.New(text)
}

// One fetches a singleton document. It returns nil when the document does
// not exist.
func One[T any](ctx context.Context, f Fetcher, q Query) (*T, error) {
	var doc *T
	if err := f.Fetch(ctx, q, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Many fetches a list of documents. The returned slice is never nil.
func Many[T any](ctx context.Context, f Fetcher, q Query) ([]T, error) {
	var docs []T
	if err := f.Fetch(ctx, q, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}
