package airtable

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

	"partnerdash-be/config"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.airtable.com/v0"

	// maxErrorBody bounds how much of a failed response is kept in a SourceError.
	maxErrorBody = 512
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// SourceError is returned when Airtable answers with a non-2xx status.
type SourceError struct {
	StatusCode int
	Body       string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("airtable: status %d: %s", e.StatusCode, e.Body)
}

// FetchOptions narrows a table read.
type FetchOptions struct {
	Fields []string
	Filter string // filterByFormula
}

type Client struct {
	baseURL string
	token   string
	httpc   HTTPClient
	limiter *rate.Limiter
}

type Option func(*Client)

func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.httpc = h }
}

// WithRateLimit paces requests to perSecond; zero or negative disables pacing.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   NewHTTPClient(30 * time.Second),
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

// FetchAll reads every page of a table. A failure on any page discards the
// pages already read.
func (c *Client) FetchAll(ctx context.Context, baseID, tableID string, opts FetchOptions) ([]Record, error) {
	if c.token == "" {
		return nil, &config.ConfigurationError{Key: "AIRTABLE_TOKEN"}
	}

	var all []Record
	offset := ""
	for {
		q := url.Values{}
		for _, f := range opts.Fields {
			q.Add("fields[]", f)
		}
		if opts.Filter != "" {
			q.Set("filterByFormula", opts.Filter)
		}
		if offset != "" {
			q.Set("offset", offset)
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, c.tableURL(baseID, tableID)+"?"+q.Encode(), nil, "", &page); err != nil {
			return nil, fmt.Errorf("fetch %s/%s: %w", baseID, tableID, err)
		}
		all = append(all, page.Records...)

		if page.Offset == "" {
			return all, nil
		}
		offset = page.Offset
	}
}

type writeRequest struct {
	Fields   map[string]any `json:"fields"`
	Typecast bool           `json:"typecast"`
}

// CreateRecord inserts one record. token overrides the client token when set.
func (c *Client) CreateRecord(ctx context.Context, baseID, tableID string, fields map[string]any, token string) (*Record, error) {
	var rec Record
	body := writeRequest{Fields: fields, Typecast: true}
	if err := c.do(ctx, http.MethodPost, c.tableURL(baseID, tableID), body, token, &rec); err != nil {
		return nil, fmt.Errorf("create record in %s/%s: %w", baseID, tableID, err)
	}
	return &rec, nil
}

// UpdateRecord patches the given fields of one record. token overrides the client token when set.
func (c *Client) UpdateRecord(ctx context.Context, baseID, tableID, recordID string, fields map[string]any, token string) (*Record, error) {
	var rec Record
	body := writeRequest{Fields: fields, Typecast: true}
	endpoint := c.tableURL(baseID, tableID) + "/" + url.PathEscape(recordID)
	if err := c.do(ctx, http.MethodPatch, endpoint, body, token, &rec); err != nil {
		return nil, fmt.Errorf("update record %s: %w", recordID, err)
	}
	return &rec, nil
}

func (c *Client) tableURL(baseID, tableID string) string {
	return c.baseURL + "/" + url.PathEscape(baseID) + "/" + url.PathEscape(tableID)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, token string, v any) error {
	if token == "" {
		token = c.token
	}
	if token == "" {
		return &config.ConfigurationError{Key: "AIRTABLE_TOKEN"}
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &SourceError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsSourceError reports whether err wraps a SourceError.
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}
