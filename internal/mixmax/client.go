package mixmax

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"partnerdash-be/config"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.mixmax.com/v1"

	sequencePageSize = 50
	maxErrorBody     = 200
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// FeedError is returned when the Mixmax API answers with a non-2xx status.
type FeedError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("mixmax %s: status %d: %s", e.Path, e.StatusCode, e.Body)
}

type Sequence struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Stage is one email step of a sequence as delivered to a recipient.
type Stage struct {
	State   string `json:"state"`
	SentAt  *int64 `json:"sentAt"` // unix millis
	Opens   int    `json:"opens"`
	Clicks  int    `json:"clicks"`
	Replied int    `json:"replied"`
	Bounced int    `json:"bounced"`
}

// WasSent reports whether the stage left the outbox.
func (s Stage) WasSent() bool {
	return s.State == "sent" || s.SentAt != nil
}

// SentTime converts SentAt to a time.
func (s Stage) SentTime() (time.Time, bool) {
	if s.SentAt == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*s.SentAt).UTC(), true
}

type Recipient struct {
	To struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"to"`
	Stages []Stage `json:"stages"`
}

type sequencePage struct {
	Results []Sequence `json:"results"`
	HasNext bool       `json:"hasNext"`
	Next    string     `json:"next"`
}

type Client struct {
	baseURL string
	apiKey  string
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
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 2)
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(10), 2),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured returns a ConfigurationError when no usable API key is set.
func (c *Client) Configured() error {
	return config.CheckMixmaxKey(c.apiKey)
}

// ListSequences walks the cursor-paginated sequence list.
func (c *Client) ListSequences(ctx context.Context) ([]Sequence, error) {
	var all []Sequence
	cursor := ""
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(sequencePageSize))
		if cursor != "" {
			q.Set("next", cursor)
		}

		var page sequencePage
		if err := c.get(ctx, "/sequences", q, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Results...)

		if !page.HasNext || page.Next == "" {
			return all, nil
		}
		cursor = page.Next
	}
}

// ListRecipients returns one offset page of a sequence's recipients.
func (c *Client) ListRecipients(ctx context.Context, sequenceID string, offset, limit int) ([]Recipient, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var page []Recipient
	if err := c.get(ctx, "/sequences/"+url.PathEscape(sequenceID)+"/recipients", q, &page); err != nil {
		return nil, err
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, v any) error {
	if err := c.Configured(); err != nil {
		return err
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Token", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("mixmax %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &FeedError{Path: path, StatusCode: resp.StatusCode, Body: string(b)}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("mixmax %s: decode: %w", path, err)
	}
	return nil
}
