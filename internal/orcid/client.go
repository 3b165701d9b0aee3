// Package orcid is a rate-limited client for the ORCID v3.0 public API and
// the mapper that turns ORCID works into publication records.
package orcid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
	"pubsite/internal/publication"
)

const (
	// BaseURL is the ORCID public API base URL.
	BaseURL = "https://pub.orcid.org/v3.0"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit is 8 requests per second, below the ORCID public API
	// courtesy limit.
	RateLimit = 8.0

	// UserAgent identifies this updater to the ORCID API.
	UserAgent = "pubsite-publications-updater/1.0"
)

// Client is a rate-limited HTTP client for the ORCID public API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sets the bearer token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new ORCID public API client. The ORCID_TOKEN
// environment variable, when set, enables authenticated reads.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if token := os.Getenv("ORCID_TOKEN"); token != "" {
		c.token = token
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, url, orcidID string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized && c.token == "" {
			return fmt.Errorf("%w: ORCID returned 401; set ORCID_TOKEN to enable authenticated reads", ErrAuthError)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			ORCIDID:    orcidID,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", url, err)
	}
	return nil
}

// Works lists all work summaries for an ORCID iD, flattened across ORCID's
// preferred-version groups and deduplicated by put-code (first occurrence
// wins).
func (c *Client) Works(ctx context.Context, orcidID string) ([]Work, error) {
	var resp worksResponse
	url := fmt.Sprintf("%s/%s/works", c.baseURL, orcidID)
	if err := c.get(ctx, url, orcidID, &resp); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var works []Work
	for _, group := range resp.Group {
		for _, w := range group.WorkSummary {
			if seen[w.PutCode] {
				continue
			}
			seen[w.PutCode] = true
			works = append(works, w)
		}
	}
	return works, nil
}

// WorkDetail fetches the full record of one work, including contributors.
func (c *Client) WorkDetail(ctx context.Context, orcidID string, putCode int64) (*Work, error) {
	var work Work
	url := fmt.Sprintf("%s/%s/work/%d", c.baseURL, orcidID, putCode)
	if err := c.get(ctx, url, orcidID, &work); err != nil {
		return nil, err
	}
	return &work, nil
}

// Fetch retrieves every work for an ORCID iD and maps them to publication
// records. Detail lookups are best effort: when one fails, the record is
// built from the summary alone.
func (c *Client) Fetch(ctx context.Context, orcidID string) ([]publication.Record, error) {
	works, err := c.Works(ctx, orcidID)
	if err != nil {
		return nil, err
	}

	records := make([]publication.Record, 0, len(works))
	for i := range works {
		summary := &works[i]
		detail, err := c.WorkDetail(ctx, orcidID, summary.PutCode)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			detail = nil
		}
		records = append(records, MapWork(detail, summary))
	}
	return records, nil
}
