package jobsuche

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNoHashID is returned when a listing carries no hash identifier, so no
// detail document can be requested for it.
var ErrNoHashID = errors.New("hash identifier missing")

type Config struct {
	SearchURL  string
	DetailURL  string // hash identifier is appended
	JobURLBase string
	APIKey     string // sent as X-API-Key
	UserAgent  string
	Timeout    time.Duration
}

type Client struct {
	cfg Config
	hc  *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return "jobsuche" }

// JobURL is the public posting page for a hash identifier.
func (c *Client) JobURL(hashID string) string {
	return JobURL(c.cfg.JobURLBase, hashID)
}

// SearchParams is one page of a keyword/location query.
type SearchParams struct {
	Keyword  string // beruf
	Location string // arbeitsort, may be empty
	Size     int
	Page     int
}

// StatusError reports a non-200 upstream response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("jobsuche status %d from %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("jobsuche status %d from %s", e.StatusCode, e.URL)
}

// SearchRequest builds the GET request for p without sending it.
func (c *Client) SearchRequest(ctx context.Context, p SearchParams) (*http.Request, error) {
	u, err := url.Parse(c.cfg.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("jobsuche search url: %w", err)
	}
	q := u.Query()
	q.Set("beruf", p.Keyword)
	q.Set("arbeitsort", p.Location)
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("size", strconv.Itoa(p.Size))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("jobsuche search request: %w", err)
	}
	c.setHeaders(req)
	return req, nil
}

// DetailRequest builds the GET request for one job's detail document.
func (c *Client) DetailRequest(ctx context.Context, hashID string) (*http.Request, error) {
	if strings.TrimSpace(hashID) == "" {
		return nil, ErrNoHashID
	}
	u := c.cfg.DetailURL + url.PathEscape(hashID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jobsuche detail request: %w", err)
	}
	c.setHeaders(req)
	return req, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-API-Key", c.cfg.APIKey)
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
}

// Search fetches one page of listings. A non-200 response is returned as
// *StatusError; whether that is fatal is the caller's call.
func (c *Client) Search(ctx context.Context, p SearchParams) (*SearchResponse, error) {
	req, err := c.SearchRequest(ctx, p)
	if err != nil {
		return nil, err
	}
	var out SearchResponse
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("jobsuche search: %w", err)
	}
	return &out, nil
}

// Detail fetches the detail document for hashID.
func (c *Client) Detail(ctx context.Context, hashID string) (*DetailResponse, error) {
	req, err := c.DetailRequest(ctx, hashID)
	if err != nil {
		return nil, err
	}
	var out DetailResponse
	if err := c.do(req, &out); err != nil {
		return nil, fmt.Errorf("jobsuche detail: %w", err)
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, v any) error {
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &StatusError{
			URL:        req.URL.String(),
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
