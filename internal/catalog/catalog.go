// Package catalog is a small client for the public course-outlines API.
//
// The API is a tree addressed by slash-joined path segments after the query
// mark: "?2024" lists terms, "?2024/fall" lists departments, and so on down to
// a section, which returns a full outline document. Every level except the
// last answers with a list of {text, value} options.
//
// Raw response bodies are cached in memory for a short TTL so that walking
// back and forth through the levels does not refetch the same listing.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/mghazyfawazh/outlines/internal/models"
	"github.com/mghazyfawazh/outlines/internal/outline"
)

type Client struct {
	baseURL string
	http    *http.Client
	cache   *ristretto.Cache
	ttl     time.Duration
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// New creates a client. A ttl of zero disables the response cache.
func New(baseURL string, timeout, ttl time.Duration) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "?"),
		http:    &http.Client{Timeout: timeout},
		ttl:     ttl,
	}
	if ttl > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e4,     // listings are small and few
			MaxCost:     1 << 26, // 64MB of response bodies
			BufferItems: 64,
		})
		if err != nil {
			return nil, err
		}
		c.cache = cache
	}
	return c, nil
}

// URL builds the request URL for a path, e.g. base?2024/fall/cmpt.
func (c *Client) URL(path []string) string {
	return c.baseURL + "?" + strings.Join(path, "/")
}

// Raw fetches the body at path, from cache when possible.
func (c *Client) Raw(ctx context.Context, path []string) ([]byte, error) {
	query := c.URL(path)
	if c.cache != nil {
		if cached, found := c.cache.Get(query); found {
			return cached.([]byte), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{URL: query, Code: res.StatusCode}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.SetWithTTL(query, body, int64(len(body)), c.ttl)
		c.cache.Wait()
	}
	return body, nil
}

// SplitPath turns "2024/Fall/cmpt/" into its lowercased segments, dropping
// empty ones. The API and the CLI both key saved outlines by this form.
func SplitPath(p string) []string {
	var out []string
	for _, seg := range strings.Split(p, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			out = append(out, strings.ToLower(seg))
		}
	}
	return out
}

// Options fetches a listing level.
func (c *Client) Options(ctx context.Context, path []string) ([]models.Option, error) {
	body, err := c.Raw(ctx, path)
	if err != nil {
		return nil, err
	}
	var opts []models.Option
	if err := json.Unmarshal(body, &opts); err != nil {
		return nil, fmt.Errorf("decode listing /%s: %w", strings.Join(path, "/"), err)
	}
	return opts, nil
}

// Outline fetches a section outline. A listing at that path yields
// outline.ErrNotEnoughData.
func (c *Client) Outline(ctx context.Context, path []string) (*models.Outline, error) {
	body, err := c.Raw(ctx, path)
	if err != nil {
		return nil, err
	}
	return outline.Parse(body)
}
