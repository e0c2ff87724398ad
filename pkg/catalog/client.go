package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/wanderplan/wanderplan/pkg/types"
)

// Listing defaults applied by the service when the caller passes zero.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Client fetches catalog pages from the experience catalog service
// over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a catalog client for the service at baseURL
// (e.g. "http://localhost:8080"). A nil httpc gets a 10s-timeout
// default client.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpc: httpc}
}

// List fetches one catalog page. Failures are wrapped in
// types.ErrCatalogUnavailable so callers can degrade instead of
// surfacing a hard error.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]types.Experience, error) {
	page := opts.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}

	endpoint := c.baseURL + "/api/experiences?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCatalogUnavailable, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", types.ErrCatalogUnavailable, resp.StatusCode)
	}

	var experiences []types.Experience
	if err := json.NewDecoder(resp.Body).Decode(&experiences); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", types.ErrCatalogUnavailable, err)
	}
	return experiences, nil
}
