// Package catalogclient calls a running catalog-service over HTTP.
package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MikeMC777/catalogo-ecom/internal/catalog"
)

// paths of the listing operations, keyed the way catalogctl names them.
var listingPaths = map[string]string{
	"initial":    "/products/initial",
	"byCategory": "/products/byCategory",
	"byBrands":   "/products/byBrands",
	"byPrice":    "/products/byPrice",
	"page":       "/products",
}

// RemoteError is a non-2xx answer from the service.
type RemoteError struct {
	Status int
	Body   catalog.HTTPError
}

func (e *RemoteError) Error() string {
	if e.Body.Code != "" {
		return fmt.Sprintf("catalog: %d %s: %s", e.Status, e.Body.Code, e.Body.Error)
	}
	return fmt.Sprintf("catalog: %d %s", e.Status, http.StatusText(e.Status))
}

type cached struct {
	etag string
	body []byte
}

// Client revalidates repeated GETs with If-None-Match and serves 304s
// from its own cache.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	mu    sync.Mutex
	cache map[string]cached
}

func New(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
		cache:   make(map[string]cached),
	}
}

func listingQuery(op string, p catalog.RawParams) url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("pageSize", p.PageSize)
	if op == "initial" {
		return q
	}
	set("selectedCategory", p.Category)
	set("sortOption", p.Sort)
	set("minPrice", p.MinPrice)
	set("maxPrice", p.MaxPrice)
	set("pageNumber", p.PageNumber)
	if len(p.Brands) > 0 {
		q.Set("selectedBrands", strings.Join(p.Brands, ","))
	}
	return q
}

// Listing runs one of the listing operations: initial, byCategory,
// byBrands, byPrice or page.
func (c *Client) Listing(ctx context.Context, op string, p catalog.RawParams) (*catalog.ListingResponse, error) {
	path, ok := listingPaths[op]
	if !ok {
		return nil, fmt.Errorf("unknown listing operation %q", op)
	}
	var out catalog.ListingResponse
	if err := c.get(ctx, path, listingQuery(op, p), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Suggested(ctx context.Context, category, productID string) (*catalog.Suggestions, error) {
	var out catalog.Suggestions
	q := url.Values{"category": {category}, "productId": {productID}}
	if err := c.get(ctx, "/products/suggestedProducts", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Product(ctx context.Context, id string) (*catalog.ProductDetails, error) {
	var out catalog.ProductDetails
	if err := c.get(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, v any) error {
	target := c.BaseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	c.mu.Lock()
	prev, hit := c.cache[target]
	c.mu.Unlock()
	if hit {
		req.Header.Set("If-None-Match", prev.etag)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var body []byte
	switch {
	case res.StatusCode == http.StatusNotModified && hit:
		body = prev.body
	case res.StatusCode == http.StatusOK:
		if body, err = io.ReadAll(res.Body); err != nil {
			return err
		}
		if tag := res.Header.Get("ETag"); tag != "" {
			c.mu.Lock()
			c.cache[target] = cached{etag: tag, body: body}
			c.mu.Unlock()
		}
	default:
		re := &RemoteError{Status: res.StatusCode}
		_ = json.NewDecoder(res.Body).Decode(&re.Body)
		return re
	}
	return json.NewDecoder(bytes.NewReader(body)).Decode(v)
}
