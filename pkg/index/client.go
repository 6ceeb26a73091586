package index

import (
	"context"
	"net/url"
	"time"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
	"github.com/wheelhouse-py/wheelhouse/pkg/httputil"
	"github.com/wheelhouse-py/wheelhouse/pkg/observability"
	"github.com/wheelhouse-py/wheelhouse/pkg/requirements"
	"github.com/wheelhouse-py/wheelhouse/pkg/transport"
)

// DefaultIndexURL is the canonical simple-index root.
const DefaultIndexURL = "https://pypi.org/simple/"

// cacheKeyType identifies index-page entries to cache hooks.
const cacheKeyType = "index"

// Client fetches index pages and artifact payloads through a transport
// collaborator.
//
// The Caller is injected at construction and never swapped mid-flight.
// Page caching is optional; artifact payloads are never cached. A Client
// is not safe for concurrent use when a cache is attached (the file cache
// is not goroutine-safe), which matches the strictly sequential pipeline.
type Client struct {
	caller   transport.Caller
	indexURL string
	extract  Extractor
	pages    *httputil.Cache
	timeout  time.Duration
}

// NewClient creates a Client over the given transport collaborator.
//
// indexURL is the simple-index root; empty means [DefaultIndexURL]. cache
// may be nil to disable page caching; when present it is scoped to a
// namespace that includes the index URL, so pages cached from one index are
// never served for another.
func NewClient(caller transport.Caller, indexURL string, cache *httputil.Cache) *Client {
	if indexURL == "" {
		indexURL = DefaultIndexURL
	}
	if cache != nil {
		cache = cache.Namespace("index:" + indexURL + ":")
	}
	return &Client{
		caller:   caller,
		indexURL: indexURL,
		extract:  RegexExtractor{},
		pages:    cache,
	}
}

// SetExtractor swaps the listing-scrape strategy. The default is
// [RegexExtractor].
func (c *Client) SetExtractor(e Extractor) {
	if e != nil {
		c.extract = e
	}
}

// SetTimeout sets the per-request deadline forwarded to the transport
// collaborator. Zero leaves deadline enforcement entirely to the
// collaborator.
func (c *Client) SetTimeout(d time.Duration) { c.timeout = d }

// FetchPage retrieves the raw index page for a package.
//
// The page URL is the index root joined with the normalized name and a
// trailing slash. A transport-reported failure yields an
// INDEX_FETCH_FAILED error naming the package. If refresh is false and a
// cached page is fresh, no request is made.
func (c *Client) FetchPage(ctx context.Context, name string, refresh bool) (string, error) {
	name = requirements.Normalize(name)
	if err := errors.ValidatePythonPackageName(name); err != nil {
		return "", err
	}

	var page string
	if c.pages != nil && !refresh {
		if ok, _ := c.pages.Get(name, &page); ok {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			return page, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	res := c.caller.Call(ctx, transport.OpRequest, transport.Payload{
		Method:  "GET",
		URL:     c.indexURL + url.PathEscape(name) + "/",
		Timeout: c.timeout,
	})
	if !res.OK {
		return "", errors.New(errors.ErrCodeIndexFetch, "index fetch failed for %s: %s", name, res.Error)
	}

	page = string(res.Body)
	if c.pages != nil {
		if err := c.pages.Set(name, page); err == nil {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(page))
		}
	}
	return page, nil
}

// FetchListing retrieves and scrapes the index page for a package,
// returning its candidate links in document order.
func (c *Client) FetchListing(ctx context.Context, name string, refresh bool) ([]Link, error) {
	page, err := c.FetchPage(ctx, name, refresh)
	if err != nil {
		return nil, err
	}
	return c.extract.Links(page), nil
}

// Download retrieves an artifact's raw bytes.
//
// The payload is returned as-is; wheels are binary and pass through the
// transport losslessly. A transport-reported failure yields a
// DOWNLOAD_FAILED error naming the URL.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, error) {
	if err := errors.ValidateURL(rawURL); err != nil {
		return nil, err
	}

	res := c.caller.Call(ctx, transport.OpRequest, transport.Payload{
		Method:  "GET",
		URL:     rawURL,
		Timeout: c.timeout,
	})
	if !res.OK {
		return nil, errors.New(errors.ErrCodeDownloadFailed, "download failed: %s: %s", rawURL, res.Error)
	}
	return res.Body, nil
}
