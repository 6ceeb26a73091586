// Package httputil provides HTTP utilities for the wheelhouse pipeline.
//
// # Overview
//
// This package provides infrastructure shared by the transport bridge and
// the simple-index client:
//
//   - [Cache]: File-based response caching for index pages
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores responses in the filesystem (~/.cache/wheelhouse/) with
// configurable TTL. Index pages for a package rarely change between
// invocations, so caching them avoids re-contacting the registry on every
// run. Wheel payloads themselves are never cached; they are written to the
// artifact store instead.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	pages := cache.Namespace("index:")
//	var page string
//	if ok, _ := pages.Get("requests", &page); !ok {
//	    page = fetchIndexPage()
//	    pages.Set("requests", page)
//	}
//
// # Retry
//
// [Retry] re-runs an operation for transient failures (connection errors,
// 5xx responses) wrapped in [RetryableError]. The resolver stages never
// retry; retry policy belongs to the transport collaborator alone.
//
// The cache can be cleared via `wheelhouse cache clear` or by deleting the
// cache directory.
package httputil
