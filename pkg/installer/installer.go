// Package installer drives the resolve → fetch → validate → install
// pipeline over an ordered list of exact pins.
//
// The pipeline is strictly sequential: one requirement is driven fully
// through index fetch, listing scrape, wheel selection, download,
// validation, and persistence before the next one starts. The first
// requirement that fails aborts the whole batch; requirements after it are
// never attempted, and artifacts installed before it remain installed.
// There is no rollback, no retry, and no partial-success signal beyond the
// single propagated error and the report of what was installed.
package installer

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wheelhouse-py/wheelhouse/pkg/httputil"
	"github.com/wheelhouse-py/wheelhouse/pkg/index"
	"github.com/wheelhouse-py/wheelhouse/pkg/observability"
	"github.com/wheelhouse-py/wheelhouse/pkg/requirements"
	"github.com/wheelhouse-py/wheelhouse/pkg/store"
	"github.com/wheelhouse-py/wheelhouse/pkg/transport"
	"github.com/wheelhouse-py/wheelhouse/pkg/wheel"
)

// DefaultCacheTTL is how long index pages stay fresh between runs.
const DefaultCacheTTL = 24 * time.Hour

// Options configures a Runner.
//
// The zero value is usable: defaults are applied by ValidateAndSetDefaults,
// which NewRunner calls. The transport Caller is fixed for the lifetime of
// the Runner; swap it only by constructing a new Runner (typically in test
// setup), never mid-flight.
type Options struct {
	IndexURL string        // simple-index root (default: index.DefaultIndexURL)
	FilesURL string        // origin for root-relative artifact hrefs (default: wheel.DefaultFilesURL)
	StoreDir string        // artifact-store directory (default: wheels/ next to the executable)
	CacheDir string        // index-page cache directory (default: ~/.cache/wheelhouse/)
	CacheTTL time.Duration // index-page freshness window (default: DefaultCacheTTL)
	NoCache  bool          // disable index-page caching entirely
	Refresh  bool          // bypass the index-page cache on every fetch
	Timeout  time.Duration // per-request deadline forwarded to the transport
	Retries  int           // transport-level retries, applied only to the default Bridge

	Caller    transport.Caller // transport collaborator (default: transport.NewBridge())
	Extractor index.Extractor  // listing scraper (default: index.RegexExtractor)
	Logger    *log.Logger      // destination for progress logs (default: discard)
}

// ValidateAndSetDefaults fills unset fields with defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.IndexURL == "" {
		o.IndexURL = index.DefaultIndexURL
	}
	if o.FilesURL == "" {
		o.FilesURL = wheel.DefaultFilesURL
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.Caller == nil {
		bridge := transport.NewBridge()
		bridge.Retries = o.Retries
		o.Caller = bridge
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Report describes the outcome of one batch.
//
// On failure the report still lists everything installed before the batch
// aborted; the pipeline is not transactional.
type Report struct {
	BatchID   string // unique id for this run, also present in debug logs
	Installed []store.Installed
	Stats     Stats
}

// Stats holds batch execution counters.
type Stats struct {
	Requirements int           // requirements handed to the batch
	Downloaded   int64         // artifact bytes fetched
	Elapsed      time.Duration // wall time for the whole batch
}

// Runner owns the requirement sequence for a batch and drives each pin
// fully through the pipeline before starting the next.
type Runner struct {
	opts   Options
	client *index.Client
	store  *store.Store
}

// NewRunner creates a Runner from opts. The artifact store directory and
// the index-page cache directory are created eagerly so that a misconfigured
// run fails before any network traffic.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	var cache *httputil.Cache
	if !opts.NoCache {
		c, err := httputil.NewCache(opts.CacheDir, opts.CacheTTL)
		if err != nil {
			return nil, err
		}
		cache = c
	}

	client := index.NewClient(opts.Caller, opts.IndexURL, cache)
	client.SetTimeout(opts.Timeout)
	if opts.Extractor != nil {
		client.SetExtractor(opts.Extractor)
	}

	st, err := store.New(opts.StoreDir)
	if err != nil {
		return nil, err
	}

	return &Runner{opts: opts, client: client, store: st}, nil
}

// Store exposes the artifact store backing this Runner.
func (r *Runner) Store() *store.Store { return r.store }

// Install processes reqs in order, aborting on the first failure.
//
// The returned Report is never nil and always reflects what was actually
// installed, even when err is non-nil.
func (r *Runner) Install(ctx context.Context, reqs []requirements.Requirement) (*Report, error) {
	report := &Report{
		BatchID: uuid.NewString(),
		Stats:   Stats{Requirements: len(reqs)},
	}
	logger := r.opts.Logger.With("batch", report.BatchID)
	start := time.Now()
	defer func() { report.Stats.Elapsed = time.Since(start) }()

	for _, req := range reqs {
		installed, size, err := r.installOne(ctx, logger, req)
		if err != nil {
			return report, err
		}
		report.Installed = append(report.Installed, installed)
		report.Stats.Downloaded += size
	}
	return report, nil
}

// Resolve runs the pipeline through artifact selection only, without
// downloading or installing anything.
func (r *Runner) Resolve(ctx context.Context, req requirements.Requirement) (wheel.Artifact, error) {
	hooks := observability.Install()
	hooks.OnResolveStart(ctx, req.Name, req.Version)
	start := time.Now()

	links, err := r.client.FetchListing(ctx, req.Name, r.opts.Refresh)
	if err != nil {
		hooks.OnResolveComplete(ctx, req.Name, req.Version, "", time.Since(start), err)
		return wheel.Artifact{}, err
	}

	artifact, err := wheel.Select(links, req.Name, req.Version, r.opts.FilesURL)
	hooks.OnResolveComplete(ctx, req.Name, req.Version, artifact.URL, time.Since(start), err)
	return artifact, err
}

func (r *Runner) installOne(ctx context.Context, logger *log.Logger, req requirements.Requirement) (store.Installed, int64, error) {
	hooks := observability.Install()

	artifact, err := r.Resolve(ctx, req)
	if err != nil {
		return store.Installed{}, 0, err
	}
	logger.Debug("resolved", "pin", req.String(), "url", artifact.URL)

	hooks.OnDownloadStart(ctx, artifact.URL)
	downloadStart := time.Now()
	payload, err := r.client.Download(ctx, artifact.URL)
	hooks.OnDownloadComplete(ctx, artifact.URL, len(payload), time.Since(downloadStart), err)
	if err != nil {
		return store.Installed{}, 0, err
	}
	logger.Debug("downloaded", "pin", req.String(), "bytes", len(payload))

	installStart := time.Now()
	if err := wheel.Validate(payload); err != nil {
		hooks.OnInstallComplete(ctx, artifact.Filename, "", time.Since(installStart), err)
		return store.Installed{}, 0, err
	}

	installed, err := r.store.Install(payload, artifact.Filename)
	hooks.OnInstallComplete(ctx, artifact.Filename, installed.LocalPath, time.Since(installStart), err)
	if err != nil {
		return store.Installed{}, 0, err
	}
	logger.Debug("installed", "pin", req.String(), "path", installed.LocalPath)

	return installed, int64(len(payload)), nil
}

// InstallText parses a requirements listing held in memory and installs it.
// This is the programmatic equivalent of `wheelhouse install -r FILE`.
func (r *Runner) InstallText(ctx context.Context, text string) (*Report, error) {
	reqs, err := requirements.ParseString(text)
	if err != nil {
		return &Report{BatchID: uuid.NewString()}, err
	}
	return r.Install(ctx, reqs)
}
