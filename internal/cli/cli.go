// Package cli implements the wheelhouse command-line interface.
//
// This package provides commands for installing pinned wheel packages,
// resolving pins without installing, serving an installed store as a simple
// index, and managing the index-page cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/wheelhouse-py/wheelhouse/pkg/buildinfo"
	"github.com/wheelhouse-py/wheelhouse/pkg/config"
	"github.com/wheelhouse-py/wheelhouse/pkg/installer"
	"github.com/wheelhouse-py/wheelhouse/pkg/transport"
)

// appName is the application name used for directories and display.
const appName = "wheelhouse"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Wheelhouse installs exactly pinned pure-Python wheels",
		Long:         `Wheelhouse is a minimal installer for single-file pure-Python wheel packages. It resolves exact name==version pins against a PEP 503 simple index, downloads the matching py3-none-any wheel, validates the archive, and stores it locally.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/wheelhouse/config.toml)")

	root.AddCommand(c.installCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// runnerFlags holds the flags shared by install and resolve.
type runnerFlags struct {
	indexURL string
	filesURL string
	storeDir string
	refresh  bool
	noCache  bool
	timeout  time.Duration
	retries  int
}

func (f *runnerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.indexURL, "index-url", "", "simple index URL (default: https://pypi.org/simple/)")
	cmd.Flags().StringVar(&f.filesURL, "files-url", "", "origin for root-relative artifact links")
	cmd.Flags().StringVar(&f.storeDir, "store-dir", "", "artifact store directory (default: wheels/ next to the binary)")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "bypass the index-page cache")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable index-page caching")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-request timeout (default: 10s)")
	cmd.Flags().IntVar(&f.retries, "retries", 0, "transport-level retries for transient failures")
}

// newRunner builds an installer Runner from the config file and flags.
// Flags win over the config file; the config file wins over built-in defaults.
func (c *CLI) newRunner(f *runnerFlags) (*installer.Runner, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}

	opts := installer.Options{
		IndexURL: cfg.IndexURL,
		FilesURL: cfg.FilesURL,
		StoreDir: cfg.StoreDir,
		CacheDir: cfg.Cache.Dir,
		CacheTTL: time.Duration(cfg.Cache.TTL),
		Timeout:  time.Duration(cfg.Transport.Timeout),
		Logger:   c.Logger,
	}

	bridge := transport.NewBridge()
	bridge.Retries = cfg.Transport.Retries
	if f.retries > 0 {
		bridge.Retries = f.retries
	}
	opts.Caller = bridge

	if f.indexURL != "" {
		opts.IndexURL = f.indexURL
	}
	if f.filesURL != "" {
		opts.FilesURL = f.filesURL
	}
	if f.storeDir != "" {
		opts.StoreDir = f.storeDir
	}
	if f.timeout > 0 {
		opts.Timeout = f.timeout
	}
	if opts.CacheDir == "" {
		if dir, err := cacheDir(); err == nil {
			opts.CacheDir = dir
		}
	}
	opts.Refresh = f.refresh
	opts.NoCache = f.noCache

	return installer.NewRunner(opts)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wheelhouse/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
