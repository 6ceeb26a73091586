// Package config loads wheelhouse settings from a TOML file.
//
// Settings are looked up at ~/.config/wheelhouse/config.toml unless an
// explicit path is given. A missing file is not an error; every field has a
// working default and CLI flags override anything loaded here.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
)

// Config mirrors the on-disk TOML layout.
//
//	index_url = "https://pypi.org/simple/"
//	files_url = "https://files.pythonhosted.org"
//	store_dir = "/opt/wheels"
//
//	[cache]
//	dir = "~/.cache/wheelhouse"
//	ttl = "24h"
//
//	[transport]
//	timeout = "10s"
//	retries = 2
type Config struct {
	IndexURL string `toml:"index_url"`
	FilesURL string `toml:"files_url"`
	StoreDir string `toml:"store_dir"`

	Cache struct {
		Dir string   `toml:"dir"`
		TTL Duration `toml:"ttl"`
	} `toml:"cache"`

	Transport struct {
		Timeout Duration `toml:"timeout"`
		Retries int      `toml:"retries"`
	} `toml:"transport"`
}

// Duration wraps time.Duration so TTLs can be written as "24h" in TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultPath returns the standard config location under the user's
// config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate config dir")
	}
	return filepath.Join(base, "wheelhouse", "config.toml"), nil
}

// Load reads the config file at path. An empty path selects [DefaultPath].
// A missing file yields a zero Config and no error.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return &cfg, nil
}
