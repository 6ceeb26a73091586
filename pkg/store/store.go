// Package store persists validated wheels and tracks the search roots
// registered for the running process.
//
// The store is a flat directory: one file per installed artifact, named
// exactly as downloaded. Installing the same filename twice overwrites the
// previous copy; there is no atomic replace, no backup, and no locking.
// The design assumes a single installer instance drives installation at a
// time — concurrent writers from multiple processes can race on directory
// creation and file writes.
package store

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
)

// Installed represents a persisted, registered artifact.
// Its lifetime is the process lifetime; there is no uninstall operation.
type Installed struct {
	LocalPath string
	Filename  string
}

// Store writes artifacts into a local directory and registers each written
// path as an additional search root for the running process.
type Store struct {
	dir   string
	roots []string
}

// DefaultDir returns the default artifact-store location: a wheels/
// directory next to the running executable.
func DefaultDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "locate executable")
	}
	return filepath.Join(filepath.Dir(exe), "wheels"), nil
}

// New creates a Store rooted at dir, creating the directory if missing.
// An empty dir selects [DefaultDir].
func New(dir string) (*Store, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve store dir %s", dir)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create store dir %s", abs)
	}
	return &Store{dir: abs}, nil
}

// Dir returns the absolute path of the artifact-store directory.
func (s *Store) Dir() string { return s.dir }

// Install writes payload to dir/filename and registers the written path as
// a search root if not already registered.
//
// Installation is idempotent at the file level: the same filename always
// overwrites, without error. The filename must be a plain basename; path
// components are rejected before anything touches the filesystem.
func (s *Store) Install(payload []byte, filename string) (Installed, error) {
	if err := errors.ValidateWheelFilename(filename); err != nil {
		return Installed{}, err
	}

	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return Installed{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "write artifact %s", path)
	}

	s.register(path)
	return Installed{LocalPath: path, Filename: filename}, nil
}

// Roots returns the search roots registered so far, in registration order.
func (s *Store) Roots() []string {
	return slices.Clone(s.roots)
}

// Registered reports whether path is already a registered search root.
func (s *Store) Registered(path string) bool {
	return slices.Contains(s.roots, path)
}

// List returns the filenames currently present in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read store dir %s", s.dir)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Open returns the contents of a stored artifact by filename.
func (s *Store) Open(filename string) ([]byte, error) {
	if err := errors.ValidateWheelFilename(filename); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read artifact %s", filename)
	}
	return data, nil
}

func (s *Store) register(path string) {
	if !slices.Contains(s.roots, path) {
		s.roots = append(s.roots, path)
	}
}
