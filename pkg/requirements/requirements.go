// Package requirements parses exact-pin requirement listings.
//
// Only the `name==version` form is supported. Ranges (>=, ~=), extras, and
// environment markers are format errors rather than being silently dropped,
// so a listing written for a full resolver fails loudly instead of
// installing the wrong thing.
package requirements

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
)

// Requirement is one exact pin from a requirements listing.
//
// Name is normalized (lower-case, trimmed); Version is an opaque token
// compared only by exact match against wheel filenames. Both are non-empty
// for any Requirement produced by this package.
type Requirement struct {
	Name    string
	Version string
}

// String returns the pin in its canonical `name==version` form.
func (r Requirement) String() string {
	return r.Name + "==" + r.Version
}

// Normalize lower-cases and trims a package name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Parse converts an ordered sequence of text lines into Requirements,
// preserving input order.
//
// A line that is empty after trimming, or whose first non-whitespace
// character is '#', is skipped. Every other line must contain `==`; the
// split happens on the first occurrence, so extra '=' characters become
// part of the version token. Any line that is not an exact pin fails with
// an INVALID_FORMAT error naming the offending line.
func Parse(lines []string) ([]Requirement, error) {
	var reqs []Requirement
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}

		name, version, found := strings.Cut(s, "==")
		if !found {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "only exact pins supported: %q", s)
		}

		name = Normalize(name)
		version = strings.TrimSpace(version)

		if err := errors.ValidatePythonPackageName(name); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "only exact pins supported: %q", s)
		}
		if version == "" || strings.ContainsAny(version, "; \t") {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "only exact pins supported: %q", s)
		}

		reqs = append(reqs, Requirement{Name: name, Version: version})
	}
	return reqs, nil
}

// ParseReader parses a requirements listing from r, one pin per line.
func ParseReader(r io.Reader) ([]Requirement, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read requirements")
	}
	return Parse(lines)
}

// ParseFile parses a requirements.txt-style file at path.
func ParseFile(path string) ([]Requirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open requirements file %s", path)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseString parses a requirements listing held in memory.
func ParseString(text string) ([]Requirement, error) {
	return Parse(strings.Split(text, "\n"))
}
