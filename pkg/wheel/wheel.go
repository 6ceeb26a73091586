// Package wheel selects and validates pure-Python wheel artifacts.
//
// Selection is deliberately dumb: the first link in document order whose
// filename matches the pin and carries the platform-independent tag wins.
// There is no "best match" heuristic; when a listing offers several
// plausible wheels (differing build tags, say), document order decides.
// That ambiguity is a documented limitation of the exact-pin model, not a
// bug to fix silently.
package wheel

import (
	"strings"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
	"github.com/wheelhouse-py/wheelhouse/pkg/index"
	"github.com/wheelhouse-py/wheelhouse/pkg/requirements"
)

const (
	// Extension is the wheel archive filename extension.
	Extension = ".whl"

	// CompatTag marks a wheel as pure Python, installable on any
	// platform and ABI the process supports.
	CompatTag = "py3-none-any"

	// DefaultFilesURL is the artifact-hosting origin used to absolutize
	// root-relative hrefs.
	DefaultFilesURL = "https://files.pythonhosted.org"
)

// Artifact is the chosen download target for one requirement.
type Artifact struct {
	URL      string // absolute download URL
	Filename string // wheel filename as displayed in the listing
}

// Prefix computes the expected filename prefix for a pin: the normalized
// name with hyphens replaced by underscores, joined to the exact version.
func Prefix(name, version string) string {
	return strings.ReplaceAll(requirements.Normalize(name), "-", "_") + "-" + version
}

// Select picks the first qualifying wheel from links, in document order.
//
// A link qualifies if its label ends with [Extension], starts with
// [Prefix](name, version), and contains [CompatTag]. Root-relative hrefs
// are rewritten absolute against filesURL (empty means [DefaultFilesURL]).
// If no link qualifies, Select fails with an ARTIFACT_NOT_FOUND error
// naming the package, version, and tag requirement.
func Select(links []index.Link, name, version, filesURL string) (Artifact, error) {
	if filesURL == "" {
		filesURL = DefaultFilesURL
	}
	name = requirements.Normalize(name)
	prefix := Prefix(name, version)

	for _, link := range links {
		if !strings.HasSuffix(link.Label, Extension) {
			continue
		}
		if !strings.HasPrefix(link.Label, prefix) {
			continue
		}
		if !strings.Contains(link.Label, CompatTag) {
			continue
		}

		url := link.Href
		if strings.HasPrefix(url, "/") {
			url = strings.TrimSuffix(filesURL, "/") + url
		}
		if err := errors.ValidateWheelFilename(link.Label); err != nil {
			return Artifact{}, err
		}
		return Artifact{URL: url, Filename: link.Label}, nil
	}

	return Artifact{}, errors.New(errors.ErrCodeArtifactNotFound,
		"no %s wheel found for %s==%s", CompatTag, name, version)
}

// Distribution extracts the normalized project name from a wheel filename,
// or "" if the filename does not follow the wheel naming convention.
func Distribution(filename string) string {
	if !strings.HasSuffix(filename, Extension) {
		return ""
	}
	stem := strings.TrimSuffix(filename, Extension)
	parts := strings.Split(stem, "-")
	if len(parts) < 5 {
		return ""
	}
	return requirements.Normalize(strings.ReplaceAll(parts[0], "_", "-"))
}
