// Package index retrieves and scrapes per-package simple-index pages.
//
// A simple index exposes one listing page per package, containing anchor
// elements whose labels are artifact filenames. This package fetches those
// pages through the injected transport collaborator and extracts the
// anchors in document order; selection tie-breaking downstream depends on
// that order being preserved.
package index

import (
	"regexp"
	"strings"
)

// Link is one candidate artifact link scraped from an index page.
//
// Href may be absolute or root-relative; Label is the display filename.
// Links are transient: they exist only while resolving one requirement.
type Link struct {
	Href  string
	Label string
}

// Extractor yields the anchor links of an index page in document order.
//
// Implementations are best-effort structural scrapers, not full markup
// parsers: they must tolerate pages that deviate slightly from the minimal
// anchor-tag shape but are not required to handle nested or malformed
// markup robustly. The abstraction exists so the scraping strategy can be
// swapped for a real tokenizer without changing callers.
type Extractor interface {
	Links(page string) []Link
}

// anchorRE matches minimal anchor tags. Attributes may precede href, and
// quoting may be double or single; anything fancier is out of scope.
var anchorRE = regexp.MustCompile(`(?i)<a\s+[^>]*?href=["']([^"']+)["'][^>]*>([^<]+)</a>`)

// RegexExtractor is the default Extractor, scraping anchors with a regular
// expression the way the simple-index format has always allowed.
type RegexExtractor struct{}

// Links implements Extractor.
func (RegexExtractor) Links(page string) []Link {
	matches := anchorRE.FindAllStringSubmatch(page, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{
			Href:  m[1],
			Label: strings.TrimSpace(m[2]),
		})
	}
	return links
}
