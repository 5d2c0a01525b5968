// Package backlink implements the free-plan admission gate: the
// candidate project's page must link back to the directory site.
package backlink

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/altdir/altdir/pkg/caching"
)

// PageFetcher loads a page as a parsed document. fetcher.Fetcher
// satisfies it; tests substitute inline HTML.
type PageFetcher interface {
	GetHTML(url string) (*goquery.Document, error)
}

// Verifier checks candidate pages for a link back to siteHost.
type Verifier struct {
	siteHost string
	fetch    PageFetcher
	cache    *caching.Cache
}

// New builds a Verifier. cache may be nil to disable result caching.
func New(siteHost string, fetch PageFetcher, cache *caching.Cache) *Verifier {
	return &Verifier{
		siteHost: normalizeHost(siteHost),
		fetch:    fetch,
		cache:    cache,
	}
}

// Verify fetches pageURL and reports whether any anchor on it points
// at the directory host. Results are cached per URL; a fetch failure
// is returned as an error (unverified), not cached.
func (v *Verifier) Verify(pageURL string) (bool, error) {
	if v.cache != nil {
		if data, ok := v.cache.Get(pageURL); ok {
			return string(data) == "verified", nil
		}
	}

	doc, err := v.fetch.GetHTML(pageURL)
	if err != nil {
		return false, fmt.Errorf("failed to fetch candidate page: %w", err)
	}

	found := v.scan(doc)

	if v.cache != nil {
		value := "unverified"
		if found {
			value = "verified"
		}
		_ = v.cache.Set(pageURL, []byte(value)) // cache write failure is not a verification failure
	}
	return found, nil
}

// scan walks every anchor and compares its host to the site host.
func (v *Verifier) scan(doc *goquery.Document) bool {
	found := false
	doc.Find("a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if v.matches(href) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (v *Verifier) matches(href string) bool {
	parsed, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false
	}
	return normalizeHost(parsed.Hostname()) == v.siteHost
}

// normalizeHost lower-cases and strips a www. prefix so
// www.altdir.dev and altdir.dev compare equal.
func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
