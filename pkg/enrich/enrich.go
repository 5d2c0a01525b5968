// Package enrich augments a candidate's match subject with readable
// text extracted from its homepage. Extraction failures are soft: the
// seeder falls back to the un-enriched subject.
package enrich

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/altdir/altdir/pkg/caching"
)

// maxExtractChars bounds how much page text gets appended to a match
// subject; keyword rules only need the lead of the page.
const maxExtractChars = 2000

// BytesFetcher loads a page body. fetcher.Fetcher satisfies it.
type BytesFetcher interface {
	GetHTMLBytes(url string) ([]byte, error)
}

type Enricher struct {
	fetch    BytesFetcher
	cache    *caching.Cache
	detector lingua.LanguageDetector
}

// New builds an Enricher. cache may be nil to always refetch.
func New(fetch BytesFetcher, cache *caching.Cache) *Enricher {
	// The detector needs a candidate set to choose between; these
	// cover the languages project homepages actually show up in.
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.German, lingua.French,
			lingua.Spanish, lingua.Portuguese, lingua.Chinese,
			lingua.Japanese, lingua.Russian,
		).
		Build()

	return &Enricher{fetch: fetch, cache: cache, detector: detector}
}

// Extract fetches pageURL and returns its readable main text, empty
// when the page is unusable or not in English. Only English extracts
// feed the keyword matcher; its rule table is English.
func (e *Enricher) Extract(pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse page URL: %w", err)
	}

	var body []byte
	if e.cache != nil {
		if data, ok := e.cache.Get(pageURL); ok {
			body = data
		}
	}
	if body == nil {
		body, err = e.fetch.GetHTMLBytes(pageURL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch page: %w", err)
		}
		if e.cache != nil {
			_ = e.cache.Set(pageURL, body)
		}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(string(body)), parsed)
	if err != nil {
		return "", fmt.Errorf("failed to extract readable content: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", nil
	}
	text = truncate(text, maxExtractChars)

	if !e.IsEnglish(text) {
		return "", nil
	}
	return text, nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// IsEnglish reports whether text is detected as English. Undetectable
// text (too short, mixed) is rejected.
func (e *Enricher) IsEnglish(text string) bool {
	lang, ok := e.detector.DetectLanguageOf(text)
	return ok && lang == lingua.English
}
