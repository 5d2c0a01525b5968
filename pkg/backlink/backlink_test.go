package backlink

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// htmlFetcher serves canned HTML per URL and counts fetches.
type htmlFetcher struct {
	pages   map[string]string
	fetches int
}

func (f *htmlFetcher) GetHTML(url string) (*goquery.Document, error) {
	f.fetches++
	html, ok := f.pages[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func TestVerify(t *testing.T) {
	fetch := &htmlFetcher{pages: map[string]string{
		"https://proj.example/with":    `<html><body><p>Listed on <a href="https://altdir.dev/focalboard">altdir</a></p></body></html>`,
		"https://proj.example/www":     `<html><body><a href="https://www.altdir.dev/">directory</a></body></html>`,
		"https://proj.example/without": `<html><body><a href="https://example.com/">elsewhere</a></body></html>`,
		"https://proj.example/nolinks": `<html><body><p>plain page</p></body></html>`,
	}}
	v := New("altdir.dev", fetch, nil)

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"backlink present", "https://proj.example/with", true},
		{"www prefix matches", "https://proj.example/www", true},
		{"no backlink", "https://proj.example/without", false},
		{"no anchors at all", "https://proj.example/nolinks", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Verify(tt.url)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Verify(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestVerify_FetchFailure(t *testing.T) {
	v := New("altdir.dev", &htmlFetcher{pages: map[string]string{}}, nil)

	ok, err := v.Verify("https://unreachable.example/")
	if err == nil {
		t.Fatal("Verify() error = nil, want fetch failure")
	}
	if ok {
		t.Error("Verify() = true on fetch failure")
	}
}
