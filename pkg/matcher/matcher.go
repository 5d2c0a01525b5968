// Package matcher assigns taxonomy categories to candidate directory
// entries by scanning their descriptive text against an ordered list of
// keyword rules. It is pure data transformation: no I/O, no hidden
// state, and it never returns an error.
package matcher

import "strings"

// MaxCategories is how many labels a match assigns; a rule only wins
// when it can resolve at least this many.
const MaxCategories = 3

// Rule maps a set of trigger keywords to the categories assigned when
// one of them appears in the candidate text. Rules are evaluated in
// declaration order, so more specific keyword sets must come first.
type Rule struct {
	Keywords   []string
	Categories []string
}

// LabelSet is the set of category slugs that actually exist in the
// store. Slugs referenced by a rule but absent here are dropped.
type LabelSet map[string]struct{}

// NewLabelSet builds a LabelSet from a slice of slugs.
func NewLabelSet(slugs []string) LabelSet {
	set := make(LabelSet, len(slugs))
	for _, s := range slugs {
		set[s] = struct{}{}
	}
	return set
}

// Match selects up to MaxCategories category slugs for candidateText.
//
// Rules are tried in order. The first rule with a keyword contained in
// the text resolves its categories against available; containment is a
// case-insensitive substring check with no word-boundary handling, so
// partial-word hits are accepted. If at least MaxCategories survive
// resolution, the first MaxCategories win and no later rule is tried.
// A rule that resolves short does not win; the scan continues past it.
// If no rule qualifies, the
// defaults are resolved the same way and returned, which may leave the
// result short or empty when the store is missing labels. Zero labels
// is a valid outcome, not an error.
func Match(candidateText string, rules []Rule, available LabelSet, defaults []string) []string {
	text := strings.ToLower(candidateText)

	if text != "" {
		for _, rule := range rules {
			if !rule.hits(text) {
				continue
			}
			resolved := resolve(rule.Categories, available)
			if len(resolved) >= MaxCategories {
				return resolved[:MaxCategories]
			}
		}
	}

	resolved := resolve(defaults, available)
	if len(resolved) > MaxCategories {
		resolved = resolved[:MaxCategories]
	}
	return resolved
}

// hits reports whether any keyword appears as a substring of text.
// Keywords are compared lower-cased; text is already lower-cased.
func (r Rule) hits(text string) bool {
	for _, kw := range r.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// resolve filters slugs against available, preserving order.
func resolve(slugs []string, available LabelSet) []string {
	resolved := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if _, ok := available[s]; ok {
			resolved = append(resolved, s)
		}
	}
	return resolved
}
