package models

import (
	"strings"
	"time"
)

// RecordStatus is the review state of a directory entry.
type RecordStatus string

const (
	StatusPending  RecordStatus = "pending"
	StatusApproved RecordStatus = "approved"
)

// Category is a taxonomy label entries can be browsed by.
// Slug is the identifier everything else references.
type Category struct {
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProprietarySoftware is the commercial product an alternative replaces.
type ProprietarySoftware struct {
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TechStack labels the implementation technology of an alternative
// (language, framework, database).
type TechStack struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Alternative is a directory entry: an open-source project positioned
// as a substitute for one or more proprietary products.
type Alternative struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	ShortDesc string `json:"short_desc"`
	LongDesc  string `json:"long_desc"`
	RepoURL   string `json:"repo_url"`
	Homepage  string `json:"homepage,omitempty"`
	License   string `json:"license"`

	// AlternativeTo holds proprietary-software slugs this entry replaces.
	AlternativeTo []string `json:"alternative_to"`
	// Categories holds taxonomy slugs assigned by the matcher or submitter.
	Categories []string `json:"categories"`
	TechStacks []string `json:"tech_stacks,omitempty"`

	Plan    SubmissionPlan `json:"plan"`
	Status  RecordStatus   `json:"status"`
	OwnerID string         `json:"owner_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchSubject builds the lower-cased text the category matcher scans:
// the alternative-to labels plus both descriptions.
func (a *Alternative) MatchSubject() string {
	var b strings.Builder
	for _, p := range a.AlternativeTo {
		b.WriteString(p)
		b.WriteString(" ")
	}
	b.WriteString(a.ShortDesc)
	b.WriteString(" ")
	b.WriteString(a.LongDesc)
	return strings.ToLower(b.String())
}
