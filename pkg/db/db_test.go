package db

import "testing"

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

// seedTaxonomy inserts the labels most tests link against.
func seedTaxonomy(t *testing.T, database *DB) {
	t.Helper()

	categories := map[string]string{
		"project-management": "Project Management",
		"task-management":    "Task Management",
		"productivity":       "Productivity",
	}
	for slug, name := range categories {
		if err := database.UpsertCategory(slug, name); err != nil {
			t.Fatalf("UpsertCategory(%q) error = %v", slug, err)
		}
	}

	if err := database.UpsertProprietary("trello", "Trello", "https://trello.com"); err != nil {
		t.Fatalf("UpsertProprietary() error = %v", err)
	}
	if err := database.UpsertTechStack("golang", "Go"); err != nil {
		t.Fatalf("UpsertTechStack() error = %v", err)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Focalboard", "focalboard"},
		{"spaces", "Open Project Tracker", "open-project-tracker"},
		{"punctuation", "Node.js App!", "node-js-app"},
		{"leading junk", "  --Board", "board"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
