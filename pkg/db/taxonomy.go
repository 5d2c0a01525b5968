package db

import (
	"fmt"

	"github.com/altdir/altdir/models"
)

// UpsertCategory inserts a category or updates its name. Idempotent so
// re-running the seeder is safe.
func (db *DB) UpsertCategory(slug, name string) error {
	_, err := db.Exec(`
		INSERT INTO categories (slug, name) VALUES (?, ?)
		ON CONFLICT(slug) DO UPDATE SET name = excluded.name
	`, slug, name)
	if err != nil {
		return fmt.Errorf("failed to upsert category %q: %w", slug, err)
	}
	return nil
}

// ListCategories returns all categories ordered by slug.
func (db *DB) ListCategories() ([]models.Category, error) {
	rows, err := db.Query("SELECT slug, name, created_at FROM categories ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.Slug, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListCategorySlugs returns just the slugs, feeding the matcher's
// available-label set.
func (db *DB) ListCategorySlugs() ([]string, error) {
	rows, err := db.Query("SELECT slug FROM categories ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to list category slugs: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

// UpsertProprietary inserts or updates a proprietary-software entry.
func (db *DB) UpsertProprietary(slug, name, website string) error {
	_, err := db.Exec(`
		INSERT INTO proprietary_software (slug, name, website) VALUES (?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET name = excluded.name, website = excluded.website
	`, slug, name, website)
	if err != nil {
		return fmt.Errorf("failed to upsert proprietary software %q: %w", slug, err)
	}
	return nil
}

// ListProprietary returns all proprietary-software entries ordered by slug.
func (db *DB) ListProprietary() ([]models.ProprietarySoftware, error) {
	rows, err := db.Query("SELECT slug, name, COALESCE(website, ''), created_at FROM proprietary_software ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to list proprietary software: %w", err)
	}
	defer rows.Close()

	var entries []models.ProprietarySoftware
	for rows.Next() {
		var p models.ProprietarySoftware
		if err := rows.Scan(&p.Slug, &p.Name, &p.Website, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan proprietary software: %w", err)
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

// UpsertTechStack inserts or updates a tech-stack label.
func (db *DB) UpsertTechStack(slug, name string) error {
	_, err := db.Exec(`
		INSERT INTO tech_stacks (slug, name) VALUES (?, ?)
		ON CONFLICT(slug) DO UPDATE SET name = excluded.name
	`, slug, name)
	if err != nil {
		return fmt.Errorf("failed to upsert tech stack %q: %w", slug, err)
	}
	return nil
}

// ListTechStacks returns all tech-stack labels ordered by slug.
func (db *DB) ListTechStacks() ([]models.TechStack, error) {
	rows, err := db.Query("SELECT slug, name FROM tech_stacks ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to list tech stacks: %w", err)
	}
	defer rows.Close()

	var stacks []models.TechStack
	for rows.Next() {
		var s models.TechStack
		if err := rows.Scan(&s.Slug, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tech stack: %w", err)
		}
		stacks = append(stacks, s)
	}
	return stacks, rows.Err()
}
