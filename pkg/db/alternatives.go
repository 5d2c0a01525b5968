package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/altdir/altdir/models"
	"github.com/google/uuid"
)

// UpsertAlternative inserts an alternative by slug or updates the
// existing row, returning the alternative ID. Category, target, and
// tech-stack links are replaced wholesale. Used by the seeder, so the
// whole operation is idempotent.
func (db *DB) UpsertAlternative(alt *models.Alternative) (string, error) {
	var id string
	err := db.QueryRow("SELECT alternative_id FROM alternatives WHERE slug = ?", alt.Slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		id = uuid.New().String()
		_, err = db.Exec(`
			INSERT INTO alternatives (
				alternative_id, slug, name, short_desc, long_desc,
				repo_url, homepage, license, plan, status, owner_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, alt.Slug, alt.Name, alt.ShortDesc, alt.LongDesc,
			alt.RepoURL, nullable(alt.Homepage), alt.License,
			string(planOrFree(alt.Plan)), string(statusOrPending(alt.Status)), nullable(alt.OwnerID))
		if err != nil {
			return "", fmt.Errorf("failed to insert alternative %q: %w", alt.Slug, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to check existing alternative: %w", err)
	} else {
		_, err = db.Exec(`
			UPDATE alternatives
			SET name = ?, short_desc = ?, long_desc = ?, repo_url = ?,
			    homepage = ?, license = ?, updated_at = ?
			WHERE alternative_id = ?
		`, alt.Name, alt.ShortDesc, alt.LongDesc, alt.RepoURL,
			nullable(alt.Homepage), alt.License, time.Now().UTC(), id)
		if err != nil {
			return "", fmt.Errorf("failed to update alternative %q: %w", alt.Slug, err)
		}
	}

	if err := db.replaceLinks(id, alt); err != nil {
		return "", err
	}
	return id, nil
}

// replaceLinks rewrites the junction rows for one alternative.
// Unresolved slugs are skipped silently, matching the matcher's
// drop-unresolved-labels behavior.
func (db *DB) replaceLinks(id string, alt *models.Alternative) error {
	if _, err := db.Exec("DELETE FROM alternative_categories WHERE alternative_id = ?", id); err != nil {
		return fmt.Errorf("failed to clear category links: %w", err)
	}
	for i, slug := range alt.Categories {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO alternative_categories (alternative_id, category_slug, position)
			SELECT ?, slug, ? FROM categories WHERE slug = ?
		`, id, i, slug)
		if err != nil {
			return fmt.Errorf("failed to link category %q: %w", slug, err)
		}
	}

	if _, err := db.Exec("DELETE FROM alternative_targets WHERE alternative_id = ?", id); err != nil {
		return fmt.Errorf("failed to clear target links: %w", err)
	}
	for _, slug := range alt.AlternativeTo {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO alternative_targets (alternative_id, proprietary_slug)
			SELECT ?, slug FROM proprietary_software WHERE slug = ?
		`, id, slug)
		if err != nil {
			return fmt.Errorf("failed to link target %q: %w", slug, err)
		}
	}

	if _, err := db.Exec("DELETE FROM alternative_tech_stacks WHERE alternative_id = ?", id); err != nil {
		return fmt.Errorf("failed to clear tech-stack links: %w", err)
	}
	for _, slug := range alt.TechStacks {
		_, err := db.Exec(`
			INSERT OR IGNORE INTO alternative_tech_stacks (alternative_id, tech_stack_slug)
			SELECT ?, slug FROM tech_stacks WHERE slug = ?
		`, id, slug)
		if err != nil {
			return fmt.Errorf("failed to link tech stack %q: %w", slug, err)
		}
	}
	return nil
}

// GetAlternativeBySlug loads one alternative by its public slug.
func (db *DB) GetAlternativeBySlug(slug string) (*models.Alternative, error) {
	var id string
	err := db.QueryRow("SELECT alternative_id FROM alternatives WHERE slug = ?", slug).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	return db.GetAlternative(id)
}

// GetAlternative loads one alternative with its links.
func (db *DB) GetAlternative(id string) (*models.Alternative, error) {
	var alt models.Alternative
	var homepage, ownerID sql.NullString
	err := db.QueryRow(`
		SELECT alternative_id, slug, name, short_desc, long_desc, repo_url,
		       homepage, license, plan, status, owner_id, created_at, updated_at
		FROM alternatives WHERE alternative_id = ?
	`, id).Scan(&alt.ID, &alt.Slug, &alt.Name, &alt.ShortDesc, &alt.LongDesc,
		&alt.RepoURL, &homepage, &alt.License, &alt.Plan, &alt.Status,
		&ownerID, &alt.CreatedAt, &alt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alternative: %w", err)
	}
	alt.Homepage = homepage.String
	alt.OwnerID = ownerID.String

	alt.Categories, err = db.linkedSlugs(
		"SELECT category_slug FROM alternative_categories WHERE alternative_id = ? ORDER BY position", id)
	if err != nil {
		return nil, err
	}
	alt.AlternativeTo, err = db.linkedSlugs(
		"SELECT proprietary_slug FROM alternative_targets WHERE alternative_id = ? ORDER BY proprietary_slug", id)
	if err != nil {
		return nil, err
	}
	alt.TechStacks, err = db.linkedSlugs(
		"SELECT tech_stack_slug FROM alternative_tech_stacks WHERE alternative_id = ? ORDER BY tech_stack_slug", id)
	if err != nil {
		return nil, err
	}
	return &alt, nil
}

func (db *DB) linkedSlugs(query, id string) ([]string, error) {
	rows, err := db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}

// DuplicateMatch describes an approved or pending record colliding
// with a candidate's name or repo URL.
type DuplicateMatch struct {
	ID      string
	Name    string
	RepoURL string
	OwnerID string
	ByName  bool
	ByRepo  bool
}

// FindDuplicate looks for an existing approved/pending alternative
// with the same name (case-insensitive) or the same repo URL. Returns
// nil when there is no collision.
func (db *DB) FindDuplicate(name, repoURL string) (*DuplicateMatch, error) {
	var m DuplicateMatch
	var ownerID sql.NullString
	err := db.QueryRow(`
		SELECT alternative_id, name, repo_url, owner_id
		FROM alternatives
		WHERE status IN ('approved', 'pending')
		  AND (LOWER(name) = LOWER(?) OR (repo_url != '' AND repo_url = ?))
		LIMIT 1
	`, name, repoURL).Scan(&m.ID, &m.Name, &m.RepoURL, &ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}

	m.OwnerID = ownerID.String
	m.ByName = strings.EqualFold(m.Name, name)
	m.ByRepo = repoURL != "" && m.RepoURL == repoURL
	return &m, nil
}

// ClaimAlternative assigns ownership of an ownerless record.
// Returns false when the record is already owned or missing.
func (db *DB) ClaimAlternative(alternativeID, userID string) (bool, error) {
	res, err := db.Exec(`
		UPDATE alternatives SET owner_id = ?, updated_at = ?
		WHERE alternative_id = ? AND owner_id IS NULL
	`, userID, time.Now().UTC(), alternativeID)
	if err != nil {
		return false, fmt.Errorf("failed to claim alternative: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	return n == 1, nil
}

// ListAlternatives returns up to limit alternatives, newest first.
// A limit of 0 means no limit.
func (db *DB) ListAlternatives(limit int) ([]models.Alternative, error) {
	query := `
		SELECT alternative_id, slug, name, short_desc, repo_url, license,
		       plan, status, created_at, updated_at
		FROM alternatives ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list alternatives: %w", err)
	}
	defer rows.Close()

	var alts []models.Alternative
	for rows.Next() {
		var a models.Alternative
		if err := rows.Scan(&a.ID, &a.Slug, &a.Name, &a.ShortDesc, &a.RepoURL,
			&a.License, &a.Plan, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan alternative: %w", err)
		}
		alts = append(alts, a)
	}
	return alts, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func planOrFree(p models.SubmissionPlan) models.SubmissionPlan {
	if !p.Valid() {
		return models.PlanFree
	}
	return p
}

func statusOrPending(s models.RecordStatus) models.RecordStatus {
	if s != models.StatusApproved {
		return models.StatusPending
	}
	return s
}
