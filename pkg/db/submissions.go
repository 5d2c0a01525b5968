package db

import (
	"fmt"
	"time"

	"github.com/altdir/altdir/models"
	"github.com/google/uuid"
)

// CreateSubmission finalizes a submission in one transaction: inserts
// the alternative as a pending record with its links, records the
// submission, and deletes the user's draft. Draft and submission are
// mutually exclusive terminal states, so the delete rides the same
// transaction.
func (db *DB) CreateSubmission(userID string, form models.FormState, paymentRef string) (*models.Submission, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	altID := uuid.New().String()
	slug := Slugify(form.Slug)
	if slug == "" {
		slug = Slugify(form.Name)
	}
	if slug == "" {
		// All-punctuation names slugify to nothing; the record ID is
		// unique and URL-safe, so it stands in.
		slug = altID
	}

	_, err = tx.Exec(`
		INSERT INTO alternatives (
			alternative_id, slug, name, short_desc, long_desc,
			repo_url, homepage, license, plan, status, owner_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', ?)
	`, altID, slug, form.Name, form.ShortDesc, form.LongDesc,
		form.RepoURL, nullable(form.Homepage), form.License,
		string(form.Plan), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert submitted alternative: %w", err)
	}

	for i, cat := range form.Categories {
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO alternative_categories (alternative_id, category_slug, position)
			SELECT ?, slug, ? FROM categories WHERE slug = ?
		`, altID, i, cat); err != nil {
			return nil, fmt.Errorf("failed to link category %q: %w", cat, err)
		}
	}
	for _, target := range form.AlternativeTo {
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO alternative_targets (alternative_id, proprietary_slug)
			SELECT ?, slug FROM proprietary_software WHERE slug = ?
		`, altID, target); err != nil {
			return nil, fmt.Errorf("failed to link target %q: %w", target, err)
		}
	}
	for _, stack := range form.TechStacks {
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO alternative_tech_stacks (alternative_id, tech_stack_slug)
			SELECT ?, slug FROM tech_stacks WHERE slug = ?
		`, altID, stack); err != nil {
			return nil, fmt.Errorf("failed to link tech stack %q: %w", stack, err)
		}
	}

	sub := &models.Submission{
		ID:            uuid.New().String(),
		UserID:        userID,
		AlternativeID: altID,
		Plan:          form.Plan,
		PaymentRef:    paymentRef,
		CreatedAt:     time.Now().UTC(),
	}
	_, err = tx.Exec(`
		INSERT INTO submissions (submission_id, user_id, alternative_id, plan, payment_ref, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sub.ID, userID, altID, string(sub.Plan), nullable(paymentRef), sub.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM drafts WHERE user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("failed to clear draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}
	return sub, nil
}

// ListSubmissions returns up to limit submissions, newest first.
func (db *DB) ListSubmissions(limit int) ([]models.Submission, error) {
	query := `
		SELECT submission_id, user_id, alternative_id, plan, COALESCE(payment_ref, ''), created_at
		FROM submissions ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.UserID, &s.AlternativeID, &s.Plan, &s.PaymentRef, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
