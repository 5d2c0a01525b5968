package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/altdir/altdir/models"
)

// SaveDraft stores the user's draft, overwriting any existing one.
// At most one live draft per user. Drafts may be partial; no field
// validation happens here.
func (db *DB) SaveDraft(userID string, form models.FormState) (*models.Draft, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	now := time.Now().UTC()
	_, err = db.Exec(`
		INSERT INTO drafts (user_id, form_json, last_saved_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET form_json = excluded.form_json, last_saved_at = excluded.last_saved_at
	`, userID, string(data), now)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}

	return &models.Draft{UserID: userID, Form: form, LastSavedAt: now}, nil
}

// GetDraft loads the user's draft. Returns nil when there is none.
func (db *DB) GetDraft(userID string) (*models.Draft, error) {
	var raw string
	var savedAt time.Time
	err := db.QueryRow(
		"SELECT form_json, last_saved_at FROM drafts WHERE user_id = ?", userID,
	).Scan(&raw, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var form models.FormState
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &models.Draft{UserID: userID, Form: form, LastSavedAt: savedAt}, nil
}

// DeleteDraft removes the user's draft. Deleting a missing draft is
// not an error.
func (db *DB) DeleteDraft(userID string) error {
	if _, err := db.Exec("DELETE FROM drafts WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// ListDrafts returns every live draft, most recently saved first.
func (db *DB) ListDrafts() ([]models.Draft, error) {
	rows, err := db.Query("SELECT user_id, form_json, last_saved_at FROM drafts ORDER BY last_saved_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []models.Draft
	for rows.Next() {
		var d models.Draft
		var raw string
		if err := rows.Scan(&d.UserID, &raw, &d.LastSavedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &d.Form); err != nil {
			return nil, fmt.Errorf("failed to decode draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// CountDrafts returns the number of live drafts.
func (db *DB) CountDrafts() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM drafts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count drafts: %w", err)
	}
	return n, nil
}
