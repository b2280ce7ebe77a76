package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/types"
)

// GetResume retrieves the stored resume for a user
func (db *DB) GetResume(ctx context.Context, userID uuid.UUID) (*document.ResumeRecord, error) {
	var data []byte
	var template string
	err := db.pool.QueryRow(ctx,
		`SELECT data, template FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&data, &template)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	return &document.ResumeRecord{Document: &doc, Template: template}, nil
}

// SaveResume stores the resume for a user, creating the row on first save.
// With merge true, non-null top-level fields in the incoming document are
// merged over the stored document instead of replacing it wholesale. Null
// fields in the incoming payload are treated as absent, not as deletions.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, rec *document.ResumeRecord, merge bool) error {
	data, err := json.Marshal(rec.Document)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (user_id, data, template, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   data = CASE WHEN $4 THEN resumes.data || jsonb_strip_nulls(EXCLUDED.data) ELSE EXCLUDED.data END,
		   template = EXCLUDED.template,
		   updated_at = NOW()`,
		userID, data, rec.Template, merge,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetCoverLetter retrieves the stored cover letter for a user
func (db *DB) GetCoverLetter(ctx context.Context, userID uuid.UUID) (*document.CoverLetterRecord, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM cover_letters WHERE user_id = $1`,
		userID,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cover letter: %w", err)
	}

	var doc types.CoverLetterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode cover letter: %w", err)
	}
	return &document.CoverLetterRecord{Document: &doc}, nil
}

// SaveCoverLetter stores the cover letter for a user, creating the row on
// first save. The merge flag behaves as in SaveResume.
func (db *DB) SaveCoverLetter(ctx context.Context, userID uuid.UUID, rec *document.CoverLetterRecord, merge bool) error {
	data, err := json.Marshal(rec.Document)
	if err != nil {
		return fmt.Errorf("failed to encode cover letter: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO cover_letters (user_id, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
		   data = CASE WHEN $3 THEN cover_letters.data || jsonb_strip_nulls(EXCLUDED.data) ELSE EXCLUDED.data END,
		   updated_at = NOW()`,
		userID, data, merge,
	)
	if err != nil {
		return fmt.Errorf("failed to save cover letter: %w", err)
	}
	return nil
}
