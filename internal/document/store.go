// Package document provides storage-independent operations on documents:
// the Store contract, entry mutation helpers, AI-suggestion merging, cover
// letter partitioning, and the debounced autosave wrapper.
package document

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/reco/reco-builder/internal/types"
)

// ErrNotFound indicates no stored document exists for the user yet.
// Callers treat it as "start from the empty initial value", not a failure.
var ErrNotFound = errors.New("document not found")

// ResumeRecord is the persisted unit for a resume: the document plus the
// user's selected template, saved and loaded together.
type ResumeRecord struct {
	Document *types.ResumeDocument `json:"resumeData"`
	Template string                `json:"selectedTemplate"`
}

// CoverLetterRecord is the persisted unit for a cover letter.
type CoverLetterRecord struct {
	Document *types.CoverLetterDocument `json:"coverLetterData"`
}

// Store is the document persistence contract: keyed by user, last write
// wins. Implementations return ErrNotFound from Get when no row exists.
// The merge flag on save performs a shallow merge into the stored document
// instead of a full replacement.
type Store interface {
	GetResume(ctx context.Context, userID uuid.UUID) (*ResumeRecord, error)
	SaveResume(ctx context.Context, userID uuid.UUID, rec *ResumeRecord, merge bool) error
	GetCoverLetter(ctx context.Context, userID uuid.UUID) (*CoverLetterRecord, error)
	SaveCoverLetter(ctx context.Context, userID uuid.UUID, rec *CoverLetterRecord, merge bool) error
}

// LoadResume fetches the user's resume, falling back to the empty initial
// value when none is stored. The returned record is always normalized.
func LoadResume(ctx context.Context, store Store, userID uuid.UUID) (*ResumeRecord, error) {
	rec, err := store.GetResume(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &ResumeRecord{Document: types.EmptyResume(), Template: types.ResumeTemplateDefault}, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.Document == nil {
		rec.Document = types.EmptyResume()
	}
	rec.Document.Normalize()
	if !types.ValidResumeTemplate(rec.Template) {
		rec.Template = types.ResumeTemplateDefault
	}
	return rec, nil
}

// LoadCoverLetter fetches the user's cover letter, falling back to the
// empty initial value when none is stored.
func LoadCoverLetter(ctx context.Context, store Store, userID uuid.UUID) (*CoverLetterRecord, error) {
	rec, err := store.GetCoverLetter(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &CoverLetterRecord{Document: types.EmptyCoverLetter()}, nil
	}
	if err != nil {
		return nil, err
	}
	if rec.Document == nil {
		rec.Document = types.EmptyCoverLetter()
	}
	rec.Document.Normalize()
	return rec, nil
}
