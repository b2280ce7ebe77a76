package server

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/reco/reco-builder/internal/document"
)

// saveContext bounds a background persistence write. Debounced saves run
// off the request goroutine, so they cannot use the request context.
func saveContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Saver keys, one per user per document kind.
func resumeSaveKey(userID uuid.UUID) string { return userID.String() + ":resume" }
func letterSaveKey(userID uuid.UUID) string { return userID.String() + ":cover-letter" }

// cloneRecord deep-copies a record so cached pending state is never
// mutated through a handler's pointer.
func cloneRecord[T any](src *T) *T {
	data, err := json.Marshal(src)
	if err != nil {
		return src
	}
	dst := new(T)
	if err := json.Unmarshal(data, dst); err != nil {
		return src
	}
	return dst
}

// loadResume returns the newest resume state: the pending in-memory record
// if a debounced write is queued, otherwise the stored record.
func (s *Server) loadResume(ctx context.Context, userID uuid.UUID) (*document.ResumeRecord, error) {
	s.pendingMu.Lock()
	rec := s.pendingResume[userID]
	s.pendingMu.Unlock()
	if rec != nil {
		return cloneRecord(rec), nil
	}
	return document.LoadResume(ctx, s.store, userID)
}

// loadLetter is loadResume for the cover letter.
func (s *Server) loadLetter(ctx context.Context, userID uuid.UUID) (*document.CoverLetterRecord, error) {
	s.pendingMu.Lock()
	rec := s.pendingLetter[userID]
	s.pendingMu.Unlock()
	if rec != nil {
		return cloneRecord(rec), nil
	}
	return document.LoadCoverLetter(ctx, s.store, userID)
}

// scheduleResumeSave caches the record and queues its debounced write.
func (s *Server) scheduleResumeSave(userID uuid.UUID, rec *document.ResumeRecord) {
	s.pendingMu.Lock()
	s.pendingResume[userID] = rec
	s.pendingMu.Unlock()

	s.saver.Schedule(resumeSaveKey(userID), func() error {
		ctx, cancel := saveContext()
		defer cancel()
		return s.store.SaveResume(ctx, userID, rec, true)
	})
}

// scheduleLetterSave caches the record and queues its debounced write.
func (s *Server) scheduleLetterSave(userID uuid.UUID, rec *document.CoverLetterRecord) {
	s.pendingMu.Lock()
	s.pendingLetter[userID] = rec
	s.pendingMu.Unlock()

	s.saver.Schedule(letterSaveKey(userID), func() error {
		ctx, cancel := saveContext()
		defer cancel()
		return s.store.SaveCoverLetter(ctx, userID, rec, true)
	})
}

// saveResumeNow writes the record immediately, replacing any queued edit.
func (s *Server) saveResumeNow(ctx context.Context, userID uuid.UUID, rec *document.ResumeRecord) error {
	s.saver.Cancel(resumeSaveKey(userID))
	if err := s.store.SaveResume(ctx, userID, rec, false); err != nil {
		return err
	}
	s.pendingMu.Lock()
	delete(s.pendingResume, userID)
	s.pendingMu.Unlock()
	return nil
}

// saveLetterNow writes the record immediately, replacing any queued edit.
func (s *Server) saveLetterNow(ctx context.Context, userID uuid.UUID, rec *document.CoverLetterRecord) error {
	s.saver.Cancel(letterSaveKey(userID))
	if err := s.store.SaveCoverLetter(ctx, userID, rec, false); err != nil {
		return err
	}
	s.pendingMu.Lock()
	delete(s.pendingLetter, userID)
	s.pendingMu.Unlock()
	return nil
}
