package server

import (
	"encoding/json"
	"net/http"

	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/server/middleware"
	"github.com/reco/reco-builder/internal/types"
)

// handleGetCoverLetter returns the user's cover letter, creating the
// empty initial value on first access.
func (s *Server) handleGetCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := s.loadLetter(r.Context(), userID)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleSaveCoverLetter merges the request body over the current letter
// and queues a debounced write.
func (s *Server) handleSaveCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := s.loadLetter(r.Context(), userID)
	if err != nil {
		s.failWith(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(rec); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec.Document.Normalize()

	s.scheduleLetterSave(userID, rec)
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleResetCoverLetter replaces the letter with the empty initial value.
func (s *Server) handleResetCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec := &document.CoverLetterRecord{Document: types.EmptyCoverLetter()}
	if err := s.saveLetterNow(r.Context(), userID, rec); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}
