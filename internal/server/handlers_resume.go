package server

import (
	"encoding/json"
	"net/http"

	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/server/middleware"
	"github.com/reco/reco-builder/internal/types"
	"github.com/reco/reco-builder/internal/validation"
)

// handleGetResume returns the user's resume, creating the empty initial
// value on first access.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := s.loadResume(r.Context(), userID)
	if err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleSaveResume merges the request body over the current resume and
// queues a debounced write. The response carries the merged document.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec, err := s.loadResume(r.Context(), userID)
	if err != nil {
		s.failWith(w, err)
		return
	}

	// Decoding over the current record merges top-level fields: keys
	// absent from the body keep their current values.
	if err := json.NewDecoder(r.Body).Decode(rec); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rec.Document.Normalize()
	document.AssignEntryIDs(rec.Document)
	if !types.ValidResumeTemplate(rec.Template) {
		rec.Template = types.ResumeTemplateDefault
	}

	s.scheduleResumeSave(userID, rec)
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleResetResume replaces the resume with the empty initial value. The
// write is immediate, not debounced.
func (s *Server) handleResetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rec := &document.ResumeRecord{
		Document: types.EmptyResume(),
		Template: types.ResumeTemplateDefault,
	}
	if err := s.saveResumeNow(r.Context(), userID, rec); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleSetTemplate switches the active resume template. Content is not
// touched; only the template id changes.
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req validation.SetTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: err.Error()})
		return
	}

	rec, err := s.loadResume(r.Context(), userID)
	if err != nil {
		s.failWith(w, err)
		return
	}
	rec.Template = req.Template

	if err := s.saveResumeNow(r.Context(), userID, rec); err != nil {
		s.failWith(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}
