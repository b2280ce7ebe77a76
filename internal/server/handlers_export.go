package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/server/middleware"
)

// handleExportResumePDF renders, captures, and paginates the resume. Any
// queued edit is flushed first so the download matches the editor.
func (s *Server) handleExportResumePDF(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.saver.Flush(resumeSaveKey(userID)); err != nil {
		s.failWith(w, err)
		return
	}

	// The capture runs on a detached context so duplicates sharing the
	// flight survive the first caller's disconnect. The rasterizer carries
	// its own timeout.
	ctx := context.WithoutCancel(r.Context())
	result, err, _ := s.inflight.Do(userID.String()+":export:resume", func() (any, error) {
		rec, err := s.loadResume(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.exporter.Resume(ctx, rec.Document, rec.Template)
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.writePDF(w, result.(*export.Result))
}

// handleExportCoverLetterPDF exports the letter as a single-page PDF.
func (s *Server) handleExportCoverLetterPDF(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.saver.Flush(letterSaveKey(userID)); err != nil {
		s.failWith(w, err)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	result, err, _ := s.inflight.Do(userID.String()+":export:cover-letter", func() (any, error) {
		rec, err := s.loadLetter(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.exporter.CoverLetter(ctx, rec.Document)
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.writePDF(w, result.(*export.Result))
}

// handleExportCoverLetterText downloads the letter as plain text, the
// three slots joined by blank lines.
func (s *Server) handleExportCoverLetterText(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.saver.Flush(letterSaveKey(userID)); err != nil {
		s.failWith(w, err)
		return
	}

	rec, err := s.loadLetter(r.Context(), userID)
	if err != nil {
		s.failWith(w, err)
		return
	}

	text := document.FullText(rec.Document.Content)
	name := export.CoverLetterTextFilename(rec.Document.CompanyName)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (s *Server) writePDF(w http.ResponseWriter, result *export.Result) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(result.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Bytes())
}
