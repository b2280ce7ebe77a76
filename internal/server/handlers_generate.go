package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/llm"
	"github.com/reco/reco-builder/internal/prompts"
	"github.com/reco/reco-builder/internal/schemas"
	"github.com/reco/reco-builder/internal/server/middleware"
	"github.com/reco/reco-builder/internal/types"
	"github.com/reco/reco-builder/internal/validation"
)

// handleGenerateSection rewrites one resume section. The improved text is
// returned to the client, which applies it to the editor; nothing is
// persisted until the next autosave.
func (s *Server) handleGenerateSection(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	section := r.PathValue("section")

	var req validation.GenerateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: err.Error()})
		return
	}

	var prompt string
	if req.JobDescription != "" {
		prompt, err = prompts.TailorForJob(req.Content, req.JobDescription)
	} else {
		prompt, err = prompts.ImproveSection(section, req.Content)
	}
	if err != nil {
		s.failWith(w, err)
		return
	}

	// One generation per user per section at a time; duplicates share the
	// first call's result. The shared call must survive the first caller
	// disconnecting, so it runs on a detached context.
	ctx := context.WithoutCancel(r.Context())
	result, err, _ := s.inflight.Do(userID.String()+":generate:"+section, func() (any, error) {
		return llm.GenerateTextWithRetry(ctx, s.llm, prompt, llm.TierStandard)
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"content": result.(string)})
}

// handleGenerateCoverLetter generates the full letter or a single slot,
// applies it to the stored document, and persists immediately.
func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req validation.GenerateLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.failWith(w, &ErrValidation{Message: err.Error()})
		return
	}

	// Detached from the request so duplicates joining the flight are not
	// failed by the first caller's disconnect.
	ctx := context.WithoutCancel(r.Context())
	result, err, _ := s.inflight.Do(userID.String()+":generate:cover-letter", func() (any, error) {
		rec, err := s.loadLetter(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := validation.LetterReady(rec.Document); err != nil {
			return nil, &ErrValidation{Message: err.Error()}
		}

		resumeRec, err := s.loadResume(ctx, userID)
		if err != nil {
			return nil, err
		}

		var prompt string
		if req.Slot == "" {
			prompt, err = prompts.CoverLetter(rec.Document, resumeRec.Document)
		} else {
			prompt, err = prompts.CoverLetterSlotPrompt(prompts.CoverLetterSlot(req.Slot), rec.Document, resumeRec.Document)
		}
		if err != nil {
			return nil, err
		}

		text, err := llm.GenerateTextWithRetry(ctx, s.llm, prompt, llm.TierAdvanced)
		if err != nil {
			return nil, err
		}

		switch prompts.CoverLetterSlot(req.Slot) {
		case prompts.SlotOpening:
			rec.Document.Content.Opening = text
		case prompts.SlotBody:
			rec.Document.Content.Body = text
		case prompts.SlotClosing:
			rec.Document.Content.Closing = text
		default:
			document.ApplyGeneratedLetter(&rec.Document.Content, text)
		}

		if err := s.saveLetterNow(ctx, userID, rec); err != nil {
			return nil, err
		}
		return rec, nil
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result.(*document.CoverLetterRecord))
}

// handleSuggestSkills asks the model for additional skills, validates the
// JSON payload, and merges the new entries into the stored skill lists.
func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	ctx := context.WithoutCancel(r.Context())
	result, err, _ := s.inflight.Do(userID.String()+":generate:skills", func() (any, error) {
		rec, err := s.loadResume(ctx, userID)
		if err != nil {
			return nil, err
		}

		prompt, err := prompts.SuggestSkills(rec.Document)
		if err != nil {
			return nil, err
		}

		payload, err := s.llm.GenerateJSON(ctx, prompt, llm.TierLite)
		if err != nil {
			return nil, err
		}
		suggested, err := schemas.ParseSkillSuggestions(payload)
		if err != nil {
			return nil, err
		}

		// Suggestions extend the lists; user entries keep their position
		// and duplicates are dropped case-insensitively.
		for _, cat := range types.SkillCategories {
			rec.Document.Skills[cat] = document.MergeUnique(rec.Document.Skills[cat], suggested[cat])
		}

		if err := s.saveResumeNow(ctx, userID, rec); err != nil {
			return nil, err
		}
		return rec.Document.Skills, nil
	})
	if err != nil {
		s.failWith(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]types.Skills{"skills": result.(types.Skills)})
}
