// Package server provides the HTTP REST API for the document builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/reco/reco-builder/internal/config"
	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/llm"
	"github.com/reco/reco-builder/internal/server/middleware"
	"github.com/reco/reco-builder/internal/server/ratelimit"
	"github.com/reco/reco-builder/internal/types"
)

// Exporter produces downloadable PDF artifacts from documents.
type Exporter interface {
	Resume(ctx context.Context, doc *types.ResumeDocument, templateID string) (*export.Result, error)
	CoverLetter(ctx context.Context, doc *types.CoverLetterDocument) (*export.Result, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       document.Store
	llm         llm.Client
	exporter    Exporter
	saver       *document.Saver
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService

	// inflight collapses concurrent generation and export requests per
	// user so a double-click never runs the same expensive job twice.
	inflight singleflight.Group

	// pending holds the newest in-memory record per user while its
	// debounced write is queued, so reads never see stale store state.
	pendingMu     sync.Mutex
	pendingResume map[uuid.UUID]*document.ResumeRecord
	pendingLetter map[uuid.UUID]*document.CoverLetterRecord
}

// Config holds server configuration
type Config struct {
	Port      string
	SaveQuiet time.Duration
	JWT       *config.JWTConfig
}

// New creates a new server instance. Store, LLM client, and exporter are
// injected so tests can swap them for fakes.
func New(cfg Config, store document.Store, llmClient llm.Client, exporter Exporter) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.JWT == nil {
		return nil, fmt.Errorf("JWT config is required")
	}

	s := &Server{
		store:         store,
		llm:           llmClient,
		exporter:      exporter,
		saver:         document.NewSaver(cfg.SaveQuiet),
		jwtService:    NewJWTService(cfg.JWT),
		pendingResume: make(map[uuid.UUID]*document.ResumeRecord),
		pendingLetter: make(map[uuid.UUID]*document.CoverLetterRecord),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Authenticated document routes
	authed := http.NewServeMux()
	authed.HandleFunc("GET /resume", s.handleGetResume)
	authed.HandleFunc("PUT /resume", s.handleSaveResume)
	authed.HandleFunc("POST /resume/reset", s.handleResetResume)
	authed.HandleFunc("PUT /resume/template", s.handleSetTemplate)

	authed.HandleFunc("GET /cover-letter", s.handleGetCoverLetter)
	authed.HandleFunc("PUT /cover-letter", s.handleSaveCoverLetter)
	authed.HandleFunc("POST /cover-letter/reset", s.handleResetCoverLetter)

	authed.HandleFunc("POST /generate/resume/{section}", s.handleGenerateSection)
	authed.HandleFunc("POST /generate/cover-letter", s.handleGenerateCoverLetter)
	authed.HandleFunc("POST /generate/skills/suggest", s.handleSuggestSkills)

	authed.HandleFunc("GET /export/resume.pdf", s.handleExportResumePDF)
	authed.HandleFunc("GET /export/cover-letter.pdf", s.handleExportCoverLetterPDF)
	authed.HandleFunc("GET /export/cover-letter.txt", s.handleExportCoverLetterText)

	authMiddleware := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("/", authMiddleware(authed))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Exports drive a headless browser
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the root handler, including middleware. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.saver.Stop()

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failWith maps an internal error to its HTTP status and writes it.
func (s *Server) failWith(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
}
