package server

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/reco/reco-builder/internal/config"
	"github.com/reco/reco-builder/internal/document"
	"github.com/reco/reco-builder/internal/export"
	"github.com/reco/reco-builder/internal/llm"
	"github.com/reco/reco-builder/internal/types"
)

// fakeStore is an in-memory Store. Records are copied through JSON so
// handlers never share state with the store.
type fakeStore struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]*document.ResumeRecord
	letters map[uuid.UUID]*document.CoverLetterRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		resumes: make(map[uuid.UUID]*document.ResumeRecord),
		letters: make(map[uuid.UUID]*document.CoverLetterRecord),
	}
}

func copyRecord[T any](src *T) *T {
	data, err := json.Marshal(src)
	if err != nil {
		panic(err)
	}
	dst := new(T)
	if err := json.Unmarshal(data, dst); err != nil {
		panic(err)
	}
	return dst
}

func (f *fakeStore) GetResume(_ context.Context, userID uuid.UUID) (*document.ResumeRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.resumes[userID]
	if !ok {
		return nil, document.ErrNotFound
	}
	return copyRecord(rec), nil
}

func (f *fakeStore) SaveResume(_ context.Context, userID uuid.UUID, rec *document.ResumeRecord, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumes[userID] = copyRecord(rec)
	return nil
}

func (f *fakeStore) GetCoverLetter(_ context.Context, userID uuid.UUID) (*document.CoverLetterRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.letters[userID]
	if !ok {
		return nil, document.ErrNotFound
	}
	return copyRecord(rec), nil
}

func (f *fakeStore) SaveCoverLetter(_ context.Context, userID uuid.UUID, rec *document.CoverLetterRecord, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.letters[userID] = copyRecord(rec)
	return nil
}

// fakeLLM returns fixed responses and records the last prompt.
type fakeLLM struct {
	mu         sync.Mutex
	text       string
	jsonText   string
	err        error
	lastPrompt string
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, _ llm.ModelTier) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string, _ llm.ModelTier) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.jsonText, nil
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake" }
func (f *fakeLLM) Close() error                  { return nil }

// fakeExporter returns canned results without driving a browser.
type fakeExporter struct {
	err error
}

func (f *fakeExporter) Resume(ctx context.Context, doc *types.ResumeDocument, _ string) (*export.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	name := export.ResumeFilename(doc.PersonalInfo.FirstName, doc.PersonalInfo.LastName)
	return export.NewResult([]byte("%PDF-fake"), name), nil
}

func (f *fakeExporter) CoverLetter(ctx context.Context, doc *types.CoverLetterDocument) (*export.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return export.NewResult([]byte("%PDF-fake"), export.CoverLetterFilename(doc.CompanyName)), nil
}

type testEnv struct {
	server   *Server
	store    *fakeStore
	llm      *fakeLLM
	exporter *fakeExporter
	userID   uuid.UUID
	token    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	llmClient := &fakeLLM{}
	exporter := &fakeExporter{}

	srv, err := New(Config{
		Port:      "0",
		SaveQuiet: 10 * time.Millisecond,
		JWT:       &config.JWTConfig{Secret: "test-secret-for-handlers", ExpirationHours: 1},
	}, store, llmClient, exporter)
	require.NoError(t, err)
	t.Cleanup(srv.saver.Stop)

	userID := uuid.New()
	token, err := srv.jwtService.GenerateToken(userID)
	require.NoError(t, err)

	return &testEnv{
		server:   srv,
		store:    store,
		llm:      llmClient,
		exporter: exporter,
		userID:   userID,
		token:    token,
	}
}
