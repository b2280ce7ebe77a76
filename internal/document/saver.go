package document

import (
	"log"
	"sync"
	"time"
)

// DefaultQuietWindow is the autosave debounce window: a write fires only
// after this much inactivity, collapsing a burst of edits into one write.
const DefaultQuietWindow = time.Second

// Saver debounces persistence writes per key (one key per user+document).
// Writes are last-write-wins; a failed write is logged and kept for the
// next status query but never reverts in-memory state.
type Saver struct {
	quiet time.Duration

	mu      sync.Mutex
	pending map[string]*pendingSave
	errs    map[string]error
}

type pendingSave struct {
	timer *time.Timer
	fn    func() error
}

// NewSaver creates a Saver with the given quiet window. A non-positive
// window uses DefaultQuietWindow.
func NewSaver(quiet time.Duration) *Saver {
	if quiet <= 0 {
		quiet = DefaultQuietWindow
	}
	return &Saver{
		quiet:   quiet,
		pending: make(map[string]*pendingSave),
		errs:    make(map[string]error),
	}
}

// Schedule queues fn to run after the quiet window. A later Schedule for
// the same key replaces the queued write and restarts the window.
func (s *Saver) Schedule(key string, fn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[key]; ok {
		p.timer.Stop()
	}
	p := &pendingSave{fn: fn}
	p.timer = time.AfterFunc(s.quiet, func() { s.fire(key, p) })
	s.pending[key] = p
}

// Flush runs any queued write for key immediately and returns its error.
// Used before export so the stored document matches what gets exported.
func (s *Saver) Flush(key string) error {
	s.mu.Lock()
	p, ok := s.pending[key]
	if ok {
		p.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	err := p.fn()
	s.record(key, err)
	return err
}

// LastError returns the most recent write failure for key, or nil. The
// error is cleared once read.
func (s *Saver) LastError(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.errs[key]
	delete(s.errs, key)
	return err
}

// Cancel drops any queued write for key without running it.
func (s *Saver) Cancel(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[key]; ok {
		p.timer.Stop()
		delete(s.pending, key)
	}
}

// Stop cancels all queued writes without running them.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, key)
	}
}

func (s *Saver) fire(key string, p *pendingSave) {
	s.mu.Lock()
	if s.pending[key] == p {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	s.record(key, p.fn())
}

func (s *Saver) record(key string, err error) {
	if err == nil {
		return
	}
	log.Printf("[SAVE] write failed for %s: %v", key, err)
	s.mu.Lock()
	s.errs[key] = err
	s.mu.Unlock()
}
