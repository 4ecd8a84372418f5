// internal/store/memory.go
//
// In-memory session store for interactive solver sessions.
// A session tracks one live assisted game: the guess history observed so
// far, the surviving candidate set, and the tested letters. Sessions are
// ephemeral by design; state is lost on process restart.
//
// Characteristics:
//   - Sessions keyed by a compact random hex ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed).
//   - Get returns an error for unknown IDs.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/strategy"
)

// ErrSessionNotFound is returned by Get for unknown session IDs.
var ErrSessionNotFound = errors.New("store: session not found")

// Session is one in-progress assisted game.
type Session struct {
	ID         string             // random hex identifier
	Strategy   string             // strategy name driving suggestions
	Opener     string             // fixed first guess chosen at session start
	History    []analysis.Step    // observed (guess, pattern) pairs
	Candidates []string           // answers still consistent with History
	Tested     strategy.LetterSet // letters guessed so far
	CreatedAt  time.Time
}

// SessionStore is the persistence interface for live sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type SessionStore interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*Session, error)
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemorySessionStore constructs an in-memory SessionStore.
func NewMemorySessionStore() SessionStore {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

// NewSessionID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func NewSessionID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
