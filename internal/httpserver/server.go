// internal/httpserver/server.go
//
// HTTP wiring for the analysis API.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Diagnostics: "/", "/health", "/debug/words".
//   - Stateless suggestions: POST /suggest.
//   - Assisted sessions: POST /session/new, POST /session/guess.
//   - Persisted run stats: GET /runs (404 when no database is attached).
//
// This is a machine API for analysis tooling, not a game UI: callers feed
// it observed feedback and it answers with the strategy's next guess.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/franklinharper/wordle-human-solve/internal/feedback"
	"github.com/franklinharper/wordle-human-solve/internal/simulate"
	"github.com/franklinharper/wordle-human-solve/internal/store"
	"github.com/franklinharper/wordle-human-solve/internal/strategy"
	"github.com/franklinharper/wordle-human-solve/internal/tables"
	"github.com/franklinharper/wordle-human-solve/internal/words"
)

// Server bundles router, corpus, session store, and optional run store.
type Server struct {
	r        *chi.Mux
	corpus   *words.Corpus
	sessions store.SessionStore
	runs     *store.RunStore // nil when no database is configured

	mu         sync.Mutex
	tableCache map[string]map[feedback.Pattern]string // second-guess tables by opener
}

// New constructs a Server, installs middleware, and registers routes.
func New(corpus *words.Corpus, sessions store.SessionStore, runs *store.RunStore) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		corpus:     corpus,
		sessions:   sessions,
		runs:       runs,
		tableCache: make(map[string]map[feedback.Pattern]string),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second)) // full-pool scans can take a moment
	s.r.Use(jsonContentType)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-human-solve","endpoints":["/health","POST /suggest","POST /session/new","POST /session/guess","/runs"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.corpus.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/suggest", s.handleSuggest)
	s.r.Post("/session/new", s.handleSessionNew)
	s.r.Post("/session/guess", s.handleSessionGuess)
	s.r.Get("/runs", s.handleRuns)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("analysis api listening")
	return http.ListenAndServe(addr, s.r)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// newStrategy builds a named strategy, supplying the cached second-guess
// table for the lookup variant.
func (s *Server) newStrategy(name, opener string) (strategy.Strategy, error) {
	cfg := strategy.Config{}
	if name == "lookup" {
		cfg.Table = s.secondGuessTable(opener)
	}
	return strategy.New(name, cfg)
}

// secondGuessTable resolves (once per opener) the lookup table: a table
// persisted by the `table` command wins, otherwise one is built over the
// answer corpus.
func (s *Server) secondGuessTable(opener string) map[feedback.Pattern]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tableCache[opener]; ok {
		return t
	}
	if s.runs != nil {
		if t, err := s.runs.LoadTable(context.Background(), opener); err == nil && len(t) > 0 {
			log.Debug().Str("opener", opener).Int("patterns", len(t)).Msg("second-guess table loaded from db")
			s.tableCache[opener] = t
			return t
		}
	}
	t := tables.Build(opener, s.corpus.Answers())
	s.tableCache[opener] = t
	return t
}

// handleRuns lists persisted simulation summaries.
func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		writeError(w, http.StatusNotFound, "no database configured")
		return
	}
	rows, err := s.runs.ListRuns(r.Context(), 20)
	if err != nil {
		log.Error().Err(err).Msg("list runs")
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ helpers ------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return false
	}
	return true
}

// openerOrDefault falls back to the standard opener.
func openerOrDefault(op string) string {
	if op == "" {
		return simulate.DefaultOpener
	}
	return op
}
