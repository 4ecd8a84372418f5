// internal/httpserver/routes_solver.go
//
// Solver endpoints.
//
//   POST /suggest       → stateless: full history in, next guess out.
//   POST /session/new   → start an assisted session (full candidate set).
//   POST /session/guess → report observed feedback, get the next guess.
//
// Both paths enforce hard mode by filtering the answer corpus (and, for
// /suggest, the full guess pool) through the entire observed history before
// asking the strategy for a word.

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
	"github.com/franklinharper/wordle-human-solve/internal/store"
	"github.com/franklinharper/wordle-human-solve/internal/strategy"
	"github.com/franklinharper/wordle-human-solve/internal/words"
)

type suggestReq struct {
	Strategy string          `json:"strategy"`
	Opener   string          `json:"opener,omitempty"`
	History  []analysis.Step `json:"history"`
}

type suggestResp struct {
	Guess      string `json:"guess"`
	Candidates int    `json:"candidates"`
	Turn       int    `json:"turn"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if !readJSON(w, r, &req) {
		return
	}
	if req.Opener != "" && !words.IsValid(req.Opener) {
		writeError(w, http.StatusBadRequest, "malformed opener: "+req.Opener)
		return
	}
	for _, st := range req.History {
		if !words.IsValid(st.Guess) {
			writeError(w, http.StatusBadRequest, "malformed guess in history: "+st.Guess)
			return
		}
	}

	turn := len(req.History) + 1
	if turn == 1 {
		// No feedback yet: the fixed opener is the whole strategy.
		writeJSON(w, http.StatusOK, suggestResp{
			Guess:      openerOrDefault(req.Opener),
			Candidates: len(s.corpus.Answers()),
			Turn:       1,
		})
		return
	}

	candidates := analysis.FilterHistory(s.corpus.Answers(), req.History)
	if len(candidates) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "history is inconsistent: no candidates remain")
		return
	}
	pool := analysis.FilterHistory(s.corpus.Allowed(), req.History)

	strat, err := s.newStrategy(req.Strategy, openerOrDefault(req.Opener))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var tested strategy.LetterSet
	for _, st := range req.History {
		tested.AddWord(st.Guess)
	}

	guess, err := strat.Select(&strategy.Turn{
		Number:     turn,
		Candidates: candidates,
		Pool:       pool,
		Tested:     tested,
		History:    req.History,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, suggestResp{Guess: guess, Candidates: len(candidates), Turn: turn})
}

type sessionNewReq struct {
	Strategy string `json:"strategy"`
	Opener   string `json:"opener,omitempty"`
}

type sessionResp struct {
	ID         string `json:"id"`
	Suggestion string `json:"suggestion"`
	Candidates int    `json:"candidates"`
	Solved     bool   `json:"solved"`
}

func (s *Server) handleSessionNew(w http.ResponseWriter, r *http.Request) {
	var req sessionNewReq
	if !readJSON(w, r, &req) {
		return
	}
	if req.Opener != "" && !words.IsValid(req.Opener) {
		writeError(w, http.StatusBadRequest, "malformed opener: "+req.Opener)
		return
	}
	opener := openerOrDefault(req.Opener)
	// Validate the strategy name up front so a bad session never exists.
	if _, err := s.newStrategy(req.Strategy, opener); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := &store.Session{
		ID:         store.NewSessionID(),
		Strategy:   req.Strategy,
		Opener:     opener,
		Candidates: s.corpus.Answers(),
		CreatedAt:  time.Now(),
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save session")
		return
	}
	log.Debug().Str("session", sess.ID).Str("strategy", req.Strategy).Msg("session started")
	writeJSON(w, http.StatusOK, sessionResp{
		ID:         sess.ID,
		Suggestion: opener,
		Candidates: len(sess.Candidates),
	})
}

type sessionGuessReq struct {
	ID      string `json:"id"`
	Guess   string `json:"guess"`
	Pattern string `json:"pattern"`
}

func (s *Server) handleSessionGuess(w http.ResponseWriter, r *http.Request) {
	var req sessionGuessReq
	if !readJSON(w, r, &req) {
		return
	}
	sess, err := s.sessions.Get(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "unknown session")
			return
		}
		writeError(w, http.StatusInternalServerError, "load session")
		return
	}
	if !words.IsValid(req.Guess) || !s.corpus.IsAllowed(req.Guess) {
		writeError(w, http.StatusBadRequest, "guess is not in the allowed list")
		return
	}
	pat, err := feedback.Parse(req.Pattern)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.History = append(sess.History, analysis.Step{Guess: req.Guess, Pattern: pat})
	sess.Tested.AddWord(req.Guess)

	if pat.Solved() {
		_ = s.sessions.Save(r.Context(), sess)
		writeJSON(w, http.StatusOK, sessionResp{ID: sess.ID, Solved: true})
		return
	}

	sess.Candidates = analysis.Filter(sess.Candidates, req.Guess, pat)
	if len(sess.Candidates) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "feedback is inconsistent: no candidates remain")
		return
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save session")
		return
	}

	strat, err := s.newStrategy(sess.Strategy, openerOrDefault(sess.Opener))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	guess, err := strat.Select(&strategy.Turn{
		Number:     len(sess.History) + 1,
		Candidates: sess.Candidates,
		Tested:     sess.Tested,
		History:    sess.History,
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessionResp{
		ID:         sess.ID,
		Suggestion: guess,
		Candidates: len(sess.Candidates),
	})
}
