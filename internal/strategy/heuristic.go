// internal/strategy/heuristic.go
//
// Human-feasible letter-priority heuristic with one-position-trap handling.
//
// No brute-force pool scan: candidates are scored by how many high-priority
// untested letters they pack in, with positional frequency as a small
// tiebreaker. Before that, the selector checks for the "one-position trap"
// — a candidate set that varies in essentially one letter slot — and, if
// found, picks the candidate covering the most disputed letters anywhere in
// the word (an off-position Present is still discriminating).

package strategy

import (
	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

// trapMinCandidates is the smallest candidate set worth special-casing;
// below it the generic heuristic resolves just as fast.
const trapMinCandidates = 4

// Heuristic is the letter-priority selector.
type Heuristic struct {
	priority string
	weight   float64
}

// NewHeuristic builds the heuristic from injected configuration.
func NewHeuristic(cfg Config) *Heuristic {
	return &Heuristic{priority: cfg.priority(), weight: cfg.untestedWeight()}
}

func (h *Heuristic) Name() string { return "heuristic" }

// Select picks the next guess from the candidate set (hard mode restricts
// the heuristic's pool to candidates).
func (h *Heuristic) Select(t *Turn) (string, error) {
	cands := t.Candidates
	if len(cands) == 0 {
		return "", ErrNoCandidates
	}
	if len(cands) <= 2 {
		return cands[0], nil
	}

	if _, letters, ok := detectTrap(cands); ok && len(cands) >= trapMinCandidates {
		if w := discriminator(cands, letters); w != "" {
			return w, nil
		}
	}

	return h.scoreCandidates(cands, &t.Tested), nil
}

// scoreCandidates ranks candidates by untested-priority coverage plus a
// positional-frequency tiebreaker and returns the best.
func (h *Heuristic) scoreCandidates(cands []string, tested *LetterSet) string {
	// Rank of each letter among the still-untested priority letters:
	// rank[c] = (number of untested letters) - (index in untested order),
	// so the most informative untested letter scores highest.
	var rank [26]float64
	untested := 0
	for i := 0; i < len(h.priority); i++ {
		if !tested.Has(h.priority[i]) {
			untested++
		}
	}
	pos := 0
	for i := 0; i < len(h.priority); i++ {
		c := h.priority[i]
		if tested.Has(c) {
			continue
		}
		rank[c-'a'] = float64(untested - pos)
		pos++
	}

	posFreq := analysis.PositionalFrequency(cands)
	n := float64(len(cands))

	best := ""
	bestScore := -1.0
	for _, word := range cands {
		var seen [26]bool
		untestedScore := 0.0
		for i := 0; i < len(word); i++ {
			c := word[i] - 'a'
			if seen[c] {
				continue
			}
			seen[c] = true
			if !tested.Has(word[i]) {
				untestedScore += rank[c]
			}
		}
		posScore := 0.0
		for i := 0; i < feedback.WordLen; i++ {
			posScore += float64(posFreq[i][word[i]-'a']) / n
		}
		score := untestedScore*h.weight + posScore
		if score > bestScore {
			bestScore = score
			best = word
		}
	}
	return best
}

// detectTrap reports whether the candidate set varies in essentially one
// position: exactly one varying position, or two varying positions where
// one has >= 3 distinct letters and the other at most 2. Returns the
// disputed position and its letter set.
func detectTrap(cands []string) (int, [26]bool, bool) {
	type varying struct {
		pos     int
		letters [26]bool
		count   int
	}
	var vars []varying
	for pos := 0; pos < feedback.WordLen; pos++ {
		var letters [26]bool
		count := 0
		for _, w := range cands {
			c := w[pos] - 'a'
			if !letters[c] {
				letters[c] = true
				count++
			}
		}
		if count > 1 {
			vars = append(vars, varying{pos: pos, letters: letters, count: count})
		}
	}

	switch len(vars) {
	case 1:
		return vars[0].pos, vars[0].letters, true
	case 2:
		if vars[0].count >= 3 && vars[1].count <= 2 {
			return vars[0].pos, vars[0].letters, true
		}
		if vars[1].count >= 3 && vars[0].count <= 2 {
			return vars[1].pos, vars[1].letters, true
		}
	}
	return 0, [26]bool{}, false
}

// discriminator picks the candidate containing the largest number of the
// disputed letters anywhere in the word.
func discriminator(cands []string, letters [26]bool) string {
	best := ""
	bestCoverage := 0
	for _, word := range cands {
		var seen [26]bool
		coverage := 0
		for i := 0; i < len(word); i++ {
			c := word[i] - 'a'
			if letters[c] && !seen[c] {
				seen[c] = true
				coverage++
			}
		}
		if coverage > bestCoverage {
			bestCoverage = coverage
			best = word
		}
	}
	return best
}
