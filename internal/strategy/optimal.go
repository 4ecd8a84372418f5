// internal/strategy/optimal.go
//
// Brute-force information-theoretic selectors. Both scan the full turn
// pool, scoring every word against the candidate set, so cost is
// O(|pool| × |candidates|) feedback computations per turn.

package strategy

import (
	"github.com/franklinharper/wordle-human-solve/internal/analysis"
)

// Entropy picks the pool word with maximum expected information.
// Ties prefer a word that is itself a candidate (it might be the answer),
// then the lexicographically smaller word.
type Entropy struct{}

func (Entropy) Name() string { return "entropy" }

func (Entropy) Select(t *Turn) (string, error) {
	return scanPool(t, func(word string, cands []string) float64 {
		return analysis.ExpectedInformation(word, cands)
	}, false)
}

// MinRemaining picks the pool word with minimum expected remaining
// candidates, with the same tie-break policy as Entropy.
type MinRemaining struct{}

func (MinRemaining) Name() string { return "minremaining" }

func (MinRemaining) Select(t *Turn) (string, error) {
	return scanPool(t, func(word string, cands []string) float64 {
		return analysis.ExpectedRemaining(word, cands)
	}, true)
}

// scanPool runs the shared brute-force loop. With two or fewer candidates
// there is nothing to optimize: the first candidate is already a coin flip
// at worst.
func scanPool(t *Turn, score func(string, []string) float64, lowerBetter bool) (string, error) {
	if len(t.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	if len(t.Candidates) <= 2 {
		return t.Candidates[0], nil
	}

	candSet := make(map[string]struct{}, len(t.Candidates))
	for _, c := range t.Candidates {
		candSet[c] = struct{}{}
	}

	var (
		bestWord string
		bestVal  float64
		bestCand bool
		first    = true
	)
	for _, word := range t.pool() {
		v := score(word, t.Candidates)
		_, isCand := candSet[word]
		if first || better(v, bestVal, lowerBetter) ||
			(v == bestVal && tieBreak(word, isCand, bestWord, bestCand)) {
			bestWord, bestVal, bestCand, first = word, v, isCand, false
		}
	}
	if bestWord == "" {
		return "", ErrNoCandidates
	}
	return bestWord, nil
}

func better(v, best float64, lowerBetter bool) bool {
	if lowerBetter {
		return v < best
	}
	return v > best
}

// tieBreak prefers candidate membership, then lexicographic order.
func tieBreak(word string, isCand bool, bestWord string, bestCand bool) bool {
	if isCand != bestCand {
		return isCand
	}
	return word < bestWord
}
