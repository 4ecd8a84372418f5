// internal/analysis/rank.go
//
// Exhaustive guess ranking over a pool. The pool sizes involved (a few
// thousand candidates against a ~13k guess pool) are small enough that the
// brute-force scan is both correct and fast.

package analysis

import (
	"sort"
)

// GuessMetrics bundles every metric computed for one prospective guess.
type GuessMetrics struct {
	Word              string  `json:"word"`
	Information       float64 `json:"information"`
	ExpectedRemaining float64 `json:"expectedRemaining"`
	WorstCase         int     `json:"worstCase"`
	IsCandidate       bool    `json:"isCandidate"`
}

// Evaluate computes all partition metrics for one guess against candidates.
func Evaluate(word string, candidates []string) GuessMetrics {
	p := PartitionBy(word, candidates)
	return GuessMetrics{
		Word:              word,
		Information:       p.Entropy(),
		ExpectedRemaining: p.ExpectedRemaining(),
		WorstCase:         p.WorstCaseRemaining(),
	}
}

// Better is the documented total ordering used by the optimal-guess search:
// lower expected-remaining first, then higher information, then membership
// in the candidate set, then lexicographic. Keeping the order explicit makes
// ranking results reproducible across runs.
func Better(a, b GuessMetrics) bool {
	if a.ExpectedRemaining != b.ExpectedRemaining {
		return a.ExpectedRemaining < b.ExpectedRemaining
	}
	if a.Information != b.Information {
		return a.Information > b.Information
	}
	if a.IsCandidate != b.IsCandidate {
		return a.IsCandidate
	}
	return a.Word < b.Word
}

// RankOptions configures RankGuesses.
type RankOptions struct {
	// TopN truncates the result; <= 0 keeps everything.
	TopN int
	// DistinctOnly skips pool words with repeated letters. Duplicates waste
	// information on an opening guess, so opener searches enable this.
	DistinctOnly bool
}

// RankGuesses evaluates every pool word against the candidate set and
// returns them best-first under the Better ordering.
func RankGuesses(pool, candidates []string, opts RankOptions) []GuessMetrics {
	candSet := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		candSet[c] = struct{}{}
	}

	out := make([]GuessMetrics, 0, len(pool))
	for _, w := range pool {
		if opts.DistinctOnly && !hasDistinctLetters(w) {
			continue
		}
		m := Evaluate(w, candidates)
		_, m.IsCandidate = candSet[w]
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool { return Better(out[i], out[j]) })
	if opts.TopN > 0 && len(out) > opts.TopN {
		out = out[:opts.TopN]
	}
	return out
}

func hasDistinctLetters(w string) bool {
	var seen [26]bool
	for i := 0; i < len(w); i++ {
		j := w[i] - 'a'
		if seen[j] {
			return false
		}
		seen[j] = true
	}
	return true
}
