// internal/strategy/lookup.go
//
// Second-guess lookup table selector. Turn 2 consults a precomputed map
// from first-guess feedback pattern to a fixed word; every other turn — and
// any table miss or hard-mode-illegal table entry — defers to the wrapped
// fallback strategy. A table entry can be illegal when the table was built
// against answer-only feedback while live filtering also applies
// guess-pool legality.

package strategy

import (
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

// Lookup wraps a fallback strategy with a guess-2 table.
type Lookup struct {
	table    map[feedback.Pattern]string
	fallback Strategy
}

// NewLookup builds the lookup selector around fallback.
func NewLookup(table map[feedback.Pattern]string, fallback Strategy) *Lookup {
	return &Lookup{table: table, fallback: fallback}
}

func (l *Lookup) Name() string { return "lookup" }

func (l *Lookup) Select(t *Turn) (string, error) {
	if len(t.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	if t.Number == 2 && len(t.History) == 1 {
		if word, ok := l.table[t.History[0].Pattern]; ok && l.legal(t, word) {
			return word, nil
		}
	}
	return l.fallback.Select(t)
}

// legal checks the table word is still consistent with play so far.
func (l *Lookup) legal(t *Turn, word string) bool {
	for _, c := range t.Candidates {
		if c == word {
			return true
		}
	}
	return false
}
