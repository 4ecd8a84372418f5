// internal/strategy/strategy.go
//
// Guess selection strategies for hard-mode play.
//
// A Strategy picks the next guess from the current turn's view of the game:
// the shrinking candidate set, the hard-mode-legal guess pool, the letters
// already tested, and the observed history. Variants:
//   - "entropy":      maximize expected information over the pool.
//   - "minremaining": minimize expected remaining candidates.
//   - "heuristic":    human-feasible letter-priority scoring with
//                     one-position-trap handling.
//   - "lookup":       second-guess lookup table with heuristic fallback.
//
// Heuristic tables (the letter priority order, weights, lookup table) are
// injected through Config rather than shared globals so variants stay
// independently testable and swappable.

package strategy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

// DefaultPriority orders letters by average informativeness over the answer
// corpus, most informative first. Derived empirically from corpus letter
// frequency: after testing r,a,i,s,e the next best untested letters are
// o,t,l,n,u,c,y,h,d.
const DefaultPriority = "earotilsnucyhdpgmbfkwvxzqj"

// DefaultUntestedWeight scales the untested-letter coverage term so it
// always dominates the positional-frequency tiebreaker.
const DefaultUntestedWeight = 100

// ErrUnknown is returned for strategy names outside Names().
var ErrUnknown = errors.New("strategy: unknown strategy")

// ErrNoCandidates is returned when a selector is asked to pick from nothing.
var ErrNoCandidates = errors.New("strategy: empty candidate set")

// LetterSet tracks which letters have appeared in any guess so far.
type LetterSet [26]bool

// AddWord marks every letter of w as tested.
func (s *LetterSet) AddWord(w string) {
	for i := 0; i < len(w); i++ {
		s[w[i]-'a'] = true
	}
}

// Has reports whether letter c (a–z) has been tested.
func (s *LetterSet) Has(c byte) bool { return s[c-'a'] }

// Turn is the per-turn view a strategy selects from.
type Turn struct {
	// Number is the 1-based turn index.
	Number int
	// Candidates are the answer words still consistent with all feedback.
	Candidates []string
	// Pool is the hard-mode-legal guess pool. Empty means "use Candidates".
	Pool []string
	// Tested holds the letters guessed so far.
	Tested LetterSet
	// History is the ordered (guess, pattern) trace so far.
	History []analysis.Step
}

// pool returns the searchable guess pool for the turn.
func (t *Turn) pool() []string {
	if len(t.Pool) > 0 {
		return t.Pool
	}
	return t.Candidates
}

// Strategy selects one guess per turn.
type Strategy interface {
	Name() string
	Select(t *Turn) (string, error)
}

// Config carries the injectable knobs shared by the heuristic variants.
type Config struct {
	// Priority is the 26-letter global priority order (DefaultPriority if
	// empty). Must contain each letter exactly once.
	Priority string
	// UntestedWeight multiplies the untested-coverage score
	// (DefaultUntestedWeight if zero).
	UntestedWeight float64
	// Table maps a first-guess feedback pattern to a fixed second guess;
	// only the "lookup" variant uses it.
	Table map[feedback.Pattern]string
}

func (c Config) priority() string {
	if c.Priority == "" {
		return DefaultPriority
	}
	return c.Priority
}

func (c Config) untestedWeight() float64 {
	if c.UntestedWeight == 0 {
		return DefaultUntestedWeight
	}
	return c.UntestedWeight
}

func (c Config) validate() error {
	p := c.priority()
	if len(p) != 26 {
		return fmt.Errorf("strategy: priority must list all 26 letters, got %d", len(p))
	}
	var seen [26]bool
	for i := 0; i < len(p); i++ {
		if p[i] < 'a' || p[i] > 'z' || seen[p[i]-'a'] {
			return fmt.Errorf("strategy: priority must be a permutation of a-z, got %q", p)
		}
		seen[p[i]-'a'] = true
	}
	return nil
}

// Names lists the valid strategy names, sorted.
func Names() []string {
	names := []string{"entropy", "minremaining", "heuristic", "lookup"}
	sort.Strings(names)
	return names
}

// New constructs a strategy by name. The "lookup" variant requires
// cfg.Table and falls back to the heuristic when the table misses.
func New(name string, cfg Config) (Strategy, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	switch name {
	case "entropy":
		return &Entropy{}, nil
	case "minremaining":
		return &MinRemaining{}, nil
	case "heuristic":
		return NewHeuristic(cfg), nil
	case "lookup":
		if len(cfg.Table) == 0 {
			return nil, errors.New("strategy: lookup requires a second-guess table")
		}
		return NewLookup(cfg.Table, NewHeuristic(cfg)), nil
	default:
		return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
}
