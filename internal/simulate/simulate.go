// internal/simulate/simulate.go
//
// Per-game simulation driver.
//
// One game is a small state machine: Turn(1..budget) → Solved | Failed.
// Turn 1 plays the fixed opener; later turns ask the strategy. After each
// guess the candidate set is filtered by the observed feedback. An empty
// candidate set means feedback and filter disagree — that is a logic fault,
// reported as a distinguished Inconsistent outcome rather than an ordinary
// failure.

package simulate

import (
	"fmt"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
	"github.com/franklinharper/wordle-human-solve/internal/strategy"
	"github.com/franklinharper/wordle-human-solve/internal/words"
)

// DefaultOpener is the fixed first guess used before any feedback exists.
const DefaultOpener = "raise"

// DefaultMaxGuesses is the per-game turn budget.
const DefaultMaxGuesses = 6

// Outcome is the terminal state of one simulated game.
type Outcome int

const (
	// Solved: an all-Correct feedback was observed within the budget.
	Solved Outcome = iota
	// Failed: the turn budget ran out. A defined result, not an error.
	Failed
	// Inconsistent: filtering excluded the true target — an internal
	// invariant violation in feedback or filter, never a game outcome.
	Inconsistent
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	case Inconsistent:
		return "inconsistent"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// GameResult is the trace and terminal state of one game.
type GameResult struct {
	Target  string          `json:"target"`
	Turns   int             `json:"turns"`
	Outcome Outcome         `json:"outcome"`
	Trace   []analysis.Step `json:"trace"`
}

// Options configure a simulation.
type Options struct {
	// Opener is the fixed first guess (DefaultOpener if empty).
	Opener string
	// MaxGuesses is the turn budget (DefaultMaxGuesses if zero).
	MaxGuesses int
	// Workers bounds sweep parallelism (GOMAXPROCS if zero).
	Workers int
}

func (o Options) opener() string {
	if o.Opener == "" {
		return DefaultOpener
	}
	return o.Opener
}

func (o Options) maxGuesses() int {
	if o.MaxGuesses == 0 {
		return DefaultMaxGuesses
	}
	return o.MaxGuesses
}

// Play runs one full game for a hidden target. The candidate set starts as
// the whole answer corpus and shrinks after every turn; the strategy's pool
// is the candidate set itself (hard mode). A malformed opener is rejected
// before any scoring happens.
func Play(target string, strat strategy.Strategy, answers []string, opts Options) (GameResult, error) {
	res := GameResult{Target: target}
	budget := opts.maxGuesses()
	opener := opts.opener()
	if !words.IsValid(opener) {
		return res, fmt.Errorf("simulate: opener must be 5 lowercase letters, got %q", opener)
	}

	candidates := answers
	var tested strategy.LetterSet

	for turn := 1; turn <= budget; turn++ {
		var guess string
		if turn == 1 {
			guess = opener
		} else {
			var err error
			guess, err = strat.Select(&strategy.Turn{
				Number:     turn,
				Candidates: candidates,
				Tested:     tested,
				History:    res.Trace,
			})
			if err != nil {
				res.Turns = turn
				res.Outcome = Inconsistent
				return res, nil
			}
		}

		pat := feedback.Score(guess, target)
		res.Trace = append(res.Trace, analysis.Step{Guess: guess, Pattern: pat})
		tested.AddWord(guess)

		if pat.Solved() {
			res.Turns = turn
			res.Outcome = Solved
			return res, nil
		}

		candidates = analysis.Filter(candidates, guess, pat)
		if len(candidates) == 0 {
			res.Turns = turn
			res.Outcome = Inconsistent
			return res, nil
		}
	}

	// Budget exhausted: counted at the budget value in aggregates.
	res.Turns = budget
	res.Outcome = Failed
	return res, nil
}
