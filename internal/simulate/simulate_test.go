package simulate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franklinharper/wordle-human-solve/internal/strategy"
	"github.com/franklinharper/wordle-human-solve/internal/tables"
)

var testAnswers = []string{
	"raise", "clout", "blond", "mucky", "pygmy",
	"shape", "shave", "shake", "share", "month",
	"tangy", "float", "court", "pilot", "wedge",
}

func TestPlaySolvesOpenerImmediately(t *testing.T) {
	res, err := Play("raise", strategy.Entropy{}, testAnswers, Options{})
	require.NoError(t, err)
	assert.Equal(t, Solved, res.Outcome)
	assert.Equal(t, 1, res.Turns)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, "raise", res.Trace[0].Guess)
	assert.True(t, res.Trace[0].Pattern.Solved())
}

func TestPlayTerminatesWithinBudgetForAllTargets(t *testing.T) {
	strats := []strategy.Strategy{
		strategy.Entropy{},
		strategy.MinRemaining{},
		strategy.NewHeuristic(strategy.Config{}),
		strategy.NewLookup(
			tables.Build(DefaultOpener, testAnswers),
			strategy.NewHeuristic(strategy.Config{}),
		),
	}
	for _, s := range strats {
		for _, target := range testAnswers {
			res, err := Play(target, s, testAnswers, Options{})
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Turns, DefaultMaxGuesses, "%s vs %q", s.Name(), target)
			assert.LessOrEqual(t, len(res.Trace), DefaultMaxGuesses)
			assert.NotEqual(t, Inconsistent, res.Outcome, "%s vs %q", s.Name(), target)
			if res.Outcome == Solved {
				// Turn count equals the index of the first all-correct
				// feedback in the trace.
				assert.True(t, res.Trace[res.Turns-1].Pattern.Solved())
				for _, st := range res.Trace[:res.Turns-1] {
					assert.False(t, st.Pattern.Solved())
				}
				assert.Equal(t, target, res.Trace[res.Turns-1].Guess)
			}
		}
	}
}

func TestPlayTracksTestedLettersAndShrinksCandidates(t *testing.T) {
	// A strategy spy that records what it is offered each turn.
	var sizes []int
	spy := strategyFunc(func(turn *strategy.Turn) (string, error) {
		sizes = append(sizes, len(turn.Candidates))
		assert.True(t, turn.Tested.Has('r'), "opener letters are tested")
		assert.True(t, turn.Tested.Has('e'))
		return turn.Candidates[0], nil
	})

	_, err := Play("pygmy", spy, testAnswers, Options{})
	require.NoError(t, err)
	for i := 1; i < len(sizes); i++ {
		assert.LessOrEqual(t, sizes[i], sizes[i-1], "candidate set never grows")
	}
}

func TestPlayStrategyErrorIsInconsistent(t *testing.T) {
	broken := strategyFunc(func(*strategy.Turn) (string, error) {
		return "", errors.New("boom")
	})
	res, err := Play("clout", broken, testAnswers, Options{})
	require.NoError(t, err)
	assert.Equal(t, Inconsistent, res.Outcome)
	assert.Equal(t, 2, res.Turns, "the fault surfaces on the first selected turn")
}

func TestPlayBudgetExhaustionIsFailedNotError(t *testing.T) {
	// Guessing the last surviving candidate keeps feedback self-consistent
	// but rarely solves within a 2-guess budget, so the game must end as
	// an ordinary Failed at exactly the budget.
	stubborn := strategyFunc(func(turn *strategy.Turn) (string, error) {
		return turn.Candidates[len(turn.Candidates)-1], nil
	})
	found := false
	for _, target := range testAnswers {
		res, err := Play(target, stubborn, testAnswers, Options{MaxGuesses: 2, Opener: "raise"})
		require.NoError(t, err)
		require.NotEqual(t, Inconsistent, res.Outcome)
		if res.Outcome == Failed {
			found = true
			assert.Equal(t, 2, res.Turns, "failures are recorded at the budget value")
		}
	}
	assert.True(t, found, "a 2-guess budget cannot solve every target")
}

func TestPlayRejectsMalformedOpener(t *testing.T) {
	for _, opener := range []string{"ab", "RAISE", "raisee", "rai5e"} {
		_, err := Play("raise", strategy.Entropy{}, testAnswers, Options{Opener: opener})
		require.Error(t, err, "opener %q", opener)
		assert.Contains(t, err.Error(), "opener")
	}
}

func TestRunRejectsMalformedOpener(t *testing.T) {
	newStrategy := func() (strategy.Strategy, error) {
		return strategy.Entropy{}, nil
	}
	_, err := Run(context.Background(), newStrategy, testAnswers, Options{Opener: "ab", Workers: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opener")
}

func TestRunAggregates(t *testing.T) {
	newStrategy := func() (strategy.Strategy, error) {
		return strategy.NewHeuristic(strategy.Config{}), nil
	}
	sum, err := Run(context.Background(), newStrategy, testAnswers, Options{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, len(testAnswers), sum.Games)
	assert.Equal(t, "heuristic", sum.Strategy)
	assert.Equal(t, DefaultOpener, sum.Opener)
	assert.Empty(t, sum.Inconsistent)

	histTotal := 0
	for turns, n := range sum.Histogram {
		assert.GreaterOrEqual(t, turns, 1)
		assert.LessOrEqual(t, turns, DefaultMaxGuesses)
		histTotal += n
	}
	assert.Equal(t, sum.Games, histTotal)
	assert.Equal(t, sum.Games-len(sum.Failures), sum.Solved)
	assert.InDelta(t, float64(sum.Solved)/float64(sum.Games), sum.SolveRate(), 1e-9)
	assert.GreaterOrEqual(t, sum.MeanTurns, 1.0)
	assert.LessOrEqual(t, sum.MeanTurns, float64(DefaultMaxGuesses))
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	newStrategy := func() (strategy.Strategy, error) {
		return strategy.Entropy{}, nil
	}
	one, err := Run(context.Background(), newStrategy, testAnswers, Options{Workers: 1})
	require.NoError(t, err)
	many, err := Run(context.Background(), newStrategy, testAnswers, Options{Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, one.Solved, many.Solved)
	assert.Equal(t, one.MeanTurns, many.MeanTurns)
	assert.Equal(t, one.Histogram, many.Histogram)
}

func TestRunPropagatesStrategyConstructionError(t *testing.T) {
	newStrategy := func() (strategy.Strategy, error) {
		return nil, errors.New("no such strategy")
	}
	_, err := Run(context.Background(), newStrategy, testAnswers, Options{Workers: 2})
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "solved", Solved.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "inconsistent", Inconsistent.String())
}

// strategyFunc adapts a function to the Strategy interface for tests.
type strategyFunc func(*strategy.Turn) (string, error)

func (strategyFunc) Name() string { return "test" }

func (f strategyFunc) Select(t *strategy.Turn) (string, error) { return f(t) }
