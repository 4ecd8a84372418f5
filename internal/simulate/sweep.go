// internal/simulate/sweep.go
//
// Corpus-wide strategy sweep. Every game is independent, so the sweep
// fans targets out over an errgroup with bounded parallelism and reduces
// per-game results into a Summary at the end. Results land in a
// pre-allocated slice indexed by target, so aggregation stays deterministic
// regardless of completion order.

package simulate

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/franklinharper/wordle-human-solve/internal/strategy"
)

// progressEvery is how many finished games pass between progress logs.
const progressEvery = 500

// Summary aggregates a sweep across the whole answer corpus.
type Summary struct {
	Strategy     string        `json:"strategy"`
	Opener       string        `json:"opener"`
	Games        int           `json:"games"`
	Solved       int           `json:"solved"`
	MeanTurns    float64       `json:"meanTurns"`
	Histogram    map[int]int   `json:"histogram"`
	Failures     []GameResult  `json:"failures"`
	Inconsistent []GameResult  `json:"inconsistent"`
	Elapsed      time.Duration `json:"elapsed"`
}

// SolveRate is the fraction of games solved within budget.
func (s *Summary) SolveRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Games)
}

// Run simulates every answer as the hidden target and aggregates results.
// newStrategy is called once per worker: strategies may carry scratch state
// and are not required to be safe for concurrent use.
func Run(ctx context.Context, newStrategy func() (strategy.Strategy, error), answers []string, opts Options) (*Summary, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	results := make([]GameResult, len(answers))

	g, ctx := errgroup.WithContext(ctx)
	indexes := make(chan int)
	g.Go(func() error {
		defer close(indexes)
		for i := range answers {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			strat, err := newStrategy()
			if err != nil {
				return err
			}
			done := 0
			for i := range indexes {
				r, err := Play(answers[i], strat, answers, opts)
				if err != nil {
					return err
				}
				results[i] = r
				done++
				if done%progressEvery == 0 {
					log.Debug().
						Str("strategy", strat.Name()).
						Int("games", done).
						Msg("sweep progress")
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{
		Opener:    opts.opener(),
		Games:     len(answers),
		Histogram: make(map[int]int),
		Elapsed:   time.Since(start),
	}
	// Name the summary from a fresh instance; workers own theirs.
	if strat, err := newStrategy(); err == nil {
		sum.Strategy = strat.Name()
	}

	totalTurns := 0
	for _, r := range results {
		switch r.Outcome {
		case Solved:
			sum.Solved++
			sum.Histogram[r.Turns]++
			totalTurns += r.Turns
		case Failed:
			sum.Histogram[r.Turns]++
			totalTurns += r.Turns
			sum.Failures = append(sum.Failures, r)
		case Inconsistent:
			// Kept out of the ordinary failure count: this is a logic
			// fault in the engine, not a property of the strategy.
			sum.Inconsistent = append(sum.Inconsistent, r)
			log.Error().
				Str("target", r.Target).
				Int("turn", r.Turns).
				Msg("candidate set emptied: feedback/filter inconsistency")
		}
	}
	if counted := sum.Games - len(sum.Inconsistent); counted > 0 {
		sum.MeanTurns = float64(totalTurns) / float64(counted)
	}
	return sum, nil
}
