// cmd/simulate.go
//
// Full-corpus strategy sweep: every answer word plays as the hidden target
// once, results are aggregated, printed, and optionally persisted.

package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/franklinharper/wordle-human-solve/internal/simulate"
	"github.com/franklinharper/wordle-human-solve/internal/store"
	"github.com/franklinharper/wordle-human-solve/internal/strategy"
	"github.com/franklinharper/wordle-human-solve/internal/tables"
	"github.com/franklinharper/wordle-human-solve/internal/words"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Sweep a strategy across the whole answer corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("strategy")
		opener, _ := cmd.Flags().GetString("opener")
		workers, _ := cmd.Flags().GetInt("workers")
		dbPath, _ := cmd.Flags().GetString("db")
		tablePath, _ := cmd.Flags().GetString("table")
		showFailures, _ := cmd.Flags().GetInt("failures")

		if !words.IsValid(opener) {
			return fmt.Errorf("opener must be 5 lowercase letters, got %q", opener)
		}

		answers := corpus.Answers()
		opts := simulate.Options{Opener: opener, Workers: workers}

		// The lookup variant needs its second-guess table up front;
		// load or build it once and share it across workers (read-only
		// after that).
		cfg := strategy.Config{}
		if name == "lookup" {
			if tablePath != "" {
				f, err := os.Open(tablePath)
				if err != nil {
					return err
				}
				cfg.Table, err = tables.Decode(f)
				f.Close()
				if err != nil {
					return err
				}
				log.Info().Int("patterns", len(cfg.Table)).Str("path", tablePath).Msg("second-guess table loaded")
			} else {
				cfg.Table = tables.Build(opts.Opener, answers)
				log.Info().Int("patterns", len(cfg.Table)).Str("opener", opts.Opener).Msg("second-guess table built")
			}
		}
		newStrategy := func() (strategy.Strategy, error) {
			return strategy.New(name, cfg)
		}
		// Fail fast on a bad strategy name before sweeping.
		if _, err := newStrategy(); err != nil {
			return err
		}

		sum, err := simulate.Run(cmd.Context(), newStrategy, answers, opts)
		if err != nil {
			return err
		}
		printSummary(sum, showFailures)

		if dbPath != "" {
			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := store.Migrate(db); err != nil {
				return err
			}
			id, err := store.NewRunStore(db).InsertRun(cmd.Context(), sum)
			if err != nil {
				return err
			}
			log.Info().Int64("run", id).Str("db", dbPath).Msg("summary saved")
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("strategy", "heuristic",
		"strategy to evaluate ("+strings.Join(strategy.Names(), ", ")+")")
	simulateCmd.Flags().String("opener", simulate.DefaultOpener, "fixed first guess")
	simulateCmd.Flags().Int("workers", 0, "parallel workers (default GOMAXPROCS)")
	simulateCmd.Flags().String("db", "", "SQLite path to persist the run summary")
	simulateCmd.Flags().String("table", "", "flat-text second-guess table to load (lookup strategy only)")
	simulateCmd.Flags().Int("failures", 10, "max failure traces to print")
}

// printSummary renders the aggregate results to stdout.
func printSummary(sum *simulate.Summary, showFailures int) {
	w := os.Stdout
	fmt.Fprintf(w, "strategy=%s opener=%s games=%d\n", sum.Strategy, sum.Opener, sum.Games)
	fmt.Fprintf(w, "solved %d/%d (%.1f%%), mean %.4f turns, %.1fs\n",
		sum.Solved, sum.Games, sum.SolveRate()*100, sum.MeanTurns, sum.Elapsed.Seconds())

	turns := make([]int, 0, len(sum.Histogram))
	for t := range sum.Histogram {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	for _, t := range turns {
		n := sum.Histogram[t]
		fmt.Fprintf(w, "  %d guesses: %4d (%5.1f%%) %s\n",
			t, n, float64(n)/float64(sum.Games)*100, strings.Repeat("#", n/5))
	}

	if len(sum.Inconsistent) > 0 {
		fmt.Fprintf(w, "INCONSISTENT games (engine fault): %d\n", len(sum.Inconsistent))
	}
	if showFailures > 0 && len(sum.Failures) > 0 {
		fmt.Fprintf(w, "failures (%d):\n", len(sum.Failures))
		for i, f := range sum.Failures {
			if i == showFailures {
				fmt.Fprintf(w, "  ... and %d more\n", len(sum.Failures)-i)
				break
			}
			chain := make([]string, 0, len(f.Trace))
			for _, st := range f.Trace {
				chain = append(chain, fmt.Sprintf("%s(%s)", st.Guess, st.Pattern))
			}
			fmt.Fprintf(w, "  %s: %s\n", f.Target, strings.Join(chain, " -> "))
		}
	}
}
