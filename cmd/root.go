// cmd/root.go
//
// CLI entry point. Subcommands:
//   simulate — sweep a strategy across the answer corpus.
//   rank     — rank opening guesses by expected information.
//   table    — build the second-guess lookup table for an opener.
//   serve    — run the HTTP analysis API.
//
// Environment is loaded from `.env` (development convenience) and the
// global zerolog level follows LOG_LEVEL, overridable via --log-level.

package cmd

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/franklinharper/wordle-human-solve/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "wordle-human-solve",
	Short: "Hard-mode Wordle strategy lab",
	Long: "Evaluates hard-mode Wordle guessing strategies: feedback partitioning,\n" +
		"entropy-based guess scoring, human-playable heuristics, and full-corpus\n" +
		"simulation sweeps.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		level, _ := cmd.Flags().GetString("log-level")
		if level == "" {
			level = getEnv("LOG_LEVEL", "info")
		}
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	},
}

// Execute runs the CLI, logging the failure (if any) before returning it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "zerolog level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().String("answers", "", "answer list file (overrides WORDS_ANSWERS_FILE)")
	rootCmd.PersistentFlags().String("allowed", "", "allowed guess list file (overrides WORDS_ALLOWED_FILE)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadCorpus resolves word list flags into env vars and loads the corpus.
func loadCorpus(cmd *cobra.Command) (*words.Corpus, error) {
	if p, _ := cmd.Flags().GetString("answers"); p != "" {
		os.Setenv("WORDS_ANSWERS_FILE", p)
	}
	if p, _ := cmd.Flags().GetString("allowed"); p != "" {
		os.Setenv("WORDS_ALLOWED_FILE", p)
	}
	c, err := words.Load()
	if err != nil {
		return nil, err
	}
	a, g := c.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("corpus loaded")
	return c, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
