// cmd/table.go
//
// Second-guess lookup table: build it for an opener, print the per-pattern
// analysis, and write the flat-text (code word) table to a file and/or the
// database.

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/franklinharper/wordle-human-solve/internal/feedback"
	"github.com/franklinharper/wordle-human-solve/internal/simulate"
	"github.com/franklinharper/wordle-human-solve/internal/store"
	"github.com/franklinharper/wordle-human-solve/internal/tables"
	"github.com/franklinharper/wordle-human-solve/internal/words"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Build the second-guess lookup table for an opener",
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus(cmd)
		if err != nil {
			return err
		}
		opener, _ := cmd.Flags().GetString("opener")
		outPath, _ := cmd.Flags().GetString("out")
		dbPath, _ := cmd.Flags().GetString("db")
		show, _ := cmd.Flags().GetInt("show")

		if !words.IsValid(opener) {
			return fmt.Errorf("opener must be 5 lowercase letters, got %q", opener)
		}

		entries := tables.BuildEntries(opener, corpus.Answers())
		table := make(map[feedback.Pattern]string, len(entries))
		for _, e := range entries {
			table[e.Pattern] = e.Word
		}

		fmt.Fprintf(os.Stdout, "opener=%s patterns=%d\n", opener, len(entries))
		fmt.Fprintf(os.Stdout, "%-7s %-8s %10s %11s %13s\n", "pattern", "word", "bucket", "info(bits)", "E[remaining]")
		for i, e := range entries {
			if show > 0 && i == show {
				fmt.Fprintf(os.Stdout, "... and %d more\n", len(entries)-i)
				break
			}
			fmt.Fprintf(os.Stdout, "%-7s %-8s %10d %11.3f %13.2f\n",
				e.Pattern, e.Word, e.Candidates, e.Information, e.ExpectedRemaining)
		}

		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := tables.Encode(f, table); err != nil {
				return err
			}
			log.Info().Str("path", outPath).Int("patterns", len(table)).Msg("table written")
		}
		if dbPath != "" {
			db, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := store.Migrate(db); err != nil {
				return err
			}
			if err := store.NewRunStore(db).SaveTable(cmd.Context(), opener, table); err != nil {
				return err
			}
			log.Info().Str("db", dbPath).Msg("table saved")
		}
		return nil
	},
}

func init() {
	tableCmd.Flags().String("opener", simulate.DefaultOpener, "opener to build the table for")
	tableCmd.Flags().String("out", "", "write the flat-text table to this file")
	tableCmd.Flags().String("db", "", "SQLite path to persist the table")
	tableCmd.Flags().Int("show", 15, "max analysis rows to print")
}
