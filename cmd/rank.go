// cmd/rank.go
//
// Exhaustive opener ranking: evaluate every pool word against the answer
// corpus and print the best by the documented tie-break order. By default
// the pool is the full allowed list restricted to distinct-letter words,
// since duplicate letters waste information on the opening guess.

package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank opening guesses by information metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		corpus, err := loadCorpus(cmd)
		if err != nil {
			return err
		}
		top, _ := cmd.Flags().GetInt("top")
		answersOnly, _ := cmd.Flags().GetBool("answers-only")
		allLetters, _ := cmd.Flags().GetBool("allow-duplicates")

		pool := corpus.Allowed()
		if answersOnly {
			pool = corpus.Answers()
		}
		answers := corpus.Answers()

		fmt.Fprintf(os.Stdout, "answers=%d pool=%d, ceiling %.2f bits/turn, target %.2f bits\n",
			len(answers), len(pool), math.Log2(243), math.Log2(float64(len(answers))))

		ranked := analysis.RankGuesses(pool, answers, analysis.RankOptions{
			TopN:         top,
			DistinctOnly: !allLetters,
		})

		fmt.Fprintf(os.Stdout, "%-8s %11s %13s %11s %s\n", "word", "info(bits)", "E[remaining]", "worst case", "answer?")
		for _, m := range ranked {
			isAns := "no"
			if m.IsCandidate {
				isAns = "YES"
			}
			fmt.Fprintf(os.Stdout, "%-8s %11.4f %13.2f %11d %s\n",
				m.Word, m.Information, m.ExpectedRemaining, m.WorstCase, isAns)
		}
		return nil
	},
}

func init() {
	rankCmd.Flags().Int("top", 25, "number of openers to print")
	rankCmd.Flags().Bool("answers-only", false, "rank only answer words")
	rankCmd.Flags().Bool("allow-duplicates", false, "include words with repeated letters")
}
