// internal/tables/tables.go
//
// Second-guess lookup table construction and its flat-text codec.
//
// For every feedback pattern the opener can produce against the answer
// corpus, the builder finds the best in-bucket second guess (hard mode:
// the second guess must itself be a surviving candidate) by expected
// information. The table serializes as plain "code word" lines, where the
// code is the 5-digit base-3 pattern string.

package tables

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

// Entry is one per-pattern row of the analysis output: the recommended
// second guess plus its scored metrics over the bucket.
type Entry struct {
	Pattern           feedback.Pattern `json:"pattern"`
	Word              string           `json:"word"`
	Candidates        int              `json:"candidates"`
	Information       float64          `json:"information"`
	ExpectedRemaining float64          `json:"expectedRemaining"`
}

// Build maps every non-empty opener feedback pattern to its best in-bucket
// second guess.
func Build(opener string, answers []string) map[feedback.Pattern]string {
	table := make(map[feedback.Pattern]string)
	for _, e := range BuildEntries(opener, answers) {
		table[e.Pattern] = e.Word
	}
	return table
}

// BuildEntries is Build with full metrics, sorted by bucket size descending
// (largest buckets are where a memorized second guess matters most), then
// by pattern code.
func BuildEntries(opener string, answers []string) []Entry {
	part := analysis.PartitionBy(opener, answers)

	var entries []Entry
	part.Each(func(pat feedback.Pattern, bucket []string) {
		e := Entry{Pattern: pat, Candidates: len(bucket)}
		if len(bucket) == 1 {
			e.Word = bucket[0]
		} else {
			e.Word = bestSecondGuess(bucket)
			m := analysis.Evaluate(e.Word, bucket)
			e.Information = m.Information
			e.ExpectedRemaining = m.ExpectedRemaining
		}
		entries = append(entries, e)
	})

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Candidates != entries[j].Candidates {
			return entries[i].Candidates > entries[j].Candidates
		}
		return entries[i].Pattern < entries[j].Pattern
	})
	return entries
}

// bestSecondGuess maximizes expected information over the bucket itself.
// Bucket order breaks exact ties, which is deterministic because buckets
// preserve corpus order.
func bestSecondGuess(bucket []string) string {
	best := ""
	bestInfo := -1.0
	for _, word := range bucket {
		if info := analysis.ExpectedInformation(word, bucket); info > bestInfo {
			bestInfo = info
			best = word
		}
	}
	return best
}

// Encode writes the table as "code word" lines in ascending pattern order.
func Encode(w io.Writer, table map[feedback.Pattern]string) error {
	pats := make([]feedback.Pattern, 0, len(table))
	for p := range table {
		pats = append(pats, p)
	}
	sort.Slice(pats, func(i, j int) bool { return pats[i] < pats[j] })

	bw := bufio.NewWriter(w)
	for _, p := range pats {
		if _, err := fmt.Fprintf(bw, "%s %s\n", p, table[p]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses the flat-text format produced by Encode. Blank lines and
// "#" comments are skipped.
func Decode(r io.Reader) (map[feedback.Pattern]string, error) {
	table := make(map[feedback.Pattern]string)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("tables: line %d: want \"code word\", got %q", line, text)
		}
		pat, err := feedback.Parse(fields[0])
		if err != nil {
			return nil, fmt.Errorf("tables: line %d: %w", line, err)
		}
		table[pat] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
