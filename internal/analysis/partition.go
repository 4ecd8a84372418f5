// internal/analysis/partition.go
//
// Partitioning of a candidate pool by feedback pattern.
// A Partition is the dense 243-slot grouping of candidates keyed by the
// pattern a fixed guess would produce against each of them. Buckets are
// disjoint and cover the input exactly.

package analysis

import (
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

// Partition groups candidates into buckets keyed by feedback pattern.
type Partition struct {
	buckets [feedback.NumPatterns][]string
	n       int
}

// PartitionBy computes feedback(guess, c) for every candidate and appends
// it to the matching bucket.
func PartitionBy(guess string, candidates []string) *Partition {
	p := &Partition{n: len(candidates)}
	for _, c := range candidates {
		pat := feedback.Score(guess, c)
		p.buckets[pat] = append(p.buckets[pat], c)
	}
	return p
}

// Bucket returns the candidates that would produce pat (possibly nil).
func (p *Partition) Bucket(pat feedback.Pattern) []string {
	return p.buckets[pat]
}

// Size returns the total number of partitioned candidates.
func (p *Partition) Size() int { return p.n }

// NumBuckets counts the non-empty buckets.
func (p *Partition) NumBuckets() int {
	n := 0
	for _, b := range p.buckets {
		if len(b) > 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every non-empty bucket in ascending pattern order.
func (p *Partition) Each(fn func(pat feedback.Pattern, bucket []string)) {
	for code, b := range p.buckets {
		if len(b) > 0 {
			fn(feedback.Pattern(code), b)
		}
	}
}

// Filter returns exactly the words in pool whose feedback against guess
// equals observed. This is both the per-turn candidate-pruning rule and the
// hard-mode legality rule (applied iteratively over the guess history).
func Filter(pool []string, guess string, observed feedback.Pattern) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if feedback.Score(guess, w) == observed {
			out = append(out, w)
		}
	}
	return out
}

// FilterHistory applies Filter for every (guess, pattern) step in order,
// yielding the hard-mode-legal subset of pool.
func FilterHistory(pool []string, history []Step) []string {
	for _, st := range history {
		pool = Filter(pool, st.Guess, st.Pattern)
	}
	return pool
}

// Step is one observed (guess, pattern) pair of a game.
type Step struct {
	Guess   string           `json:"guess"`
	Pattern feedback.Pattern `json:"pattern"`
}
