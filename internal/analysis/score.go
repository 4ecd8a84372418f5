// internal/analysis/score.go
//
// Information-theoretic and frequency-based guess metrics.
//
// All partition metrics follow the same convention: for candidate sets of
// size <= 1 there is nothing left to learn, so they return a zero value.
//   - Entropy (expected information): higher is better, bounded by log2(n)
//     and by log2(243) per turn.
//   - Expected remaining: sum(|bucket|^2)/n, lower is better.
//   - Worst case remaining: max bucket size, the adversarial bound.

package analysis

import (
	"math"

	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

// Entropy is the Shannon entropy of the partition's bucket-size
// distribution, in bits.
func (p *Partition) Entropy() float64 {
	if p.n <= 1 {
		return 0
	}
	n := float64(p.n)
	e := 0.0
	for _, b := range p.buckets {
		if len(b) == 0 {
			continue
		}
		q := float64(len(b)) / n
		e -= q * math.Log2(q)
	}
	return e
}

// ExpectedRemaining is the bucket-probability-weighted mean candidate count
// left after the guess, treating every candidate as equally likely.
func (p *Partition) ExpectedRemaining() float64 {
	if p.n <= 1 {
		return 0
	}
	sum := 0
	for _, b := range p.buckets {
		sum += len(b) * len(b)
	}
	return float64(sum) / float64(p.n)
}

// WorstCaseRemaining is the size of the largest bucket.
func (p *Partition) WorstCaseRemaining() int {
	worst := 0
	for _, b := range p.buckets {
		if len(b) > worst {
			worst = len(b)
		}
	}
	return worst
}

// ExpectedInformation scores a prospective guess against a candidate set.
func ExpectedInformation(guess string, candidates []string) float64 {
	if len(candidates) <= 1 {
		return 0
	}
	return PartitionBy(guess, candidates).Entropy()
}

// ExpectedRemaining scores a prospective guess by mean remaining candidates.
func ExpectedRemaining(guess string, candidates []string) float64 {
	if len(candidates) <= 1 {
		return 0
	}
	return PartitionBy(guess, candidates).ExpectedRemaining()
}

// WorstCaseRemaining scores a prospective guess by its largest bucket.
func WorstCaseRemaining(guess string, candidates []string) int {
	if len(candidates) <= 1 {
		return len(candidates)
	}
	return PartitionBy(guess, candidates).WorstCaseRemaining()
}

// LetterFrequency counts, per letter, how many words contain it at least
// once (duplicates within a word count once).
func LetterFrequency(ws []string) [26]int {
	var freq [26]int
	for _, w := range ws {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			j := w[i] - 'a'
			if !seen[j] {
				seen[j] = true
				freq[j]++
			}
		}
	}
	return freq
}

// PositionalFrequency counts letters per position.
func PositionalFrequency(ws []string) [feedback.WordLen][26]int {
	var freq [feedback.WordLen][26]int
	for _, w := range ws {
		for i := 0; i < feedback.WordLen; i++ {
			freq[i][w[i]-'a']++
		}
	}
	return freq
}

// binaryEntropy is the information of a yes/no test with probability p.
// Maximized (1 bit) at p = 0.5; zero at the degenerate ends.
func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// FrequencyScore approximates a guess's value as the summed binary-test
// entropy of its unique letters against the candidate letter frequencies.
// It ignores positional interaction and correlated letters, so it is only
// an approximation of the full 243-way partition entropy.
func FrequencyScore(word string, freq [26]int, n int) float64 {
	if n <= 1 {
		return 0
	}
	score := 0.0
	var seen [26]bool
	for i := 0; i < len(word); i++ {
		j := word[i] - 'a'
		if seen[j] {
			// A repeated letter adds no new presence information.
			continue
		}
		seen[j] = true
		score += binaryEntropy(float64(freq[j]) / float64(n))
	}
	return score
}

// PositionalScore is the positional variant of FrequencyScore: p is the
// fraction of candidates with that exact letter at that exact position,
// which better approximates Correct-vs-not information.
func PositionalScore(word string, freq [feedback.WordLen][26]int, n int) float64 {
	if n <= 1 {
		return 0
	}
	score := 0.0
	for i := 0; i < len(word) && i < feedback.WordLen; i++ {
		score += binaryEntropy(float64(freq[i][word[i]-'a']) / float64(n))
	}
	return score
}
