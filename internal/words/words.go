// internal/words/words.go
//
// Word corpus loading for the strategy lab.
//
// Responsibilities:
//   - Load the answer corpus and the (strictly larger) valid-guess corpus
//     from environment-provided files, or fall back to embedded defaults.
//   - Validate every word at the load boundary (exactly 5 letters, a–z).
//   - Expose an immutable Corpus value with fast membership lookups.
//
// Word lists:
//   - "answers": words that can legitimately be the hidden target.
//   - "allowed": every word accepted as a guess (always includes answers).
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// If only the allowed file is set it doubles as the answer list; if neither
// is set the small embedded defaults are used.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// ErrMalformedWord is returned when a loaded word is not 5 lowercase letters.
var ErrMalformedWord = errors.New("words: word must be exactly 5 letters a-z")

// Corpus holds the two word pools, loaded once and read-only afterwards.
type Corpus struct {
	answers    []string
	allowed    []string
	answerSet  map[string]struct{}
	allowedSet map[string]struct{}
}

// IsValid reports whether w is exactly 5 lowercase ASCII letters.
func IsValid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// New builds a Corpus from explicit lists, rejecting malformed words.
// Answers are always folded into the allowed pool.
func New(answers, allowed []string) (*Corpus, error) {
	if len(answers) == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	c := &Corpus{
		answerSet:  make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		if !IsValid(w) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedWord, w)
		}
		if _, dup := c.answerSet[w]; dup {
			continue
		}
		c.answerSet[w] = struct{}{}
		c.allowedSet[w] = struct{}{}
		c.answers = append(c.answers, w)
		c.allowed = append(c.allowed, w)
	}
	for _, w := range allowed {
		if !IsValid(w) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedWord, w)
		}
		if _, dup := c.allowedSet[w]; dup {
			continue
		}
		c.allowedSet[w] = struct{}{}
		c.allowed = append(c.allowed, w)
	}
	return c, nil
}

// Load builds the corpus from env-configured files, falling back to the
// embedded defaults when nothing is configured.
func Load() (*Corpus, error) {
	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	case answersPath != "" && allowedPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(ans, all)

	case answersPath == "" && allowedPath != "":
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(all, nil)

	default:
		return New(normalizeLines(embeddedAnswers), normalizeLines(embeddedAllowed))
	}
}

// Answers returns the answer corpus in load order. Callers must not mutate it.
func (c *Corpus) Answers() []string { return c.answers }

// Allowed returns the full guess pool (answers first, extras after).
func (c *Corpus) Allowed() []string { return c.allowed }

// IsAnswer reports whether w is in the answer corpus.
func (c *Corpus) IsAnswer(w string) bool {
	_, ok := c.answerSet[w]
	return ok
}

// IsAllowed reports whether w is a legal guess.
func (c *Corpus) IsAllowed(w string) bool {
	_, ok := c.allowedSet[w]
	return ok
}

// Stats returns (answer count, allowed count).
func (c *Corpus) Stats() (int, int) { return len(c.answers), len(c.allowed) }

// readWordFile loads one word per line, lowercasing and trimming.
// Malformed lines are a hard error: a bad corpus should fail at the boundary.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if !IsValid(w) {
			return nil, fmt.Errorf("%w: %q in %s", ErrMalformedWord, w, path)
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into word slices.
// Embedded defaults are trusted, so invalid lines are simply skipped.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if IsValid(w) {
			out = append(out, w)
		}
	}
	return out
}
