// internal/feedback/feedback.go
//
// Feedback scoring core for hard-mode Wordle analysis.
// Responsibilities:
//   - Score a (guess, target) pair with the classic two-pass Wordle algorithm.
//   - Represent the resulting per-letter pattern as a dense base-3 code,
//     so partitions can live in a fixed 243-slot array instead of a map.
//
// Notes:
//   - Words are assumed to be validated 5-letter lowercase a–z strings
//     (the words package enforces this at the corpus boundary).
//   - Score(w, w) is always AllCorrect; scoring is not symmetric in general.

package feedback

import (
	"errors"
	"fmt"
)

const (
	// WordLen is the fixed word length of the game.
	WordLen = 5

	// NumPatterns is the number of distinct feedback patterns (3^5).
	NumPatterns = 243
)

// Mark is the evaluation result for a single letter of a guess.
type Mark uint8

const (
	// Absent: the letter does not occur in the target (or its occurrences
	// are already claimed by other positions).
	Absent Mark = iota
	// Present: the letter occurs in the target at a different position.
	Present
	// Correct: the letter is in the correct position.
	Correct
)

// Pattern is a complete 5-position feedback value encoded in base 3,
// position 0 most significant. Valid range is 0..242.
type Pattern uint8

// AllCorrect is the solved pattern: Correct at every position.
const AllCorrect Pattern = NumPatterns - 1

// pow3[i] is the base-3 place value of position i.
var pow3 = [WordLen]int{81, 27, 9, 3, 1}

var errBadPattern = errors.New("feedback: pattern must be 5 digits of 0/1/2")

// Score computes the feedback pattern for a guess against a target.
//
// Pass 1 marks exact matches and counts the unclaimed target letters.
// Pass 2 resolves Present/Absent against the remaining counts, so a letter
// appearing k times in the target yields at most k positive marks total.
func Score(guess, target string) Pattern {
	var marks [WordLen]Mark
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == target[i] {
			marks[i] = Correct
		} else {
			counts[target[i]-'a']++
		}
	}
	for i := 0; i < WordLen; i++ {
		if marks[i] == Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			marks[i] = Present
			counts[j]--
		}
	}
	return FromMarks(marks)
}

// FromMarks packs per-position marks into a Pattern code.
func FromMarks(marks [WordLen]Mark) Pattern {
	code := 0
	for i, m := range marks {
		code += int(m) * pow3[i]
	}
	return Pattern(code)
}

// Mark returns the mark at position i (0-based).
func (p Pattern) Mark(i int) Mark {
	return Mark(int(p) / pow3[i] % 3)
}

// Marks unpacks the pattern into per-position marks.
func (p Pattern) Marks() [WordLen]Mark {
	var out [WordLen]Mark
	for i := range out {
		out[i] = p.Mark(i)
	}
	return out
}

// Solved reports whether every position is Correct.
func (p Pattern) Solved() bool { return p == AllCorrect }

// String renders the pattern as five digits, e.g. "01202"
// (0=absent, 1=present, 2=correct).
func (p Pattern) String() string {
	var b [WordLen]byte
	for i := 0; i < WordLen; i++ {
		b[i] = byte('0' + p.Mark(i))
	}
	return string(b[:])
}

// MarshalText encodes the pattern in its 5-digit form for JSON and text.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes the 5-digit form.
func (p *Pattern) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Parse decodes a 5-digit pattern string produced by String.
func Parse(s string) (Pattern, error) {
	if len(s) != WordLen {
		return 0, fmt.Errorf("%w: %q", errBadPattern, s)
	}
	var marks [WordLen]Mark
	for i := 0; i < WordLen; i++ {
		d := s[i] - '0'
		if d > 2 {
			return 0, fmt.Errorf("%w: %q", errBadPattern, s)
		}
		marks[i] = Mark(d)
	}
	return FromMarks(marks), nil
}
