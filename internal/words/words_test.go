package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("raise"))
	assert.False(t, IsValid("rais"))
	assert.False(t, IsValid("raises"))
	assert.False(t, IsValid("Raise"))
	assert.False(t, IsValid("rai5e"))
	assert.False(t, IsValid(""))
}

func TestNewValidatesAndDeduplicates(t *testing.T) {
	c, err := New(
		[]string{"raise", "clout", "raise"},
		[]string{"ghoul", "clout", "ghoul"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"raise", "clout"}, c.Answers())
	assert.Equal(t, []string{"raise", "clout", "ghoul"}, c.Allowed())

	assert.True(t, c.IsAnswer("raise"))
	assert.False(t, c.IsAnswer("ghoul"), "allowed extras are not answers")
	assert.True(t, c.IsAllowed("ghoul"))
	assert.True(t, c.IsAllowed("raise"), "answers are always legal guesses")
	assert.False(t, c.IsAllowed("zzzzz"))

	nAns, nAll := c.Stats()
	assert.Equal(t, 2, nAns)
	assert.Equal(t, 3, nAll)
}

func TestNewRejectsMalformedAndEmpty(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	_, err = New([]string{"toolong"}, nil)
	assert.ErrorIs(t, err, ErrMalformedWord)

	_, err = New([]string{"raise"}, []string{"nope!"})
	assert.ErrorIs(t, err, ErrMalformedWord)
}

func writeWordFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromEnvFiles(t *testing.T) {
	answers := writeWordFile(t, "answers.txt", "RAISE\nclout\n\n# comment\nblond\n")
	allowed := writeWordFile(t, "allowed.txt", "ghoul\n  pzazz  \n")
	t.Setenv("WORDS_ANSWERS_FILE", answers)
	t.Setenv("WORDS_ALLOWED_FILE", allowed)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"raise", "clout", "blond"}, c.Answers())
	assert.True(t, c.IsAllowed("ghoul"))
	assert.True(t, c.IsAllowed("pzazz"), "whitespace trimmed")
	assert.False(t, c.IsAnswer("ghoul"))
}

func TestLoadAllowedOnlyDoublesAsAnswers(t *testing.T) {
	allowed := writeWordFile(t, "allowed.txt", "raise\nclout\n")
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", allowed)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"raise", "clout"}, c.Answers())
	assert.Equal(t, []string{"raise", "clout"}, c.Allowed())
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	answers := writeWordFile(t, "answers.txt", "raise\nfour\n")
	t.Setenv("WORDS_ANSWERS_FILE", answers)
	t.Setenv("WORDS_ALLOWED_FILE", answers)

	_, err := Load()
	assert.ErrorIs(t, err, ErrMalformedWord)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")

	c, err := Load()
	require.NoError(t, err)

	nAns, nAll := c.Stats()
	assert.Greater(t, nAns, 500, "embedded answer list is substantial")
	assert.Greater(t, nAll, nAns, "allowed extras widen the guess pool")
	for _, w := range c.Allowed() {
		assert.True(t, IsValid(w), "embedded word %q", w)
	}
	assert.True(t, c.IsAnswer("raise"), "the default opener is an answer")
}
