package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
)

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New("bogus", Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
	// The error names the valid set so callers can self-correct.
	for _, name := range Names() {
		assert.Contains(t, err.Error(), name)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New("heuristic", Config{Priority: "abc"})
	assert.Error(t, err)

	_, err = New("heuristic", Config{Priority: "aarotilsnucyhdpgmbfkwvxzqj"})
	assert.Error(t, err, "duplicate letters rejected")

	_, err = New("lookup", Config{})
	assert.Error(t, err, "lookup requires a table")
}

func TestLetterSet(t *testing.T) {
	var s LetterSet
	s.AddWord("raise")
	for _, c := range []byte("raise") {
		assert.True(t, s.Has(c))
	}
	assert.False(t, s.Has('z'))
}

func TestEntropySelectsFullyDiscriminatingGuess(t *testing.T) {
	cands := []string{"abcde", "abcxy", "zbcde", "zzzzz"}
	got, err := Entropy{}.Select(&Turn{Number: 2, Candidates: cands})
	require.NoError(t, err)
	// "abcde" and "abcxy" both split into singletons (2 bits); the
	// lexicographic tie-break keeps "abcde".
	assert.Equal(t, "abcde", got)
}

func TestMinRemainingMatchesEntropyHere(t *testing.T) {
	cands := []string{"abcde", "abcxy", "zbcde", "zzzzz"}
	got, err := MinRemaining{}.Select(&Turn{Number: 2, Candidates: cands})
	require.NoError(t, err)
	assert.Equal(t, "abcde", got)
}

func TestSelectorsShortCircuitTinySets(t *testing.T) {
	for _, s := range []Strategy{Entropy{}, MinRemaining{}, NewHeuristic(Config{})} {
		got, err := s.Select(&Turn{Number: 3, Candidates: []string{"berry", "ferry"}})
		require.NoError(t, err)
		assert.Equal(t, "berry", got, "%s picks the first of <=2 candidates", s.Name())

		_, err = s.Select(&Turn{Number: 3})
		assert.ErrorIs(t, err, ErrNoCandidates, "%s on empty set", s.Name())
	}
}

func TestEntropyTieBreakPrefersCandidate(t *testing.T) {
	// Pool word "abcxy" scores the same 2 bits as candidate "abcde", but a
	// non-candidate can never be the answer; given equal information the
	// candidate wins even when it sorts later.
	cands := []string{"abcde", "zbcde", "qqqqq", "zzzzz"}
	pool := []string{"aacde", "abcde"}
	// Verify the premise: equal information.
	require.Equal(t,
		analysisInfo("aacde", cands),
		analysisInfo("abcde", cands))

	got, err := Entropy{}.Select(&Turn{Number: 2, Candidates: cands, Pool: pool})
	require.NoError(t, err)
	assert.Equal(t, "abcde", got)
}

func analysisInfo(w string, cands []string) float64 {
	return analysis.ExpectedInformation(w, cands)
}

func TestHeuristicPrefersUntestedPriorityLetters(t *testing.T) {
	h := NewHeuristic(Config{})
	var tested LetterSet
	tested.AddWord("raise")

	// clout packs o,t,l,u,c — the top untested letters; truck repeats a
	// tested r, night a tested i.
	cands := []string{"truck", "night", "clout"}
	got, err := h.Select(&Turn{Number: 2, Candidates: cands, Tested: tested})
	require.NoError(t, err)
	assert.Equal(t, "clout", got)
}

func TestHeuristicDuplicateLettersCountOnce(t *testing.T) {
	h := NewHeuristic(Config{})
	var tested LetterSet
	tested.AddWord("raise")

	// "motto" repeats t and o; "month" covers four distinct untested
	// letters and must win.
	cands := []string{"motto", "month", "zzzzz"}
	got, err := h.Select(&Turn{Number: 2, Candidates: cands, Tested: tested})
	require.NoError(t, err)
	assert.Equal(t, "month", got)
}

func TestDetectTrapSinglePosition(t *testing.T) {
	// Only position 3 varies.
	cands := []string{"shape", "shave", "shake", "share"}
	pos, letters, ok := detectTrap(cands)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
	for _, c := range []byte{'p', 'v', 'k', 'r'} {
		assert.True(t, letters[c-'a'])
	}
}

func TestDetectTrapDominatedPair(t *testing.T) {
	// Position 3 has four distinct letters, position 2 only two.
	cands := []string{"party", "parky", "patty", "patsy"}
	pos, _, ok := detectTrap(cands)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestDetectTrapRejectsSpreadVariation(t *testing.T) {
	_, _, ok := detectTrap([]string{"abcde", "vwxyz", "fghij", "klmno"})
	assert.False(t, ok)
}

func TestHeuristicTrapDiscriminator(t *testing.T) {
	h := NewHeuristic(Config{})
	// Position 0 is the only varying slot, disputed letters {b,m,w,p,t}.
	cands := []string{"batch", "match", "watch", "patch", "tatch"}
	got, err := h.Select(&Turn{Number: 3, Candidates: cands})
	require.NoError(t, err)
	// Every word except "tatch" covers two disputed letters (its own
	// first letter plus the shared 't'); the first max-coverage
	// candidate wins.
	assert.Equal(t, "batch", got)
}

func TestLookupUsesTableOnTurnTwo(t *testing.T) {
	pat := feedback.Score("raise", "clout") // no overlap: all absent
	table := map[feedback.Pattern]string{pat: "clout"}
	l := NewLookup(table, NewHeuristic(Config{}))

	turn := &Turn{
		Number:     2,
		Candidates: []string{"blond", "clout", "mucky"},
		History:    []analysis.Step{{Guess: "raise", Pattern: pat}},
	}
	got, err := l.Select(turn)
	require.NoError(t, err)
	assert.Equal(t, "clout", got)
}

func TestLookupFallsBackWhenEntryIllegal(t *testing.T) {
	pat := feedback.Score("raise", "clout")
	table := map[feedback.Pattern]string{pat: "ghoul"} // not a candidate
	l := NewLookup(table, NewHeuristic(Config{}))

	var tested LetterSet
	tested.AddWord("raise")
	turn := &Turn{
		Number:     2,
		Candidates: []string{"blond", "clout", "mucky", "pygmy"},
		Tested:     tested,
		History:    []analysis.Step{{Guess: "raise", Pattern: pat}},
	}
	got, err := l.Select(turn)
	require.NoError(t, err)
	assert.NotEqual(t, "ghoul", got)
	assert.Contains(t, turn.Candidates, got)
}

func TestLookupIgnoresTableOffTurnTwo(t *testing.T) {
	pat := feedback.Score("raise", "clout")
	table := map[feedback.Pattern]string{pat: "clout"}
	l := NewLookup(table, NewHeuristic(Config{}))

	turn := &Turn{
		Number:     3,
		Candidates: []string{"blond", "mucky"},
		History: []analysis.Step{
			{Guess: "raise", Pattern: pat},
			{Guess: "clout", Pattern: 0},
		},
	}
	got, err := l.Select(turn)
	require.NoError(t, err)
	assert.Equal(t, "blond", got, "short-circuit on two candidates, not the table")
}
