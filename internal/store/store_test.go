package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franklinharper/wordle-human-solve/internal/analysis"
	"github.com/franklinharper/wordle-human-solve/internal/feedback"
	"github.com/franklinharper/wordle-human-solve/internal/simulate"
)

func TestMemorySessionStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemorySessionStore()

	_, err := st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := &Session{
		ID:         NewSessionID(),
		Strategy:   "heuristic",
		History:    []analysis.Step{{Guess: "raise", Pattern: feedback.Score("raise", "clout")}},
		Candidates: []string{"clout", "blond"},
		CreatedAt:  time.Now(),
	}
	require.NoError(t, st.Save(ctx, s))

	got, err := st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// Save with the same ID overwrites.
	s2 := *s
	s2.Candidates = []string{"clout"}
	require.NoError(t, st.Save(ctx, &s2))
	got, err = st.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"clout"}, got.Candidates)
}

func TestNewSessionIDShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewSessionID()
		assert.Len(t, id, 16)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}

func openTestDB(t *testing.T) *RunStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "lab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db))
	return NewRunStore(db)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "data", "lab.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "re-running migrations is a no-op")
}

func TestInsertAndListRuns(t *testing.T) {
	ctx := context.Background()
	rs := openTestDB(t)

	sum := &simulate.Summary{
		Strategy:  "entropy",
		Opener:    "raise",
		Games:     100,
		Solved:    98,
		MeanTurns: 3.72,
		Histogram: map[int]int{2: 10, 3: 40, 4: 38, 5: 10},
		Failures:  []simulate.GameResult{{Target: "mummy"}, {Target: "vivid"}},
		Elapsed:   1500 * time.Millisecond,
	}
	id, err := rs.InsertRun(ctx, sum)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	sum2 := *sum
	sum2.Strategy = "heuristic"
	sum2.Solved = 95
	_, err = rs.InsertRun(ctx, &sum2)
	require.NoError(t, err)

	runs, err := rs.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "heuristic", runs[0].Strategy, "newest first")
	assert.Equal(t, "entropy", runs[1].Strategy)
	assert.Equal(t, sum.Histogram, runs[1].Histogram)
	assert.Equal(t, 2, runs[1].Failures)
	assert.Equal(t, int64(1500), runs[1].ElapsedMs)
	assert.False(t, runs[0].CreatedAt.IsZero())

	runs, err = rs.ListRuns(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestSaveAndLoadTable(t *testing.T) {
	ctx := context.Background()
	rs := openTestDB(t)

	table := map[feedback.Pattern]string{
		0:                   "clout",
		feedback.AllCorrect: "raise",
	}
	require.NoError(t, rs.SaveTable(ctx, "raise", table))

	got, err := rs.LoadTable(ctx, "raise")
	require.NoError(t, err)
	assert.Equal(t, table, got)

	// Saving again replaces, never accumulates.
	smaller := map[feedback.Pattern]string{0: "blond"}
	require.NoError(t, rs.SaveTable(ctx, "raise", smaller))
	got, err = rs.LoadTable(ctx, "raise")
	require.NoError(t, err)
	assert.Equal(t, smaller, got)

	// Unknown openers yield an empty table, not an error.
	got, err = rs.LoadTable(ctx, "crane")
	require.NoError(t, err)
	assert.Empty(t, got)
}
