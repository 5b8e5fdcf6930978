package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathrush/internal/league"
	"github.com/abhisek/mathrush/internal/reward"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/xp"
)

type markerSpy struct{ calls int }

func (m *markerSpy) MarkPending() { m.calls++ }

// testClock is a settable clock.
type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestEngine(t *testing.T, clock *testClock) (*Engine, *markerSpy) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	marker := &markerSpy{}
	e, err := New(context.Background(), Options{
		Identity: "guest-test",
		Profiles: st.ProfileRepo(),
		Events:   st.EventRepo(),
		Syncer:   marker,
		Now:      clock.now,
	})
	require.NoError(t, err)
	return e, marker
}

var wednesday = time.Date(2024, 3, 6, 14, 0, 0, 0, time.UTC)

func TestProblemCompleted(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, marker := newTestEngine(t, clock)

	res, err := e.ProblemCompleted(context.Background(), ProblemEvent{
		Topic:           "algebra",
		Accuracy:        100,
		Difficulty:      reward.DifficultyMedium,
		DurationSeconds: 45,
	})
	require.NoError(t, err)

	// base 37 + accuracy 37 + first-in-topic 50 = 124.
	assert.Equal(t, 124, res.Reward.Total)
	assert.Equal(t, 50, res.Reward.Breakdown.FirstTopic)
	assert.Equal(t, 1, res.CurrentStreak)
	assert.Positive(t, marker.calls)

	snap := e.Snapshot()
	assert.Equal(t, 124, snap.XP.TotalXP)
	assert.Equal(t, 124, snap.League.WeeklyXP)
	assert.Equal(t, 1, snap.Progress.TotalProblemsCompleted)
	assert.Equal(t, 45, snap.Progress.TotalTimeSpentSeconds)
	assert.True(t, snap.XP.HasFirstProblemIn("algebra"))
}

// The first-in-topic bonus is paid exactly once.
func TestProblemCompleted_FirstTopicOnce(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	first, err := e.ProblemCompleted(ctx, ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyEasy})
	require.NoError(t, err)
	assert.Equal(t, 50, first.Reward.Breakdown.FirstTopic)

	second, err := e.ProblemCompleted(ctx, ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyEasy})
	require.NoError(t, err)
	assert.Zero(t, second.Reward.Breakdown.FirstTopic)
}

func TestProblemCompleted_LevelCacheInvariant(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := e.ProblemCompleted(ctx, ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyHard})
		require.NoError(t, err)
		snap := e.Snapshot()
		assert.Equal(t, xp.LevelFromXP(snap.XP.TotalXP), snap.XP.Level)
	}
}

// A pending week boundary is settled (and persisted) before the new
// completion's weekly XP is credited.
func TestProblemCompleted_SettlesWeekFirst(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	_, err := e.ProblemCompleted(ctx, ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyMedium})
	require.NoError(t, err)
	require.Equal(t, 124, e.Snapshot().League.WeeklyXP)

	// Cross into the next week.
	clock.t = wednesday.AddDate(0, 0, 7)
	res, err := e.ProblemCompleted(ctx, ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyMedium})
	require.NoError(t, err)

	snap := e.Snapshot()
	// Only the new completion counts toward the new week.
	assert.Equal(t, res.Reward.Total, snap.League.WeeklyXP)
	// Rank 1 in bronze promotes.
	assert.Equal(t, league.Silver, snap.League.CurrentLeague)
	require.Len(t, snap.League.History, 1)
	assert.Equal(t, league.OutcomePromote, snap.League.History[0].Outcome)
}

func TestCheckWeek_Idempotent(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	clock.t = wednesday.AddDate(0, 0, 7)
	require.NoError(t, e.CheckWeek(ctx))
	require.NoError(t, e.CheckWeek(ctx))
	require.NoError(t, e.CheckWeek(ctx))

	snap := e.Snapshot()
	assert.Len(t, snap.League.History, 1, "rollover must run once per boundary")
}

func TestArcadeFinished(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)

	res, err := e.ArcadeFinished(context.Background(), 12, 7, 60)
	require.NoError(t, err)
	assert.Equal(t, 145, res.Reward.Total)

	snap := e.Snapshot()
	assert.Equal(t, 145, snap.XP.TotalXP)
	assert.Equal(t, 145, snap.League.WeeklyXP)
	assert.Equal(t, 1, snap.Progress.CurrentStreak)
}

func TestMultiplayerFinished(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	won, err := e.MultiplayerFinished(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 100, won)

	lost, err := e.MultiplayerFinished(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 25, lost)
}

func TestMasteryAchieved_ExactlyOnce(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	amount, err := e.MasteryAchieved(ctx, reward.MasteryTopic, "algebra")
	require.NoError(t, err)
	assert.Equal(t, 500, amount)

	again, err := e.MasteryAchieved(ctx, reward.MasteryTopic, "algebra")
	require.NoError(t, err)
	assert.Zero(t, again, "double award must be a no-op")

	sub, err := e.MasteryAchieved(ctx, reward.MasterySubtopic, "add-2digit")
	require.NoError(t, err)
	assert.Equal(t, 200, sub)

	snap := e.Snapshot()
	assert.Equal(t, 700, snap.XP.TotalXP)
	assert.True(t, snap.XP.HasMasteredTopic("algebra"))
	assert.True(t, snap.XP.HasMasteredSubtopic("add-2digit"))
}

func TestReset(t *testing.T) {
	clock := &testClock{t: wednesday}
	e, _ := newTestEngine(t, clock)
	ctx := context.Background()

	_, err := e.ProblemCompleted(ctx, ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyHard})
	require.NoError(t, err)
	require.NoError(t, e.Reset(ctx))

	snap := e.Snapshot()
	assert.Zero(t, snap.XP.TotalXP)
	assert.Equal(t, 1, snap.XP.Level)
	assert.Empty(t, snap.XP.FirstProblemTopics)
	assert.Zero(t, snap.Progress.TotalProblemsCompleted)
	assert.Equal(t, league.Bronze, snap.League.CurrentLeague)
}

// State survives an engine restart.
func TestEngine_Reload(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "engine.db"))
	require.NoError(t, err)
	defer st.Close()
	clock := &testClock{t: wednesday}

	opts := Options{Identity: "guest-test", Profiles: st.ProfileRepo(), Now: clock.now}
	e, err := New(context.Background(), opts)
	require.NoError(t, err)
	_, err = e.ProblemCompleted(context.Background(), ProblemEvent{Topic: "algebra", Accuracy: 100, Difficulty: reward.DifficultyMedium})
	require.NoError(t, err)
	want := e.Snapshot()

	e2, err := New(context.Background(), opts)
	require.NoError(t, err)
	got := e2.Snapshot()
	assert.Equal(t, want.XP, got.XP)
	assert.Equal(t, want.Progress, got.Progress)
	assert.Equal(t, want.League.WeeklyXP, got.League.WeeklyXP)
}
