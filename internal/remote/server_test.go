package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathrush/internal/progress"
	"github.com/abhisek/mathrush/internal/store"
	"github.com/abhisek/mathrush/internal/sync"
	"github.com/abhisek/mathrush/internal/xp"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	srv := httptest.NewServer(NewServer(st.RemoteRepo()).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_RoundTrip(t *testing.T) {
	srv := testServer(t)
	client := sync.NewClient(srv.URL)
	ctx := context.Background()

	got, err := client.Fetch(ctx, "user-42")
	require.NoError(t, err)
	assert.Nil(t, got, "fresh user has no snapshot")

	snap := sync.Snapshot{
		XP: xp.Profile{TotalXP: 800, Level: xp.LevelFromXP(800), MasteredTopics: []string{"algebra"}},
		Progress: progress.Profile{
			TotalProblemsCompleted: 40,
			CurrentStreak:          3,
			LongestStreak:          5,
			LastPracticeDate:       "2024-03-08",
			ProblemsByTopic:        map[string]int{"algebra": 40},
		},
	}
	require.NoError(t, client.Push(ctx, "user-42", snap))

	got, err = client.Fetch(ctx, "user-42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, snap, *got)
}

// A stale push can never move the stored snapshot backwards.
func TestServer_PushIsMonotonic(t *testing.T) {
	srv := testServer(t)
	client := sync.NewClient(srv.URL)
	ctx := context.Background()

	fresh := sync.Snapshot{
		XP:       xp.Profile{TotalXP: 900, Level: xp.LevelFromXP(900)},
		Progress: progress.Profile{TotalProblemsCompleted: 50, ProblemsByTopic: map[string]int{}},
	}
	stale := sync.Snapshot{
		XP:       xp.Profile{TotalXP: 100, Level: xp.LevelFromXP(100), MasteredTopics: []string{"geometry"}},
		Progress: progress.Profile{TotalProblemsCompleted: 5, ProblemsByTopic: map[string]int{}},
	}

	require.NoError(t, client.Push(ctx, "user-42", fresh))
	require.NoError(t, client.Push(ctx, "user-42", stale))

	got, err := client.Fetch(ctx, "user-42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 900, got.XP.TotalXP)
	assert.Equal(t, 50, got.Progress.TotalProblemsCompleted)
	// New facts from the stale push still land.
	assert.Equal(t, []string{"geometry"}, got.XP.MasteredTopics)
}

func TestServer_RejectsMalformedPush(t *testing.T) {
	srv := testServer(t)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/v1/users/user-42/snapshot", strings.NewReader("{not json"))
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
}
