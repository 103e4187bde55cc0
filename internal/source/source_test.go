package source

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/narrow-rankings/internal/cache"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/narrowarrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "http://api.test"

func setupSource(t *testing.T) (*Source, *narrowarrow.MockFetcher, *metrics.Mock, narrowarrow.Endpoints) {
	t.Helper()
	fetcher := narrowarrow.NewMockFetcher()
	m := metrics.NewMock()
	endpoints := narrowarrow.NewEndpoints(testBase)
	return New(fetcher, cache.New(), endpoints, m), fetcher, m, endpoints
}

func TestLeaderboard_FetchesOnceAndReturnsStoredValue(t *testing.T) {
	src, fetcher, m, endpoints := setupSource(t)
	url := endpoints.Leaderboard("L1")
	fetcher.Set(url, `[{"username":"A","run_id":"r1","completion_time":30.0}]`)

	first, ok := src.Leaderboard(context.Background(), "L1").Get()
	require.True(t, ok)
	second, ok := src.Leaderboard(context.Background(), "L1").Get()
	require.True(t, ok)

	assert.Equal(t, 1, fetcher.Calls(url), "second lookup should be served from the cache")
	require.Len(t, first, 1)
	assert.Same(t, &first[0], &second[0], "both lookups should share the stored leaderboard")
	assert.Equal(t, "A", first[0].Username)
	assert.Equal(t, "r1", first[0].RunID)
	assert.Equal(t, 30.0, first[0].CompletionTime)
	assert.Equal(t, 1, m.CacheMisses("leaderboard"))
	assert.Equal(t, 1, m.CacheHits("leaderboard"))
}

func TestLevelDetails_IdenticalPointerOnRepeat(t *testing.T) {
	src, fetcher, _, endpoints := setupSource(t)
	fetcher.Set(endpoints.LevelDetails("L1"), `{"levelInfo":{"name":"Spiral","author":"kiwi"},"extra":1}`)

	first, ok := src.LevelDetails(context.Background(), "L1").Get()
	require.True(t, ok)
	second, ok := src.LevelDetails(context.Background(), "L1").Get()
	require.True(t, ok)

	assert.Same(t, first, second)
	assert.Equal(t, "Spiral", first.LevelInfo.Name)
	assert.Equal(t, "kiwi", first.LevelInfo.Author)
}

func TestFailedFetchIsNotCached(t *testing.T) {
	src, fetcher, m, endpoints := setupSource(t)
	url := endpoints.RunDetails("r1")

	result := src.RunDetails(context.Background(), "r1")
	assert.False(t, result.Available())
	assert.Equal(t, 1, m.FetchFailures("run"))

	fetcher.Set(url, `{"finishedAt":"2024-01-01"}`)
	details, ok := src.RunDetails(context.Background(), "r1").Get()
	require.True(t, ok, "a failed lookup should be retried on the next call")
	require.NotNil(t, details.FinishedAt)
	assert.Equal(t, "2024-01-01", *details.FinishedAt)
	assert.Equal(t, 2, fetcher.Calls(url))

	src.RunDetails(context.Background(), "r1")
	assert.Equal(t, 2, fetcher.Calls(url), "a successful lookup should never be refetched")
}

func TestTransportErrorBecomesUnavailable(t *testing.T) {
	src, fetcher, _, _ := setupSource(t)
	fetcher.FetchFunc = func(ctx context.Context, url string) ([]byte, error) {
		return nil, &narrowarrow.TransportError{URL: url, Err: errors.New("connection refused")}
	}

	assert.False(t, src.LevelDetails(context.Background(), "L1").Available())
	assert.False(t, src.Leaderboard(context.Background(), "L1").Available())
	assert.False(t, src.RunDetails(context.Background(), "r1").Available())
}

func TestMalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object instead of list", body: `{"error":"nope"}`},
		{name: "null", body: `null`},
		{name: "not json", body: `<html>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, fetcher, m, endpoints := setupSource(t)
			fetcher.Set(endpoints.Leaderboard("L1"), tc.body)

			result := src.Leaderboard(context.Background(), "L1")

			assert.False(t, result.Available())
			assert.Equal(t, 1, m.FetchFailures("leaderboard"))
		})
	}
}

func TestEmptyLeaderboardIsAvailable(t *testing.T) {
	src, fetcher, _, endpoints := setupSource(t)
	fetcher.Set(endpoints.Leaderboard("L1"), `[]`)

	leaderboard, ok := src.Leaderboard(context.Background(), "L1").Get()

	require.True(t, ok)
	assert.Empty(t, leaderboard)
}

func TestKindsDoNotCollide(t *testing.T) {
	src, fetcher, _, endpoints := setupSource(t)
	fetcher.Set(endpoints.LevelDetails("42"), `{"levelInfo":{"name":"Level 42"}}`)
	fetcher.Set(endpoints.Leaderboard("42"), `[]`)
	fetcher.Set(endpoints.RunDetails("42"), `{"finishedAt":null}`)

	assert.True(t, src.LevelDetails(context.Background(), "42").Available())
	assert.True(t, src.Leaderboard(context.Background(), "42").Available())
	assert.True(t, src.RunDetails(context.Background(), "42").Available())
	assert.Equal(t, 3, fetcher.TotalCalls(), "each kind should be fetched under its own key")

	assert.Equal(t, "level_42", Key{Kind: KindLevel, ID: "42"}.String())
	assert.Equal(t, "leaderboard_42", Key{Kind: KindLeaderboard, ID: "42"}.String())
	assert.Equal(t, "run_42", Key{Kind: KindRun, ID: "42"}.String())
}

func TestResult(t *testing.T) {
	value, ok := Ok(7).Get()
	assert.True(t, ok)
	assert.Equal(t, 7, value)

	value, ok = Unavailable[int]().Get()
	assert.False(t, ok)
	assert.Zero(t, value)
}
