package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CountsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)

	svc.IncCacheHits("run")
	svc.IncCacheHits("run")
	svc.IncCacheMisses("leaderboard")
	svc.IncFetchFailures("level")

	assert.Equal(t, 2.0, testutil.ToFloat64(svc.CacheHits.WithLabelValues("run")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.CacheMisses.WithLabelValues("leaderboard")))
	assert.Equal(t, 1.0, testutil.ToFloat64(svc.FetchFailures.WithLabelValues("level")))
	assert.Equal(t, 0.0, testutil.ToFloat64(svc.FetchFailures.WithLabelValues("run")))
}

func TestMetricsHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := NewService(reg)
	svc.ObserveAggregationDuration(0.2)
	svc.SetStartupTime(1.5)

	srv := httptest.NewServer(NewMetricsHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "rankings_aggregation_duration_seconds_count 1")
	assert.Contains(t, string(body), "rankings_startup_duration_seconds 1.5")
}
