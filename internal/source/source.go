// Package source is the cache-backed data access layer in front of the
// Narrow Arrow API. Every lookup returns a Result; no error crosses this
// boundary.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/narrow-rankings/internal/cache"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/narrowarrow"
)

// ErrMalformedResponse is wrapped by decode errors for bodies that do not
// have the expected shape.
var ErrMalformedResponse = errors.New("malformed response")

// Source retrieves level, leaderboard and run data, memoizing every
// successful fetch in the shared cache.
type Source struct {
	fetcher   narrowarrow.Fetcher
	cache     *cache.Cache
	endpoints narrowarrow.Endpoints
	metrics   metrics.Metrics
}

// New creates a Source.
func New(fetcher narrowarrow.Fetcher, c *cache.Cache, endpoints narrowarrow.Endpoints, metrics metrics.Metrics) *Source {
	return &Source{
		fetcher:   fetcher,
		cache:     c,
		endpoints: endpoints,
		metrics:   metrics,
	}
}

// LevelDetails returns the details of a level.
func (s *Source) LevelDetails(ctx context.Context, levelID string) Result[*narrowarrow.LevelDetails] {
	key := Key{Kind: KindLevel, ID: levelID}
	return get(ctx, s, key, s.endpoints.LevelDetails(levelID), decodeLevelDetails)
}

// Leaderboard returns a level's leaderboard in the order the API provides.
func (s *Source) Leaderboard(ctx context.Context, levelID string) Result[narrowarrow.Leaderboard] {
	key := Key{Kind: KindLeaderboard, ID: levelID}
	return get(ctx, s, key, s.endpoints.Leaderboard(levelID), decodeLeaderboard)
}

// RunDetails returns the details of a single run.
func (s *Source) RunDetails(ctx context.Context, runID string) Result[*narrowarrow.RunDetails] {
	key := Key{Kind: KindRun, ID: runID}
	return get(ctx, s, key, s.endpoints.RunDetails(runID), decodeRunDetails)
}

// get answers from the cache when possible. On a miss it fetches once; a
// failed fetch or decode is logged and reported as Unavailable without
// touching the cache, so the next call tries again.
func get[T any](ctx context.Context, s *Source, key Key, url string, decode func([]byte) (T, error)) Result[T] {
	kind := string(key.Kind)
	if cached, ok := s.cache.Lookup(key.String()); ok {
		if value, ok := cached.(T); ok {
			s.metrics.IncCacheHits(kind)
			log.Debug("Cache hit", "key", key.String())
			return Ok(value)
		}
		log.Warn("Cached value has unexpected type, refetching", "key", key.String())
	}
	s.metrics.IncCacheMisses(kind)

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.metrics.IncFetchFailures(kind)
		log.Error("Fetch error", "key", key.String(), "url", url, "error", err)
		return Unavailable[T]()
	}

	value, err := decode(body)
	if err != nil {
		s.metrics.IncFetchFailures(kind)
		log.Error("Failed to decode response", "key", key.String(), "url", url, "error", err)
		return Unavailable[T]()
	}

	s.cache.Store(key.String(), value)
	log.Debug("Cached resource", "key", key.String())
	return Ok(value)
}

func decodeLevelDetails(body []byte) (*narrowarrow.LevelDetails, error) {
	var details *narrowarrow.LevelDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("%w: level details: %v", ErrMalformedResponse, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: level details is null", ErrMalformedResponse)
	}
	return details, nil
}

func decodeLeaderboard(body []byte) (narrowarrow.Leaderboard, error) {
	var leaderboard narrowarrow.Leaderboard
	if err := json.Unmarshal(body, &leaderboard); err != nil {
		return nil, fmt.Errorf("%w: leaderboard: %v", ErrMalformedResponse, err)
	}
	if leaderboard == nil {
		return nil, fmt.Errorf("%w: leaderboard is not a list", ErrMalformedResponse)
	}
	return leaderboard, nil
}

func decodeRunDetails(body []byte) (*narrowarrow.RunDetails, error) {
	var details *narrowarrow.RunDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("%w: run details: %v", ErrMalformedResponse, err)
	}
	if details == nil {
		return nil, fmt.Errorf("%w: run details is null", ErrMalformedResponse)
	}
	return details, nil
}
