package rankings

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/points"
	"golang.org/x/sync/errgroup"
)

// New creates a new Aggregator.
func New(source Source, score points.Func, metrics metrics.Metrics, opts ...Option) *Aggregator {
	a := &Aggregator{
		source:      source,
		score:       score,
		metrics:     metrics,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithConcurrency lets up to n run-detail lookups of one level run at once.
// Completions keep leaderboard order regardless. n <= 1 keeps every fetch
// sequential.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n < 1 {
			n = 1
		}
		a.concurrency = n
	}
}

// Aggregate walks levelIDs in order, hardest first, and returns every player
// who completed at least one of them, sorted by total points descending.
// Players with equal points keep the order in which they were first seen.
//
// A level whose leaderboard is unavailable contributes nothing. A completion
// whose run details are unavailable is recorded with a nil Date. Aggregation
// is not cancelled by ctx; it always runs over every requested level.
func (a *Aggregator) Aggregate(ctx context.Context, levelIDs []string) []PlayerAggregate {
	ctx = context.WithoutCancel(ctx)
	aggregationID := uuid.NewString()
	startTime := time.Now()
	log.Info("Starting player aggregation", "aggregation_id", aggregationID, "levels", len(levelIDs))

	players := make(map[string]*PlayerAggregate)
	var firstSeen []string
	skipped := 0

	for i, levelID := range levelIDs {
		rank := i + 1
		leaderboard, ok := a.source.Leaderboard(ctx, levelID).Get()
		if !ok {
			log.Debug("Skipping level without leaderboard", "aggregation_id", aggregationID, "levelID", levelID, "rank", rank)
			skipped++
			continue
		}

		levelPoints := a.score(rank)
		var dates []*string
		if a.concurrency > 1 {
			dates = a.prefetchRunDates(ctx, leaderboard.RunIDs())
		}

		for j, entry := range leaderboard {
			player, seen := players[entry.Username]
			if !seen {
				player = &PlayerAggregate{
					Username:         entry.Username,
					Completions:      []Completion{},
					HardestLevelRank: Unranked,
				}
				players[entry.Username] = player
				firstSeen = append(firstSeen, entry.Username)
			}

			var date *string
			if dates != nil {
				date = dates[j]
			} else {
				date = a.runDate(ctx, entry.RunID)
			}

			player.Completions = append(player.Completions, Completion{
				LevelID:   levelID,
				LevelRank: rank,
				Points:    levelPoints,
				Time:      entry.CompletionTime,
				Date:      date,
			})
			player.TotalPoints += levelPoints
			player.HardestLevelRank = min(player.HardestLevelRank, rank)
		}
	}

	result := make([]PlayerAggregate, 0, len(firstSeen))
	for _, username := range firstSeen {
		result = append(result, *players[username])
	}
	slices.SortStableFunc(result, func(x, y PlayerAggregate) int {
		return cmp.Compare(y.TotalPoints, x.TotalPoints)
	})

	duration := time.Since(startTime)
	a.metrics.ObserveAggregationDuration(duration.Seconds())
	log.Info("Player aggregation finished",
		"aggregation_id", aggregationID,
		"players", len(result),
		"skipped_levels", skipped,
		"duration_ms", duration.Milliseconds(),
	)
	return result
}

// runDate returns the finish timestamp of a run, or nil when it is unknown.
func (a *Aggregator) runDate(ctx context.Context, runID string) *string {
	details, ok := a.source.RunDetails(ctx, runID).Get()
	if !ok || details == nil || details.FinishedAt == nil || *details.FinishedAt == "" {
		return nil
	}
	return details.FinishedAt
}

// prefetchRunDates looks up the dates of runIDs with at most a.concurrency
// requests in flight. dates[i] belongs to runIDs[i].
func (a *Aggregator) prefetchRunDates(ctx context.Context, runIDs []string) []*string {
	dates := make([]*string, len(runIDs))
	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, runID := range runIDs {
		g.Go(func() error {
			dates[i] = a.runDate(ctx, runID)
			return nil
		})
	}
	_ = g.Wait()
	return dates
}
