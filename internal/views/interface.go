package views

import (
	"context"

	"github.com/mauv0809/narrow-rankings/internal/narrowarrow"
	"github.com/mauv0809/narrow-rankings/internal/rankings"
	"github.com/mauv0809/narrow-rankings/internal/source"
)

// Source defines the data lookups the pages read.
type Source interface {
	LevelDetails(ctx context.Context, levelID string) source.Result[*narrowarrow.LevelDetails]
	Leaderboard(ctx context.Context, levelID string) source.Result[narrowarrow.Leaderboard]
	RunDetails(ctx context.Context, runID string) source.Result[*narrowarrow.RunDetails]
}

// Aggregator produces the global player standings.
type Aggregator interface {
	Aggregate(ctx context.Context, levelIDs []string) []rankings.PlayerAggregate
}
