package rankings

import (
	"context"

	"github.com/mauv0809/narrow-rankings/internal/narrowarrow"
	"github.com/mauv0809/narrow-rankings/internal/source"
)

// Source defines the data lookups required by the aggregator.
type Source interface {
	Leaderboard(ctx context.Context, levelID string) source.Result[narrowarrow.Leaderboard]
	RunDetails(ctx context.Context, runID string) source.Result[*narrowarrow.RunDetails]
}
