package rankings

import (
	"math"

	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/points"
)

// Unranked is the hardest-level rank of a player with no completions.
const Unranked = math.MaxInt

// Completion is one player's record of finishing one level.
type Completion struct {
	LevelID   string  `json:"levelId"`
	LevelRank int     `json:"levelRank"`
	Points    int     `json:"points"`
	Time      float64 `json:"time"`
	Date      *string `json:"date"`
}

// PlayerAggregate is a player's summary across all ranked levels.
// TotalPoints is the sum of the completions' points and HardestLevelRank
// the lowest LevelRank among them.
type PlayerAggregate struct {
	Username         string       `json:"username"`
	TotalPoints      int          `json:"totalPoints"`
	Completions      []Completion `json:"completions"`
	HardestLevelRank int          `json:"hardestLevelRank"`
}

// Aggregator folds per-level leaderboards into per-player aggregates.
type Aggregator struct {
	source      Source
	score       points.Func
	metrics     metrics.Metrics
	concurrency int
}

// Option configures an Aggregator.
type Option func(*Aggregator)
