package views

import (
	"errors"

	"github.com/mauv0809/narrow-rankings/internal/points"
)

var (
	// ErrLevelUnavailable is returned when a level's details or leaderboard
	// could not be retrieved.
	ErrLevelUnavailable = errors.New("failed to load level data")
	// ErrPlayerNotFound is returned for a username without any completion.
	ErrPlayerNotFound = errors.New("player not found")
)

const (
	unnamedLevel  = "Unnamed Level"
	unknownAuthor = "Unknown"
	unknownLevel  = "Unknown Level"
	noDate        = "N/A"
	dateUnknown   = "Date unknown"
)

// Builder assembles page view models from the data access layer and the
// aggregation engine.
type Builder struct {
	source     Source
	aggregator Aggregator
	score      points.Func
	levelIDs   []string
	avatars    Avatars
}

// LevelsPage lists every configured level, hardest first.
type LevelsPage struct {
	Levels []LevelCard `json:"levels"`
}

type LevelCard struct {
	ID          string `json:"id"`
	Rank        int    `json:"rank"`
	RankClass   string `json:"-"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	Completions int    `json:"completions"`
	Points      int    `json:"points"`
}

// LevelPage is a single level with its leaderboard.
type LevelPage struct {
	ID          string           `json:"id"`
	Rank        int              `json:"rank"` // 0 when the level is not configured
	RankClass   string           `json:"-"`
	Name        string           `json:"name"`
	Author      string           `json:"author"`
	Completions int              `json:"completions"`
	Points      int              `json:"points"`
	Rows        []LeaderboardRow `json:"leaderboard"`
}

type LeaderboardRow struct {
	Placement      int    `json:"placement"`
	PlacementClass string `json:"-"`
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	Time           string `json:"time"`
	Points         int    `json:"points"`
	Date           string `json:"date"`
}

// PlayerPage is one player's profile.
type PlayerPage struct {
	Username     string           `json:"username"`
	Avatar       string           `json:"avatar"`
	TotalPoints  int              `json:"totalPoints"`
	Completions  int              `json:"completions"`
	HardestLevel string           `json:"hardestLevel"`
	Cards        []CompletionCard `json:"completionList"`
}

type CompletionCard struct {
	LevelID   string `json:"levelId"`
	LevelRank int    `json:"levelRank"`
	RankClass string `json:"-"`
	LevelName string `json:"levelName"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Points    int    `json:"points"`
}

// LeaderboardPage ranks every player by total points.
type LeaderboardPage struct {
	Players []PlayerRow `json:"players"`
}

type PlayerRow struct {
	Placement      int    `json:"placement"`
	PlacementClass string `json:"-"`
	Medal          string `json:"-"`
	Username       string `json:"username"`
	Avatar         string `json:"avatar"`
	HardestLevel   string `json:"hardestLevel"`
	TotalPoints    int    `json:"totalPoints"`
	Completions    int    `json:"completions"`
}

// ErrorPage is rendered in place of a page whose data could not be loaded.
type ErrorPage struct {
	Title   string
	Message string
}
