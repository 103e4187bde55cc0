// Package views turns leaderboard data into the view models of the site's
// pages and renders them as HTML.
package views

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/narrow-rankings/internal/format"
	"github.com/mauv0809/narrow-rankings/internal/narrowarrow"
	"github.com/mauv0809/narrow-rankings/internal/points"
	"github.com/mauv0809/narrow-rankings/internal/rankings"
)

// NewBuilder creates a Builder over the levels in levelIDs, hardest first.
func NewBuilder(source Source, aggregator Aggregator, score points.Func, levelIDs []string, avatars Avatars) *Builder {
	return &Builder{
		source:     source,
		aggregator: aggregator,
		score:      score,
		levelIDs:   slices.Clone(levelIDs),
		avatars:    avatars,
	}
}

// LevelIDs returns the configured level ids, hardest first.
func (b *Builder) LevelIDs() []string {
	return slices.Clone(b.levelIDs)
}

// rank returns the 1-based difficulty rank of levelID, or 0 when it is not
// configured.
func (b *Builder) rank(levelID string) int {
	return slices.Index(b.levelIDs, levelID) + 1
}

func (b *Builder) pointsFor(rank int) int {
	if rank < 1 {
		return 0
	}
	return b.score(rank)
}

// Levels builds the overview of every configured level. Levels whose details
// are unavailable are left out.
func (b *Builder) Levels(ctx context.Context) *LevelsPage {
	page := &LevelsPage{Levels: []LevelCard{}}
	for i, levelID := range b.levelIDs {
		rank := i + 1
		details, ok := b.source.LevelDetails(ctx, levelID).Get()
		leaderboard, _ := b.source.Leaderboard(ctx, levelID).Get()
		if !ok || details == nil {
			log.Warn("Leaving out level without details", "levelID", levelID, "rank", rank)
			continue
		}
		page.Levels = append(page.Levels, LevelCard{
			ID:          levelID,
			Rank:        rank,
			RankClass:   format.RankClass(rank),
			Name:        levelName(details, unnamedLevel),
			Author:      levelAuthor(details),
			Completions: len(leaderboard),
			Points:      b.pointsFor(rank),
		})
	}
	return page
}

// Level builds the page of a single level. Every leaderboard row is worth
// the level's points.
func (b *Builder) Level(ctx context.Context, levelID string) (*LevelPage, error) {
	details, detailsOK := b.source.LevelDetails(ctx, levelID).Get()
	leaderboard, leaderboardOK := b.source.Leaderboard(ctx, levelID).Get()
	if !detailsOK || details == nil || !leaderboardOK {
		return nil, fmt.Errorf("level %s: %w", levelID, ErrLevelUnavailable)
	}

	rank := b.rank(levelID)
	levelPoints := b.pointsFor(rank)
	page := &LevelPage{
		ID:          levelID,
		Rank:        rank,
		RankClass:   format.RankClass(rank),
		Name:        levelName(details, unnamedLevel),
		Author:      levelAuthor(details),
		Completions: len(leaderboard),
		Points:      levelPoints,
		Rows:        make([]LeaderboardRow, 0, len(leaderboard)),
	}
	for i, entry := range leaderboard {
		placement := i + 1
		date := noDate
		if run, ok := b.source.RunDetails(ctx, entry.RunID).Get(); ok && run != nil && run.FinishedAt != nil && *run.FinishedAt != "" {
			date = format.Date(*run.FinishedAt)
		}
		page.Rows = append(page.Rows, LeaderboardRow{
			Placement:      placement,
			PlacementClass: format.PlacementClass(placement),
			Username:       entry.Username,
			Avatar:         b.avatars.For(entry.Username),
			Time:           format.Time(entry.CompletionTime),
			Points:         levelPoints,
			Date:           date,
		})
	}
	return page, nil
}

// Player builds the profile of username from the global aggregation.
func (b *Builder) Player(ctx context.Context, username string) (*PlayerPage, error) {
	players := b.aggregator.Aggregate(ctx, b.levelIDs)
	player := rankings.Find(players, username)
	if player == nil {
		return nil, fmt.Errorf("%q: %w", username, ErrPlayerNotFound)
	}

	completions := player.CompletionsByRank()
	page := &PlayerPage{
		Username:     player.Username,
		Avatar:       b.avatars.For(player.Username),
		TotalPoints:  player.TotalPoints,
		Completions:  len(player.Completions),
		HardestLevel: topLabel(player.HardestLevelRank),
		Cards:        make([]CompletionCard, 0, len(completions)),
	}
	for _, c := range completions {
		details, _ := b.source.LevelDetails(ctx, c.LevelID).Get()
		date := dateUnknown
		if c.Date != nil {
			date = format.Date(*c.Date)
		}
		page.Cards = append(page.Cards, CompletionCard{
			LevelID:   c.LevelID,
			LevelRank: c.LevelRank,
			RankClass: format.RankClass(c.LevelRank),
			LevelName: levelName(details, unknownLevel),
			Time:      format.Time(c.Time),
			Date:      date,
			Points:    c.Points,
		})
	}
	return page, nil
}

// Leaderboard builds the global ranking of every player.
func (b *Builder) Leaderboard(ctx context.Context) *LeaderboardPage {
	players := b.aggregator.Aggregate(ctx, b.levelIDs)
	page := &LeaderboardPage{Players: make([]PlayerRow, 0, len(players))}
	for i := range players {
		player := &players[i]
		placement := i + 1
		page.Players = append(page.Players, PlayerRow{
			Placement:      placement,
			PlacementClass: format.PlacementClass(placement),
			Medal:          format.Medal(placement),
			Username:       player.Username,
			Avatar:         b.avatars.For(player.Username),
			HardestLevel:   b.hardestLevelName(ctx, player),
			TotalPoints:    player.TotalPoints,
			Completions:    len(player.Completions),
		})
	}
	return page
}

func (b *Builder) hardestLevelName(ctx context.Context, player *rankings.PlayerAggregate) string {
	fallback := topLabel(player.HardestLevelRank)
	levelID, ok := player.HardestLevelID()
	if !ok {
		return fallback
	}
	details, _ := b.source.LevelDetails(ctx, levelID).Get()
	return levelName(details, fallback)
}

func levelName(details *narrowarrow.LevelDetails, fallback string) string {
	if details == nil || details.LevelInfo.Name == "" {
		return fallback
	}
	return details.LevelInfo.Name
}

func levelAuthor(details *narrowarrow.LevelDetails) string {
	if details.LevelInfo.Author == "" {
		return unknownAuthor
	}
	return details.LevelInfo.Author
}

func topLabel(rank int) string {
	return fmt.Sprintf("Top %d", rank)
}
