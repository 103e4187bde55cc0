package rankings

import (
	"cmp"
	"slices"
)

// Find returns the aggregate of username, or nil if the player has no
// completions.
func Find(players []PlayerAggregate, username string) *PlayerAggregate {
	for i := range players {
		if players[i].Username == username {
			return &players[i]
		}
	}
	return nil
}

// HardestLevelID returns the id of the level at the player's hardest rank.
func (p *PlayerAggregate) HardestLevelID() (string, bool) {
	for _, c := range p.Completions {
		if c.LevelRank == p.HardestLevelRank {
			return c.LevelID, true
		}
	}
	return "", false
}

// CompletionsByRank returns a copy of the completions sorted hardest level
// first. The aggregate itself is left untouched.
func (p *PlayerAggregate) CompletionsByRank() []Completion {
	sorted := slices.Clone(p.Completions)
	slices.SortStableFunc(sorted, func(a, b Completion) int {
		return cmp.Compare(a.LevelRank, b.LevelRank)
	})
	return sorted
}
