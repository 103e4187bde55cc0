// Package points maps a level's difficulty rank to the points awarded for
// completing it.
package points

// Func scores a completion of the level at the given 1-based difficulty rank.
type Func func(rank int) int

// Table is the published points system. ForRank reads only ranks 1–5 from
// it; the remaining rows mark where each band starts and are shadowed by
// the branches in ForRank.
var Table = map[int]int{
	1:  10, // Top 1
	2:  8,  // Top 2
	3:  7,  // Top 3
	4:  6,  // Top 4
	5:  5,  // Top 5
	6:  4,  // Top 6-10
	7:  4,
	8:  4,
	9:  4,
	10: 4,
	11: 3, // Top 11-25
	26: 2, // Top 26-50
	51: 1, // Top 51+
}

// ForRank returns the points for a completion of the level at rank.
// Ranks below 1 score like rank 1, which keeps ForRank non-increasing.
func ForRank(rank int) int {
	switch {
	case rank <= 1:
		return Table[1]
	case rank <= 5:
		return Table[rank]
	case rank <= 10:
		return 4
	case rank <= 25:
		return 3
	case rank <= 50:
		return 2
	default:
		return 1
	}
}

var _ Func = ForRank
