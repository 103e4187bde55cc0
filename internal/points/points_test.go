package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRank(t *testing.T) {
	tests := []struct {
		rank int
		want int
	}{
		{1, 10}, {2, 8}, {3, 7}, {4, 6}, {5, 5},
		{6, 4}, {10, 4},
		{11, 3}, {25, 3},
		{26, 2}, {50, 2},
		{51, 1}, {1000, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ForRank(tc.rank), "rank %d", tc.rank)
	}
}

func TestForRank_NonIncreasing(t *testing.T) {
	prev := ForRank(0)
	for rank := 1; rank <= 200; rank++ {
		got := ForRank(rank)
		assert.LessOrEqual(t, got, prev, "rank %d scored more than rank %d", rank, rank-1)
		prev = got
	}
}

func TestForRank_BranchesAgreeWithTable(t *testing.T) {
	for rank, want := range Table {
		assert.Equal(t, want, ForRank(rank), "table row %d", rank)
	}
}
