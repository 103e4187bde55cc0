package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "minutes with padded seconds", seconds: 95.25, want: "1:35.250"},
		{name: "single digit seconds are padded", seconds: 65.5, want: "1:05.500"},
		{name: "exact minute", seconds: 120, want: "2:00.000"},
		{name: "under a minute", seconds: 45.5, want: "45.500s"},
		{name: "zero", seconds: 0, want: "0.000s"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Time(tc.seconds))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Jan 1, 2024", Date("2024-01-01"))
	assert.Equal(t, "Feb 1, 2024", Date("2024-02-01T10:30:00Z"))
	assert.Equal(t, "Mar 15, 2025", Date("2025-03-15T08:00:00.123Z"))
	assert.Equal(t, "Dec 31, 2023", Date("2023-12-31T23:59:59"))
	assert.Equal(t, "yesterday", Date("yesterday"), "unknown layouts pass through")
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "top-1", RankClass(1))
	assert.Equal(t, "top-3", RankClass(3))
	assert.Empty(t, RankClass(4))

	assert.Equal(t, "first", PlacementClass(1))
	assert.Equal(t, "second", PlacementClass(2))
	assert.Equal(t, "third", PlacementClass(3))
	assert.Empty(t, PlacementClass(10))

	assert.Equal(t, "🥇", Medal(1))
	assert.Empty(t, Medal(4))
}
