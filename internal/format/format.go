// Package format renders completion times, dates and placement classes for
// display.
package format

import (
	"fmt"
	"math"
	"time"
)

// Time formats a completion time given in seconds. Times of a minute or
// more render as m:ss.fff, shorter ones as s.fffs.
func Time(seconds float64) string {
	mins := int(math.Floor(seconds / 60))
	secs := math.Mod(seconds, 60)
	if mins > 0 {
		return fmt.Sprintf("%d:%06.3f", mins, secs)
	}
	return fmt.Sprintf("%.3fs", secs)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date formats an API timestamp as a short en-US date, e.g. "Jan 2, 2006".
// Input that matches no known layout is returned unchanged.
func Date(ts string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return ts
}

// RankClass returns the CSS class for a level's difficulty rank.
func RankClass(rank int) string {
	switch rank {
	case 1:
		return "top-1"
	case 2:
		return "top-2"
	case 3:
		return "top-3"
	}
	return ""
}

// PlacementClass returns the CSS class for a placement on a leaderboard.
func PlacementClass(placement int) string {
	switch placement {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	}
	return ""
}

// Medal returns the medal emoji for the top three placements.
func Medal(placement int) string {
	switch placement {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}
