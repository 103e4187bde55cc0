package narrowarrow

import "fmt"

// LevelDetails is the payload returned by the level-details endpoint.
type LevelDetails struct {
	LevelInfo LevelInfo `json:"levelInfo"`
}

// LevelInfo holds the display metadata of a level.
type LevelInfo struct {
	Name   string `json:"name"`
	Author string `json:"author"`
}

// LeaderboardEntry is one player's placement on a level's leaderboard.
type LeaderboardEntry struct {
	Username       string  `json:"username"`
	RunID          string  `json:"run_id"`
	CompletionTime float64 `json:"completion_time"` // seconds
}

// Leaderboard is the ordered list of entries for one level, best placement first.
type Leaderboard []LeaderboardEntry

// RunDetails is the payload returned by the run endpoint.
type RunDetails struct {
	FinishedAt *string `json:"finishedAt"`
}

// TransportError is returned by a Fetcher when the request could not be made
// or the API answered with a non-success status.
type TransportError struct {
	URL    string
	Status int // zero when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("received non-OK HTTP status %d from %s", e.Status, e.URL)
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RunIDs returns the run id of every entry, in leaderboard order.
func (l Leaderboard) RunIDs() []string {
	ids := make([]string, len(l))
	for i, entry := range l {
		ids[i] = entry.RunID
	}
	return ids
}
