package source

// Kind is the namespace of a cached resource.
type Kind string

const (
	KindLevel       Kind = "level"
	KindLeaderboard Kind = "leaderboard"
	KindRun         Kind = "run"
)

// Key identifies one API resource in the cache.
type Key struct {
	Kind Kind
	ID   string
}

// String returns the cache key, e.g. "leaderboard_1743661104278".
// Kinds contain no underscore, so keys of different kinds never collide.
func (k Key) String() string {
	return string(k.Kind) + "_" + k.ID
}
