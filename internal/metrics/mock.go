package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	cacheHits            map[string]int
	cacheMisses          map[string]int
	fetchFailures        map[string]int
	aggregationDurations []float64
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		cacheHits:            make(map[string]int),
		cacheMisses:          make(map[string]int),
		fetchFailures:        make(map[string]int),
		aggregationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncCacheHits(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits[kind]++
}

func (m *Mock) IncCacheMisses(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses[kind]++
}

func (m *Mock) IncFetchFailures(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchFailures[kind]++
}

func (m *Mock) ObserveAggregationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregationDurations = append(m.aggregationDurations, duration)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// CacheHits returns the number of cache hits recorded for kind.
func (m *Mock) CacheHits(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits[kind]
}

// CacheMisses returns the number of cache misses recorded for kind.
func (m *Mock) CacheMisses(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses[kind]
}

// FetchFailures returns the number of failed fetches recorded for kind.
func (m *Mock) FetchFailures(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchFailures[kind]
}

// Aggregations returns the number of times ObserveAggregationDuration was called.
func (m *Mock) Aggregations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.aggregationDurations)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
