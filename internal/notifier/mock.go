package notifier

import (
	"sync"

	"github.com/mauv0809/narrow-rankings/internal/views"
)

var _ Notifier = &Mock{}

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendLeaderboardFunc   func(page *views.LeaderboardPage, dryRun bool) error
	SendPlayerProfileFunc func(page *views.PlayerPage, dryRun bool) error

	// Spies for format functions
	FormatLeaderboardResponseFunc    func(page *views.LeaderboardPage) (any, error)
	FormatPlayerProfileResponseFunc  func(page *views.PlayerPage) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)

	// Call records
	SendLeaderboardCalls []struct {
		Page   *views.LeaderboardPage
		DryRun bool
	}
	SendPlayerProfileCalls []struct {
		Page   *views.PlayerPage
		DryRun bool
	}

	// Call records for format functions
	LastLeaderboardResponse    any
	LastPlayerProfileResponse  any
	LastPlayerNotFoundResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = nil
	m.SendPlayerProfileCalls = nil
	m.LastLeaderboardResponse = nil
	m.LastPlayerProfileResponse = nil
	m.LastPlayerNotFoundResponse = nil
}

func (m *Mock) SendLeaderboard(page *views.LeaderboardPage, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, struct {
		Page   *views.LeaderboardPage
		DryRun bool
	}{page, dryRun})
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(page, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerProfile(page *views.PlayerPage, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerProfileCalls = append(m.SendPlayerProfileCalls, struct {
		Page   *views.PlayerPage
		DryRun bool
	}{page, dryRun})
	if m.SendPlayerProfileFunc != nil {
		return m.SendPlayerProfileFunc(page, dryRun)
	}
	return nil
}

func (m *Mock) FormatLeaderboardResponse(page *views.LeaderboardPage) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err := m.FormatLeaderboardResponseFunc(page)
		m.LastLeaderboardResponse = resp
		return resp, err
	}
	m.LastLeaderboardResponse = page
	return page, nil
}

func (m *Mock) FormatPlayerProfileResponse(page *views.PlayerPage) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerProfileResponseFunc != nil {
		resp, err := m.FormatPlayerProfileResponseFunc(page)
		m.LastPlayerProfileResponse = resp
		return resp, err
	}
	m.LastPlayerProfileResponse = page
	return page, nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err := m.FormatPlayerNotFoundResponseFunc(query)
		m.LastPlayerNotFoundResponse = resp
		return resp, err
	}
	m.LastPlayerNotFoundResponse = query
	return query, nil
}
