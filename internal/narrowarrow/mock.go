package narrowarrow

import (
	"context"
	"fmt"
	"sync"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing.
// It is safe for concurrent use.
type MockFetcher struct {
	mu sync.Mutex

	// Responses maps a URL to the body returned for it. URLs missing from
	// the map answer with a 404 TransportError unless FetchFunc is set.
	Responses map[string]string

	// Spy for method calls
	FetchFunc func(ctx context.Context, url string) ([]byte, error)

	// Call records
	FetchCalls []string
}

// NewMockFetcher creates a new mock instance.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{Responses: make(map[string]string)}
}

// Reset clears all call records.
func (m *MockFetcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls = nil
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls = append(m.FetchCalls, url)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	body, ok := m.Responses[url]
	if !ok {
		return nil, &TransportError{URL: url, Status: 404, Err: fmt.Errorf("no mock response")}
	}
	return []byte(body), nil
}

// Set registers the body returned for url.
func (m *MockFetcher) Set(url, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[url] = body
}

// Delete removes the response registered for url.
func (m *MockFetcher) Delete(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Responses, url)
}

// Calls returns how many times url was fetched.
func (m *MockFetcher) Calls(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.FetchCalls {
		if c == url {
			n++
		}
	}
	return n
}

// TotalCalls returns the number of fetches of any URL.
func (m *MockFetcher) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.FetchCalls)
}
