package narrowarrow

import "context"

// Fetcher retrieves the raw body of an API resource.
// This allows for mock implementations to be used in tests.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
