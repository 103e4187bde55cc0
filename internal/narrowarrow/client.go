package narrowarrow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultBaseURL is the public Narrow Arrow API.
const DefaultBaseURL = "https://api.narrowarrow.xyz"

const userAgent = "NarrowRankingsGoClient/1.0"

// Endpoints builds the resource URLs of the Narrow Arrow API.
type Endpoints struct {
	BaseURL string
}

// NewEndpoints returns the endpoints rooted at baseURL.
func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{BaseURL: strings.TrimRight(baseURL, "/")}
}

// LevelDetails returns the URL of a custom level's details.
func (e Endpoints) LevelDetails(levelID string) string {
	return fmt.Sprintf("%s/level-details/%s?isCustomLevel=true", e.BaseURL, url.PathEscape(levelID))
}

// Leaderboard returns the URL of a level's leaderboard.
func (e Endpoints) Leaderboard(levelID string) string {
	return fmt.Sprintf("%s/leaderboard?levelId=%s", e.BaseURL, url.QueryEscape(levelID))
}

// RunDetails returns the URL of a single run.
func (e Endpoints) RunDetails(runID string) string {
	return fmt.Sprintf("%s/runs/%s", e.BaseURL, url.PathEscape(runID))
}

// HTTPFetcher is the net/http implementation of Fetcher.
type HTTPFetcher struct {
	httpClient *http.Client
}

// NewHTTPFetcher creates a fetcher whose requests time out after timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure HTTPFetcher implements the Fetcher interface.
var _ Fetcher = (*HTTPFetcher)(nil)

// Fetch performs a GET request and returns the response body.
// Any transport failure or non-2xx status is reported as a *TransportError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	log.Debug("Requesting resource from Narrow Arrow API", "url", url)
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Debug("Received non-OK HTTP status from Narrow Arrow API", "status", resp.StatusCode, "body", string(body))
		return nil, &TransportError{URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return body, nil
}
