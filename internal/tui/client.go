package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	reststats "codeberg.org/icecube/server/api/rest/stats"
	tea "github.com/charmbracelet/bubbletea"
)

// timeout for stats requests
const statsRequestTimeout = 15 * time.Second

// manages HTTP requests to the stats REST API
type StatsClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new stats REST client from the environment
func NewStatsClient() *StatsClient {
	endpoint := os.Getenv("ICECUBE_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &StatsClient{
		endpoint: endpoint,
		token:    os.Getenv("STATS_API_TOKEN"),
		httpClient: &http.Client{
			Timeout: statsRequestTimeout,
		},
	}
}

// fetches the daily stats report
func (c *StatsClient) Fetch(ctx context.Context, limit int) (reststats.Report, error) {
	query := url.Values{}
	query.Set("token", c.token)
	query.Set("limit", fmt.Sprintf("%d", limit))

	requestURL := fmt.Sprintf("%s/api/v1/stats?%s", c.endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}

		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var report reststats.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return report, nil
}

// returns a tea.Cmd that fetches the stats report
func (c *StatsClient) FetchCmd(limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statsRequestTimeout)
		defer cancel()

		report, err := c.Fetch(ctx, limit)
		if err != nil {
			return StatsErrorMsg{err: err}
		}

		return StatsLoadedMsg{report: report}
	}
}
