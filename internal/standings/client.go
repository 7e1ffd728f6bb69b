package standings

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"bolao-backend/internal/domain"
)

// Client talks to the external football-statistics API.
type Client struct {
	BaseURL string
	APIKey  string
	APIHost string

	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey, apiHost string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		APIHost: apiHost,
		// o serviço externo pode demorar; não segurar o handler além disso
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchStandings retrieves the total standings table for a tournament season.
func (c *Client) FetchStandings(tournamentID, seasonID string) ([]byte, error) {
	url := fmt.Sprintf("%s/api/v1/unique-tournament/%s/season/%s/standings/total", c.BaseURL, tournamentID, seasonID)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.UpstreamError{Service: "standings", Err: err}
	}
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("x-api-host", c.APIHost)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Service: "standings", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.UpstreamError{Service: "standings", Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.UpstreamError{Service: "standings", Err: err}
	}
	return body, nil
}
