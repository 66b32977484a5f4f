// Package sheets provides clients for fetching externally-hosted
// spreadsheet grids as rows of string cells.
package sheets

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/auxilium-app/auxilium/internal/logger"
)

// ErrNotFound is returned when a spreadsheet cannot be resolved
var ErrNotFound = errors.New("spreadsheet not found")

// Client defines the interface for spreadsheet access.
// Fetch returns the full grid of the document: ordered rows of ordered
// string cells, including the header row. An empty grid is not an error.
type Client interface {
	Fetch(ctx context.Context, spreadsheetID string) ([][]string, error)
}

// HTTPClient fetches hosted spreadsheets through their CSV export endpoint
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewHTTPClient creates a new spreadsheet HTTP client.
// baseURL defaults to the Google Docs host when empty.
func NewHTTPClient(baseURL string, log logger.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://docs.google.com"
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// NewHTTPClientWithHTTPClient creates a client with a custom http.Client
func NewHTTPClientWithHTTPClient(baseURL string, httpClient *http.Client, log logger.Logger) *HTTPClient {
	c := NewHTTPClient(baseURL, log)
	c.httpClient = httpClient
	return c
}

// Fetch downloads and parses the CSV export of a spreadsheet
func (c *HTTPClient) Fetch(ctx context.Context, spreadsheetID string) ([][]string, error) {
	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv", c.baseURL, spreadsheetID)
	c.log.Debug("fetching spreadsheet", "url", exportURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet %s: %w", spreadsheetID, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("spreadsheet %s: %w", spreadsheetID, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("spreadsheet %s: export returned status %d", spreadsheetID, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1 // form exports have ragged rows
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %s: failed to parse csv: %w", spreadsheetID, err)
	}

	c.log.Debug("fetched spreadsheet", "id", spreadsheetID, "rows", len(rows))
	return rows, nil
}
