package sheets

import (
	"context"
	"fmt"
)

// MockClient is a mock spreadsheet client for testing
type MockClient struct {
	grids    map[string][][]string
	errs     map[string]error
	fetchErr error
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithGrid registers a grid under a spreadsheet ID
func WithGrid(spreadsheetID string, grid [][]string) MockOption {
	return func(m *MockClient) {
		m.grids[spreadsheetID] = grid
	}
}

// WithGridError sets an error to return for one spreadsheet ID
func WithGridError(spreadsheetID string, err error) MockOption {
	return func(m *MockClient) {
		m.errs[spreadsheetID] = err
	}
}

// WithFetchError sets an error to return from every Fetch
func WithFetchError(err error) MockOption {
	return func(m *MockClient) {
		m.fetchErr = err
	}
}

// NewMockClient creates a new mock client
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		grids: make(map[string][][]string),
		errs:  make(map[string]error),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetGrid registers a grid after construction
func (m *MockClient) SetGrid(spreadsheetID string, grid [][]string) {
	m.grids[spreadsheetID] = grid
}

// Fetch returns the registered grid or ErrNotFound for unknown IDs
func (m *MockClient) Fetch(ctx context.Context, spreadsheetID string) ([][]string, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	if err, ok := m.errs[spreadsheetID]; ok {
		return nil, err
	}
	grid, ok := m.grids[spreadsheetID]
	if !ok {
		return nil, fmt.Errorf("spreadsheet %s: %w", spreadsheetID, ErrNotFound)
	}
	return grid, nil
}
