package sheets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/auxilium-app/auxilium/internal/logger"
)

// XLSXClient resolves spreadsheet IDs to xlsx files in a local directory.
// Used by offline and self-hosted deployments where form exports are
// dropped into a folder instead of fetched from a hosted service.
type XLSXClient struct {
	dir string
	log logger.Logger
}

// NewXLSXClient creates a client reading xlsx files from dir
func NewXLSXClient(dir string, log logger.Logger) *XLSXClient {
	return &XLSXClient{dir: dir, log: log}
}

// Fetch reads the first worksheet of {dir}/{spreadsheetID}.xlsx
func (c *XLSXClient) Fetch(ctx context.Context, spreadsheetID string) ([][]string, error) {
	if strings.ContainsAny(spreadsheetID, `/\`) {
		return nil, fmt.Errorf("spreadsheet %s: %w", spreadsheetID, ErrNotFound)
	}

	path := filepath.Join(c.dir, spreadsheetID+".xlsx")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("spreadsheet %s: %w", spreadsheetID, ErrNotFound)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %s: failed to open workbook: %w", spreadsheetID, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet %s: workbook has no sheets", spreadsheetID)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %s: failed to read rows: %w", spreadsheetID, err)
	}

	c.log.Debug("read spreadsheet file", "path", path, "rows", len(rows))
	return rows, nil
}
