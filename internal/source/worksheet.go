// =============================================================================
// DAS C.A.R.E. Contact Forms - Row Sources
// =============================================================================
//
// A Worksheet is the read-only boundary between the report pipeline and the
// place the form responses live. The pipeline needs exactly two reads:
//   - Header:    the first row, as column names
//   - AllValues: every row, header included
//
// IMPLEMENTATIONS:
//   - SheetsWorksheet : Google Sheets API v4 (the live response sheet)
//   - CSVWorksheet    : a CSV export of the sheet
//   - XLSXWorksheet   : an Excel download of the sheet
//   - Memory          : rows held in memory (tests, dry runs)
//
// Retrying failed reads is left to the caller.
//
// =============================================================================

package source

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/georgeaf99/das-care-contact-forms/internal/config"
	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// ErrEmptyWorksheet is returned by Header when the worksheet has no rows.
var ErrEmptyWorksheet = eris.New("worksheet has no rows")

// Worksheet reads rows from a tabular source.
type Worksheet interface {
	// Header returns the first row.
	Header(ctx context.Context) (types.Schema, error)

	// AllValues returns every row, including the header row.
	AllValues(ctx context.Context) ([][]string, error)
}

// Open returns the worksheet described by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Worksheet, error) {
	switch cfg.Source.Type {
	case config.SourceSheets:
		return NewSheetsWorksheet(ctx, cfg.MainSpreadsheet.ID, cfg.Source.Sheet, cfg.Source.CredentialsFile)
	case config.SourceCSV:
		return NewCSVWorksheet(cfg.Source.Path, cfg.Source.Delimiter), nil
	case config.SourceXLSX:
		return NewXLSXWorksheet(cfg.Source.Path, cfg.Source.Sheet), nil
	default:
		return nil, eris.Errorf("unknown source type %q", cfg.Source.Type)
	}
}

// =============================================================================
// IN-MEMORY WORKSHEET
// =============================================================================

// Memory is a Worksheet over rows already in memory.
type Memory [][]string

// Header implements Worksheet.
func (m Memory) Header(_ context.Context) (types.Schema, error) {
	return headerOf(m)
}

// AllValues implements Worksheet.
func (m Memory) AllValues(_ context.Context) ([][]string, error) {
	return m, nil
}

func headerOf(rows [][]string) (types.Schema, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyWorksheet
	}
	header := make(types.Schema, len(rows[0]))
	copy(header, rows[0])
	return header, nil
}
