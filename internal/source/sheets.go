package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// SheetsWorksheet reads a worksheet of a Google spreadsheet.
type SheetsWorksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	sheet         string
}

// NewSheetsWorksheet authenticates with a service-account key file and
// returns a read-only worksheet. An empty sheet name selects the first
// worksheet of the spreadsheet.
func NewSheetsWorksheet(ctx context.Context, spreadsheetID, sheet, credentialsFile string) (*SheetsWorksheet, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to create sheets client from %s", credentialsFile)
	}
	return NewSheetsWorksheetFromService(svc, spreadsheetID, sheet), nil
}

// NewSheetsWorksheetFromService wraps an existing Sheets client.
func NewSheetsWorksheetFromService(svc *sheets.Service, spreadsheetID, sheet string) *SheetsWorksheet {
	return &SheetsWorksheet{svc: svc, spreadsheetID: spreadsheetID, sheet: sheet}
}

// Header implements Worksheet.
func (w *SheetsWorksheet) Header(ctx context.Context) (types.Schema, error) {
	sheet, err := w.sheetTitle(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := w.values(ctx, quoteSheet(sheet)+"!1:1")
	if err != nil {
		return nil, err
	}
	header, err := headerOf(rows)
	if err != nil {
		return nil, eris.Wrapf(err, "spreadsheet %s sheet %q", w.spreadsheetID, sheet)
	}
	return header, nil
}

// AllValues implements Worksheet.
func (w *SheetsWorksheet) AllValues(ctx context.Context) ([][]string, error) {
	sheet, err := w.sheetTitle(ctx)
	if err != nil {
		return nil, err
	}
	return w.values(ctx, quoteSheet(sheet))
}

func (w *SheetsWorksheet) values(ctx context.Context, rng string) ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, rng).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read range %s of spreadsheet %s", rng, w.spreadsheetID)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellString(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

// sheetTitle resolves the configured worksheet, defaulting to the first.
func (w *SheetsWorksheet) sheetTitle(ctx context.Context) (string, error) {
	if w.sheet != "" {
		return w.sheet, nil
	}

	ss, err := w.svc.Spreadsheets.Get(w.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return "", eris.Wrapf(err, "failed to read spreadsheet %s", w.spreadsheetID)
	}
	if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
		return "", eris.Errorf("spreadsheet %s has no worksheets", w.spreadsheetID)
	}

	w.sheet = ss.Sheets[0].Properties.Title
	return w.sheet, nil
}

// quoteSheet quotes a worksheet title for A1 notation.
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
