package source

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// XLSXWorksheet reads one sheet of an Excel workbook.
type XLSXWorksheet struct {
	path  string
	sheet string
	rows  [][]string
}

// NewXLSXWorksheet creates a worksheet over a workbook sheet.
// An empty sheet name selects the first sheet.
func NewXLSXWorksheet(path, sheet string) *XLSXWorksheet {
	return &XLSXWorksheet{path: path, sheet: sheet}
}

// Header implements Worksheet.
func (w *XLSXWorksheet) Header(ctx context.Context) (types.Schema, error) {
	rows, err := w.AllValues(ctx)
	if err != nil {
		return nil, err
	}
	header, err := headerOf(rows)
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx %s", w.path)
	}
	return header, nil
}

// AllValues implements Worksheet.
func (w *XLSXWorksheet) AllValues(_ context.Context) ([][]string, error) {
	if w.rows != nil {
		return w.rows, nil
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open workbook %s", w.path)
	}
	defer f.Close()

	sheet := w.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, eris.Errorf("workbook %s has no sheets", w.path)
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read sheet %q", sheet)
	}
	if rows == nil {
		rows = [][]string{}
	}

	w.rows = rows
	return rows, nil
}
