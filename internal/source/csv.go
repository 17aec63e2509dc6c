package source

import (
	"bufio"
	"context"
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"

	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// CSVWorksheet reads a CSV export of the response sheet.
// The file is read once, on first use.
type CSVWorksheet struct {
	path      string
	delimiter string
	rows      [][]string
	loaded    bool
}

// NewCSVWorksheet creates a worksheet over a CSV file.
//
// PARAMETERS:
//   - path: The CSV file.
//   - delimiter: The field separator. Accepts a single character or one of
//     "tab", "pipe", "semicolon". Empty means comma.
func NewCSVWorksheet(path, delimiter string) *CSVWorksheet {
	return &CSVWorksheet{path: path, delimiter: delimiter}
}

// Header implements Worksheet.
func (w *CSVWorksheet) Header(ctx context.Context) (types.Schema, error) {
	rows, err := w.AllValues(ctx)
	if err != nil {
		return nil, err
	}
	header, err := headerOf(rows)
	if err != nil {
		return nil, eris.Wrapf(err, "csv %s", w.path)
	}
	return header, nil
}

// AllValues implements Worksheet.
func (w *CSVWorksheet) AllValues(_ context.Context) ([][]string, error) {
	if w.loaded {
		return w.rows, nil
	}

	file, err := os.Open(w.path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open %s", w.path)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	configureReader(reader, w.delimiter)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read CSV %s", w.path)
	}

	w.rows = rows
	w.loaded = true
	return rows, nil
}

// configureReader sets up the CSV reader.
// Cells are kept exactly as written; an address with a leading space is a
// different address.
func configureReader(reader *csv.Reader, delimiter string) {
	switch delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(delimiter) > 0 {
			reader.Comma = rune(delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Form exports have ragged rows when trailing answers are blank.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}
