package pipeline

import (
	"go.uber.org/zap"

	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// Messages logged for dropped responses.
const (
	msgNoAddress     = "response ignored: no address"
	msgNoContactDate = "response ignored: no contact date"
)

// Formatter turns raw worksheet rows into normalized records.
type Formatter struct {
	strategy *forms.Strategy
	logger   *zap.Logger
}

// NewFormatter creates a Formatter. A nil logger discards output.
func NewFormatter(strategy *forms.Strategy, logger *zap.Logger) *Formatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Formatter{strategy: strategy, logger: logger}
}

// Format zips each row against the schema, normalizes it and drops the
// records that have no address or no contact date.
//
// PARAMETERS:
//   - schema: The header row.
//   - rows: The body rows, header excluded.
//
// RETURNS:
//   - The surviving records in input order.
//   - The number of records dropped.
//   - An error if a row fails normalization. This aborts the whole run.
func (f *Formatter) Format(schema types.Schema, rows []types.RawRow) ([]types.Record, int, error) {
	records := make([]types.Record, 0, len(rows))
	dropped := 0

	for i, row := range rows {
		// Row numbers are 1-based and the header is row 1.
		rowNum := i + 2

		rec, err := f.strategy.Normalize(Zip(schema, row), rowNum)
		if err != nil {
			return nil, 0, err
		}

		if f.strategy.Address(rec).IsMissing() {
			f.logDropped(msgNoAddress, rec)
			dropped++
			continue
		}
		if rec.ContactDate.IsZero() {
			f.logDropped(msgNoContactDate, rec)
			dropped++
			continue
		}

		records = append(records, rec)
	}

	return records, dropped, nil
}

func (f *Formatter) logDropped(msg string, rec types.Record) {
	fields := []zap.Field{
		zap.Int("row", rec.Row),
		zap.Any("fields", rec.Fields),
	}
	if !rec.Timestamp.IsZero() {
		fields = append(fields, zap.Time("timestamp", rec.Timestamp))
	}
	if !rec.ContactDate.IsZero() {
		fields = append(fields, zap.Time("contact_date", rec.ContactDate))
	}
	f.logger.Warn(msg, fields...)
}

// Zip pairs column names with cells. Cells past the end of the row are
// absent, cells past the end of the schema are ignored and empty cells are
// omitted.
func Zip(schema types.Schema, row types.RawRow) map[string]string {
	fields := make(map[string]string, len(schema))
	for i, name := range schema {
		if i >= len(row) {
			break
		}
		if row[i] == "" {
			continue
		}
		fields[name] = row[i]
	}
	return fields
}
