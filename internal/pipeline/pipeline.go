// =============================================================================
// DAS C.A.R.E. Contact Forms - Report Pipeline
// =============================================================================
//
// This module runs one full pass from worksheet rows to per-address reports.
//
// PIPELINE:
//   1. Read the header and all rows from the worksheet
//   2. Format: zip rows with the header, normalize, drop unusable responses
//   3. Group: partition by address, sort each group chronologically
//   4. Compress: overlay each group into one record, apply fixups
//   5. Render: fill the report template for every address
//
// Every stage after the fetch is a pure function of its inputs. The only
// input that changes behavior is the forms strategy, fixed at construction.
//
// =============================================================================

package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
	"github.com/georgeaf99/das-care-contact-forms/internal/report"
	"github.com/georgeaf99/das-care-contact-forms/internal/source"
	"github.com/georgeaf99/das-care-contact-forms/internal/types"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of one run.
type Result struct {
	// RunID identifies the run in logs and the run summary.
	RunID string

	// Reports maps address to finished report text.
	Reports map[string]string

	// Groups and Compressed are the intermediate stages, kept for callers
	// that want more than the text.
	Groups     types.Groups
	Compressed types.Compressed

	// Stats contains processing statistics.
	Stats Stats
}

// Stats contains statistics about a run.
type Stats struct {
	// RowsRead is the number of body rows fetched (header excluded).
	RowsRead int

	// RecordsKept is the number of responses that reached grouping.
	RecordsKept int

	// RecordsDropped is the number of responses with no address or no
	// contact date.
	RecordsDropped int

	// Addresses is the number of distinct addresses.
	Addresses int

	// ProcessingTime is the wall time of Run.
	ProcessingTime time.Duration
}

// Only returns a copy of the result restricted to one address.
// The copy is empty when the address is unknown.
func (r *Result) Only(address string) *Result {
	out := &Result{
		RunID:      r.RunID,
		Reports:    make(map[string]string),
		Groups:     make(types.Groups),
		Compressed: make(types.Compressed),
		Stats:      r.Stats,
	}
	if text, ok := r.Reports[address]; ok {
		out.Reports[address] = text
		out.Groups[address] = r.Groups[address]
		out.Compressed[address] = r.Compressed[address]
	}
	return out
}

// =============================================================================
// PIPELINE STRUCTURE
// =============================================================================

// Pipeline turns a worksheet into reports.
type Pipeline struct {
	worksheet source.Worksheet
	strategy  *forms.Strategy
	logger    *zap.Logger
}

// New creates a Pipeline. A nil logger discards output.
func New(worksheet source.Worksheet, strategy *forms.Strategy, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{worksheet: worksheet, strategy: strategy, logger: logger}
}

// Run executes the pipeline once.
//
// RETURNS:
//   - The reports and run statistics.
//   - An error if the worksheet cannot be read, a timestamp does not parse,
//     or a response fills both a legacy and a current column. Any of these
//     stops the run with no partial result.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.New().String()}
	log := p.logger.With(zap.String("run_id", result.RunID))

	log.Info("starting report run", zap.String("forms_version", string(p.strategy.Version())))

	// =========================================================================
	// STEP 1: FETCH
	// =========================================================================

	// A worksheet with no rows at all is a run with nothing to report.
	schema, err := p.worksheet.Header(ctx)
	if eris.Is(err, source.ErrEmptyWorksheet) {
		log.Info("worksheet is empty")
		schema, err = types.Schema{}, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "failed to read header row")
	}
	values, err := p.worksheet.AllValues(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read rows")
	}

	body := make([]types.RawRow, 0, len(values))
	if len(values) > 1 {
		for _, row := range values[1:] {
			body = append(body, types.RawRow(row))
		}
	}
	result.Stats.RowsRead = len(body)
	log.Debug("fetched rows", zap.Int("columns", len(schema)), zap.Int("rows", len(body)))

	// =========================================================================
	// STEP 2: FORMAT
	// =========================================================================

	records, dropped, err := NewFormatter(p.strategy, log).Format(schema, body)
	if err != nil {
		return nil, eris.Wrap(err, "failed to format responses")
	}
	result.Stats.RecordsKept = len(records)
	result.Stats.RecordsDropped = dropped
	log.Debug("formatted responses", zap.Int("kept", len(records)), zap.Int("dropped", dropped))

	// =========================================================================
	// STEP 3: GROUP
	// =========================================================================

	groups, err := Group(records, p.strategy)
	if err != nil {
		return nil, eris.Wrap(err, "failed to group responses")
	}
	result.Groups = groups
	result.Stats.Addresses = len(groups)

	// =========================================================================
	// STEP 4: COMPRESS
	// =========================================================================

	result.Compressed = Compress(groups, p.strategy)

	// =========================================================================
	// STEP 5: RENDER
	// =========================================================================

	result.Reports = report.Render(groups, result.Compressed)

	result.Stats.ProcessingTime = time.Since(start)
	log.Info("report run complete",
		zap.Int("rows", result.Stats.RowsRead),
		zap.Int("dropped", result.Stats.RecordsDropped),
		zap.Int("addresses", result.Stats.Addresses),
		zap.Duration("elapsed", result.Stats.ProcessingTime),
	)

	return result, nil
}
