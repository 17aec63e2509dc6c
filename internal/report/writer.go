// =============================================================================
// DAS C.A.R.E. Contact Forms - Report Writers
// =============================================================================
//
// Writers hand finished reports to a destination. Delivery (email, print)
// happens elsewhere; these only put the text somewhere a person can pick it
// up.
//
// FORMATS:
//   - text   : one .txt file per address
//   - xlsx   : one workbook, one row per address
//   - stdout : all reports on standard output, in address order
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/georgeaf99/das-care-contact-forms/internal/config"
	"github.com/georgeaf99/das-care-contact-forms/pkg/utils"
)

// WorkbookSheet is the sheet name used by WriteWorkbook.
const WorkbookSheet = "Reports"

// rule separates reports on a stream.
const rule = "--------------------------------------------------------------------------------"

// Output describes where reports are written.
type Output struct {
	// Format is one of config.FormatText, config.FormatXLSX, config.FormatStdout.
	Format string

	// Dir is the output directory for file formats.
	Dir string

	// FileNameFormat names text files. See utils.GenerateOutputFileName.
	FileNameFormat string

	// Stdout receives the stdout format. Defaults to os.Stdout.
	Stdout io.Writer
}

// Write sends the reports to the configured destination and returns the
// paths written. The stdout format returns no paths.
func (o Output) Write(reports map[string]string) ([]string, error) {
	switch o.Format {
	case config.FormatText:
		return WriteTextFiles(reports, o.Dir, o.FileNameFormat)
	case config.FormatXLSX:
		path, err := WriteWorkbook(reports, o.Dir, time.Now())
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case config.FormatStdout:
		w := o.Stdout
		if w == nil {
			w = os.Stdout
		}
		return nil, WriteStream(w, reports)
	default:
		return nil, eris.Errorf("unknown output format %q", o.Format)
	}
}

// SortedAddresses returns the report keys in order.
func SortedAddresses(reports map[string]string) []string {
	addrs := make([]string, 0, len(reports))
	for a := range reports {
		addrs = append(addrs, a)
	}
	sort.Strings(addrs)
	return addrs
}

// =============================================================================
// TEXT FILES
// =============================================================================

// WriteTextFiles writes one file per address into dir.
//
// PARAMETERS:
//   - reports: Address to report text.
//   - dir: The output directory. Created if missing.
//   - nameFormat: File name format; {address} is the sanitized address.
//
// RETURNS:
//   - The written paths, in address order.
//   - An error if any file cannot be written. Files already written stay.
func WriteTextFiles(reports map[string]string, dir, nameFormat string) ([]string, error) {
	if err := utils.EnsureDirectories(dir); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(reports))
	for _, addr := range SortedAddresses(reports) {
		name := utils.GenerateOutputFileName(nameFormat, map[string]string{
			"address": utils.SanitizeFileName(addr),
		})
		path := utils.UniquePath(filepath.Join(dir, name))

		if err := os.WriteFile(path, []byte(reports[addr]+"\n"), 0644); err != nil {
			return paths, eris.Wrapf(err, "failed to write report for %q", addr)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// =============================================================================
// XLSX WORKBOOK
// =============================================================================

// WriteWorkbook writes all reports into reports_<timestamp>.xlsx in dir.
// The sheet has a header row (Address, Report) and one row per address.
func WriteWorkbook(reports map[string]string, dir string, now time.Time) (string, error) {
	if err := utils.EnsureDirectories(dir); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), WorkbookSheet); err != nil {
		return "", eris.Wrap(err, "failed to name sheet")
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return "", eris.Wrap(err, "failed to create cell style")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", eris.Wrap(err, "failed to create header style")
	}

	if err := f.SetSheetRow(WorkbookSheet, "A1", &[]interface{}{"Address", "Report"}); err != nil {
		return "", eris.Wrap(err, "failed to write header row")
	}
	if err := f.SetCellStyle(WorkbookSheet, "A1", "B1", bold); err != nil {
		return "", eris.Wrap(err, "failed to style header row")
	}

	for i, addr := range SortedAddresses(reports) {
		row := i + 2
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(WorkbookSheet, cell, &[]interface{}{addr, reports[addr]}); err != nil {
			return "", eris.Wrapf(err, "failed to write row for %q", addr)
		}
		if err := f.SetCellStyle(WorkbookSheet, cell, fmt.Sprintf("B%d", row), wrap); err != nil {
			return "", eris.Wrapf(err, "failed to style row for %q", addr)
		}
	}

	if err := f.SetColWidth(WorkbookSheet, "A", "A", 30); err != nil {
		return "", eris.Wrap(err, "failed to size columns")
	}
	if err := f.SetColWidth(WorkbookSheet, "B", "B", 80); err != nil {
		return "", eris.Wrap(err, "failed to size columns")
	}

	path := utils.UniquePath(filepath.Join(dir, fmt.Sprintf("reports_%s.xlsx", now.Format(utils.TimestampLayout))))
	if err := f.SaveAs(path); err != nil {
		return "", eris.Wrapf(err, "failed to save workbook %s", path)
	}
	return path, nil
}

// =============================================================================
// STREAM
// =============================================================================

// WriteStream prints every report to w in address order, separated by a rule.
func WriteStream(w io.Writer, reports map[string]string) error {
	var b strings.Builder
	for i, addr := range SortedAddresses(reports) {
		if i > 0 {
			b.WriteString(rule + "\n")
		}
		b.WriteString(reports[addr])
		b.WriteString("\n")
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return eris.Wrap(err, "failed to write reports")
	}
	return nil
}
