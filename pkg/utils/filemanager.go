// =============================================================================
// DAS C.A.R.E. Contact Forms - File Manager Utility
// =============================================================================
//
// This module provides file utilities for report output, including:
//   - Directory management
//   - File naming from a placeholder format
//   - Run summary logs
//
// OUTPUT LAYOUT:
//   reports/
//     12_main_st_3f1c...txt      one file per address (text format)
//     reports_20240115_143022.xlsx  one workbook (xlsx format)
//     run_summary_20240115_143022.txt
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TimestampLayout is used for {timestamp} and generated file names.
const TimestampLayout = "20060102_150405"

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates the given directories if they don't exist.
func EnsureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return eris.Wrapf(err, "failed to create directory %s", dir)
		}
	}
	return nil
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// UniquePath returns path, or path with a numeric suffix before the
// extension when path is already taken.
func UniquePath(path string) string {
	if !FileExists(path) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if !FileExists(candidate) {
			return candidate
		}
	}
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName generates a file name from a format string.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//   - params: Extra placeholder values, keyed without braces.
//
// RETURNS:
//   - The generated file name. Path separators in the result are replaced.
//
// EXAMPLE:
//   format: "{address}_{date}.txt"
//   params: {"address": "12_main_st"}
//   output: "12_main_st_20240115.txt"
func GenerateOutputFileName(format string, params map[string]string) string {
	now := time.Now()

	pairs := []string{
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format(TimestampLayout),
		"{date}", now.Format("20060102"),
	}
	for key, value := range params {
		pairs = append(pairs, "{"+key+"}", value)
	}

	name := strings.NewReplacer(pairs...).Replace(format)
	return strings.NewReplacer("/", "_", "\\", "_").Replace(name)
}

// foldAccents strips combining marks, so "Peña" becomes "Pena".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SanitizeFileName reduces s to lower-case letters, digits, '-' and '_'.
// Accents are folded first. Runs of other characters become a single '_'.
func SanitizeFileName(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary contains summary information about a report run.
type RunSummary struct {
	RunID          string
	StartTime      time.Time
	EndTime        time.Time
	FormsVersion   string
	Source         string
	RowsRead       int
	RecordsKept    int
	RecordsDropped int
	Addresses      int
	OutputFormat   string
	Outputs        []string
}

// FormatSummary renders the summary as text.
func FormatSummary(summary RunSummary) string {
	var b strings.Builder

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(&b, "DAS C.A.R.E. Contact Reports - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n"+
		"  Forms Version:  %s\n"+
		"  Source:         %s\n\n"+
		"Statistics:\n"+
		"  Rows Read:          %d\n"+
		"  Responses Kept:     %d\n"+
		"  Responses Dropped:  %d\n"+
		"  Addresses:          %d\n\n",
		summary.RunID,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.FormsVersion,
		summary.Source,
		summary.RowsRead,
		summary.RecordsKept,
		summary.RecordsDropped,
		summary.Addresses)

	if len(summary.Outputs) > 0 {
		fmt.Fprintf(&b, "Outputs (%s):\n", summary.OutputFormat)
		b.WriteString("--------------------------------------------------------------------------------\n")
		for _, out := range summary.Outputs {
			fmt.Fprintf(&b, "  %s\n", out)
		}
		b.WriteString("\n")
	}

	b.WriteString("================================================================================\n" +
		"End of Summary\n")
	return b.String()
}

// WriteSummaryLog writes a run summary to a file in outputDir.
//
// RETURNS:
//   - The path to the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary RunSummary, outputDir string) (string, error) {
	if err := EnsureDirectories(outputDir); err != nil {
		return "", err
	}

	name := fmt.Sprintf("run_summary_%s.txt", summary.EndTime.Format(TimestampLayout))
	path := UniquePath(filepath.Join(outputDir, name))

	file, err := os.Create(path)
	if err != nil {
		return "", eris.Wrap(err, "failed to create summary file")
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(FormatSummary(summary)); err != nil {
		return "", eris.Wrap(err, "failed to write summary file")
	}
	if err := writer.Flush(); err != nil {
		return "", eris.Wrap(err, "failed to flush summary file")
	}

	return path, nil
}
