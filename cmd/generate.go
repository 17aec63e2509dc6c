// =============================================================================
// DAS C.A.R.E. Contact Forms - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which runs the report pipeline
// and writes the reports.
//
// COMMAND USAGE:
//   care-reports generate [flags]
//
// FLAGS:
//   --dry-run   : Run the pipeline and print the summary, write nothing
//   --address   : Only output the report for this address
//   --format    : Override output_format (text, xlsx, stdout)
//
// PROCESSING PIPELINE:
//   1. Load configuration and resolve the forms version
//   2. Open the row source
//   3. Run the pipeline (format, group, compress, render)
//   4. Write the reports
//   5. Write the run summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/georgeaf99/das-care-contact-forms/internal/config"
	"github.com/georgeaf99/das-care-contact-forms/internal/pipeline"
	"github.com/georgeaf99/das-care-contact-forms/internal/report"
	"github.com/georgeaf99/das-care-contact-forms/internal/source"
	"github.com/georgeaf99/das-care-contact-forms/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun runs the pipeline without writing reports.
var dryRun bool

// onlyAddress limits output to a single address.
var onlyAddress string

// outputFormat overrides the configured output format.
var outputFormat string

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build one report per address from the form responses",
	Long: `The generate command reads every form response, drops responses with no
street address or contact date (each is logged as a warning), groups the rest
by address and writes one report per address.

A response that cannot be read safely stops the run:
  - a Timestamp or Date of Contact that is not M/D/YYYY[ h:mm:ss]
  - a legacy column and its current name both filled in`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the pipeline and print the summary without writing reports",
	)

	generateCmd.Flags().StringVar(
		&onlyAddress,
		"address",
		"",
		"Only output the report for this street address",
	)

	generateCmd.Flags().StringVar(
		&outputFormat,
		"format",
		"",
		"Output format: text, xlsx or stdout (default from config)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runGenerate(cmd *cobra.Command) error {
	startTime := time.Now()
	ctx := cmd.Context()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, logger, closeLog, err := loadConfig()
	if err != nil {
		return err
	}
	defer closeLog()

	if outputFormat != "" {
		if err := config.ValidateFormat(outputFormat); err != nil {
			return err
		}
		cfg.OutputFormat = outputFormat
	}

	// Keep stdout clean for the reports themselves.
	status := cmd.OutOrStdout()
	if cfg.OutputFormat == config.FormatStdout && !dryRun {
		status = cmd.ErrOrStderr()
	}

	strategy, err := cfg.Strategy()
	if err != nil {
		return err
	}

	fmt.Fprintln(status, "=== DAS C.A.R.E. Contact Reports ===")
	fmt.Fprintf(status, "Source:        %s\n", sourceName(cfg))
	fmt.Fprintf(status, "Forms version: %s\n", strategy.Version())

	// =========================================================================
	// STEP 2: OPEN SOURCE
	// =========================================================================

	ws, err := source.Open(ctx, cfg)
	if err != nil {
		return eris.Wrap(err, "failed to open source")
	}

	// =========================================================================
	// STEP 3: RUN PIPELINE
	// =========================================================================

	result, err := pipeline.New(ws, strategy, logger).Run(ctx)
	if err != nil {
		return err
	}

	if onlyAddress != "" {
		result = result.Only(onlyAddress)
		if len(result.Reports) == 0 {
			return eris.Errorf("no responses for address %q", onlyAddress)
		}
	}

	printStats(status, result)

	summary := utils.RunSummary{
		RunID:          result.RunID,
		StartTime:      startTime,
		FormsVersion:   string(strategy.Version()),
		Source:         sourceName(cfg),
		RowsRead:       result.Stats.RowsRead,
		RecordsKept:    result.Stats.RecordsKept,
		RecordsDropped: result.Stats.RecordsDropped,
		Addresses:      len(result.Reports),
		OutputFormat:   cfg.OutputFormat,
	}

	if dryRun {
		fmt.Fprintln(status, "\nDry run: no reports written.")
		return nil
	}

	// =========================================================================
	// STEP 4: WRITE REPORTS
	// =========================================================================

	out := report.Output{
		Format:         cfg.OutputFormat,
		Dir:            cfg.OutputDir,
		FileNameFormat: cfg.FileNameFormat,
		Stdout:         cmd.OutOrStdout(),
	}
	paths, err := out.Write(result.Reports)
	if err != nil {
		return eris.Wrap(err, "failed to write reports")
	}
	for _, p := range paths {
		logger.Debug("wrote report output", zap.String("path", p))
	}

	// =========================================================================
	// STEP 5: RUN SUMMARY
	// =========================================================================

	summary.Outputs = paths
	summary.EndTime = time.Now()
	summaryPath, err := utils.WriteSummaryLog(summary, cfg.OutputDir)
	if err != nil {
		return eris.Wrap(err, "failed to write run summary")
	}

	fmt.Fprintf(status, "\nWrote %d output(s) to %s\n", len(paths), cfg.OutputDir)
	fmt.Fprintf(status, "Run summary:   %s\n", summaryPath)
	fmt.Fprintf(status, "Time elapsed:  %s\n", time.Since(startTime))

	return nil
}

func printStats(w io.Writer, result *pipeline.Result) {
	fmt.Fprintln(w, "\n=== Run Complete ===")
	fmt.Fprintf(w, "Run ID:        %s\n", result.RunID)
	fmt.Fprintf(w, "Rows read:     %d\n", result.Stats.RowsRead)
	fmt.Fprintf(w, "Kept:          %d\n", result.Stats.RecordsKept)
	fmt.Fprintf(w, "Dropped:       %d\n", result.Stats.RecordsDropped)
	fmt.Fprintf(w, "Addresses:     %d\n", len(result.Reports))
}
