// =============================================================================
// DAS C.A.R.E. Contact Forms - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (care-reports)
//   ├── generateCmd (care-reports generate)
//   ├── validateCmd (care-reports validate)
//   └── versionCmd  (care-reports version)
//
// GLOBAL FLAGS:
//   --config   : Path to config.yaml
//   --verbose  : Debug logging
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/georgeaf99/das-care-contact-forms/internal/config"
	"github.com/georgeaf99/das-care-contact-forms/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "care-reports",
	Short: "DAS C.A.R.E. contact reports - per-address outreach summaries from form responses",
	Long: `care-reports reads the DAS C.A.R.E. contact form responses (a Google
spreadsheet, or a CSV/XLSX export of it) and builds one report per street
address, summarizing every contact made with that household.

Responses are grouped by address, ordered by contact date and merged so that
the newest answer to each question wins.

Example Usage:
  care-reports generate                      # Write one report file per address
  care-reports generate --format stdout      # Print the reports instead
  care-reports generate --address "12 Main St"
  care-reports validate                      # Check config and sheet header`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
// Interrupts cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig loads the configuration and builds the logger from it.
// The caller must call closeLog when done with the logger.
func loadConfig() (cfg *config.Config, logger *zap.Logger, closeLog func(), err error) {
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "failed to load config")
	}

	logger, closeLog, err = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Verbose: verbose,
	})
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "failed to set up logging")
	}

	return cfg, logger, closeLog, nil
}

// sourceName describes the configured row source for humans.
func sourceName(cfg *config.Config) string {
	switch cfg.Source.Type {
	case config.SourceSheets:
		name := cfg.MainSpreadsheet.Name
		if name == "" {
			name = cfg.MainSpreadsheet.ID
		}
		return "Google Sheets: " + name
	default:
		return cfg.Source.Type + ": " + cfg.Source.Path
	}
}
