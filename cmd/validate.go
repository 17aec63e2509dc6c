package cmd

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/georgeaf99/das-care-contact-forms/internal/source"
)

// validateCmd checks the configuration and the response sheet header
// without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and the response sheet header",
	Long: `The validate command loads the configuration, resolves the forms version,
reads the header row of the response sheet and reports problems with it.

It fails when the header has no street address column, since no report could
be built from such a sheet.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, _, closeLog, err := loadConfig()
	if err != nil {
		return err
	}
	defer closeLog()

	strategy, err := cfg.Strategy()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config:        %s\n", cfgFile)
	fmt.Fprintf(out, "Forms version: %s\n", strategy.Version())
	fmt.Fprintf(out, "Source:        %s\n", sourceName(cfg))

	ws, err := source.Open(ctx, cfg)
	if err != nil {
		return eris.Wrap(err, "failed to open source")
	}
	header, err := ws.Header(ctx)
	if err != nil {
		return eris.Wrap(err, "failed to read header row")
	}
	fmt.Fprintf(out, "Columns:       %d\n", len(header))

	warnings := strategy.CheckSchema(header)
	if len(warnings) == 0 {
		fmt.Fprintln(out, "\nHeader OK.")
	} else {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	if !strategy.HasAddressColumn(header) {
		return eris.Errorf("header has no %q column", strategy.AddressColumn())
	}
	return nil
}
