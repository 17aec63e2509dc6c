// =============================================================================
// DAS C.A.R.E. Contact Forms - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   care-reports version
//
// OUTPUT:
//   DAS C.A.R.E. Contact Reports
//   Version:       1.0.0
//   Build Date:    2024-01-01
//   Go Version:    go1.24.0
//   Forms:         V1
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/georgeaf99/das-care-contact-forms/internal/forms"
)

// These variables are set at build time using ldflags:
//   go build -ldflags "-X 'github.com/georgeaf99/das-care-contact-forms/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, Go runtime version and supported forms versions.`,
	Run: func(cmd *cobra.Command, args []string) {
		var versions []string
		for _, v := range forms.Versions() {
			versions = append(versions, string(v))
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "DAS C.A.R.E. Contact Reports")
		fmt.Fprintf(out, "Version:       %s\n", Version)
		fmt.Fprintf(out, "Build Date:    %s\n", BuildDate)
		fmt.Fprintf(out, "Go Version:    %s\n", runtime.Version())
		fmt.Fprintf(out, "Forms:         %s\n", strings.Join(versions, ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
