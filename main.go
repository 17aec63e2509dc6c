// =============================================================================
// DAS C.A.R.E. Contact Forms - Main Entry Point
// =============================================================================
//
// USAGE:
//   care-reports generate   - Build per-address reports from form responses
//   care-reports validate   - Check the configuration and sheet header
//   care-reports version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Report pipeline, form versions, sources, writers
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/georgeaf99/das-care-contact-forms/cmd"
)

func main() {
	cmd.Execute()
}
