// Package cli provides the circuitdesk command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var jsonOutput bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "circuitdesk",
	Short: "Operator console for network-provisioning circuit records",
	Long: `Circuitdesk is the operator console for the provisioning record service.

Sign in first, then search circuit records by SIP, DDR or LP. Operators
with the admin role can additionally create, edit and delete records and
register new accounts.

Configuration comes from CIRCUITDESK_* environment variables:
  CIRCUITDESK_API_URL          base URL of the record service
  CIRCUITDESK_SESSION_BACKEND  file (default) or redis for shared desks
  CIRCUITDESK_OPS_ADDR         enable the watch-mode health/metrics listener`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called by main.main().
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}
