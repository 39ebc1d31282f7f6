package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

var updateFlags recordFlags

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a circuit record (admin)",
	Long: `Replace a circuit record wholesale. Requires the admin role.

Updates are full replacements, not patches: all nine fields must be
given, and the service's response becomes the record of truth locally.

Example:
  circuitdesk update 42 --cliente "Empresa ABC Ltda" --sip 1001 --ddr 4733001001 \
    --lp LP001 --atp-osx ATP123 --cabo Cabo-01 --fibras 12F --enlace 1500 --porta P2`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateFlags.register(updateCmd)
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	if _, err := d.gate.RequireRole(domain.RoleAdmin); err != nil {
		return err
	}

	updated, err := d.records.Update(cmd.Context(), updateFlags.record(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %s\n", updated.ID)
	return nil
}
