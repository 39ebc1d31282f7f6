package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

var createFlags recordFlags

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a circuit record (admin)",
	Long: `Create a circuit record. Requires the admin role.

All nine fields are required; the record id is assigned by the service.

Example:
  circuitdesk create --cliente "Empresa ABC Ltda" --sip 1001 --ddr 4733001001 \
    --lp LP001 --atp-osx ATP123 --cabo Cabo-01 --fibras 12F --enlace 1500 --porta P1`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createFlags.register(createCmd)
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	if _, err := d.gate.RequireRole(domain.RoleAdmin); err != nil {
		return err
	}

	created, err := d.records.Create(cmd.Context(), createFlags.record(""))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created record %s for %s\n", created.ID, created.Cliente)
	return nil
}
