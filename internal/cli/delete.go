package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a circuit record (admin)",
	Long: `Delete a circuit record. Requires the admin role.

Asks for confirmation unless --yes is given. On success the record is
dropped from the working set immediately; no follow-up search is issued.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	if _, err := d.gate.RequireRole(domain.RoleAdmin); err != nil {
		return err
	}

	id := args[0]
	if !deleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete record %s? [y/N] ", id)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := d.records.Delete(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s\n", id)
	return nil
}
