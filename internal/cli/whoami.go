package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in operator",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	sess, err := d.gate.Current()
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(sess)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), permissao: %s\n", sess.Nome, sess.Login, sess.Permissao)
	return nil
}
