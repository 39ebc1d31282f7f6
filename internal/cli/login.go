package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginSenha string

var loginCmd = &cobra.Command{
	Use:   "login <login>",
	Short: "Sign in to the provisioning service",
	Long: `Sign in to the provisioning service.

On success the returned operator record (login, nome, permissao) is
persisted; all other commands read it until 'circuitdesk logout'.

Example:
  circuitdesk login maria --senha s3cret`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginSenha, "senha", "", "Password for the account")
	_ = loginCmd.MarkFlagRequired("senha")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	sess, err := d.auth.Login(cmd.Context(), args[0], loginSenha)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", sess.Nome, sess.Permissao)
	return nil
}
