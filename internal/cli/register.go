package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/core/ports"
)

var (
	registerNome      string
	registerSenha     string
	registerConfirm   string
	registerPermissao string
)

var registerCmd = &cobra.Command{
	Use:   "register <login>",
	Short: "Create an operator account",
	Long: `Create an operator account on the provisioning service.

The password must be confirmed and the role is either user or admin.

Example:
  circuitdesk register joao --nome "João Lima" --senha s3cret --confirm s3cret --permissao user`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerNome, "nome", "", "Full name of the operator")
	registerCmd.Flags().StringVar(&registerSenha, "senha", "", "Password for the new account")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm", "", "Password confirmation")
	registerCmd.Flags().StringVar(&registerPermissao, "permissao", domain.RoleUser, "Role: user or admin")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	msg, err := d.auth.RegisterUser(cmd.Context(), ports.RegisterUserInput{
		Nome:      registerNome,
		Login:     args[0],
		Senha:     registerSenha,
		Permissao: registerPermissao,
	}, registerConfirm)
	if err != nil {
		return err
	}

	if msg == "" {
		msg = "Account created."
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
