package cli

import (
	"github.com/spf13/cobra"
)

var (
	searchSIP string
	searchDDR string
	searchLP  string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search circuit records by SIP, DDR or LP",
	Long: `Search circuit records by SIP, DDR or LP.

Exactly one dimension is looked up per search. When several flags are
given, sip wins over ddr and ddr wins over lp; the others are ignored.
At least one flag must be non-empty.

Examples:
  circuitdesk search --sip 1001
  circuitdesk search --ddr 4733001002
  circuitdesk search --lp LP009`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchSIP, "sip", "", "Search by SIP")
	searchCmd.Flags().StringVar(&searchDDR, "ddr", "", "Search by DDR")
	searchCmd.Flags().StringVar(&searchLP, "lp", "", "Search by LP")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	if _, err := d.gate.Current(); err != nil {
		return err
	}

	records, err := d.records.Search(cmd.Context(), searchSIP, searchDDR, searchLP)
	if err != nil {
		return err
	}

	return printRecords(cmd.OutOrStdout(), records, jsonOutput)
}
