package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

// printRecords renders a result set either as an aligned table or, with
// --json, as a JSON array suitable for piping into other tools.
func printRecords(w io.Writer, records []domain.Record, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENTE\tSIP\tDDR\tLP\tATP/OSX\tCABO\tFIBRAS\tENLACE\tPORTA")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Cliente, r.SIP, r.DDR, r.LP, r.AtpOsx, r.Cabo, r.Fibras, r.Enlace, r.Porta)
	}
	return tw.Flush()
}
