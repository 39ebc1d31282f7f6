package cli

import (
	"github.com/spf13/cobra"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

// recordFlags collects the nine record fields shared by create and update.
// All of them are required at submission time; validation reports the ones
// left blank instead of relying on cobra's required-flag errors, so the
// operator sees every missing field at once.
type recordFlags struct {
	cliente string
	sip     string
	ddr     string
	lp      string
	atpOsx  string
	cabo    string
	fibras  string
	enlace  string
	porta   string
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.cliente, "cliente", "", "Client name")
	cmd.Flags().StringVar(&f.sip, "sip", "", "SIP identifier")
	cmd.Flags().StringVar(&f.ddr, "ddr", "", "DDR identifier")
	cmd.Flags().StringVar(&f.lp, "lp", "", "LP identifier")
	cmd.Flags().StringVar(&f.atpOsx, "atp-osx", "", "ATP/OSX equipment")
	cmd.Flags().StringVar(&f.cabo, "cabo", "", "Cable")
	cmd.Flags().StringVar(&f.fibras, "fibras", "", "Fiber count, e.g. 12F")
	cmd.Flags().StringVar(&f.enlace, "enlace", "", "Link length in meters")
	cmd.Flags().StringVar(&f.porta, "porta", "", "Port")
}

func (f *recordFlags) record(id string) domain.Record {
	return domain.Record{
		ID:      id,
		Cliente: f.cliente,
		SIP:     f.sip,
		DDR:     f.ddr,
		LP:      f.lp,
		AtpOsx:  f.atpOsx,
		Cabo:    f.cabo,
		Fibras:  f.fibras,
		Enlace:  f.enlace,
		Porta:   f.porta,
	}
}
