package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fiberops/circuitdesk/internal/core/domain"
	"github.com/fiberops/circuitdesk/internal/infrastructure/ops"
)

var (
	watchSIP      string
	watchDDR      string
	watchLP       string
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run a search periodically",
	Long: `Re-run a search periodically and reprint the results when they change.

Every tick issues a fresh search against the service; nothing is cached.
When CIRCUITDESK_OPS_ADDR is set, a health/metrics listener runs for the
duration of the watch. Stop with Ctrl-C.

Example:
  circuitdesk watch --sip 1001 --interval 30s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSIP, "sip", "", "Search by SIP")
	watchCmd.Flags().StringVar(&watchDDR, "ddr", "", "Search by DDR")
	watchCmd.Flags().StringVar(&watchLP, "lp", "", "Search by LP")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "Time between searches")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	d, err := buildDeps(cmd.Context())
	if err != nil {
		return err
	}
	defer d.close()

	if _, err := d.gate.Current(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if d.cfg.OpsAddr != "" {
		go func() {
			if err := ops.Serve(ctx, d.cfg.OpsAddr, d.logger); err != nil {
				d.logger.Error().Err(err).Msg("ops listener failed")
			}
		}()
	}

	out := cmd.OutOrStdout()
	var last []string
	first := true

	tick := func() {
		records, err := d.records.Search(ctx, watchSIP, watchDDR, watchLP)
		if err != nil {
			// Surface once and keep watching; a failed poll is not fatal.
			fmt.Fprintf(out, "search failed: %v\n", err)
			return
		}
		current := fingerprint(records)
		if !first && equalFingerprints(last, current) {
			return
		}
		first = false
		last = current
		fmt.Fprintf(out, "--- %s (%d results)\n", time.Now().Format(time.TimeOnly), len(records))
		_ = printRecords(out, records, jsonOutput)
	}

	tick()
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			tick()
		}
	}
}

// fingerprint flattens the result set so consecutive polls can be compared
// without keeping full copies around.
func fingerprint(records []domain.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, fmt.Sprintf("%+v", r))
	}
	return out
}

// equalFingerprints reports whether two result fingerprints match.
func equalFingerprints(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
