package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/zeroregs/pkg/report"
)

var (
	onlyList     string
	showDisabled bool
	jsonOutput   bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the decoded peripheral register report",
	Long: `Read every peripheral present on the target and print its configuration,
one section per peripheral in a fixed order. Disabled peripherals are omitted
unless --show-disabled is given. Indirect registers (GCLK, EVSYS, DMAC) are
read by writing their selector and waiting for synchronization.

Examples:
  zeroregs dump
  zeroregs dump --only SERCOM5,GCLK --show-disabled
  zeroregs dump --adapter snapshot --snapshot zero.snap --json`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVar(&onlyList, "only", "",
		"comma separated peripherals to report (default all present)")
	dumpCmd.Flags().BoolVar(&showDisabled, "show-disabled", false,
		"also print disabled peripherals and sub-blocks")
	dumpCmd.Flags().BoolVar(&jsonOutput, "json", false, "emit the report as JSON")
}

func runDump(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b, err := openBackend(ctx, settings)
	if err != nil {
		return err
	}
	defer b.Close()

	target, err := resolveTarget(settings, b, onlyList)
	if err != nil {
		return err
	}

	opts := &report.Options{
		Out:          os.Stdout,
		ShowDisabled: settings.ShowDisabled,
		Sync:         settings.SyncPolicy(),
	}

	if jsonOutput {
		sections, err := report.Collect(ctx, opts, b.bus, target)
		if werr := report.WriteJSON(os.Stdout, sections); werr != nil {
			return werr
		}
		return err
	}
	return report.PrintAll(ctx, opts, b.bus, target)
}
