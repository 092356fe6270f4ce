package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/zeroregs/pkg/snapshot"
)

var (
	captureOut  string
	captureOnly string
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Save the target's registers to a snapshot file",
	Long: `Read the register blocks and indirect register slots of every peripheral
present on the target and write them as a snapshot. A snapshot can later be
reported offline with --adapter snapshot.

Examples:
  zeroregs capture --adapter cmsisdap --out zero.snap
  zeroregs capture --only GCLK,EVSYS --out -`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)

	captureCmd.Flags().StringVarP(&captureOut, "out", "o", "", "snapshot file to write (- for stdout)")
	captureCmd.Flags().StringVar(&captureOnly, "only", "",
		"comma separated peripherals to capture (default all present)")
	captureCmd.MarkFlagRequired("out")
}

func runCapture(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b, err := openBackend(ctx, settings)
	if err != nil {
		return err
	}
	defer b.Close()

	target, err := resolveTarget(settings, b, captureOnly)
	if err != nil {
		return err
	}

	snap, err := snapshot.CaptureTarget(ctx, b.bus, variantOf(settings, b), target.Caps, settings.SyncPolicy())
	if err != nil {
		return fmt.Errorf("capture failed: %w", err)
	}

	if captureOut == "-" {
		return snap.Write(os.Stdout)
	}
	if err := snap.WriteFile(captureOut); err != nil {
		return err
	}
	fmt.Printf("Captured %d words and %d indirect slots to %s\n", len(snap.Words), len(snap.Slots), captureOut)
	return nil
}
