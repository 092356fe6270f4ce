package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/zeroregs/pkg/idcode"
	"github.com/OpenTraceLab/zeroregs/pkg/idcode/deviceinfo"
	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Identify the connected chip",
	Long: `Print the debug port identification (probe only) and decode the DSU device
identification register into the exact SAM D21 part.

Examples:
  zeroregs identify
  zeroregs identify --adapter cmsisdap --probe 03eb:2157`,
	Args: cobra.NoArgs,
	RunE: runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b, err := openBackend(ctx, settings)
	if err != nil {
		return err
	}
	defer b.Close()

	if b.swd != nil {
		info := b.swd.Info()
		fmt.Printf("Probe:    %s %s (firmware %s)\n", info.Vendor, info.Product, info.Firmware)
		dp := idcode.ParseDPIDR(b.swd.DPIDR())
		fmt.Printf("Debug:    %s\n", dp)
		if !dp.Valid {
			glog.Warningf("DPIDR 0x%08X lacks the fixed one bit", dp.Raw)
		}
	}

	raw, err := b.bus.Read32(samd21.DSUBase + samd21.DSUDID)
	if err != nil {
		return fmt.Errorf("read DSU DID: %w", err)
	}
	dev := deviceinfo.Lookup(raw)
	id := dev.ID
	fmt.Printf("DID:      0x%08X (%s, series %d, die %d, revision %s)\n",
		raw, id.ProcessorName(), id.Series, id.Die, id.RevisionLetter())
	if !dev.Known {
		glog.Warningf("unknown device id 0x%08X", raw)
		fmt.Printf("Device:   unknown (devsel 0x%02X)\n", id.DevSel)
		return nil
	}
	fmt.Printf("Device:   %s\n", dev.Name)
	fmt.Printf("Memory:   %dKB flash, %dKB SRAM\n", dev.FlashKB, dev.SRAMKB)
	fmt.Printf("Pins:     %d\n", dev.Pins)
	return nil
}
