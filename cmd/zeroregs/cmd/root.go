package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/zeroregs/internal/config"
)

var (
	// Global flags
	verbose       bool
	configPath    string
	adapterType   string
	probeName     string
	adapterSerial string
	adapterSpeed  int
	snapshotPath  string
	profilePath   string
	variantName   string
	syncTimeout   time.Duration

	// settings after merging the config file and flags
	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "zeroregs",
	Short: "SAM D21 peripheral register dump and decoder",
	Long: `ZeroRegs reads the configuration registers of a SAM D21 microcontroller
(as fitted to the Arduino Zero) and prints them decoded, one section per
peripheral. Registers come from a simulated booted board, a snapshot file or a
live target behind a CMSIS-DAP probe over SWD. The target is never configured;
the only writes are the selector writes of indirect registers.

Examples:
  zeroregs dump                                   # Report the simulated Arduino Zero
  zeroregs dump --adapter cmsisdap --only GCLK    # Generic clocks of a live target
  zeroregs capture --adapter cmsisdap --out zero.snap
  zeroregs dump --adapter snapshot --snapshot zero.snap --json
  zeroregs identify --adapter cmsisdap            # DPIDR and DSU device id`,
	Version:           "0.9.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// glog registers its flags on the standard flag set.
	flag.CommandLine.Set("logtostderr", "true")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&verbose, "verbose", false, "verbose output (same as --v=1)")
	pf.StringVar(&configPath, "config", "", "config file (default ~/.config/zeroregs/config.json)")
	pf.StringVarP(&adapterType, "adapter", "a", config.AdapterSim,
		"register source (sim, snapshot, cmsisdap)")
	pf.StringVar(&probeName, "probe", "",
		"CMSIS-DAP probe as vid:pid or known name (default first probe found)")
	pf.StringVarP(&adapterSerial, "serial", "s", "",
		"probe serial number (if multiple probes)")
	pf.IntVar(&adapterSpeed, "speed", 1_000_000, "SWCLK speed in Hz")
	pf.StringVar(&snapshotPath, "snapshot", "", "snapshot file for --adapter snapshot")
	pf.StringVarP(&profilePath, "profile", "p", "", "board profile (default built-in Arduino Zero)")
	pf.StringVar(&variantName, "variant", "", "chip variant, e.g. ATSAMD21J18A (overrides the profile)")
	pf.DurationVar(&syncTimeout, "sync-timeout", 0, "bound on each synchronization wait (0 = default)")
}

// loadSettings merges the config file with the flags given on the command
// line. Flags always win.
func loadSettings(cmd *cobra.Command, args []string) error {
	if !flag.Parsed() {
		flag.CommandLine.Parse(nil)
	}
	if verbose {
		flag.CommandLine.Set("v", "1")
	}

	var err error
	if configPath != "" {
		settings, err = config.LoadFile(configPath)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("adapter") {
		settings.Adapter = adapterType
		if adapterType == "simulator" {
			settings.Adapter = config.AdapterSim
		}
	}
	if flags.Changed("probe") {
		settings.Probe = probeName
	}
	if flags.Changed("serial") {
		settings.Serial = adapterSerial
	}
	if flags.Changed("speed") {
		settings.SpeedHz = adapterSpeed
	}
	if flags.Changed("profile") {
		settings.Profile = profilePath
	}
	if flags.Changed("variant") {
		settings.Variant = variantName
	}
	if flags.Changed("sync-timeout") {
		settings.SyncTimeoutMS = int(syncTimeout / time.Millisecond)
		if syncTimeout > 0 && settings.SyncTimeoutMS == 0 {
			settings.SyncTimeoutMS = 1
		}
	}
	if flags.Changed("show-disabled") {
		settings.ShowDisabled = showDisabled
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	glog.V(1).Infof("settings: %+v", *settings)
	return nil
}
