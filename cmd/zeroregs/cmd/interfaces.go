package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/zeroregs/pkg/probe"
)

var interfacesJSON bool

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List available register sources",
	Long: `Scan the host for CMSIS-DAP debug probes (EDBG, Atmel-ICE, DAPLink, etc.) and
print a summary of the detected interfaces. The simulator is always listed.`,
	Args: cobra.NoArgs,
	RunE: runInterfaces,
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
	interfacesCmd.Flags().BoolVar(&interfacesJSON, "json", false, "emit the list as JSON")
}

func runInterfaces(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	infos, err := probe.DiscoverInterfaces(ctx)
	if err != nil {
		return fmt.Errorf("discover interfaces: %w", err)
	}

	if interfacesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Println("Detected interfaces:")
	for _, iface := range infos {
		if iface.Kind == probe.InterfaceKindSim {
			fmt.Printf("  - %s [%s]\n", iface.Label(), iface.Kind)
			continue
		}
		fmt.Printf("  - %s [%s] (VID:PID %04X:%04X)\n", iface.Label(), iface.Kind, iface.VendorID, iface.ProductID)
	}

	return nil
}
