package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/zeroregs/pkg/samd21"
)

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Print the board's pin function table",
	Long: `Print the peripheral functions A to H of every pin in the board profile.
Empty slots show the generic function category.

Examples:
  zeroregs pins
  zeroregs pins --profile boards/trinket_m0.prof`,
	Args: cobra.NoArgs,
	RunE: runPins,
}

func init() {
	rootCmd.AddCommand(pinsCmd)
}

func runPins(cmd *cobra.Command, args []string) error {
	prof, err := loadProfile(settings)
	if err != nil {
		return err
	}

	fmt.Printf("Board %s (%s), %d pins\n\n", prof.Name, variantOf(settings, nil), len(prof.Pins))
	header := []string{fmt.Sprintf("%-5s %-8s", "PORT", "NAME")}
	for sel := uint32(0); sel < 8; sel++ {
		header = append(header, fmt.Sprintf("%-12s", samd21.MuxLetter(sel)))
	}
	fmt.Println(strings.TrimRight(strings.Join(header, " "), " "))

	for _, p := range prof.Pins {
		row := []string{fmt.Sprintf("%-5s %-8s", p.Port(), p.Name)}
		for sel := uint32(0); sel < 8; sel++ {
			f := p.Funcs[sel]
			if f == "" {
				f = "-"
			}
			row = append(row, fmt.Sprintf("%-12s", f))
		}
		fmt.Println(strings.TrimRight(strings.Join(row, " "), " "))
	}
	return nil
}
