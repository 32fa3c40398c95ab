// Command gardenpip is the terminal front-end for the nutrient dosing
// engine: compute dosing plans, browse the schedule history, manage saved
// presets, or serve the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogPath string

func main() {
	root := &cobra.Command{
		Use:           "gardenpip",
		Short:         "Hydroponic nutrient dosing calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "nutrients.json", "path to the nutrient catalog document")
	root.AddCommand(calcCmd(), serveCmd(), historyCmd(), presetsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
