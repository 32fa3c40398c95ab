package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gardenpip/catalog"
	"gardenpip/config"
	"gardenpip/dosing"
	"gardenpip/schedule"
)

func calcCmd() *cobra.Command {
	var (
		sel        dosing.Selection
		presetName string
		presetPath string
		logDir     string
		noLog      bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a dosing plan and append it to the schedule log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}
			if presetName != "" {
				presets := config.Load(presetPath)
				p, ok := presets[presetName]
				if !ok {
					return fmt.Errorf("no preset %q in %s", presetName, presetPath)
				}
				applyPreset(cmd, &sel, p.Selection())
			}

			result, err := dosing.Calculate(cat, sel)
			if err != nil {
				return err
			}
			for _, line := range result.Lines {
				fmt.Println(line)
			}

			if noLog {
				return nil
			}
			store := schedule.NewFileStore(logDir)
			if err := store.Append(schedule.NewEntry(sel, result, time.Now())); err != nil {
				return err
			}
			fmt.Printf("Logged to %s\n", store.Path())
			return nil
		},
	}
	cmd.Flags().StringVarP(&sel.Manufacturer, "manufacturer", "m", "", "nutrient manufacturer")
	cmd.Flags().StringVarP(&sel.Series, "series", "s", "", "nutrient series")
	cmd.Flags().StringVar(&sel.Stage, "stage", "", "growth stage")
	cmd.Flags().StringVar(&sel.PlantCategory, "plant", "", "plant category (empty for none)")
	cmd.Flags().StringVarP(&sel.Unit, "unit", "u", "metric", "unit system")
	cmd.Flags().Float64VarP(&sel.Volume, "volume", "v", 0, "reservoir volume in the chosen unit system")
	cmd.Flags().StringVar(&sel.CalMag, "calmag", dosing.NoSupplement, "cal/mag supplement name")
	cmd.Flags().StringVar(&presetName, "preset", "", "load the selection from a saved preset")
	cmd.Flags().StringVar(&presetPath, "presets", "configs.json", "path to the preset file")
	cmd.Flags().StringVar(&logDir, "log-dir", "data", "directory for the schedule log")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "skip writing a schedule-log entry")
	return cmd
}

// applyPreset fills selection fields from the preset, keeping any value the
// user set explicitly on the command line.
func applyPreset(cmd *cobra.Command, sel *dosing.Selection, base dosing.Selection) {
	if !cmd.Flags().Changed("manufacturer") {
		sel.Manufacturer = base.Manufacturer
	}
	if !cmd.Flags().Changed("series") {
		sel.Series = base.Series
	}
	if !cmd.Flags().Changed("stage") {
		sel.Stage = base.Stage
	}
	if !cmd.Flags().Changed("plant") {
		sel.PlantCategory = base.PlantCategory
	}
	if !cmd.Flags().Changed("unit") {
		sel.Unit = base.Unit
	}
	if !cmd.Flags().Changed("volume") {
		sel.Volume = base.Volume
	}
	if !cmd.Flags().Changed("calmag") && base.CalMag != "" {
		sel.CalMag = base.CalMag
	}
}
