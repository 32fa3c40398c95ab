package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gardenpip/config"
	"gardenpip/dosing"
)

func presetsCmd() *cobra.Command {
	var presetPath string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved dosing selections",
	}
	cmd.PersistentFlags().StringVar(&presetPath, "presets", "configs.json", "path to the preset file")

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.Load(presetPath)
			if len(presets) == 0 {
				fmt.Println("No presets saved.")
				return nil
			}
			for _, name := range config.Names(presetPath) {
				p := presets[name]
				fmt.Printf("%s: %s / %s  %s  %g %s\n", name, p.Manufacturer, p.Series, p.Stage, p.Volume, p.Unit)
			}
			return nil
		},
	}

	var sel dosing.Selection
	save := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the given selection under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SavePreset(presetPath, args[0], config.FromSelection(sel)); err != nil {
				return err
			}
			fmt.Printf("Saved preset %s\n", args[0])
			return nil
		},
	}
	save.Flags().StringVarP(&sel.Manufacturer, "manufacturer", "m", "", "nutrient manufacturer")
	save.Flags().StringVarP(&sel.Series, "series", "s", "", "nutrient series")
	save.Flags().StringVar(&sel.Stage, "stage", "", "growth stage")
	save.Flags().StringVar(&sel.PlantCategory, "plant", "", "plant category")
	save.Flags().StringVarP(&sel.Unit, "unit", "u", "metric", "unit system")
	save.Flags().Float64VarP(&sel.Volume, "volume", "v", 0, "reservoir volume")
	save.Flags().StringVar(&sel.CalMag, "calmag", "", "cal/mag supplement name")

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeletePreset(presetPath, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted preset %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, save, del)
	return cmd
}
