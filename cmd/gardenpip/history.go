package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gardenpip/schedule"
)

func historyCmd() *cobra.Command {
	var (
		dbPath string
		logDir string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged schedule entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var store schedule.Store
			if dbPath != "" {
				s, err := schedule.OpenSQLite(dbPath)
				if err != nil {
					return err
				}
				defer s.Close()
				store = s
			} else {
				store = schedule.NewFileStore(logDir)
			}

			entries, err := store.All()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No schedule entries logged yet.")
				return nil
			}
			for _, e := range entries {
				header := fmt.Sprintf("%s  %s / %s  %s  %g %s", e.Date, e.Manufacturer, e.Series, e.Stage, e.Volume, e.Unit)
				if e.PlantCategory != "" {
					header += "  [" + e.PlantCategory + "]"
				}
				if e.CalMag != "" {
					header += "  +" + e.CalMag
				}
				fmt.Println(header)
				for _, line := range e.Lines {
					fmt.Println("    " + line)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite schedule log path (empty for the JSON file store)")
	cmd.Flags().StringVar(&logDir, "log-dir", "data", "directory for the JSON schedule log")
	return cmd
}
