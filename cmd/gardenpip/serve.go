package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"gardenpip/catalog"
	"gardenpip/schedule"
	"gardenpip/web"
)

// Environment variables honored by serve (loaded from .env when present):
// GARDENPIP_ADDR, GARDENPIP_CATALOG, GARDENPIP_DB, GARDENPIP_LOG_DIR.
// Command-line flags win over the environment.
func serveCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
		logDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP dosing API",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			applyEnv(cmd, "addr", "GARDENPIP_ADDR", &addr)
			applyEnv(cmd, "db", "GARDENPIP_DB", &dbPath)
			applyEnv(cmd, "log-dir", "GARDENPIP_LOG_DIR", &logDir)
			applyEnv(cmd, "catalog", "GARDENPIP_CATALOG", &catalogPath)

			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}

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

			fmt.Printf("Serving dosing API on %s (catalog %s)\n", addr, catalogPath)
			return web.NewHandler(cat, store).Routes().Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite schedule log path (empty for the JSON file store)")
	cmd.Flags().StringVar(&logDir, "log-dir", "data", "directory for the JSON schedule log")
	return cmd
}

// applyEnv overrides a flag-bound value from the environment unless the
// flag was set explicitly. The catalog flag lives on the root command, so
// look it up through the whole flag tree.
func applyEnv(cmd *cobra.Command, flag, env string, dst *string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(flag)
	}
	if f != nil && f.Changed {
		return
	}
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}
