package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a quickadd.yaml config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
	return cmd
}

func runInit() error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	}

	contents := "version: 1\n\nnotion:\n  base_url: https://api.notion.com/v1\n  api_version: \"2022-06-28\"\n\nstore:\n  driver: sqlite\n  dsn: sqlite://quickadd.db\n\nproxy:\n  listen: 127.0.0.1:8700\n  prefix: /api/notion\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %s.\n", configPath)
	return nil
}
