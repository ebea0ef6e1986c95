package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quickadd/internal/flow"
)

func databasesCmd() *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "databases",
		Short: "List the cached database summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatabases(refresh)
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Re-fetch the list from the service")
	return cmd
}

func runDatabases(refresh bool) error {
	ctx := context.Background()

	cfg, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	databases := app.Databases
	if refresh {
		client, err := newAPIClient(cfg, app)
		if err != nil {
			return err
		}
		databases, err = flow.RefreshDatabases(ctx, app, client)
		if err != nil {
			return friendlyError(err)
		}
	}

	if len(databases) == 0 {
		fmt.Fprintln(os.Stdout, "No databases cached. Run `quickadd connect` or `quickadd databases --refresh`.")
		return nil
	}

	printDatabases(databases)
	return nil
}
