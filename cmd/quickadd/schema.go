package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"quickadd/internal/flow"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <database-id>",
		Short: "Print a database's property schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(args[0])
		},
	}
	return cmd
}

func runSchema(databaseID string) error {
	ctx := context.Background()

	cfg, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	client, err := newAPIClient(cfg, app)
	if err != nil {
		return err
	}

	db, err := flow.FetchSchema(ctx, client, databaseID)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Fprintf(os.Stdout, "%s (%s)\n", db.Title, db.ID)

	names := make([]string, 0, len(db.Properties))
	for name := range db.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		schema := db.Properties[name]
		if len(schema.Options) > 0 {
			fmt.Fprintf(os.Stdout, "  %s: %s [%s]\n", name, schema.Type, strings.Join(schema.Options, ", "))
			continue
		}
		fmt.Fprintf(os.Stdout, "  %s: %s\n", name, schema.Type)
	}
	return nil
}
