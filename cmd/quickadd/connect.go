package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quickadd/internal/flow"
	"quickadd/internal/notion"
)

func connectCmd() *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Verify a credential and cache the databases shared with it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConnect(token)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Integration credential (secret_... or ntn_...)")
	cmd.MarkFlagRequired("token")
	return cmd
}

func runConnect(token string) error {
	ctx := context.Background()

	// The verification request must carry the same cleaned credential that
	// gets stored on success.
	token = strings.TrimSpace(token)

	cfg, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	client := notion.NewClient(cfg.Notion.BaseURL, cfg.Notion.APIVersion, token)
	databases, err := flow.Connect(ctx, app, client, token)
	if err != nil {
		return friendlyError(err)
	}

	if len(databases) == 0 {
		fmt.Fprintln(os.Stdout, "Credential verified, but no databases are shared with it yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Credential verified. %d database(s) cached:\n", len(databases))
	printDatabases(databases)
	return nil
}

func printDatabases(databases []notion.Database) {
	for _, db := range databases {
		fmt.Fprintf(os.Stdout, "  %s  %s\n", db.ID, db.Title)
	}
}
