package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func shortcutEditCmd() *cobra.Command {
	var flags shortcutFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a shortcut's definition",
		Long: `Replace a shortcut's definition. The original is deleted and a new
shortcut is created through the creation path, so the replacement gets a
fresh id and a fresh schema snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcutEdit(args[0], flags)
		},
	}
	flags.register(cmd)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("database")
	return cmd
}

func runShortcutEdit(id string, flags shortcutFlags) error {
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

	params, err := buildShortcutParams(ctx, client, flags)
	if err != nil {
		return friendlyError(err)
	}

	shortcut, err := app.ReplaceShortcut(ctx, id, params)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Fprintf(os.Stdout, "Replaced %s with %q (%s).\n", id, shortcut.Name, shortcut.ID)
	return nil
}
