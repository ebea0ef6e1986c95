package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func shortcutDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcutDelete(args[0])
		},
	}
}

func runShortcutDelete(id string) error {
	ctx := context.Background()

	_, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	if err := app.DeleteShortcut(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Deleted %s (no-op if it did not exist).\n", id)
	return nil
}
