package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func shortcutListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcutList()
		},
	}
}

func runShortcutList() error {
	ctx := context.Background()

	_, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	if len(app.Shortcuts) == 0 {
		fmt.Fprintln(os.Stdout, "No shortcuts saved yet.")
		return nil
	}

	for _, shortcut := range app.Shortcuts {
		fmt.Fprintf(os.Stdout, "%s %s  %s  → %s (%d properties)\n",
			shortcut.Icon, shortcut.ID, shortcut.Name, shortcut.DatabaseName, len(shortcut.Bindings))
	}
	return nil
}
