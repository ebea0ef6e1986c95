package main

import "github.com/spf13/cobra"

func shortcutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcut",
		Short: "Manage capture shortcuts",
	}
	cmd.AddCommand(shortcutCreateCmd())
	cmd.AddCommand(shortcutListCmd())
	cmd.AddCommand(shortcutShowCmd())
	cmd.AddCommand(shortcutDeleteCmd())
	cmd.AddCommand(shortcutEditCmd())
	return cmd
}
