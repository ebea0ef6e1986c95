package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quickadd/internal/codec"
)

func shortcutShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id-or-name>",
		Short: "Render a shortcut's form with resolved pre-fill values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcutShow(args[0])
		},
	}
}

func runShortcutShow(ref string) error {
	ctx := context.Background()

	_, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	shortcut, err := app.FindByRef(ref)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s %s → %s (%s)\n", shortcut.Icon, shortcut.Name, shortcut.DatabaseName, shortcut.DatabaseID)

	now := time.Now()
	for _, binding := range shortcut.Bindings {
		desc := codec.DescribeInput(binding.Name, binding.Schema, binding.Default, now)
		line := fmt.Sprintf("  %s (%s, %s)", desc.Name, desc.Type, desc.Control)
		if desc.Control == codec.ControlCheckbox {
			line += fmt.Sprintf(": %v", desc.Checked)
		} else if desc.Value != "" {
			line += fmt.Sprintf(": %s", desc.Value)
		}
		if len(desc.Options) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(desc.Options, ", "))
		}
		fmt.Fprintln(os.Stdout, line)
	}

	if shortcut.IncludeBody {
		fmt.Fprintln(os.Stdout, "  (body text input)")
	}
	return nil
}
