package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quickadd/internal/flow"
	"quickadd/internal/state"
)

func addCmd() *cobra.Command {
	var sets []string
	var body string
	cmd := &cobra.Command{
		Use:   "add <shortcut-id-or-name>",
		Short: "Create a record through a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args[0], sets, body)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, `Form value as "Property=value" (repeatable)`)
	cmd.Flags().StringVar(&body, "body", "", "Page body text (used when the shortcut includes body content)")
	return cmd
}

func runAdd(ref string, sets []string, body string) error {
	ctx := context.Background()

	cfg, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	shortcut, err := app.FindByRef(ref)
	if err != nil {
		return err
	}

	overrides, err := parseValues(shortcut, sets)
	if err != nil {
		return friendlyError(err)
	}
	values := flow.CollectValues(shortcut, overrides, time.Now())

	client, err := newAPIClient(cfg, app)
	if err != nil {
		return err
	}

	pageID, err := flow.Submit(ctx, client, shortcut, values, body)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Fprintf(os.Stdout, "Created record %s.\n", pageID)
	return nil
}

// parseValues splits --set flags into a value map. Setting a property the
// shortcut does not bind is rejected rather than silently dropped.
func parseValues(shortcut state.Shortcut, sets []string) (map[string]string, error) {
	values := make(map[string]string, len(sets))
	for _, set := range sets {
		name, value, ok := strings.Cut(set, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, &state.ValidationError{Reason: fmt.Sprintf("invalid --set %q, expected Property=value", set)}
		}
		name = strings.TrimSpace(name)
		if _, bound := shortcut.Binding(name); !bound {
			return nil, &state.ValidationError{Reason: fmt.Sprintf("shortcut %q has no bound property %q", shortcut.Name, name)}
		}
		values[name] = value
	}
	return values, nil
}
