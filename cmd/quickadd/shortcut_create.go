package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quickadd/internal/flow"
	"quickadd/internal/state"
)

type shortcutFlags struct {
	name        string
	database    string
	properties  []string
	includeBody bool
	icon        string
	color       string
}

func (f *shortcutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Shortcut name")
	cmd.Flags().StringVar(&f.database, "database", "", "Target database id")
	cmd.Flags().StringArrayVar(&f.properties, "property", nil, `Property to bind, as "Name" or "Name=default" (repeatable, order preserved)`)
	cmd.Flags().BoolVar(&f.includeBody, "include-body", false, "Include a page body input")
	cmd.Flags().StringVar(&f.icon, "icon", "", "Display icon")
	cmd.Flags().StringVar(&f.color, "color", "", "Display color")
}

func shortcutCreateCmd() *cobra.Command {
	var flags shortcutFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a shortcut from a database's schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcutCreate(flags)
		},
	}
	flags.register(cmd)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("database")
	return cmd
}

func runShortcutCreate(flags shortcutFlags) error {
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

	shortcut, err := app.CreateShortcut(ctx, params)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Fprintf(os.Stdout, "Created shortcut %q (%s) targeting %s.\n", shortcut.Name, shortcut.ID, shortcut.DatabaseName)
	return nil
}

func buildShortcutParams(ctx context.Context, client flow.Client, flags shortcutFlags) (state.ShortcutParams, error) {
	selections, err := parseSelections(flags.properties)
	if err != nil {
		return state.ShortcutParams{}, err
	}

	db, err := flow.FetchSchema(ctx, client, flags.database)
	if err != nil {
		return state.ShortcutParams{}, err
	}

	bindings, err := flow.BuildBindings(db, selections)
	if err != nil {
		return state.ShortcutParams{}, err
	}

	return state.ShortcutParams{
		Name:         flags.name,
		DatabaseID:   db.ID,
		DatabaseName: db.Title,
		Bindings:     bindings,
		IncludeBody:  flags.includeBody,
		Icon:         flags.icon,
		Color:        flags.color,
	}, nil
}

// parseSelections splits each --property flag into name and optional default.
func parseSelections(specs []string) ([]flow.Selection, error) {
	selections := make([]flow.Selection, 0, len(specs))
	for _, spec := range specs {
		name, value, _ := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &state.ValidationError{Reason: fmt.Sprintf("invalid property spec %q", spec)}
		}
		selections = append(selections, flow.Selection{Name: name, Default: value})
	}
	return selections, nil
}
