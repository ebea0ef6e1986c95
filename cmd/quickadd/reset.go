package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the credential, cached databases, and all shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(yes)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation")
	return cmd
}

func runReset(yes bool) error {
	if !yes {
		return fmt.Errorf("this clears everything; re-run with --yes to confirm")
	}

	ctx := context.Background()

	_, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	if err := app.Reset(ctx); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "State cleared.")
	return nil
}
