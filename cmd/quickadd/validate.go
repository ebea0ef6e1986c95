package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quickadd/internal/validate"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the integrity of saved shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

func runValidate() error {
	ctx := context.Background()

	_, app, kv, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	report := validate.Run(app.Shortcuts)
	if len(report.Issues) == 0 {
		fmt.Fprintln(os.Stdout, "All shortcuts look good.")
		return nil
	}

	hasErrors := false
	for _, issue := range report.Issues {
		if issue.Severity == validate.SeverityError {
			hasErrors = true
		}
		location := issue.Shortcut
		if issue.Property != "" {
			location += "/" + issue.Property
		}
		fmt.Fprintf(os.Stdout, "[%s] %s: %s (%s)\n", issue.Severity, location, issue.Message, issue.Code)
	}

	if hasErrors {
		return fmt.Errorf("validation found errors")
	}
	return nil
}
