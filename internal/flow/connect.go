package flow

import (
	"context"
	"fmt"
	"strings"

	"quickadd/internal/notion"
	"quickadd/internal/state"
)

// Connect verifies a bearer credential by listing the databases shared with
// it, then persists the credential and the summaries. A valid credential with
// nothing shared yields an empty list, not an error.
func Connect(ctx context.Context, app *state.App, client Client, token string) ([]notion.Database, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &state.ValidationError{Reason: "credential is required"}
	}
	if !strings.HasPrefix(token, "secret_") && !strings.HasPrefix(token, "ntn_") {
		return nil, &state.ValidationError{Reason: `credential must start with "secret_" or "ntn_"`}
	}

	databases, err := client.SearchDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("verifying credential: %w", err)
	}

	if err := app.SetCredential(ctx, token); err != nil {
		return nil, err
	}
	if err := app.SetDatabases(ctx, databases); err != nil {
		return nil, err
	}
	return databases, nil
}

// RefreshDatabases re-fetches and caches the database summaries with the
// already-stored credential.
func RefreshDatabases(ctx context.Context, app *state.App, client Client) ([]notion.Database, error) {
	databases, err := client.SearchDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}
	if err := app.SetDatabases(ctx, databases); err != nil {
		return nil, err
	}
	return databases, nil
}
