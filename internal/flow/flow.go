// Package flow orchestrates the user-facing operations: verifying a
// credential, introspecting a database schema into bindings, and submitting a
// filled form as a new record. Each operation is a single call-and-wait
// against the remote service; failures surface immediately with no retries.
package flow

import (
	"context"

	"quickadd/internal/notion"
)

// Client is the slice of the remote API the flows need.
type Client interface {
	SearchDatabases(ctx context.Context) ([]notion.Database, error)
	GetDatabase(ctx context.Context, id string) (*notion.Database, error)
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.PropertyValue, children []notion.Block) (string, error)
}
