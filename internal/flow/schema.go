package flow

import (
	"context"
	"fmt"

	"quickadd/internal/notion"
	"quickadd/internal/state"
)

// FetchSchema retrieves one database's property schemas.
func FetchSchema(ctx context.Context, client Client, databaseID string) (*notion.Database, error) {
	db, err := client.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema for %s: %w", databaseID, err)
	}
	return db, nil
}

// Selection is one chosen property plus its optional default value, in the
// user's selection order.
type Selection struct {
	Name    string
	Default string
}

// BuildBindings snapshots the selected properties' schemas into bindings.
// Selecting a property the database does not have is a validation error.
func BuildBindings(db *notion.Database, selections []Selection) ([]state.PropertyBinding, error) {
	bindings := make([]state.PropertyBinding, 0, len(selections))
	for _, selection := range selections {
		schema, ok := db.Properties[selection.Name]
		if !ok {
			return nil, &state.ValidationError{
				Reason: fmt.Sprintf("database %q has no property %q", db.Title, selection.Name),
			}
		}
		binding := state.PropertyBinding{
			Name:   selection.Name,
			Type:   schema.Type,
			Schema: schema,
		}
		if selection.Default != "" {
			binding.Default = selection.Default
		}
		bindings = append(bindings, binding)
	}
	return bindings, nil
}
