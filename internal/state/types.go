package state

import "quickadd/internal/notion"

// PropertyBinding is one property's inclusion in a shortcut. Schema is a
// snapshot taken when the shortcut was created and is never refreshed, so
// later changes to the remote database do not disturb existing shortcuts.
// Default is nil, a literal matching the type's raw form, or (for date
// properties only) a relative-date token.
type PropertyBinding struct {
	Name    string                `json:"name"`
	Type    notion.PropertyType   `json:"type"`
	Schema  notion.PropertySchema `json:"schema"`
	Default any                   `json:"default,omitempty"`
}

// Shortcut is a saved capture template: a target database, an ordered subset
// of its properties with defaults, and the body-content flag. Binding order
// is the user's selection order and drives form rendering.
type Shortcut struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	DatabaseID   string            `json:"database_id"`
	DatabaseName string            `json:"database_name"`
	Bindings     []PropertyBinding `json:"bindings"`
	IncludeBody  bool              `json:"include_body"`
	Icon         string            `json:"icon"`
	Color        string            `json:"color"`
}

// Binding returns the binding for a property name, if present.
func (s Shortcut) Binding(name string) (PropertyBinding, bool) {
	for _, b := range s.Bindings {
		if b.Name == name {
			return b, true
		}
	}
	return PropertyBinding{}, false
}

// Display defaults applied when a shortcut is created without explicit
// icon or color.
const (
	DefaultIcon  = "📝"
	DefaultColor = "#3182ce"
)
