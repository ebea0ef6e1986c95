// Package validate checks the integrity of persisted shortcuts. Because
// binding schemas are creation-time snapshots, a corrupted or hand-edited
// store is the only way these invariants break; the report makes that visible
// without touching the remote service.
package validate

import (
	"fmt"
	"regexp"

	"quickadd/internal/codec"
	"quickadd/internal/notion"
	"quickadd/internal/state"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeEmptyName          = "empty_name"
	codeNoBindings         = "no_bindings"
	codeDuplicateID        = "duplicate_id"
	codeUnknownType        = "unknown_property_type"
	codeSelectDefault      = "select_default_not_an_option"
	codeDateDefault        = "date_default_unrecognized"
	codeMissingDatabase    = "missing_database_id"
	codeTypeSchemaMismatch = "binding_type_mismatch"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Shortcut string
	Property string
}

type Report struct {
	Issues []Issue
}

var dateLiteral = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func Run(shortcuts []state.Shortcut) *Report {
	issues := make([]Issue, 0)
	seen := make(map[string]struct{}, len(shortcuts))

	for _, shortcut := range shortcuts {
		label := shortcut.Name
		if label == "" {
			label = shortcut.ID
		}

		if _, dup := seen[shortcut.ID]; dup {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeDuplicateID,
				Message:  fmt.Sprintf("duplicate shortcut id: %s", shortcut.ID),
				Shortcut: label,
			})
		}
		seen[shortcut.ID] = struct{}{}

		if shortcut.Name == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeEmptyName,
				Message:  "shortcut has no name",
				Shortcut: label,
			})
		}
		if shortcut.DatabaseID == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeMissingDatabase,
				Message:  "shortcut has no target database",
				Shortcut: label,
			})
		}
		if len(shortcut.Bindings) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     codeNoBindings,
				Message:  "shortcut has no property bindings",
				Shortcut: label,
			})
		}

		for _, binding := range shortcut.Bindings {
			issues = append(issues, validateBinding(label, binding)...)
		}
	}

	return &Report{Issues: issues}
}

func validateBinding(shortcut string, binding state.PropertyBinding) []Issue {
	var issues []Issue

	if notion.ParsePropertyType(string(binding.Type)) == notion.TypeUnknown && binding.Type != notion.TypeUnknown {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnknownType,
			Message:  fmt.Sprintf("unrecognized property type %q", binding.Type),
			Shortcut: shortcut,
			Property: binding.Name,
		})
	}
	if binding.Type != binding.Schema.Type {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeTypeSchemaMismatch,
			Message:  fmt.Sprintf("binding type %q does not match schema type %q", binding.Type, binding.Schema.Type),
			Shortcut: shortcut,
			Property: binding.Name,
		})
	}

	defaultValue, _ := binding.Default.(string)
	if defaultValue == "" {
		return issues
	}

	switch binding.Type {
	case notion.TypeSelect:
		if !binding.Schema.HasOption(defaultValue) {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeSelectDefault,
				Message:  fmt.Sprintf("default %q is not in the snapshotted option set", defaultValue),
				Shortcut: shortcut,
				Property: binding.Name,
			})
		}
	case notion.TypeDate:
		if !codec.IsToken(defaultValue) && !dateLiteral.MatchString(defaultValue) {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeDateDefault,
				Message:  fmt.Sprintf("default %q is neither a relative-date token nor YYYY-MM-DD", defaultValue),
				Shortcut: shortcut,
				Property: binding.Name,
			})
		}
	}

	return issues
}
