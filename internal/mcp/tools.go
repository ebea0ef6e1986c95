package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"quickadd/internal/codec"
	"quickadd/internal/flow"
)

type ListShortcutsInput struct{}

type ListDatabasesInput struct{}

type GetFormInput struct {
	Shortcut string `json:"shortcut" jsonschema:"shortcut id or name"`
}

type QuickAddInput struct {
	Shortcut string            `json:"shortcut" jsonschema:"shortcut id or name"`
	Values   map[string]string `json:"values,omitempty" jsonschema:"raw form values keyed by property name"`
	Body     string            `json:"body,omitempty" jsonschema:"page body text, used when the shortcut includes body content"`
}

type ShortcutOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Database string `json:"database"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}

type ListShortcutsOutput struct {
	Shortcuts []ShortcutOutput `json:"shortcuts"`
}

type DatabaseOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ListDatabasesOutput struct {
	Databases []DatabaseOutput `json:"databases"`
}

type FieldOutput struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Control string   `json:"control"`
	Value   string   `json:"value,omitempty"`
	Checked bool     `json:"checked,omitempty"`
	Options []string `json:"options,omitempty"`
}

type GetFormOutput struct {
	Shortcut    string        `json:"shortcut"`
	Database    string        `json:"database"`
	Fields      []FieldOutput `json:"fields"`
	IncludeBody bool          `json:"include_body"`
}

type QuickAddOutput struct {
	PageID string `json:"page_id"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_shortcuts",
		Description: "List the saved capture shortcuts",
	}, s.handleListShortcuts)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_databases",
		Description: "List the cached database summaries",
	}, s.handleListDatabases)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_form",
		Description: "Describe a shortcut's form fields with resolved pre-fill values",
	}, s.handleGetForm)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "quick_add",
		Description: "Create a record from a shortcut and a set of form values",
	}, s.handleQuickAdd)
}

func (s *Server) handleListShortcuts(ctx context.Context, req *sdk.CallToolRequest, input ListShortcutsInput) (*sdk.CallToolResult, ListShortcutsOutput, error) {
	output := make([]ShortcutOutput, 0, len(s.app.Shortcuts))
	for _, shortcut := range s.app.Shortcuts {
		output = append(output, ShortcutOutput{
			ID:       shortcut.ID,
			Name:     shortcut.Name,
			Database: shortcut.DatabaseName,
			Icon:     shortcut.Icon,
			Color:    shortcut.Color,
		})
	}
	return nil, ListShortcutsOutput{Shortcuts: output}, nil
}

func (s *Server) handleListDatabases(ctx context.Context, req *sdk.CallToolRequest, input ListDatabasesInput) (*sdk.CallToolResult, ListDatabasesOutput, error) {
	output := make([]DatabaseOutput, 0, len(s.app.Databases))
	for _, db := range s.app.Databases {
		output = append(output, DatabaseOutput{ID: db.ID, Title: db.Title})
	}
	return nil, ListDatabasesOutput{Databases: output}, nil
}

func (s *Server) handleGetForm(ctx context.Context, req *sdk.CallToolRequest, input GetFormInput) (*sdk.CallToolResult, GetFormOutput, error) {
	if input.Shortcut == "" {
		return nil, GetFormOutput{}, fmt.Errorf("shortcut is required")
	}
	shortcut, err := s.app.FindByRef(input.Shortcut)
	if err != nil {
		return nil, GetFormOutput{}, err
	}

	now := time.Now()
	fields := make([]FieldOutput, 0, len(shortcut.Bindings))
	for _, binding := range shortcut.Bindings {
		desc := codec.DescribeInput(binding.Name, binding.Schema, binding.Default, now)
		fields = append(fields, FieldOutput{
			Name:    desc.Name,
			Type:    string(desc.Type),
			Control: string(desc.Control),
			Value:   desc.Value,
			Checked: desc.Checked,
			Options: desc.Options,
		})
	}

	return nil, GetFormOutput{
		Shortcut:    shortcut.Name,
		Database:    shortcut.DatabaseName,
		Fields:      fields,
		IncludeBody: shortcut.IncludeBody,
	}, nil
}

func (s *Server) handleQuickAdd(ctx context.Context, req *sdk.CallToolRequest, input QuickAddInput) (*sdk.CallToolResult, QuickAddOutput, error) {
	if input.Shortcut == "" {
		return nil, QuickAddOutput{}, fmt.Errorf("shortcut is required")
	}
	shortcut, err := s.app.FindByRef(input.Shortcut)
	if err != nil {
		return nil, QuickAddOutput{}, err
	}

	for name := range input.Values {
		if _, ok := shortcut.Binding(name); !ok {
			return nil, QuickAddOutput{}, fmt.Errorf("shortcut %q has no bound property %q", shortcut.Name, name)
		}
	}

	values := flow.CollectValues(shortcut, input.Values, time.Now())
	pageID, err := flow.Submit(ctx, s.client, shortcut, values, input.Body)
	if err != nil {
		return nil, QuickAddOutput{}, err
	}
	return nil, QuickAddOutput{PageID: pageID}, nil
}
