package flow

import (
	"context"
	"fmt"
	"time"

	"quickadd/internal/codec"
	"quickadd/internal/notion"
	"quickadd/internal/state"
)

// CollectValues produces the raw form state a submission encodes: each
// binding's pre-fill rendered at now (relative-date tokens resolve here), with
// the caller's values overlaid on top. An explicit empty override clears the
// pre-fill, which later omits the property.
func CollectValues(shortcut state.Shortcut, overrides map[string]string, now time.Time) map[string]string {
	values := make(map[string]string, len(shortcut.Bindings))
	for _, binding := range shortcut.Bindings {
		desc := codec.DescribeInput(binding.Name, binding.Schema, binding.Default, now)
		if desc.Control == codec.ControlCheckbox {
			if desc.Checked {
				values[binding.Name] = "true"
			}
			continue
		}
		if desc.Value != "" {
			values[binding.Name] = desc.Value
		}
	}
	for name, value := range overrides {
		values[name] = value
	}
	return values
}

// Submit encodes the collected form values against the shortcut's snapshotted
// schemas and creates the record. Properties whose value encodes to nothing
// are omitted from the request entirely; checkbox properties always encode.
// Returns the new record's identifier.
func Submit(ctx context.Context, client Client, shortcut state.Shortcut, values map[string]string, body string) (string, error) {
	properties := make(map[string]notion.PropertyValue, len(shortcut.Bindings))
	for _, binding := range shortcut.Bindings {
		value, ok := codec.EncodeValue(binding.Schema, values[binding.Name])
		if !ok {
			continue
		}
		properties[binding.Name] = value
	}

	var children []notion.Block
	if shortcut.IncludeBody && body != "" {
		children = append(children, notion.Paragraph(body))
	}

	pageID, err := client.CreatePage(ctx, shortcut.DatabaseID, properties, children)
	if err != nil {
		return "", fmt.Errorf("creating record: %w", err)
	}
	return pageID, nil
}
