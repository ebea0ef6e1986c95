package codec

import (
	"strconv"
	"strings"

	"quickadd/internal/notion"
)

// EncodeValue maps one raw form value to its wire representation. The second
// return is false when the property must be omitted from the outgoing set:
// every type omits on an empty raw value except checkbox, which always
// encodes (absent means unchecked).
func EncodeValue(schema notion.PropertySchema, raw string) (notion.PropertyValue, bool) {
	if raw == "" && schema.Type != notion.TypeCheckbox {
		return notion.PropertyValue{}, false
	}

	switch schema.Type {
	case notion.TypeTitle:
		return notion.PropertyValue{Kind: notion.TypeTitle, Text: raw}, true
	case notion.TypeRichText, notion.TypeUnknown:
		return notion.PropertyValue{Kind: notion.TypeRichText, Text: raw}, true
	case notion.TypeNumber:
		// A value that fails to parse degrades to an explicit null, matching
		// the service's accepted semantics for "no number".
		value := notion.PropertyValue{Kind: notion.TypeNumber}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			value.Number = &f
		}
		return value, true
	case notion.TypeSelect:
		return notion.PropertyValue{Kind: notion.TypeSelect, Option: raw}, true
	case notion.TypeMultiSelect:
		names := splitOptions(raw)
		if len(names) == 0 {
			return notion.PropertyValue{}, false
		}
		return notion.PropertyValue{Kind: notion.TypeMultiSelect, Options: names}, true
	case notion.TypeDate:
		// raw is already a resolved YYYY-MM-DD; tokens are resolved at
		// render time only.
		return notion.PropertyValue{Kind: notion.TypeDate, Start: raw}, true
	case notion.TypeCheckbox:
		return notion.PropertyValue{Kind: notion.TypeCheckbox, Checked: parseCheckbox(raw)}, true
	case notion.TypeURL, notion.TypeEmail, notion.TypePhoneNumber:
		return notion.PropertyValue{Kind: schema.Type, Value: raw}, true
	default:
		return notion.PropertyValue{Kind: notion.TypeRichText, Text: raw}, true
	}
}

// splitOptions splits a comma-separated value into option names, trimming
// whitespace and dropping empty segments. Duplicates are preserved.
func splitOptions(raw string) []string {
	var names []string
	for _, segment := range strings.Split(raw, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		names = append(names, segment)
	}
	return names
}

func parseCheckbox(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
