package codec

import (
	"regexp"
	"strings"
	"time"

	"quickadd/internal/notion"
)

// Control names the UI affordance a property needs. The codec only describes
// the form; rendering belongs to whatever surface consumes the descriptor.
type Control string

const (
	ControlText     Control = "text"
	ControlNumber   Control = "number"
	ControlSelect   Control = "select"
	ControlCheckbox Control = "checkbox"
	ControlDate     Control = "date"
)

// InputDescriptor is the pure-data description of one form input: which
// affordance to render and its pre-filled value. Value carries the pre-fill
// for every control except checkbox, which uses Checked.
type InputDescriptor struct {
	Name    string              `json:"name"`
	Type    notion.PropertyType `json:"type"`
	Control Control             `json:"control"`
	Value   string              `json:"value,omitempty"`
	Checked bool                `json:"checked,omitempty"`
	Options []string            `json:"options,omitempty"`
}

var dateLiteral = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DescribeInput maps one property schema plus its stored default to an input
// descriptor. now anchors relative-date resolution; pass the current wall
// clock outside of tests.
func DescribeInput(name string, schema notion.PropertySchema, defaultValue any, now time.Time) InputDescriptor {
	desc := InputDescriptor{Name: name, Type: schema.Type}

	switch schema.Type {
	case notion.TypeNumber:
		desc.Control = ControlNumber
		desc.Value = defaultString(defaultValue)
	case notion.TypeSelect:
		desc.Control = ControlSelect
		desc.Options = schema.Options
		if value := defaultString(defaultValue); schema.HasOption(value) {
			desc.Value = value
		}
	case notion.TypeMultiSelect:
		desc.Control = ControlText
		desc.Value = joinedDefault(defaultValue)
	case notion.TypeCheckbox:
		desc.Control = ControlCheckbox
		desc.Checked = defaultValue == true || defaultValue == "true"
	case notion.TypeDate:
		desc.Control = ControlDate
		desc.Value = datePrefill(defaultString(defaultValue), now)
	default:
		// title, rich_text, url, email, phone_number, unknown
		desc.Control = ControlText
		desc.Value = defaultString(defaultValue)
	}

	return desc
}

func datePrefill(value string, now time.Time) string {
	if value == "" {
		return ""
	}
	if IsToken(value) {
		return Resolve(value, now)
	}
	if dateLiteral.MatchString(value) {
		return value
	}
	return ""
}

func defaultString(value any) string {
	s, _ := value.(string)
	return s
}

// joinedDefault renders a multi-select default. Stored defaults are usually a
// single comma-joined string, but persisted JSON may carry a sequence.
func joinedDefault(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}
