package notion

import (
	"encoding/json"
	"fmt"
)

// PropertyType is the closed set of database property types the tool
// understands. Anything the API reports outside this set maps to TypeUnknown,
// which renders and encodes as plain text.
type PropertyType string

const (
	TypeTitle       PropertyType = "title"
	TypeRichText    PropertyType = "rich_text"
	TypeNumber      PropertyType = "number"
	TypeSelect      PropertyType = "select"
	TypeMultiSelect PropertyType = "multi_select"
	TypeDate        PropertyType = "date"
	TypeCheckbox    PropertyType = "checkbox"
	TypeURL         PropertyType = "url"
	TypeEmail       PropertyType = "email"
	TypePhoneNumber PropertyType = "phone_number"
	TypeUnknown     PropertyType = "unknown"
)

// ParsePropertyType maps a raw API type tag to a PropertyType.
func ParsePropertyType(raw string) PropertyType {
	switch PropertyType(raw) {
	case TypeTitle, TypeRichText, TypeNumber, TypeSelect, TypeMultiSelect,
		TypeDate, TypeCheckbox, TypeURL, TypeEmail, TypePhoneNumber:
		return PropertyType(raw)
	default:
		return TypeUnknown
	}
}

// PropertySchema is one property definition from a database schema. Options
// carries the allowed option names for select and multi_select properties and
// is empty for every other type. Shortcuts persist these as snapshots, so the
// struct stays plain JSON.
type PropertySchema struct {
	Name    string       `json:"name"`
	Type    PropertyType `json:"type"`
	Options []string     `json:"options,omitempty"`
}

// HasOption reports whether name is one of the allowed option names.
func (s PropertySchema) HasOption(name string) bool {
	for _, option := range s.Options {
		if option == name {
			return true
		}
	}
	return false
}

// Database is a summary of one remote database: its identifier, a flattened
// title, and the property schemas keyed by property name.
type Database struct {
	ID         string                    `json:"id"`
	Title      string                    `json:"title"`
	Properties map[string]PropertySchema `json:"properties,omitempty"`
}

// PropertyValue is the wire representation of one typed property value in a
// create-page request. Exactly one branch is populated, selected by Kind.
type PropertyValue struct {
	Kind    PropertyType
	Text    string   // title, rich_text
	Number  *float64 // number; nil marshals as an explicit null
	Option  string   // select
	Options []string // multi_select
	Start   string   // date
	Checked bool     // checkbox
	Value   string   // url, email, phone_number
}

type richTextSpan struct {
	Type string   `json:"type,omitempty"`
	Text textBody `json:"text"`
}

type textBody struct {
	Content string `json:"content"`
}

type optionRef struct {
	Name string `json:"name"`
}

type dateBody struct {
	Start string `json:"start"`
}

func (v PropertyValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case TypeTitle:
		return json.Marshal(map[string][]richTextSpan{
			"title": {{Text: textBody{Content: v.Text}}},
		})
	case TypeRichText:
		return json.Marshal(map[string][]richTextSpan{
			"rich_text": {{Text: textBody{Content: v.Text}}},
		})
	case TypeNumber:
		return json.Marshal(map[string]*float64{"number": v.Number})
	case TypeSelect:
		return json.Marshal(map[string]optionRef{"select": {Name: v.Option}})
	case TypeMultiSelect:
		refs := make([]optionRef, 0, len(v.Options))
		for _, name := range v.Options {
			refs = append(refs, optionRef{Name: name})
		}
		return json.Marshal(map[string][]optionRef{"multi_select": refs})
	case TypeDate:
		return json.Marshal(map[string]dateBody{"date": {Start: v.Start}})
	case TypeCheckbox:
		return json.Marshal(map[string]bool{"checkbox": v.Checked})
	case TypeURL:
		return json.Marshal(map[string]string{"url": v.Value})
	case TypeEmail:
		return json.Marshal(map[string]string{"email": v.Value})
	case TypePhoneNumber:
		return json.Marshal(map[string]string{"phone_number": v.Value})
	default:
		return nil, fmt.Errorf("unhandled property value kind: %s", v.Kind)
	}
}

// Block is one body content block of a new page. Only paragraph blocks are
// produced by this tool.
type Block struct {
	Text string
}

// Paragraph builds a paragraph block containing text verbatim.
func Paragraph(text string) Block {
	return Block{Text: text}
}

func (b Block) MarshalJSON() ([]byte, error) {
	type paragraphBody struct {
		RichText []richTextSpan `json:"rich_text"`
	}
	return json.Marshal(struct {
		Object    string        `json:"object"`
		Type      string        `json:"type"`
		Paragraph paragraphBody `json:"paragraph"`
	}{
		Object: "block",
		Type:   "paragraph",
		Paragraph: paragraphBody{
			RichText: []richTextSpan{{Type: "text", Text: textBody{Content: b.Text}}},
		},
	})
}
