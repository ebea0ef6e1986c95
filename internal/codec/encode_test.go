package codec

import (
	"encoding/json"
	"testing"

	"quickadd/internal/notion"
)

func TestEncodeValueEmptyOmitsExceptCheckbox(t *testing.T) {
	types := []notion.PropertyType{
		notion.TypeTitle, notion.TypeRichText, notion.TypeNumber,
		notion.TypeSelect, notion.TypeMultiSelect, notion.TypeDate,
		notion.TypeURL, notion.TypeEmail, notion.TypePhoneNumber, notion.TypeUnknown,
	}
	for _, typ := range types {
		t.Run(string(typ), func(t *testing.T) {
			if _, ok := EncodeValue(notion.PropertySchema{Name: "P", Type: typ}, ""); ok {
				t.Fatalf("expected empty %s value to be omitted", typ)
			}
		})
	}

	t.Run("checkbox always encodes", func(t *testing.T) {
		value, ok := EncodeValue(notion.PropertySchema{Name: "P", Type: notion.TypeCheckbox}, "")
		if !ok {
			t.Fatalf("expected checkbox to encode")
		}
		assertJSON(t, value, `{"checkbox":false}`)
	})
}

func TestEncodeValueWireShapes(t *testing.T) {
	cases := []struct {
		name string
		typ  notion.PropertyType
		raw  string
		want string
	}{
		{"title", notion.TypeTitle, "Test", `{"title":[{"text":{"content":"Test"}}]}`},
		{"rich text", notion.TypeRichText, "note", `{"rich_text":[{"text":{"content":"note"}}]}`},
		{"unknown encodes as rich text", notion.TypeUnknown, "x", `{"rich_text":[{"text":{"content":"x"}}]}`},
		{"number", notion.TypeNumber, "3.5", `{"number":3.5}`},
		{"number parse failure is explicit null", notion.TypeNumber, "abc", `{"number":null}`},
		{"select", notion.TypeSelect, "Done", `{"select":{"name":"Done"}}`},
		{"date", notion.TypeDate, "2024-03-11", `{"date":{"start":"2024-03-11"}}`},
		{"checkbox true", notion.TypeCheckbox, "true", `{"checkbox":true}`},
		{"checkbox on", notion.TypeCheckbox, "on", `{"checkbox":true}`},
		{"url", notion.TypeURL, "https://example.com", `{"url":"https://example.com"}`},
		{"email", notion.TypeEmail, "a@b.c", `{"email":"a@b.c"}`},
		{"phone", notion.TypePhoneNumber, "555-0100", `{"phone_number":"555-0100"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := EncodeValue(notion.PropertySchema{Name: "P", Type: tc.typ}, tc.raw)
			if !ok {
				t.Fatalf("expected value to encode")
			}
			assertJSON(t, value, tc.want)
		})
	}
}

func TestEncodeValueMultiSelect(t *testing.T) {
	schema := notion.PropertySchema{Name: "Tags", Type: notion.TypeMultiSelect}

	t.Run("trims, drops empties, keeps duplicates", func(t *testing.T) {
		value, ok := EncodeValue(schema, "a, b ,,b")
		if !ok {
			t.Fatalf("expected value to encode")
		}
		if len(value.Options) != 3 || value.Options[0] != "a" || value.Options[1] != "b" || value.Options[2] != "b" {
			t.Fatalf("unexpected option names: %v", value.Options)
		}
		assertJSON(t, value, `{"multi_select":[{"name":"a"},{"name":"b"},{"name":"b"}]}`)
	})

	t.Run("only separators omits the property", func(t *testing.T) {
		if _, ok := EncodeValue(schema, " , ,"); ok {
			t.Fatalf("expected omission")
		}
	})
}

func assertJSON(t *testing.T, value notion.PropertyValue, want string) {
	t.Helper()
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshaling value: %v", err)
	}
	if string(data) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}
