package notion

import (
	"encoding/json"
	"testing"
)

func TestParsePropertyType(t *testing.T) {
	if got := ParsePropertyType("multi_select"); got != TypeMultiSelect {
		t.Fatalf("expected multi_select, got %s", got)
	}
	for _, raw := range []string{"", "rollup", "formula", "people"} {
		if got := ParsePropertyType(raw); got != TypeUnknown {
			t.Fatalf("expected %q to map to unknown, got %s", raw, got)
		}
	}
}

func TestPropertyValueMarshalUnhandledKind(t *testing.T) {
	if _, err := json.Marshal(PropertyValue{Kind: TypeUnknown}); err == nil {
		t.Fatalf("expected error for unhandled kind")
	}
}

func TestParagraphBlockMarshal(t *testing.T) {
	data, err := json.Marshal(Paragraph("hello world"))
	if err != nil {
		t.Fatalf("marshaling block: %v", err)
	}
	want := `{"object":"block","type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"hello world"}}]}}`
	if string(data) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", data, want)
	}
}

func TestHasOption(t *testing.T) {
	schema := PropertySchema{Name: "Status", Type: TypeSelect, Options: []string{"Todo", "Done"}}
	if !schema.HasOption("Done") {
		t.Fatalf("expected Done to be an option")
	}
	if schema.HasOption("done") {
		t.Fatalf("option matching must be exact")
	}
}
