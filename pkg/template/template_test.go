package template_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

func TestCloneIsDeep(t *testing.T) {
	doc := &template.Template{
		Title: template.LocalizedText{EN: "Daily Wastage", AR: "الهدر اليومي"},
		Sections: []template.Section{
			{
				ID:    "section_1",
				Label: template.LocalizedText{EN: "Items", AR: "العناصر"},
				Fields: []template.Field{
					{Key: "field_1", Type: template.FieldTypeText, Options: []template.LocalizedText{{EN: "A", AR: "أ"}}},
				},
				AdvancedLayout: template.AdvancedLayout{
					LayoutType: template.LayoutTable,
					Table: &template.TableLayout{
						Enabled: true,
						Columns: []template.Column{{ID: "col_1", FieldKey: "field_1"}},
					},
					Styling: &template.SectionStyling{ShowTitle: template.Bool(false)},
				},
			},
		},
		Layout: template.PageLayout{SectionOrder: []string{"section_1"}},
	}

	clone := doc.Clone()
	if diff := cmp.Diff(doc, clone); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}

	clone.Sections[0].Fields[0].Key = "changed"
	clone.Sections[0].AdvancedLayout.Table.Columns[0].FieldKey = "changed"
	*clone.Sections[0].AdvancedLayout.Styling.ShowTitle = true
	clone.Layout.SectionOrder[0] = "changed"

	if doc.Sections[0].Fields[0].Key != "field_1" {
		t.Fatalf("field mutated through clone")
	}
	if doc.Sections[0].AdvancedLayout.Table.Columns[0].FieldKey != "field_1" {
		t.Fatalf("column mutated through clone")
	}
	if *doc.Sections[0].AdvancedLayout.Styling.ShowTitle {
		t.Fatalf("showTitle mutated through clone")
	}
	if doc.Layout.SectionOrder[0] != "section_1" {
		t.Fatalf("section order mutated through clone")
	}
}

func TestCloneNil(t *testing.T) {
	var doc *template.Template
	if doc.Clone() != nil {
		t.Fatalf("expected nil clone for nil document")
	}
}

func TestKeyGeneratorUniqueness(t *testing.T) {
	keys := template.NewKeyGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		for _, id := range []string{keys.SectionID(), keys.FieldKey(), keys.ColumnID()} {
			if _, exists := seen[id]; exists {
				t.Fatalf("duplicate identifier %q", id)
			}
			seen[id] = struct{}{}
		}
	}
}

func TestKeyGeneratorPrefixes(t *testing.T) {
	keys := template.NewKeyGenerator()
	cases := map[string]string{
		keys.SectionID(): "section_",
		keys.FieldKey():  "field_",
		keys.ColumnID():  "col_",
	}
	for id, prefix := range cases {
		if len(id) <= len(prefix) || id[:len(prefix)] != prefix {
			t.Fatalf("identifier %q missing prefix %q", id, prefix)
		}
	}
}

func TestBoolValue(t *testing.T) {
	if !template.BoolValue(nil, true) {
		t.Fatalf("nil pointer should fall back to default")
	}
	if template.BoolValue(template.Bool(false), true) {
		t.Fatalf("explicit false should win over default")
	}
}
