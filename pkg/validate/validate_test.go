package validate_test

import (
	"testing"

	"github.com/goliatone/go-formtemplate/pkg/mutate"
	"github.com/goliatone/go-formtemplate/pkg/template"
	"github.com/goliatone/go-formtemplate/pkg/validate"
)

func validDoc() *template.Template {
	return &template.Template{
		Title: template.LocalizedText{EN: "Checklist", AR: "قائمة"},
		Sections: []template.Section{
			{
				ID:    "section_1",
				Label: template.LocalizedText{EN: "General", AR: "عام"},
				Fields: []template.Field{
					{Key: "field_1", Label: template.LocalizedText{EN: "Name", AR: "اسم"}},
				},
			},
		},
		Layout: template.PageLayout{SectionOrder: []string{"section_1"}},
	}
}

func TestCheckPassesValidDocument(t *testing.T) {
	result := validate.Check(validDoc(), nil)
	if !result.Valid() {
		t.Fatalf("expected valid, got errors: %v", result.Errors)
	}
}

func TestMissingArabicTitleAlwaysReported(t *testing.T) {
	doc := validDoc()
	doc.Title.AR = "   "
	result := validate.Check(doc, nil)
	if result.Valid() {
		t.Fatalf("expected failure")
	}
	if _, ok := result.Errors["title.ar"]; !ok {
		t.Fatalf("expected title.ar error, got %v", result.Errors)
	}
	if _, ok := result.Errors["title.en"]; ok {
		t.Fatalf("unexpected title.en error")
	}
}

func TestNoSectionsReported(t *testing.T) {
	doc := validDoc()
	doc.Sections = nil
	result := validate.Check(doc, nil)
	if _, ok := result.Errors["sections"]; !ok {
		t.Fatalf("expected sections error, got %v", result.Errors)
	}
}

func TestSectionWithoutFieldsReported(t *testing.T) {
	doc := validDoc()
	doc.Sections[0].Fields = nil
	result := validate.Check(doc, nil)
	if _, ok := result.Errors["sections.0.fields"]; !ok {
		t.Fatalf("expected fields error, got %v", result.Errors)
	}
}

func TestHeaderFooterSectionsExempt(t *testing.T) {
	for _, kind := range []template.SectionType{template.SectionTypeHeader, template.SectionTypeFooter} {
		doc := validDoc()
		doc.Sections[0].SectionType = kind
		doc.Sections[0].Fields = nil
		result := validate.Check(doc, nil)
		if _, ok := result.Errors["sections.0.fields"]; ok {
			t.Fatalf("%s sections must be exempt from the field rule", kind)
		}
	}
}

func TestEnabledTableWithColumnExempt(t *testing.T) {
	doc := validDoc()
	doc.Sections[0] = template.Section{
		ID:          "section_1",
		Label:       template.LocalizedText{EN: "X", AR: "س"},
		SectionType: template.SectionTypeNormal,
		Fields:      []template.Field{},
		AdvancedLayout: template.AdvancedLayout{
			LayoutType: template.LayoutTable,
			Table: &template.TableLayout{
				Enabled: true,
				Columns: []template.Column{{ID: "c1"}},
			},
		},
	}
	result := validate.Check(doc, nil)
	if _, ok := result.Errors["sections.0.fields"]; ok {
		t.Fatalf("table layout with a column must be exempt, got %v", result.Errors)
	}
}

func TestDisabledTableNotExempt(t *testing.T) {
	doc := validDoc()
	doc.Sections[0].Fields = nil
	doc.Sections[0].AdvancedLayout = template.AdvancedLayout{
		LayoutType: template.LayoutTable,
		Table:      &template.TableLayout{Enabled: false, Columns: []template.Column{{ID: "c1"}}},
	}
	result := validate.Check(doc, nil)
	if _, ok := result.Errors["sections.0.fields"]; !ok {
		t.Fatalf("disabled table must not exempt the section")
	}
}

func TestFieldLabelErrorsKeyed(t *testing.T) {
	doc := validDoc()
	doc.Sections[0].Fields[0].Label.AR = ""
	result := validate.Check(doc, nil)
	if _, ok := result.Errors["sections.0.fields.0.label.ar"]; !ok {
		t.Fatalf("expected field label error, got %v", result.Errors)
	}
}

func TestBlankFieldKeysBackfilled(t *testing.T) {
	doc := validDoc()
	doc.Sections[0].Fields[0].Key = "  "
	result := validate.Check(doc, nil)
	if !result.Valid() {
		t.Fatalf("missing keys must not fail validation: %v", result.Errors)
	}
	if result.Doc.Sections[0].Fields[0].Key == "  " || result.Doc.Sections[0].Fields[0].Key == "" {
		t.Fatalf("key not backfilled")
	}
	// The caller's document is left alone.
	if doc.Sections[0].Fields[0].Key != "  " {
		t.Fatalf("input document mutated")
	}
}

func TestEmptyDocumentEndToEnd(t *testing.T) {
	// Build a document the way an editing session would and confirm it
	// validates cleanly.
	editor := mutate.NewEditor(&template.Template{
		Title: template.LocalizedText{EN: "T", AR: "ت"},
	})
	editor.AddSection()
	editor.AddField(0)
	if err := editor.UpdateSection(0, "label.en", "Details"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := editor.UpdateSection(0, "label.ar", "تفاصيل"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := editor.UpdateField(0, 0, "label.en", "Name"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := editor.UpdateField(0, 0, "label.ar", "اسم"); err != nil {
		t.Fatalf("update: %v", err)
	}

	result := validate.Check(editor.Template(), nil)
	if !result.Valid() {
		t.Fatalf("expected zero errors, got %v", result.Errors)
	}
}
