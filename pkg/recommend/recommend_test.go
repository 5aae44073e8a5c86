package recommend_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formtemplate/pkg/recommend"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

func docWithTitle(en string, sections, fieldsPerSection int) *template.Template {
	doc := &template.Template{Title: template.LocalizedText{EN: en}}
	for i := 0; i < sections; i++ {
		section := template.Section{ID: "s", Label: template.LocalizedText{EN: "S", AR: "س"}}
		for j := 0; j < fieldsPerSection; j++ {
			section.Fields = append(section.Fields, template.Field{
				Key:   "f",
				Label: template.LocalizedText{EN: "Field", AR: "حقل"},
				Type:  template.FieldTypeText,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

func find(recs []recommend.Recommendation, id string) (recommend.Recommendation, bool) {
	for _, rec := range recs {
		if rec.ID == id {
			return rec, true
		}
	}
	return recommend.Recommendation{}, false
}

func TestDailyReportGetsSignatureSuggestion(t *testing.T) {
	doc := docWithTitle("Daily Report", 2, 2)
	recs := recommend.Recommend(doc)

	rec, ok := find(recs, recommend.IDSignatureSection)
	if !ok {
		t.Fatalf("expected signature suggestion, got %v", ids(recs))
	}
	if rec.Priority != recommend.PriorityLow {
		t.Fatalf("signature priority = %q, want low", rec.Priority)
	}
	if !rec.Actionable() {
		t.Fatalf("signature suggestion must carry a transform")
	}

	// Deterministic across repeated calls.
	again := recommend.Recommend(doc)
	if diff := cmp.Diff(ids(recs), ids(again)); diff != "" {
		t.Fatalf("recommendations not deterministic:\n%s", diff)
	}
}

func TestRecipeGetsTableAndTheme(t *testing.T) {
	doc := docWithTitle("Recipe Costing Card", 1, 4)
	recs := recommend.Recommend(doc)

	if _, ok := find(recs, recommend.IDTableLayout); !ok {
		t.Fatalf("recipe should suggest table layout, got %v", ids(recs))
	}
	if _, ok := find(recs, recommend.IDRedTheme); !ok {
		t.Fatalf("recipe should suggest the red theme, got %v", ids(recs))
	}
}

func TestManyFieldsWithoutFormSuggestsTable(t *testing.T) {
	doc := docWithTitle("Kitchen Survey", 2, 5)
	if _, ok := find(recommend.Recommend(doc), recommend.IDTableLayout); !ok {
		t.Fatalf("ten fields should trigger the table suggestion")
	}

	form := docWithTitle("Kitchen Request Form", 2, 5)
	if _, ok := find(recommend.Recommend(form), recommend.IDTableLayout); ok {
		t.Fatalf("form classification suppresses the table suggestion")
	}
}

func TestShortFormSuggestsColumns(t *testing.T) {
	doc := docWithTitle("Leave Application", 1, 3)
	if _, ok := find(recommend.Recommend(doc), recommend.IDColumnLayout); !ok {
		t.Fatalf("short form should suggest column layout")
	}
}

func TestTotalsRowIsAdvisoryOnly(t *testing.T) {
	doc := docWithTitle("Stock Sheet", 2, 4)
	doc.Sections[0].Fields[0].Type = template.FieldTypeNumber

	rec, ok := find(recommend.Recommend(doc), recommend.IDTotalsRow)
	if !ok {
		t.Fatalf("expected totals suggestion")
	}
	if rec.Actionable() {
		t.Fatalf("totals suggestion must not carry a transform")
	}
}

func TestTotalsRowNeedsNumericField(t *testing.T) {
	doc := docWithTitle("Stock Sheet", 2, 4)
	if _, ok := find(recommend.Recommend(doc), recommend.IDTotalsRow); ok {
		t.Fatalf("totals suggestion requires a numeric-sounding field")
	}

	doc.Sections[1].Fields[2].Label.EN = "Unit Price"
	if _, ok := find(recommend.Recommend(doc), recommend.IDTotalsRow); !ok {
		t.Fatalf("price label should count as numeric-sounding")
	}
}

func TestPriorityOrdering(t *testing.T) {
	doc := docWithTitle("Daily Wastage Report", 3, 4)
	recs := recommend.Recommend(doc)
	rank := map[recommend.Priority]int{
		recommend.PriorityHigh:   0,
		recommend.PriorityMedium: 1,
		recommend.PriorityLow:    2,
	}
	for i := 1; i < len(recs); i++ {
		if rank[recs[i-1].Priority] > rank[recs[i].Priority] {
			t.Fatalf("recommendations out of priority order: %v", ids(recs))
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	doc := docWithTitle("Daily Report", 2, 3)
	before := doc.Clone()

	recs := recommend.Recommend(doc)
	for _, rec := range recs {
		if !rec.Actionable() {
			continue
		}
		out := rec.Apply(doc)
		if out == doc {
			t.Fatalf("%s returned the input document", rec.ID)
		}
	}
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Fatalf("input mutated by an apply transform:\n%s", diff)
	}
}

func TestTableActionConvertsLargeSections(t *testing.T) {
	doc := docWithTitle("Inventory Count", 1, 7)
	keys := template.NewKeyGenerator()
	for i := range doc.Sections[0].Fields {
		doc.Sections[0].Fields[i].Key = keys.FieldKey()
	}
	rec, ok := find(recommend.Recommend(doc), recommend.IDTableLayout)
	if !ok {
		t.Fatalf("expected table suggestion")
	}

	out := rec.Apply(doc)
	layout := out.Sections[0].AdvancedLayout
	if layout.LayoutType != template.LayoutTable || !layout.Table.Enabled {
		t.Fatalf("section not converted: %+v", layout)
	}
	if len(layout.Table.Columns) != 5 {
		t.Fatalf("expected 5 columns (cap), got %d", len(layout.Table.Columns))
	}
	if layout.Table.Columns[0].FieldKey != doc.Sections[0].Fields[0].Key {
		t.Fatalf("column not bound to the source field")
	}
}

func TestTableActionSkipsSmallSections(t *testing.T) {
	doc := docWithTitle("Inventory Count", 2, 0)
	doc.Sections[0].Fields = []template.Field{
		{Key: "a", Label: template.LocalizedText{EN: "A", AR: "أ"}},
		{Key: "b", Label: template.LocalizedText{EN: "B", AR: "ب"}},
	}
	rec, ok := find(recommend.Recommend(doc), recommend.IDTableLayout)
	if !ok {
		t.Fatalf("expected table suggestion")
	}
	out := rec.Apply(doc)
	if out.Sections[0].AdvancedLayout.LayoutType == template.LayoutTable {
		t.Fatalf("two-field section must not be converted")
	}
}

func TestSignatureActionAppendsSection(t *testing.T) {
	doc := docWithTitle("Daily Report", 2, 2)
	rec, _ := find(recommend.Recommend(doc), recommend.IDSignatureSection)

	out := rec.Apply(doc)
	if len(out.Sections) != 3 {
		t.Fatalf("expected appended section")
	}
	added := out.Sections[2]
	if added.SectionType != template.SectionTypeSignature {
		t.Fatalf("sectionType = %q", added.SectionType)
	}
	if len(added.Fields) != 2 {
		t.Fatalf("expected two signature fields")
	}
	if added.AdvancedLayout.LayoutType != template.LayoutColumns || added.AdvancedLayout.Columns.ColumnCount != 2 {
		t.Fatalf("signature section should use two columns")
	}
	if out.Layout.SectionOrder[len(out.Layout.SectionOrder)-1] != added.ID {
		t.Fatalf("sectionOrder missing the new section")
	}
}

func TestRedThemeAction(t *testing.T) {
	doc := docWithTitle("Oil Change Log", 1, 1)
	rec, ok := find(recommend.Recommend(doc), recommend.IDRedTheme)
	if !ok {
		t.Fatalf("log should suggest the red theme")
	}
	out := rec.Apply(doc)
	if out.PDFStyle.Branding.PrimaryColor == "" || out.PDFStyle.Header.TitleColor != out.PDFStyle.Branding.PrimaryColor {
		t.Fatalf("palette not applied: %+v", out.PDFStyle)
	}
	if !template.BoolValue(out.PDFStyle.Footer.ShowCompanyInfo, false) {
		t.Fatalf("company info block not enabled")
	}
}

func ids(recs []recommend.Recommendation) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.ID
	}
	return out
}
