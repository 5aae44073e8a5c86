package recommend

import (
	"strings"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

// intent is the heuristic classification of what a template is for, derived
// from keyword matches on the title and description.
type intent struct {
	recipe    bool
	log       bool
	report    bool
	wastage   bool
	oil       bool
	inventory bool
	form      bool
}

var intentKeywords = []struct {
	set   func(*intent)
	words []string
}{
	{func(i *intent) { i.recipe = true }, []string{"recipe", "menu", "ingredient", "costing"}},
	{func(i *intent) { i.log = true }, []string{"log", "record", "track"}},
	{func(i *intent) { i.report = true }, []string{"report", "daily", "checklist"}},
	{func(i *intent) { i.wastage = true }, []string{"wastage", "waste", "damage"}},
	{func(i *intent) { i.oil = true }, []string{"oil", "fryer"}},
	{func(i *intent) { i.inventory = true }, []string{"inventory", "stock", "item"}},
	{func(i *intent) { i.form = true }, []string{"form", "application", "request"}},
}

// classify inspects both locales of the title and description, matching each
// keyword set case-insensitively against the concatenated text.
func classify(doc *template.Template) intent {
	text := strings.ToLower(strings.Join([]string{
		doc.Title.EN, doc.Title.AR, doc.Description.EN, doc.Description.AR,
	}, " "))

	var out intent
	for _, candidate := range intentKeywords {
		for _, word := range candidate.words {
			if strings.Contains(text, word) {
				candidate.set(&out)
				break
			}
		}
	}
	return out
}

// shape summarises the document's structure for the trigger rules.
type shape struct {
	sections   int
	fields     int
	numericish bool
}

// Field-count thresholds for the trigger rules. A document with manyFields
// or more total fields reads as data-heavy; one with fewFields or fewer (but
// at least one) reads as a short form.
const (
	manyFields = 8
	fewFields  = 5
)

func measure(doc *template.Template) shape {
	out := shape{sections: len(doc.Sections)}
	for _, section := range doc.Sections {
		out.fields += len(section.Fields)
		for _, field := range section.Fields {
			if numericSounding(field) {
				out.numericish = true
			}
		}
	}
	return out
}

// numericSounding reports whether a field likely holds an amount worth
// totalling: an explicit number type, or a label mentioning quantity, cost,
// or price.
func numericSounding(field template.Field) bool {
	if field.Type == template.FieldTypeNumber {
		return true
	}
	label := strings.ToLower(field.Label.EN + " " + field.Label.AR)
	for _, word := range []string{"quantity", "cost", "price"} {
		if strings.Contains(label, word) {
			return true
		}
	}
	return false
}
