// Package validate is the single gate a form-template document passes before
// persistence. It produces a keyed error map suitable for inline display;
// saves are blocked entirely while the map is non-empty, so a partial
// document is never written.
package validate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

// Errors maps dotted document paths ("title.en", "sections.2.label.ar",
// "sections.2.fields.0.label.en") to user-facing messages.
type Errors map[string]string

// Valid reports whether the map holds no errors.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Result carries the validation outcome together with the document the
// checks ran against. Doc differs from the input only in that blank field
// keys have been backfilled; key generation happens before checking so a
// missing key is never a hard failure.
type Result struct {
	Doc    *template.Template
	Errors Errors
}

// Valid reports whether the document passed every check.
func (r Result) Valid() bool {
	return r.Errors.Valid()
}

// Check validates doc against the save rules: bilingual title, at least one
// section, bilingual section labels, and at least one field per section
// unless the section is a header/footer or uses an enabled table layout with
// at least one column. The input document is not modified.
func Check(doc *template.Template, keys template.KeyGenerator) Result {
	if keys == nil {
		keys = template.NewKeyGenerator()
	}
	out := doc.Clone()
	backfillFieldKeys(out, keys)

	errs := Errors{}

	if blank(out.Title.EN) {
		errs["title.en"] = "English title is required"
	}
	if blank(out.Title.AR) {
		errs["title.ar"] = "Arabic title is required"
	}
	if len(out.Sections) == 0 {
		errs["sections"] = "At least one section is required"
	}

	for i, section := range out.Sections {
		prefix := fmt.Sprintf("sections.%d", i)
		if blank(section.Label.EN) {
			errs[prefix+".label.en"] = fmt.Sprintf("Section %d needs an English label", i+1)
		}
		if blank(section.Label.AR) {
			errs[prefix+".label.ar"] = fmt.Sprintf("Section %d needs an Arabic label", i+1)
		}
		if len(section.Fields) == 0 && !fieldExempt(section) {
			errs[prefix+".fields"] = fmt.Sprintf("Section %d needs at least one field", i+1)
		}
		for j, field := range section.Fields {
			fieldPrefix := fmt.Sprintf("%s.fields.%d", prefix, j)
			if blank(field.Label.EN) {
				errs[fieldPrefix+".label.en"] = fmt.Sprintf("Field %d in section %d needs an English label", j+1, i+1)
			}
			if blank(field.Label.AR) {
				errs[fieldPrefix+".label.ar"] = fmt.Sprintf("Field %d in section %d needs an Arabic label", j+1, i+1)
			}
		}
	}

	return Result{Doc: out, Errors: errs}
}

// fieldExempt reports whether the section is allowed to have no fields:
// header/footer sections carry no data entry, and an enabled table layout
// with at least one column substitutes its columns for fields.
func fieldExempt(section template.Section) bool {
	switch section.SectionType {
	case template.SectionTypeHeader, template.SectionTypeFooter:
		return true
	}
	layout := section.AdvancedLayout
	if layout.LayoutType != template.LayoutTable || layout.Table == nil {
		return false
	}
	return layout.Table.Enabled && len(layout.Table.Columns) > 0
}

func backfillFieldKeys(doc *template.Template, keys template.KeyGenerator) {
	for i := range doc.Sections {
		for j := range doc.Sections[i].Fields {
			if blank(doc.Sections[i].Fields[j].Key) {
				doc.Sections[i].Fields[j].Key = keys.FieldKey()
			}
		}
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
