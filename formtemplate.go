// Package formtemplate re-exports the core document workflow so callers can
// build, validate, and transform form templates without importing each
// subpackage.
package formtemplate

import (
	"github.com/goliatone/go-formtemplate/pkg/mutate"
	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/recommend"
	"github.com/goliatone/go-formtemplate/pkg/template"
	"github.com/goliatone/go-formtemplate/pkg/validate"
)

// Template is the bilingual form-template document.
type Template = template.Template

// Section is one block of fields within a template.
type Section = template.Section

// Field is a single input within a section.
type Field = template.Field

// LocalizedText pairs the English and Arabic renderings of a string.
type LocalizedText = template.LocalizedText

// Editor tracks a working document and the selected section across edits.
type Editor = mutate.Editor

// Recommendation is one suggested layout or styling transformation.
type Recommendation = recommend.Recommendation

// ValidationErrors maps dotted document paths to messages.
type ValidationErrors = validate.Errors

// NewEditor starts an editing session over a copy of doc.
func NewEditor(doc *template.Template, options ...mutate.Option) *mutate.Editor {
	return mutate.NewEditor(doc, options...)
}

// Normalize fills structural defaults without overriding explicit choices.
func Normalize(doc *template.Template) *template.Template {
	return normalize.Normalize(doc)
}

// Validate checks a document, returning its keyed error map.
func Validate(doc *template.Template) ValidationErrors {
	return validate.Check(doc, template.NewKeyGenerator()).Errors
}

// Recommend suggests layout and styling transformations for doc.
func Recommend(doc *template.Template) []Recommendation {
	return recommend.Recommend(doc)
}
