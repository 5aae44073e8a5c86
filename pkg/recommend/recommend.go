// Package recommend inspects a form-template document and suggests layout
// and styling transformations. Classification is heuristic (keyword matches
// on title and description plus field counts); each suggestion either
// carries a pure document transform or is advisory-only.
package recommend

import (
	"sort"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

// Priority ranks how strongly a recommendation applies.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation identifiers, stable across releases so callers can track
// dismissals.
const (
	IDTableLayout        = "table-layout"
	IDColumnLayout       = "column-layout"
	IDRedTheme           = "red-theme"
	IDDecorativeHeader   = "decorative-header"
	IDProfessionalFooter = "professional-footer"
	IDSignatureSection   = "signature-section"
	IDTotalsRow          = "totals-row"
)

// Recommendation is one suggested transformation. Apply is nil for
// advisory-only suggestions, which must not be offered an apply control;
// otherwise it is a pure transform that clones its input.
type Recommendation struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Apply       func(*template.Template) *template.Template
}

// Actionable reports whether the recommendation carries a transform.
func (r Recommendation) Actionable() bool {
	return r.Apply != nil
}

// Recommend returns the suggestions matching the document, ordered by
// priority (high first) with generation order breaking ties. It is
// deterministic: the same document always yields the same list.
func Recommend(doc *template.Template) []Recommendation {
	if doc == nil {
		return nil
	}
	kind := classify(doc)
	size := measure(doc)

	var out []Recommendation

	if kind.recipe || kind.inventory || (size.fields >= manyFields && !kind.form) {
		out = append(out, Recommendation{
			ID:          IDTableLayout,
			Title:       "Use Table Layout",
			Description: "Data-heavy sections read better as tables; sections with three or more fields are converted and their first five fields become columns.",
			Priority:    PriorityHigh,
			Apply:       applyTableLayout,
		})
	}

	if kind.form || (size.fields > 0 && size.fields <= fewFields) {
		out = append(out, Recommendation{
			ID:          IDColumnLayout,
			Title:       "Use Column Layout",
			Description: "Short forms fit comfortably in two equal columns.",
			Priority:    PriorityMedium,
			Apply:       applyColumnLayout,
		})
	}

	if kind.recipe || kind.log || kind.report {
		out = append(out, Recommendation{
			ID:          IDRedTheme,
			Title:       "Apply Professional Red Theme",
			Description: "Brand the printed output with the company red palette across header, footer, and branding colors.",
			Priority:    PriorityHigh,
			Apply:       applyRedTheme,
		})
	}

	if kind.report || kind.log {
		out = append(out, Recommendation{
			ID:          IDDecorativeHeader,
			Title:       "Enable Decorative Header",
			Description: "Show the logo, title, subtitle, and date with the decorative title style.",
			Priority:    PriorityMedium,
			Apply:       applyDecorativeHeader,
		})
	}

	if kind.report || kind.log || kind.form {
		out = append(out, Recommendation{
			ID:          IDProfessionalFooter,
			Title:       "Add Professional Footer",
			Description: "Print company info, QR code, phone, and social icons in the footer.",
			Priority:    PriorityMedium,
			Apply:       applyProfessionalFooter,
		})
	}

	if kind.report && size.sections > 1 {
		out = append(out, Recommendation{
			ID:          IDSignatureSection,
			Title:       "Add Signature Section",
			Description: "Reports usually close with prepared-by and approved-by signatures.",
			Priority:    PriorityLow,
			Apply:       applySignatureSection,
		})
	}

	if size.fields >= manyFields && size.numericish {
		out = append(out, Recommendation{
			ID:          IDTotalsRow,
			Title:       "Add Totals Row",
			Description: "Numeric columns like quantity, cost, or price could be summed in a totals row.",
			Priority:    PriorityMedium,
			// Advisory only: where the totals belong depends on the section.
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	return out
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
