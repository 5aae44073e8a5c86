// Package preview renders a form-template document as a standalone HTML
// page approximating its printed output. Rendering goes through a pongo2
// template set; author-supplied markup is sanitized before it reaches the
// page and the document's branding is exposed as CSS variables.
package preview

import (
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

const previewTemplate = "templates/preview"

// Options control how a document is previewed.
type Options struct {
	// Locale selects which side of the localized strings to print, "en" or
	// "ar". Arabic renders right to left.
	Locale string
	// Theme overrides the theme derived from the document's pdfStyle.
	Theme *theme.RendererConfig
	// Engine overrides the shared engine, for callers serving their own
	// template bundle.
	Engine *Engine
}

// HTML renders doc as a complete HTML page.
func HTML(doc *template.Template, opts Options) (string, error) {
	if doc == nil {
		return "", errors.New("preview: document is required")
	}
	engine := opts.Engine
	if engine == nil {
		var err error
		engine, err = NewEngine()
		if err != nil {
			return "", err
		}
	}

	ctx, err := viewContext(doc, opts)
	if err != nil {
		return "", err
	}
	return engine.RenderTemplate(previewTemplate, ctx)
}

func viewContext(doc *template.Template, opts Options) (map[string]any, error) {
	locale := opts.Locale
	switch locale {
	case "", "en":
		locale = "en"
	case "ar":
	default:
		return nil, fmt.Errorf("preview: unsupported locale %q", opts.Locale)
	}

	doc = normalize.ForLoad(doc)
	themeCfg := documentTheme(doc, opts.Theme)

	sections := make([]map[string]any, 0, len(doc.Sections))
	for _, id := range doc.Layout.SectionOrder {
		section := sectionByID(doc, id)
		if section == nil || !template.BoolValue(section.Visible, true) {
			continue
		}
		sections = append(sections, sectionContext(section, locale))
	}

	header := doc.PDFStyle.Header
	footer := doc.PDFStyle.Footer

	return map[string]any{
		"locale":    locale,
		"rtl":       locale == "ar",
		"title":     localized(doc.Title, locale),
		"subtitle":  localized(doc.Description, locale),
		"pageSize":  string(doc.Layout.PageSize),
		"landscape": doc.Layout.Orientation == template.OrientationLandscape,
		"cssVars":   cssVarsStyle(themeCfg.CSSVars),
		"themeName": themeCfg.Theme,
		"variant":   themeCfg.Variant,
		"header": map[string]any{
			"enabled":    template.BoolValue(header.Enabled, true),
			"showLogo":   template.BoolValue(header.ShowLogo, true),
			"showTitle":  template.BoolValue(header.ShowTitle, true),
			"showDate":   template.BoolValue(header.ShowDate, true),
			"decorative": header.TitleStyle == "decorative",
			"titleColor": header.TitleColor,
			"logo":       sanitizeMarkup(doc.PDFStyle.Branding.LogoURL),
			"company":    localized(doc.PDFStyle.Branding.CompanyName, locale),
		},
		"footer": map[string]any{
			"enabled":         template.BoolValue(footer.Enabled, true),
			"showCompanyInfo": template.BoolValue(footer.ShowCompanyInfo, false),
			"showPageNumbers": template.BoolValue(footer.ShowPageNumbers, true),
			"content":         sanitizeMarkup(localized(footer.Content, locale)),
			"phone":           footer.Phone,
			"email":           footer.Email,
			"website":         footer.Website,
		},
		"sections": sections,
	}, nil
}

func sectionContext(section *template.Section, locale string) map[string]any {
	layout := section.AdvancedLayout
	showTitle := true
	if layout.Styling != nil {
		showTitle = template.BoolValue(layout.Styling.ShowTitle, true)
	}

	ctx := map[string]any{
		"id":        section.ID,
		"label":     localized(section.Label, locale),
		"type":      string(section.SectionType),
		"layout":    string(layout.LayoutType),
		"showTitle": showTitle,
		"columns":   0,
	}

	switch layout.LayoutType {
	case template.LayoutTable:
		if layout.Table != nil && layout.Table.Enabled {
			ctx["table"] = tableContext(layout.Table, locale)
		}
	case template.LayoutColumns:
		if layout.Columns != nil {
			ctx["columns"] = layout.Columns.ColumnCount
		}
	case template.LayoutGrid:
		if layout.Grid != nil {
			ctx["columns"] = layout.Grid.Columns
		}
	}

	fields := make([]map[string]any, 0, len(section.Fields))
	for _, field := range section.Fields {
		if !template.BoolValue(field.Visible, true) {
			continue
		}
		fields = append(fields, map[string]any{
			"key":      field.Key,
			"label":    localized(field.Label, locale),
			"type":     string(field.Type),
			"required": field.Required,
			"width":    string(field.Width),
		})
	}
	ctx["fields"] = fields
	return ctx
}

func tableContext(table *template.TableLayout, locale string) map[string]any {
	columns := make([]map[string]any, 0, len(table.Columns))
	for _, col := range table.Columns {
		columns = append(columns, map[string]any{
			"label":     localized(col.Label, locale),
			"width":     col.Width,
			"alignment": string(col.Alignment),
		})
	}
	rows := table.NumberOfRows
	if rows <= 0 {
		rows = 5
	}
	return map[string]any{
		"columns":     columns,
		"rows":        make([]struct{}, rows),
		"showHeader":  template.BoolValue(table.ShowHeader, true),
		"showBorders": template.BoolValue(table.ShowBorders, true),
		"striped":     table.StripedRows,
	}
}

func sectionByID(doc *template.Template, id string) *template.Section {
	for i := range doc.Sections {
		if doc.Sections[i].ID == id {
			return &doc.Sections[i]
		}
	}
	return nil
}

func localized(text template.LocalizedText, locale string) string {
	if locale == "ar" && text.AR != "" {
		return text.AR
	}
	if text.EN != "" {
		return text.EN
	}
	return text.AR
}
