package recommend

import (
	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// The company red palette used by the theme and footer actions.
const (
	brandRed      = "#b91c1c"
	brandDarkRed  = "#7f1d1d"
	brandOffWhite = "#fef2f2"
)

// Placeholder contact details printed by the footer action until the caller
// fills in real ones.
const (
	placeholderPhone   = "+966 000 000 000"
	placeholderEmail   = "info@example.com"
	placeholderWebsite = "www.example.com"
)

// tableColumnCap limits how many fields become columns when a section is
// converted to a table.
const tableColumnCap = 5

// tableSectionMinFields is the smallest section the table action converts.
const tableSectionMinFields = 3

func applyTableLayout(doc *template.Template) *template.Template {
	out := doc.Clone()
	keys := template.NewKeyGenerator()
	for i := range out.Sections {
		section := &out.Sections[i]
		if len(section.Fields) < tableSectionMinFields {
			continue
		}
		normalize.Section(section)
		section.AdvancedLayout.LayoutType = template.LayoutTable
		section.AdvancedLayout.Table.Enabled = true

		limit := len(section.Fields)
		if limit > tableColumnCap {
			limit = tableColumnCap
		}
		columns := make([]template.Column, 0, limit)
		for _, field := range section.Fields[:limit] {
			columns = append(columns, template.Column{
				ID:        keys.ColumnID(),
				Label:     field.Label,
				FieldKey:  field.Key,
				FieldType: field.Type,
				Alignment: template.AlignLeft,
			})
		}
		section.AdvancedLayout.Table.Columns = columns
	}
	return out
}

func applyColumnLayout(doc *template.Template) *template.Template {
	out := doc.Clone()
	for i := range out.Sections {
		section := &out.Sections[i]
		normalize.Section(section)
		section.AdvancedLayout.LayoutType = template.LayoutColumns
		section.AdvancedLayout.Columns.Enabled = true
		section.AdvancedLayout.Columns.ColumnCount = 2
		section.AdvancedLayout.Columns.EqualWidths = template.Bool(true)
	}
	return out
}

func applyRedTheme(doc *template.Template) *template.Template {
	out := doc.Clone()
	style := &out.PDFStyle
	style.Branding.PrimaryColor = brandRed
	style.Branding.SecondaryColor = brandDarkRed
	style.Header.TitleColor = brandRed
	style.Header.LineColor = brandRed
	style.Footer.BackgroundColor = brandOffWhite
	style.Footer.TextColor = brandDarkRed
	style.Footer.ShowCompanyInfo = template.Bool(true)
	return out
}

func applyDecorativeHeader(doc *template.Template) *template.Template {
	out := doc.Clone()
	header := &out.PDFStyle.Header
	header.Enabled = template.Bool(true)
	header.ShowLogo = template.Bool(true)
	header.ShowTitle = template.Bool(true)
	header.ShowSubtitle = template.Bool(true)
	header.ShowDate = template.Bool(true)
	header.TitleStyle = "decorative"
	return out
}

func applyProfessionalFooter(doc *template.Template) *template.Template {
	out := doc.Clone()
	footer := &out.PDFStyle.Footer
	footer.Enabled = template.Bool(true)
	footer.ShowCompanyInfo = template.Bool(true)
	footer.ShowQRCode = template.Bool(true)
	footer.ShowPhone = template.Bool(true)
	footer.ShowSocialIcons = template.Bool(true)
	footer.Phone = placeholderPhone
	footer.Email = placeholderEmail
	footer.Website = placeholderWebsite
	return out
}

func applySignatureSection(doc *template.Template) *template.Template {
	out := doc.Clone()
	keys := template.NewKeyGenerator()

	section := template.Section{
		ID:          keys.SectionID(),
		Label:       template.LocalizedText{EN: "Signatures", AR: "التوقيعات"},
		SectionType: template.SectionTypeSignature,
		Order:       len(out.Sections),
		Fields: []template.Field{
			{Key: keys.FieldKey(), Label: template.LocalizedText{EN: "Prepared By", AR: "أعده"}, Type: template.FieldTypeText},
			{Key: keys.FieldKey(), Label: template.LocalizedText{EN: "Approved By", AR: "اعتمده"}, Type: template.FieldTypeText},
		},
	}
	normalize.Section(&section)
	section.AdvancedLayout.LayoutType = template.LayoutColumns
	section.AdvancedLayout.Columns.Enabled = true
	section.AdvancedLayout.Columns.ColumnCount = 2
	section.AdvancedLayout.Columns.EqualWidths = template.Bool(true)

	out.Sections = append(out.Sections, section)
	out.Layout.SectionOrder = append(out.Layout.SectionOrder, section.ID)
	return out
}
