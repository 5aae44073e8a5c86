package normalize

import "github.com/goliatone/go-formtemplate/pkg/template"

// Default values applied to absent document properties. Colors follow the
// neutral palette used by the stock PDF themes.
const (
	DefaultFontFamily = "Helvetica"
	DefaultFontSize   = 10

	defaultBorderColor     = "#e5e7eb"
	defaultHeaderCellColor = "#f3f4f6"
	defaultTextColor       = "#111827"
	defaultMutedColor      = "#6b7280"
	defaultPrimaryColor    = "#1f2937"
)

// Normalize returns a copy of doc where every section carries a fully
// populated advanced layout (all four substructures present even when
// disabled), every table has header/cell styles, every column has a field
// type, and the document-wide PDF style has all of its blocks. The pass is
// idempotent and never overwrites a value that is already set: an explicit
// false survives, only nil pointers and zero-length structures are filled.
func Normalize(doc *template.Template) *template.Template {
	if doc == nil {
		return nil
	}
	out := doc.Clone()

	if out.Sections == nil {
		out.Sections = []template.Section{}
	}
	for i := range out.Sections {
		normalizeSection(&out.Sections[i])
	}
	normalizePDFStyle(&out.PDFStyle)
	normalizePageLayout(&out.Layout)
	return out
}

// ForLoad normalizes a document arriving from the API or the catalog. On top
// of Normalize it derives templateDepartment from the legacy departments list
// and rebuilds layout.sectionOrder when the stored one is missing or no
// longer a permutation of the section ids.
func ForLoad(doc *template.Template) *template.Template {
	out := Normalize(doc)
	if out == nil {
		return nil
	}
	if len(out.Departments) > 0 || out.TemplateDepartment == "" {
		out.TemplateDepartment = departmentFromList(out.Departments)
	}
	if !orderInSync(out) {
		rebuildSectionOrder(out)
	}
	return out
}

// ForSave normalizes a document about to be persisted. departments is a
// projection of templateDepartment at save time and is never edited directly,
// so the derivation here is authoritative. Section order numbers are
// reindexed to match their positions and sectionOrder is repaired when the
// two orderings have diverged.
func ForSave(doc *template.Template) *template.Template {
	out := Normalize(doc)
	if out == nil {
		return nil
	}
	if out.TemplateDepartment == "" {
		out.TemplateDepartment = departmentFromList(out.Departments)
	}
	out.Departments = departmentList(out.TemplateDepartment)
	if !orderInSync(out) {
		rebuildSectionOrder(out)
	}
	for i := range out.Sections {
		out.Sections[i].Order = i
	}
	return out
}

// Section normalizes a single section in place. The mutate package uses it
// to hand out fully-formed sections without re-normalizing the whole
// document.
func Section(section *template.Section) {
	normalizeSection(section)
}

// Field normalizes a single field in place.
func Field(field *template.Field) {
	normalizeField(field)
}

func normalizeSection(section *template.Section) {
	if section.SectionType == "" {
		section.SectionType = template.SectionTypeNormal
	}
	if section.Visible == nil {
		section.Visible = template.Bool(true)
	}
	if section.Fields == nil {
		section.Fields = []template.Field{}
	}
	for i := range section.Fields {
		normalizeField(&section.Fields[i])
	}
	normalizeAdvancedLayout(&section.AdvancedLayout, section.PDFStyle)
}

func normalizeAdvancedLayout(layout *template.AdvancedLayout, legacy *template.SectionPDFStyle) {
	if layout.LayoutType == "" {
		layout.LayoutType = template.LayoutSimple
	}
	if layout.Table == nil {
		layout.Table = &template.TableLayout{}
	}
	normalizeTable(layout.Table)
	if layout.Columns == nil {
		layout.Columns = &template.ColumnsLayout{}
	}
	normalizeColumnsLayout(layout.Columns)
	if layout.Grid == nil {
		layout.Grid = &template.GridLayout{}
	}
	if layout.Styling == nil {
		layout.Styling = &template.SectionStyling{}
	}
	normalizeStyling(layout.Styling, legacy)
}

func normalizeTable(table *template.TableLayout) {
	if table.Columns == nil {
		table.Columns = []template.Column{}
	}
	for i := range table.Columns {
		if table.Columns[i].FieldType == "" {
			table.Columns[i].FieldType = template.FieldTypeText
		}
		if table.Columns[i].Alignment == "" {
			table.Columns[i].Alignment = template.AlignLeft
		}
	}
	if table.ShowHeader == nil {
		table.ShowHeader = template.Bool(true)
	}
	if table.ShowBorders == nil {
		table.ShowBorders = template.Bool(true)
	}
	if table.BorderStyle == "" {
		table.BorderStyle = "solid"
	}
	if table.BorderColor == "" {
		table.BorderColor = defaultBorderColor
	}
	if table.BorderWidth == 0 {
		table.BorderWidth = 1
	}
	if table.HeaderStyle == nil {
		table.HeaderStyle = &template.CellStyle{
			BackgroundColor: defaultHeaderCellColor,
			TextColor:       defaultTextColor,
			FontSize:        DefaultFontSize,
			Bold:            true,
		}
	}
	if table.CellStyle == nil {
		table.CellStyle = &template.CellStyle{FontSize: DefaultFontSize - 1}
	}
}

func normalizeColumnsLayout(columns *template.ColumnsLayout) {
	if columns.ColumnCount == 0 {
		columns.ColumnCount = 2
	}
	if columns.ColumnGap == 0 {
		columns.ColumnGap = 16
	}
	if columns.EqualWidths == nil {
		columns.EqualWidths = template.Bool(true)
	}
}

// normalizeStyling fills the styling block, reading the legacy section-level
// pdfStyle as a fallback for colors the newer block does not set yet.
// ShowTitle stays untouched when explicitly set; an absent value defaults to
// true, an explicit false is authoritative.
func normalizeStyling(styling *template.SectionStyling, legacy *template.SectionPDFStyle) {
	if legacy != nil {
		if styling.TitleColor == "" {
			styling.TitleColor = legacy.TitleColor
		}
		if styling.BackgroundColor == "" {
			styling.BackgroundColor = legacy.BackgroundColor
		}
		if styling.TextColor == "" {
			styling.TextColor = legacy.TextColor
		}
		if styling.TitleFontSize == 0 {
			styling.TitleFontSize = legacy.FontSize
		}
	}
	if styling.ShowTitle == nil {
		styling.ShowTitle = template.Bool(true)
	}
}

func normalizeField(field *template.Field) {
	if field.Type == "" {
		field.Type = template.FieldTypeText
	}
	if field.Width == "" {
		field.Width = template.WidthFull
	}
	if field.Visible == nil {
		field.Visible = template.Bool(true)
	}
	if field.PDFDisplay == nil {
		field.PDFDisplay = &template.PDFDisplay{}
	}
	if field.PDFDisplay.ShowLabel == nil {
		field.PDFDisplay.ShowLabel = template.Bool(true)
	}
	if field.PDFDisplay.ShowValue == nil {
		field.PDFDisplay.ShowValue = template.Bool(true)
	}
}

func normalizePDFStyle(style *template.PDFStyle) {
	if style.FontFamily == "" {
		style.FontFamily = DefaultFontFamily
	}
	if style.FontSize == 0 {
		style.FontSize = DefaultFontSize
	}
	if style.Colors.Primary == "" {
		style.Colors.Primary = defaultPrimaryColor
	}
	if style.Colors.Secondary == "" {
		style.Colors.Secondary = defaultMutedColor
	}
	if style.Colors.Text == "" {
		style.Colors.Text = defaultTextColor
	}
	if style.Colors.Background == "" {
		style.Colors.Background = "#ffffff"
	}
	if style.Colors.Border == "" {
		style.Colors.Border = defaultBorderColor
	}
	normalizeHeader(&style.Header)
	normalizeFooter(&style.Footer)
	normalizeMetadata(&style.Metadata)
}

func normalizeHeader(header *template.HeaderStyle) {
	if header.Enabled == nil {
		header.Enabled = template.Bool(true)
	}
	if header.ShowLogo == nil {
		header.ShowLogo = template.Bool(true)
	}
	if header.ShowTitle == nil {
		header.ShowTitle = template.Bool(true)
	}
	if header.ShowSubtitle == nil {
		header.ShowSubtitle = template.Bool(false)
	}
	if header.ShowDate == nil {
		header.ShowDate = template.Bool(true)
	}
	if header.ShowFormID == nil {
		header.ShowFormID = template.Bool(false)
	}
	if header.ShowDepartment == nil {
		header.ShowDepartment = template.Bool(false)
	}
	if header.TitleStyle == "" {
		header.TitleStyle = "plain"
	}
	if header.Alignment == "" {
		header.Alignment = template.AlignLeft
	}
	if header.Border == nil {
		header.Border = &template.BorderStyle{}
	}
	if header.Border.Enabled == nil {
		header.Border.Enabled = template.Bool(false)
	}
	if header.Border.Width == 0 {
		header.Border.Width = 1
	}
	if header.Border.Style == "" {
		header.Border.Style = "solid"
	}
}

func normalizeFooter(footer *template.FooterStyle) {
	if footer.Enabled == nil {
		footer.Enabled = template.Bool(true)
	}
	if footer.ShowCompanyInfo == nil {
		footer.ShowCompanyInfo = template.Bool(false)
	}
	if footer.ShowQRCode == nil {
		footer.ShowQRCode = template.Bool(false)
	}
	if footer.ShowPhone == nil {
		footer.ShowPhone = template.Bool(false)
	}
	if footer.ShowSocialIcons == nil {
		footer.ShowSocialIcons = template.Bool(false)
	}
	if footer.ShowPageNumbers == nil {
		footer.ShowPageNumbers = template.Bool(true)
	}
	if footer.ShowDate == nil {
		footer.ShowDate = template.Bool(true)
	}
}

func normalizeMetadata(meta *template.MetadataToggles) {
	fill := func(p **bool) {
		if *p == nil {
			*p = template.Bool(true)
		}
	}
	fill(&meta.ShowTitle)
	fill(&meta.ShowDescription)
	fill(&meta.ShowDepartment)
	fill(&meta.ShowSubmittedBy)
	fill(&meta.ShowSubmittedAt)
	fill(&meta.ShowStatus)
	fill(&meta.ShowApprovedBy)
	fill(&meta.ShowApprovedAt)
	fill(&meta.ShowFormID)
}

func normalizePageLayout(layout *template.PageLayout) {
	if layout.SectionOrder == nil {
		layout.SectionOrder = []string{}
	}
	if layout.PageSize == "" {
		layout.PageSize = template.PageSizeA4
	}
	if layout.Orientation == "" {
		layout.Orientation = template.OrientationPortrait
	}
}

func departmentFromList(departments []string) string {
	if len(departments) == 0 {
		return template.DepartmentAll
	}
	for _, dep := range departments {
		if dep == template.DepartmentAll {
			return template.DepartmentAll
		}
	}
	return departments[0]
}

func departmentList(department string) []string {
	if department == "" || department == template.DepartmentAll {
		return []string{template.DepartmentAll}
	}
	return []string{department}
}

// orderInSync reports whether sectionOrder is a permutation of the section
// ids: same length, no duplicates, no omissions.
func orderInSync(doc *template.Template) bool {
	if len(doc.Layout.SectionOrder) != len(doc.Sections) {
		return false
	}
	ids := make(map[string]struct{}, len(doc.Sections))
	for _, section := range doc.Sections {
		ids[section.ID] = struct{}{}
	}
	seen := make(map[string]struct{}, len(doc.Layout.SectionOrder))
	for _, id := range doc.Layout.SectionOrder {
		if _, ok := ids[id]; !ok {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

func rebuildSectionOrder(doc *template.Template) {
	order := make([]string, len(doc.Sections))
	for i, section := range doc.Sections {
		order[i] = section.ID
	}
	doc.Layout.SectionOrder = order
}
