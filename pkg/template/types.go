package template

// LocalizedText carries the English and Arabic renditions of a user-facing
// string. Both values are required wherever the validator checks labels.
type LocalizedText struct {
	EN string `json:"en" yaml:"en"`
	AR string `json:"ar" yaml:"ar"`
}

// Empty reports whether both locales are blank.
func (t LocalizedText) Empty() bool {
	return t.EN == "" && t.AR == ""
}

// SectionType tags the semantic role of a section.
type SectionType string

const (
	SectionTypeNormal    SectionType = "normal"
	SectionTypeHeader    SectionType = "header"
	SectionTypeFooter    SectionType = "footer"
	SectionTypeSignature SectionType = "signature"
	SectionTypeApproval  SectionType = "approval"
	SectionTypeStamp     SectionType = "stamp"
	SectionTypeTotals    SectionType = "totals"
	SectionTypeNotes     SectionType = "notes"
)

// FieldType enumerates the supported data-entry element kinds.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeSelect   FieldType = "select"
	FieldTypeDate     FieldType = "date"
	FieldTypeTime     FieldType = "time"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeFile     FieldType = "file"
)

// FieldWidth describes how much of the row a field occupies.
type FieldWidth string

const (
	WidthFull          FieldWidth = "full"
	WidthHalf          FieldWidth = "half"
	WidthThird         FieldWidth = "third"
	WidthTwoThirds     FieldWidth = "two-thirds"
	WidthQuarter       FieldWidth = "quarter"
	WidthThreeQuarters FieldWidth = "three-quarters"
)

// LayoutType selects which advanced-layout strategy is active for a section.
// Only the substructure matching the active type is meaningful; the others
// may remain populated but must not affect rendering.
type LayoutType string

const (
	LayoutSimple  LayoutType = "simple"
	LayoutTable   LayoutType = "table"
	LayoutColumns LayoutType = "columns"
	LayoutGrid    LayoutType = "grid"
)

// PageSize enumerates the supported print page sizes.
type PageSize string

const (
	PageSizeA4     PageSize = "A4"
	PageSizeLetter PageSize = "Letter"
	PageSizeLegal  PageSize = "Legal"
)

// Orientation enumerates print orientations.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Alignment enumerates horizontal alignments used by columns and headers.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// DepartmentAll is the sentinel department meaning "visible everywhere".
const DepartmentAll = "all"

// Template is the root document describing one form's structure, page
// layout, and PDF styling. It is persisted whole; there is no partial write.
type Template struct {
	ID                 string        `json:"_id,omitempty" yaml:"id,omitempty"`
	Title              LocalizedText `json:"title" yaml:"title"`
	Description        LocalizedText `json:"description" yaml:"description"`
	Sections           []Section     `json:"sections" yaml:"sections"`
	VisibleToRoles     []string      `json:"visibleToRoles,omitempty" yaml:"visibleToRoles,omitempty"`
	EditableByRoles    []string      `json:"editableByRoles,omitempty" yaml:"editableByRoles,omitempty"`
	Departments        []string      `json:"departments,omitempty" yaml:"departments,omitempty"`
	TemplateDepartment string        `json:"templateDepartment,omitempty" yaml:"templateDepartment,omitempty"`
	RequiresApproval   bool          `json:"requiresApproval" yaml:"requiresApproval"`
	Layout             PageLayout    `json:"layout" yaml:"layout"`
	PDFStyle           PDFStyle      `json:"pdfStyle" yaml:"pdfStyle"`
}

// PageLayout captures page-level metadata. SectionOrder must remain a
// permutation of the section ids; the mutate package keeps the two in sync.
type PageLayout struct {
	SectionOrder []string    `json:"sectionOrder" yaml:"sectionOrder"`
	PageSize     PageSize    `json:"pageSize,omitempty" yaml:"pageSize,omitempty"`
	Orientation  Orientation `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Margins      Margins     `json:"margins" yaml:"margins"`
}

// Margins holds the four print margins in points. Values are never negative.
type Margins struct {
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Left   int `json:"left" yaml:"left"`
}

// Section is one region of the form. Its id is generated once at creation
// and never reused.
type Section struct {
	ID             string           `json:"id" yaml:"id"`
	Label          LocalizedText    `json:"label" yaml:"label"`
	SectionType    SectionType      `json:"sectionType,omitempty" yaml:"sectionType,omitempty"`
	Fields         []Field          `json:"fields" yaml:"fields"`
	Order          int              `json:"order" yaml:"order"`
	Visible        *bool            `json:"visible,omitempty" yaml:"visible,omitempty"`
	AdvancedLayout AdvancedLayout   `json:"advancedLayout" yaml:"advancedLayout"`
	PDFStyle       *SectionPDFStyle `json:"pdfStyle,omitempty" yaml:"pdfStyle,omitempty"`
}

// SectionPDFStyle is the legacy section-local styling block. It is superseded
// by AdvancedLayout.Styling but still read as a fallback when the newer
// fields are absent.
type SectionPDFStyle struct {
	TitleColor      string `json:"titleColor,omitempty" yaml:"titleColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	FontSize        int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
}

// AdvancedLayout is the tagged union of rendering strategies for a section.
// LayoutType names the active branch; inactive substructures may be present
// but stale.
type AdvancedLayout struct {
	LayoutType LayoutType      `json:"layoutType,omitempty" yaml:"layoutType,omitempty"`
	Table      *TableLayout    `json:"table,omitempty" yaml:"table,omitempty"`
	Columns    *ColumnsLayout  `json:"columns,omitempty" yaml:"columns,omitempty"`
	Grid       *GridLayout     `json:"grid,omitempty" yaml:"grid,omitempty"`
	Styling    *SectionStyling `json:"styling,omitempty" yaml:"styling,omitempty"`
	Spacing    map[string]any  `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Sizing     map[string]any  `json:"sizing,omitempty" yaml:"sizing,omitempty"`
	Padding    map[string]any  `json:"padding,omitempty" yaml:"padding,omitempty"`
	Margins    map[string]any  `json:"margins,omitempty" yaml:"margins,omitempty"`
}

// TableLayout renders a section as a data-entry table. Rows are either a
// static count (NumberOfRows) or generated from the values of the field
// referenced by RowSource when DynamicRows is set.
type TableLayout struct {
	Enabled      bool       `json:"enabled" yaml:"enabled"`
	Columns      []Column   `json:"columns" yaml:"columns"`
	NumberOfRows int        `json:"numberOfRows,omitempty" yaml:"numberOfRows,omitempty"`
	DynamicRows  bool       `json:"dynamicRows,omitempty" yaml:"dynamicRows,omitempty"`
	RowSource    string     `json:"rowSource,omitempty" yaml:"rowSource,omitempty"`
	ShowHeader   *bool      `json:"showHeader,omitempty" yaml:"showHeader,omitempty"`
	ShowBorders  *bool      `json:"showBorders,omitempty" yaml:"showBorders,omitempty"`
	BorderStyle  string     `json:"borderStyle,omitempty" yaml:"borderStyle,omitempty"`
	BorderColor  string     `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BorderWidth  int        `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	StripedRows  bool       `json:"stripedRows,omitempty" yaml:"stripedRows,omitempty"`
	HeaderStyle  *CellStyle `json:"headerStyle,omitempty" yaml:"headerStyle,omitempty"`
	CellStyle    *CellStyle `json:"cellStyle,omitempty" yaml:"cellStyle,omitempty"`
}

// CellStyle formats table header or body cells.
type CellStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	FontSize        int    `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Bold            bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
}

// Column binds one table column to a field in the same section. An empty
// FieldKey is permitted and means "unbound". FieldType is independent of the
// bound field's own type and defaults to text.
type Column struct {
	ID          string        `json:"id" yaml:"id"`
	Label       LocalizedText `json:"label" yaml:"label"`
	FieldKey    string        `json:"fieldKey" yaml:"fieldKey"`
	FieldType   FieldType     `json:"fieldType,omitempty" yaml:"fieldType,omitempty"`
	Width       string        `json:"width,omitempty" yaml:"width,omitempty"`
	Alignment   Alignment     `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	HeaderStyle *CellStyle    `json:"headerStyle,omitempty" yaml:"headerStyle,omitempty"`
}

// ColumnsLayout renders a section's fields flowed across vertical columns.
type ColumnsLayout struct {
	Enabled      bool     `json:"enabled" yaml:"enabled"`
	ColumnCount  int      `json:"columnCount,omitempty" yaml:"columnCount,omitempty"`
	ColumnGap    int      `json:"columnGap,omitempty" yaml:"columnGap,omitempty"`
	EqualWidths  *bool    `json:"equalWidths,omitempty" yaml:"equalWidths,omitempty"`
	ColumnWidths []string `json:"columnWidths,omitempty" yaml:"columnWidths,omitempty"`
}

// GridLayout renders a section as an explicit grid. Template, when set, is an
// opaque raw grid-template string passed through to the renderer.
type GridLayout struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Rows     int    `json:"rows,omitempty" yaml:"rows,omitempty"`
	Columns  int    `json:"columns,omitempty" yaml:"columns,omitempty"`
	Gap      int    `json:"gap,omitempty" yaml:"gap,omitempty"`
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
}

// SectionStyling holds per-section colors and title treatment. ShowTitle is
// tri-state: nil means "use the default" (render the title), while an
// explicit false is authoritative and must survive normalization.
type SectionStyling struct {
	TitleColor      string `json:"titleColor,omitempty" yaml:"titleColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	TitleFontSize   int    `json:"titleFontSize,omitempty" yaml:"titleFontSize,omitempty"`
	ShowTitle       *bool  `json:"showTitle,omitempty" yaml:"showTitle,omitempty"`
}

// Field is one data-entry element inside a section. Key is unique within the
// section and backfilled by the validator when blank.
type Field struct {
	Key        string          `json:"key" yaml:"key"`
	Label      LocalizedText   `json:"label" yaml:"label"`
	Type       FieldType       `json:"type" yaml:"type"`
	Required   bool            `json:"required" yaml:"required"`
	Visible    *bool           `json:"visible,omitempty" yaml:"visible,omitempty"`
	Width      FieldWidth      `json:"width,omitempty" yaml:"width,omitempty"`
	Options    []LocalizedText `json:"options,omitempty" yaml:"options,omitempty"`
	PDFDisplay *PDFDisplay     `json:"pdfDisplay,omitempty" yaml:"pdfDisplay,omitempty"`
	Layout     *FieldLayout    `json:"layout,omitempty" yaml:"layout,omitempty"`
}

// PDFDisplay controls print-time visibility and formatting of a field,
// independent of the on-screen Visible flag.
type PDFDisplay struct {
	ShowLabel *bool `json:"showLabel,omitempty" yaml:"showLabel,omitempty"`
	ShowValue *bool `json:"showValue,omitempty" yaml:"showValue,omitempty"`
	FontSize  int   `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Bold      bool  `json:"bold,omitempty" yaml:"bold,omitempty"`
}

// FieldLayout carries per-field color and font-size overrides populated by
// the styling surfaces and bulk text-size presets.
type FieldLayout struct {
	LabelColor    string `json:"labelColor,omitempty" yaml:"labelColor,omitempty"`
	ValueColor    string `json:"valueColor,omitempty" yaml:"valueColor,omitempty"`
	LabelFontSize int    `json:"labelFontSize,omitempty" yaml:"labelFontSize,omitempty"`
	ValueFontSize int    `json:"valueFontSize,omitempty" yaml:"valueFontSize,omitempty"`
}

// PDFStyle is the document-wide print configuration.
type PDFStyle struct {
	Branding   Branding        `json:"branding" yaml:"branding"`
	Header     HeaderStyle     `json:"header" yaml:"header"`
	Footer     FooterStyle     `json:"footer" yaml:"footer"`
	Metadata   MetadataToggles `json:"metadata" yaml:"metadata"`
	FontFamily string          `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontSize   int             `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Colors     ColorScheme     `json:"colors" yaml:"colors"`
	Spacing    map[string]any  `json:"spacing,omitempty" yaml:"spacing,omitempty"`
}

// Branding holds company identity used by printed headers and footers.
type Branding struct {
	PrimaryColor   string        `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	SecondaryColor string        `json:"secondaryColor,omitempty" yaml:"secondaryColor,omitempty"`
	CompanyName    LocalizedText `json:"companyName" yaml:"companyName"`
	LogoURL        string        `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
}

// HeaderStyle configures the printed page header.
type HeaderStyle struct {
	Enabled         *bool        `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ShowLogo        *bool        `json:"showLogo,omitempty" yaml:"showLogo,omitempty"`
	ShowTitle       *bool        `json:"showTitle,omitempty" yaml:"showTitle,omitempty"`
	ShowSubtitle    *bool        `json:"showSubtitle,omitempty" yaml:"showSubtitle,omitempty"`
	ShowDate        *bool        `json:"showDate,omitempty" yaml:"showDate,omitempty"`
	ShowFormID      *bool        `json:"showFormId,omitempty" yaml:"showFormId,omitempty"`
	ShowDepartment  *bool        `json:"showDepartment,omitempty" yaml:"showDepartment,omitempty"`
	TitleStyle      string       `json:"titleStyle,omitempty" yaml:"titleStyle,omitempty"`
	TitleColor      string       `json:"titleColor,omitempty" yaml:"titleColor,omitempty"`
	SubtitleColor   string       `json:"subtitleColor,omitempty" yaml:"subtitleColor,omitempty"`
	BackgroundColor string       `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	LineColor       string       `json:"lineColor,omitempty" yaml:"lineColor,omitempty"`
	Height          int          `json:"height,omitempty" yaml:"height,omitempty"`
	Alignment       Alignment    `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Border          *BorderStyle `json:"border,omitempty" yaml:"border,omitempty"`
}

// BorderStyle configures the optional rule under the printed header.
type BorderStyle struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Width   int    `json:"width,omitempty" yaml:"width,omitempty"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
	Style   string `json:"style,omitempty" yaml:"style,omitempty"`
}

// FooterStyle configures the printed page footer.
type FooterStyle struct {
	Enabled         *bool         `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ShowCompanyInfo *bool         `json:"showCompanyInfo,omitempty" yaml:"showCompanyInfo,omitempty"`
	ShowQRCode      *bool         `json:"showQrCode,omitempty" yaml:"showQrCode,omitempty"`
	ShowPhone       *bool         `json:"showPhone,omitempty" yaml:"showPhone,omitempty"`
	ShowSocialIcons *bool         `json:"showSocialIcons,omitempty" yaml:"showSocialIcons,omitempty"`
	ShowPageNumbers *bool         `json:"showPageNumbers,omitempty" yaml:"showPageNumbers,omitempty"`
	ShowDate        *bool         `json:"showDate,omitempty" yaml:"showDate,omitempty"`
	Content         LocalizedText `json:"content" yaml:"content"`
	Phone           string        `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email           string        `json:"email,omitempty" yaml:"email,omitempty"`
	Website         string        `json:"website,omitempty" yaml:"website,omitempty"`
	BackgroundColor string        `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	TextColor       string        `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	Height          int           `json:"height,omitempty" yaml:"height,omitempty"`
}

// MetadataToggles selects which form metadata rows print below the header.
type MetadataToggles struct {
	ShowTitle       *bool `json:"showTitle,omitempty" yaml:"showTitle,omitempty"`
	ShowDescription *bool `json:"showDescription,omitempty" yaml:"showDescription,omitempty"`
	ShowDepartment  *bool `json:"showDepartment,omitempty" yaml:"showDepartment,omitempty"`
	ShowSubmittedBy *bool `json:"showSubmittedBy,omitempty" yaml:"showSubmittedBy,omitempty"`
	ShowSubmittedAt *bool `json:"showSubmittedAt,omitempty" yaml:"showSubmittedAt,omitempty"`
	ShowStatus      *bool `json:"showStatus,omitempty" yaml:"showStatus,omitempty"`
	ShowApprovedBy  *bool `json:"showApprovedBy,omitempty" yaml:"showApprovedBy,omitempty"`
	ShowApprovedAt  *bool `json:"showApprovedAt,omitempty" yaml:"showApprovedAt,omitempty"`
	ShowFormID      *bool `json:"showFormId,omitempty" yaml:"showFormId,omitempty"`
}

// ColorScheme holds the document-wide palette.
type ColorScheme struct {
	Primary    string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Border     string `json:"border,omitempty" yaml:"border,omitempty"`
}

// Bool returns a pointer to v. Convenient for the tri-state boolean fields.
func Bool(v bool) *bool {
	return &v
}

// BoolValue dereferences p, falling back to def when p is nil.
func BoolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
