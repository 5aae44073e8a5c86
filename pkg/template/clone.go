package template

// Clone returns a deep copy of the document. Mutators operate on clones so
// the pre- and post-edit documents never share references, which keeps
// undo/diffing possible for callers that retain both.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	out := *t
	out.Sections = cloneSections(t.Sections)
	out.VisibleToRoles = cloneStrings(t.VisibleToRoles)
	out.EditableByRoles = cloneStrings(t.EditableByRoles)
	out.Departments = cloneStrings(t.Departments)
	out.Layout.SectionOrder = cloneStrings(t.Layout.SectionOrder)
	out.PDFStyle = t.PDFStyle.clone()
	return &out
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.Visible = cloneBool(s.Visible)
	out.Fields = make([]Field, len(s.Fields))
	for i, f := range s.Fields {
		out.Fields[i] = f.Clone()
	}
	out.AdvancedLayout = s.AdvancedLayout.clone()
	if s.PDFStyle != nil {
		cp := *s.PDFStyle
		out.PDFStyle = &cp
	}
	return out
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	out.Visible = cloneBool(f.Visible)
	out.Options = append([]LocalizedText(nil), f.Options...)
	if len(f.Options) == 0 {
		out.Options = nil
	}
	if f.PDFDisplay != nil {
		cp := *f.PDFDisplay
		cp.ShowLabel = cloneBool(f.PDFDisplay.ShowLabel)
		cp.ShowValue = cloneBool(f.PDFDisplay.ShowValue)
		out.PDFDisplay = &cp
	}
	if f.Layout != nil {
		cp := *f.Layout
		out.Layout = &cp
	}
	return out
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	out := c
	if c.HeaderStyle != nil {
		cp := *c.HeaderStyle
		out.HeaderStyle = &cp
	}
	return out
}

func (a AdvancedLayout) clone() AdvancedLayout {
	out := a
	if a.Table != nil {
		cp := *a.Table
		cp.ShowHeader = cloneBool(a.Table.ShowHeader)
		cp.ShowBorders = cloneBool(a.Table.ShowBorders)
		cp.HeaderStyle = cloneCellStyle(a.Table.HeaderStyle)
		cp.CellStyle = cloneCellStyle(a.Table.CellStyle)
		cp.Columns = make([]Column, len(a.Table.Columns))
		for i, col := range a.Table.Columns {
			cp.Columns[i] = col.Clone()
		}
		out.Table = &cp
	}
	if a.Columns != nil {
		cp := *a.Columns
		cp.EqualWidths = cloneBool(a.Columns.EqualWidths)
		cp.ColumnWidths = cloneStrings(a.Columns.ColumnWidths)
		out.Columns = &cp
	}
	if a.Grid != nil {
		cp := *a.Grid
		out.Grid = &cp
	}
	if a.Styling != nil {
		cp := *a.Styling
		cp.ShowTitle = cloneBool(a.Styling.ShowTitle)
		out.Styling = &cp
	}
	out.Spacing = cloneAnyMap(a.Spacing)
	out.Sizing = cloneAnyMap(a.Sizing)
	out.Padding = cloneAnyMap(a.Padding)
	out.Margins = cloneAnyMap(a.Margins)
	return out
}

func (p PDFStyle) clone() PDFStyle {
	out := p
	out.Header = p.Header.clone()
	out.Footer = p.Footer.clone()
	out.Metadata = p.Metadata.clone()
	out.Spacing = cloneAnyMap(p.Spacing)
	return out
}

func (h HeaderStyle) clone() HeaderStyle {
	out := h
	out.Enabled = cloneBool(h.Enabled)
	out.ShowLogo = cloneBool(h.ShowLogo)
	out.ShowTitle = cloneBool(h.ShowTitle)
	out.ShowSubtitle = cloneBool(h.ShowSubtitle)
	out.ShowDate = cloneBool(h.ShowDate)
	out.ShowFormID = cloneBool(h.ShowFormID)
	out.ShowDepartment = cloneBool(h.ShowDepartment)
	if h.Border != nil {
		cp := *h.Border
		cp.Enabled = cloneBool(h.Border.Enabled)
		out.Border = &cp
	}
	return out
}

func (f FooterStyle) clone() FooterStyle {
	out := f
	out.Enabled = cloneBool(f.Enabled)
	out.ShowCompanyInfo = cloneBool(f.ShowCompanyInfo)
	out.ShowQRCode = cloneBool(f.ShowQRCode)
	out.ShowPhone = cloneBool(f.ShowPhone)
	out.ShowSocialIcons = cloneBool(f.ShowSocialIcons)
	out.ShowPageNumbers = cloneBool(f.ShowPageNumbers)
	out.ShowDate = cloneBool(f.ShowDate)
	return out
}

func (m MetadataToggles) clone() MetadataToggles {
	return MetadataToggles{
		ShowTitle:       cloneBool(m.ShowTitle),
		ShowDescription: cloneBool(m.ShowDescription),
		ShowDepartment:  cloneBool(m.ShowDepartment),
		ShowSubmittedBy: cloneBool(m.ShowSubmittedBy),
		ShowSubmittedAt: cloneBool(m.ShowSubmittedAt),
		ShowStatus:      cloneBool(m.ShowStatus),
		ShowApprovedBy:  cloneBool(m.ShowApprovedBy),
		ShowApprovedAt:  cloneBool(m.ShowApprovedAt),
		ShowFormID:      cloneBool(m.ShowFormID),
	}
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.Clone()
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneCellStyle(p *CellStyle) *CellStyle {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func cloneAnyMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
