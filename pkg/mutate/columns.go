package mutate

import (
	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// SetLayoutType switches the section's active layout strategy and makes sure
// the newly-active substructure exists and is enabled. The inactive
// substructures are left as-is so switching back restores previous settings.
func SetLayoutType(doc *template.Template, sectionIndex int, layoutType template.LayoutType) *template.Template {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out
	}
	section := &out.Sections[sectionIndex]
	normalize.Section(section)
	setLayoutType(section, layoutType)
	return out
}

// AddTableColumn appends an unbound text column to the section's table. The
// section is switched into table layout first, so adding the first column is
// all a caller needs to do to enter table mode.
func AddTableColumn(doc *template.Template, sectionIndex int, keys template.KeyGenerator) *template.Template {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out
	}
	section := &out.Sections[sectionIndex]
	normalize.Section(section)
	setLayoutType(section, template.LayoutTable)

	column := template.Column{
		ID:        keys.ColumnID(),
		FieldType: template.FieldTypeText,
		Alignment: template.AlignLeft,
	}
	section.AdvancedLayout.Table.Columns = append(section.AdvancedLayout.Table.Columns, column)
	return out
}

// RemoveTableColumn drops the column at columnIndex.
func RemoveTableColumn(doc *template.Template, sectionIndex, columnIndex int) *template.Template {
	out := doc.Clone()
	table := tableAt(out, sectionIndex)
	if table == nil || columnIndex < 0 || columnIndex >= len(table.Columns) {
		return out
	}
	table.Columns = append(table.Columns[:columnIndex], table.Columns[columnIndex+1:]...)
	return out
}

// MoveTableColumn swaps the column at columnIndex with its neighbour.
// Boundary moves are no-ops.
func MoveTableColumn(doc *template.Template, sectionIndex, columnIndex int, direction Direction) *template.Template {
	out := doc.Clone()
	table := tableAt(out, sectionIndex)
	if table == nil {
		return out
	}
	neighbour := columnIndex - 1
	if direction == MoveDown {
		neighbour = columnIndex + 1
	}
	if columnIndex < 0 || columnIndex >= len(table.Columns) || neighbour < 0 || neighbour >= len(table.Columns) {
		return out
	}
	table.Columns[columnIndex], table.Columns[neighbour] = table.Columns[neighbour], table.Columns[columnIndex]
	return out
}

// UpdateTableColumn sets a possibly-nested property on the column at
// columnIndex, addressed by a dotted path over the JSON names
// (e.g. "label.en", "headerStyle.bold").
func UpdateTableColumn(doc *template.Template, sectionIndex, columnIndex int, path string, value any) (*template.Template, error) {
	out := doc.Clone()
	table := tableAt(out, sectionIndex)
	if table == nil || columnIndex < 0 || columnIndex >= len(table.Columns) {
		return out, nil
	}
	if err := setPath(&table.Columns[columnIndex], path, value); err != nil {
		return nil, err
	}
	return out, nil
}

func setLayoutType(section *template.Section, layoutType template.LayoutType) {
	section.AdvancedLayout.LayoutType = layoutType
	switch layoutType {
	case template.LayoutTable:
		section.AdvancedLayout.Table.Enabled = true
	case template.LayoutColumns:
		section.AdvancedLayout.Columns.Enabled = true
	case template.LayoutGrid:
		section.AdvancedLayout.Grid.Enabled = true
	}
}

func tableAt(doc *template.Template, sectionIndex int) *template.TableLayout {
	if sectionIndex < 0 || sectionIndex >= len(doc.Sections) {
		return nil
	}
	return doc.Sections[sectionIndex].AdvancedLayout.Table
}
