package mutate

import (
	"strings"

	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// Direction selects which neighbour a move swaps with.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// AddSection appends a new empty section with a fresh id, its order set to
// the previous section count, and a fully-populated advanced layout (simple
// strategy, table/columns/grid present but disabled). The new id is appended
// to layout.sectionOrder.
func AddSection(doc *template.Template, keys template.KeyGenerator) *template.Template {
	out := doc.Clone()
	section := newSection(keys)
	section.Order = len(out.Sections)
	out.Sections = append(out.Sections, section)
	out.Layout.SectionOrder = append(out.Layout.SectionOrder, section.ID)
	return out
}

// DuplicateSection deep-copies the section at index, gives the copy a fresh
// id and fresh keys for every field (remapping table column bindings), tags
// both locale labels with " (Copy)", and inserts it immediately after the
// source section in both sections and sectionOrder.
func DuplicateSection(doc *template.Template, index int, keys template.KeyGenerator) *template.Template {
	out := doc.Clone()
	if index < 0 || index >= len(out.Sections) {
		return out
	}

	dup := out.Sections[index].Clone()
	dup.ID = keys.SectionID()
	dup.Label.EN = copyLabel(dup.Label.EN)
	dup.Label.AR = copyLabel(dup.Label.AR)

	remap := make(map[string]string, len(dup.Fields))
	for i := range dup.Fields {
		old := dup.Fields[i].Key
		dup.Fields[i].Key = keys.FieldKey()
		if old != "" {
			remap[old] = dup.Fields[i].Key
		}
	}
	if dup.AdvancedLayout.Table != nil {
		cols := dup.AdvancedLayout.Table.Columns
		for i := range cols {
			cols[i].ID = keys.ColumnID()
			if mapped, ok := remap[cols[i].FieldKey]; ok {
				cols[i].FieldKey = mapped
			}
		}
	}

	out.Sections = insertSection(out.Sections, index+1, dup)
	sourceID := out.Sections[index].ID
	out.Layout.SectionOrder = insertAfterID(out.Layout.SectionOrder, sourceID, dup.ID)
	reindexSections(out)
	return out
}

// RemoveSection drops the section at index and its id from sectionOrder.
func RemoveSection(doc *template.Template, index int) *template.Template {
	out := doc.Clone()
	if index < 0 || index >= len(out.Sections) {
		return out
	}
	removedID := out.Sections[index].ID
	out.Sections = append(out.Sections[:index], out.Sections[index+1:]...)
	out.Layout.SectionOrder = removeID(out.Layout.SectionOrder, removedID)
	reindexSections(out)
	return out
}

// MoveSection swaps the section at index with its neighbour in the given
// direction. Moving the first section up or the last section down is a
// no-op. The sectionOrder swap locates each id independently instead of
// assuming the two arrays share indexes, since a loaded document may have
// diverged orderings.
func MoveSection(doc *template.Template, index int, direction Direction) *template.Template {
	out := doc.Clone()
	neighbour := index - 1
	if direction == MoveDown {
		neighbour = index + 1
	}
	if index < 0 || index >= len(out.Sections) || neighbour < 0 || neighbour >= len(out.Sections) {
		return out
	}

	idA := out.Sections[index].ID
	idB := out.Sections[neighbour].ID
	out.Sections[index], out.Sections[neighbour] = out.Sections[neighbour], out.Sections[index]

	posA := indexOf(out.Layout.SectionOrder, idA)
	posB := indexOf(out.Layout.SectionOrder, idB)
	if posA >= 0 && posB >= 0 {
		out.Layout.SectionOrder[posA], out.Layout.SectionOrder[posB] = out.Layout.SectionOrder[posB], out.Layout.SectionOrder[posA]
	}
	reindexSections(out)
	return out
}

// UpdateSection sets a possibly-nested property on the section at index,
// addressed by a dotted path over the JSON names
// (e.g. "advancedLayout.styling.showTitle").
func UpdateSection(doc *template.Template, index int, path string, value any) (*template.Template, error) {
	out := doc.Clone()
	if index < 0 || index >= len(out.Sections) {
		return out, nil
	}
	if err := setPath(&out.Sections[index], path, value); err != nil {
		return nil, err
	}
	return out, nil
}

func newSection(keys template.KeyGenerator) template.Section {
	section := template.Section{
		ID:          keys.SectionID(),
		SectionType: template.SectionTypeNormal,
		Fields:      []template.Field{},
	}
	normalize.Section(&section)
	return section
}

func copyLabel(label string) string {
	if strings.TrimSpace(label) == "" {
		return label
	}
	return label + " (Copy)"
}

func insertSection(sections []template.Section, at int, section template.Section) []template.Section {
	sections = append(sections, template.Section{})
	copy(sections[at+1:], sections[at:])
	sections[at] = section
	return sections
}

func insertAfterID(order []string, afterID, id string) []string {
	pos := indexOf(order, afterID)
	if pos < 0 {
		return append(order, id)
	}
	order = append(order, "")
	copy(order[pos+2:], order[pos+1:])
	order[pos+1] = id
	return order
}

func removeID(order []string, id string) []string {
	pos := indexOf(order, id)
	if pos < 0 {
		return order
	}
	return append(order[:pos], order[pos+1:]...)
}

func indexOf(order []string, id string) int {
	for i, candidate := range order {
		if candidate == id {
			return i
		}
	}
	return -1
}

func reindexSections(doc *template.Template) {
	for i := range doc.Sections {
		doc.Sections[i].Order = i
	}
}
