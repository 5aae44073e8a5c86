package mutate

import (
	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// AddField appends a new text field with a fresh key to the section at
// sectionIndex.
func AddField(doc *template.Template, sectionIndex int, keys template.KeyGenerator) *template.Template {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out
	}
	field := template.Field{Key: keys.FieldKey(), Type: template.FieldTypeText}
	normalize.Field(&field)
	out.Sections[sectionIndex].Fields = append(out.Sections[sectionIndex].Fields, field)
	return out
}

// DuplicateField deep-copies the field at fieldIndex, assigns a key
// guaranteed distinct from every existing key in the section, and inserts
// the copy immediately after the source field.
func DuplicateField(doc *template.Template, sectionIndex, fieldIndex int, keys template.KeyGenerator) *template.Template {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out
	}
	section := &out.Sections[sectionIndex]
	if fieldIndex < 0 || fieldIndex >= len(section.Fields) {
		return out
	}

	dup := section.Fields[fieldIndex].Clone()
	dup.Key = freshFieldKey(section.Fields, keys)

	section.Fields = append(section.Fields, template.Field{})
	copy(section.Fields[fieldIndex+2:], section.Fields[fieldIndex+1:])
	section.Fields[fieldIndex+1] = dup
	return out
}

// RemoveField drops the field at fieldIndex from the section.
func RemoveField(doc *template.Template, sectionIndex, fieldIndex int) *template.Template {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out
	}
	section := &out.Sections[sectionIndex]
	if fieldIndex < 0 || fieldIndex >= len(section.Fields) {
		return out
	}
	section.Fields = append(section.Fields[:fieldIndex], section.Fields[fieldIndex+1:]...)
	return out
}

// MoveField swaps the field at fieldIndex with its neighbour. Boundary moves
// are no-ops.
func MoveField(doc *template.Template, sectionIndex, fieldIndex int, direction Direction) *template.Template {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out
	}
	section := &out.Sections[sectionIndex]
	neighbour := fieldIndex - 1
	if direction == MoveDown {
		neighbour = fieldIndex + 1
	}
	if fieldIndex < 0 || fieldIndex >= len(section.Fields) || neighbour < 0 || neighbour >= len(section.Fields) {
		return out
	}
	section.Fields[fieldIndex], section.Fields[neighbour] = section.Fields[neighbour], section.Fields[fieldIndex]
	return out
}

// UpdateField sets a possibly-nested property on the field at fieldIndex,
// addressed by a dotted path over the JSON names (e.g. "layout.labelColor").
func UpdateField(doc *template.Template, sectionIndex, fieldIndex int, path string, value any) (*template.Template, error) {
	out := doc.Clone()
	if sectionIndex < 0 || sectionIndex >= len(out.Sections) {
		return out, nil
	}
	section := &out.Sections[sectionIndex]
	if fieldIndex < 0 || fieldIndex >= len(section.Fields) {
		return out, nil
	}
	if err := setPath(&section.Fields[fieldIndex], path, value); err != nil {
		return nil, err
	}
	return out, nil
}

// freshFieldKey generates a key not present among the section's existing
// fields. The generator already guarantees process-wide uniqueness; the loop
// guards against caller-supplied generators with a smaller range.
func freshFieldKey(fields []template.Field, keys template.KeyGenerator) string {
	existing := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		existing[f.Key] = struct{}{}
	}
	for {
		key := keys.FieldKey()
		if _, taken := existing[key]; !taken {
			return key
		}
	}
}
