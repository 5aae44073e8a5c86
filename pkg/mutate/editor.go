package mutate

import "github.com/goliatone/go-formtemplate/pkg/template"

// NoSelection is the Editor's selected index when no section is selected.
const NoSelection = -1

// Option customises the Editor configuration.
type Option func(*Editor)

// WithKeyGenerator injects the generator used for new section, field, and
// column identifiers.
func WithKeyGenerator(keys template.KeyGenerator) Option {
	return func(e *Editor) {
		if keys != nil {
			e.keys = keys
		}
	}
}

// Editor is the single source of truth for an editing session: the current
// document plus the selected section. Every edit goes through the pure
// functions in this package and swaps in the returned copy, so reads taken
// from Template() are never mutated behind the caller's back.
type Editor struct {
	doc      *template.Template
	keys     template.KeyGenerator
	selected int
}

// NewEditor wraps doc for editing. The document is cloned on entry; the
// caller's value stays untouched.
func NewEditor(doc *template.Template, options ...Option) *Editor {
	e := &Editor{
		doc:      doc.Clone(),
		keys:     template.NewKeyGenerator(),
		selected: NoSelection,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Template returns the current document. Callers must treat it as read-only.
func (e *Editor) Template() *template.Template {
	return e.doc
}

// Selected returns the index of the selected section, or NoSelection.
func (e *Editor) Selected() int {
	return e.selected
}

// Select marks the section at index as selected. Out-of-range values clear
// the selection.
func (e *Editor) Select(index int) {
	if index < 0 || index >= len(e.doc.Sections) {
		e.selected = NoSelection
		return
	}
	e.selected = index
}

// AddSection appends a new section and selects it.
func (e *Editor) AddSection() {
	e.doc = AddSection(e.doc, e.keys)
	e.selected = len(e.doc.Sections) - 1
}

// DuplicateSection duplicates the section at index; selection moves to the
// copy.
func (e *Editor) DuplicateSection(index int) {
	before := len(e.doc.Sections)
	e.doc = DuplicateSection(e.doc, index, e.keys)
	if len(e.doc.Sections) > before {
		e.selected = index + 1
	}
}

// RemoveSection removes the section at index. A selection at the removed
// index (or out of range afterwards) is cleared; a selection after the
// removed index shifts down by one.
func (e *Editor) RemoveSection(index int) {
	before := len(e.doc.Sections)
	e.doc = RemoveSection(e.doc, index)
	if len(e.doc.Sections) == before {
		return
	}
	switch {
	case e.selected == NoSelection:
	case e.selected == index:
		e.selected = NoSelection
	case e.selected > index:
		e.selected--
	}
	if e.selected >= len(e.doc.Sections) {
		e.selected = NoSelection
	}
}

// MoveSection moves the section at index; a selection on either swapped
// section follows it.
func (e *Editor) MoveSection(index int, direction Direction) {
	neighbour := index - 1
	if direction == MoveDown {
		neighbour = index + 1
	}
	if neighbour < 0 || neighbour >= len(e.doc.Sections) {
		return
	}
	e.doc = MoveSection(e.doc, index, direction)
	switch e.selected {
	case index:
		e.selected = neighbour
	case neighbour:
		e.selected = index
	}
}

// UpdateSection sets a dotted-path property on the section at index.
func (e *Editor) UpdateSection(index int, path string, value any) error {
	doc, err := UpdateSection(e.doc, index, path, value)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// AddField appends a field to the section at sectionIndex.
func (e *Editor) AddField(sectionIndex int) {
	e.doc = AddField(e.doc, sectionIndex, e.keys)
}

// DuplicateField duplicates the field at fieldIndex within its section.
func (e *Editor) DuplicateField(sectionIndex, fieldIndex int) {
	e.doc = DuplicateField(e.doc, sectionIndex, fieldIndex, e.keys)
}

// RemoveField removes the field at fieldIndex from its section.
func (e *Editor) RemoveField(sectionIndex, fieldIndex int) {
	e.doc = RemoveField(e.doc, sectionIndex, fieldIndex)
}

// MoveField moves the field at fieldIndex within its section.
func (e *Editor) MoveField(sectionIndex, fieldIndex int, direction Direction) {
	e.doc = MoveField(e.doc, sectionIndex, fieldIndex, direction)
}

// UpdateField sets a dotted-path property on a field.
func (e *Editor) UpdateField(sectionIndex, fieldIndex int, path string, value any) error {
	doc, err := UpdateField(e.doc, sectionIndex, fieldIndex, path, value)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}

// SetLayoutType switches the layout strategy of the section at sectionIndex.
func (e *Editor) SetLayoutType(sectionIndex int, layoutType template.LayoutType) {
	e.doc = SetLayoutType(e.doc, sectionIndex, layoutType)
}

// AddTableColumn appends a table column, entering table mode when needed.
func (e *Editor) AddTableColumn(sectionIndex int) {
	e.doc = AddTableColumn(e.doc, sectionIndex, e.keys)
}

// RemoveTableColumn removes the column at columnIndex.
func (e *Editor) RemoveTableColumn(sectionIndex, columnIndex int) {
	e.doc = RemoveTableColumn(e.doc, sectionIndex, columnIndex)
}

// MoveTableColumn moves the column at columnIndex.
func (e *Editor) MoveTableColumn(sectionIndex, columnIndex int, direction Direction) {
	e.doc = MoveTableColumn(e.doc, sectionIndex, columnIndex, direction)
}

// UpdateTableColumn sets a dotted-path property on a table column.
func (e *Editor) UpdateTableColumn(sectionIndex, columnIndex int, path string, value any) error {
	doc, err := UpdateTableColumn(e.doc, sectionIndex, columnIndex, path, value)
	if err != nil {
		return err
	}
	e.doc = doc
	return nil
}
