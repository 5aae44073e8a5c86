package normalize

import "github.com/goliatone/go-formtemplate/pkg/template"

// Rekey returns a copy of doc where every section, field, and table column
// carries a freshly generated identifier. Catalog entries are rekeyed on load
// so two documents started from the same entry never share ids within a
// session. Column fieldKey bindings are remapped to the new field keys and
// layout.sectionOrder is rebuilt from the new section ids.
func Rekey(doc *template.Template, keys template.KeyGenerator) *template.Template {
	if doc == nil {
		return nil
	}
	if keys == nil {
		keys = template.NewKeyGenerator()
	}
	out := doc.Clone()

	for i := range out.Sections {
		section := &out.Sections[i]
		section.ID = keys.SectionID()
		section.Order = i

		remap := make(map[string]string, len(section.Fields))
		for j := range section.Fields {
			old := section.Fields[j].Key
			section.Fields[j].Key = keys.FieldKey()
			if old != "" {
				remap[old] = section.Fields[j].Key
			}
		}
		if section.AdvancedLayout.Table != nil {
			cols := section.AdvancedLayout.Table.Columns
			for j := range cols {
				cols[j].ID = keys.ColumnID()
				if mapped, ok := remap[cols[j].FieldKey]; ok {
					cols[j].FieldKey = mapped
				}
			}
		}
	}
	rebuildSectionOrder(out)
	return out
}
