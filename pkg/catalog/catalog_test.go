package catalog_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formtemplate/pkg/catalog"
	"github.com/goliatone/go-formtemplate/pkg/template"
	"github.com/goliatone/go-formtemplate/pkg/validate"
)

func TestNames(t *testing.T) {
	names := catalog.Names()
	want := []string{
		"daily-wastage-report",
		"equipment-maintenance-log",
		"leave-request-form",
		"oil-quality-checklist",
		"recipe-costing-card",
	}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestEveryEntryIsValid(t *testing.T) {
	for _, name := range catalog.Names() {
		doc, err := catalog.Load(name, nil)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		result := validate.Check(doc, template.NewKeyGenerator())
		if len(result.Errors) != 0 {
			t.Fatalf("entry %s fails validation: %v", name, result.Errors)
		}
	}
}

func TestLoadRekeysIdentifiers(t *testing.T) {
	first, err := catalog.Load("daily-wastage-report", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	second, err := catalog.Load("daily-wastage-report", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for i := range first.Sections {
		if first.Sections[i].ID == second.Sections[i].ID {
			t.Fatalf("section %d shares an id across loads: %s", i, first.Sections[i].ID)
		}
	}
	if first.Sections[0].ID == "section_info" {
		t.Fatalf("stored id leaked into the loaded document")
	}
}

func TestLoadRemapsColumnBindings(t *testing.T) {
	doc, err := catalog.Load("daily-wastage-report", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	var items *template.Section
	for i := range doc.Sections {
		if doc.Sections[i].Label.EN == "Wasted Items" {
			items = &doc.Sections[i]
		}
	}
	if items == nil {
		t.Fatalf("items section missing")
	}
	table := items.AdvancedLayout.Table
	if table == nil || !table.Enabled || len(table.Columns) != 4 {
		t.Fatalf("table layout missing: %+v", items.AdvancedLayout)
	}

	keys := make(map[string]bool, len(items.Fields))
	for _, field := range items.Fields {
		keys[field.Key] = true
	}
	for _, col := range table.Columns {
		if !keys[col.FieldKey] {
			t.Fatalf("column %s bound to unknown field key %q", col.ID, col.FieldKey)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	doc, err := catalog.Load("oil-quality-checklist", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.PDFStyle.Colors.Primary == "" {
		t.Fatalf("color scheme not normalized")
	}
	if doc.Layout.SectionOrder[0] != doc.Sections[0].ID {
		t.Fatalf("sectionOrder not rebuilt for the new ids")
	}
	if doc.TemplateDepartment != "kitchen" {
		t.Fatalf("templateDepartment = %q", doc.TemplateDepartment)
	}
}

func TestDescribe(t *testing.T) {
	entry, err := catalog.Describe("leave-request-form")
	if err != nil {
		t.Fatalf("describe: %v", err)
	}
	if entry.Title.EN != "Leave Request Form" || entry.Title.AR == "" {
		t.Fatalf("title = %+v", entry.Title)
	}
	if entry.Sections != 3 {
		t.Fatalf("sections = %d, want 3", entry.Sections)
	}
}

func TestUnknownEntry(t *testing.T) {
	if _, err := catalog.Load("no-such-entry", nil); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("load err = %v, want ErrNotFound", err)
	}
	if _, err := catalog.Describe("no-such-entry"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("describe err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	entries, err := catalog.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != len(catalog.Names()) {
		t.Fatalf("list returned %d entries", len(entries))
	}
	for _, entry := range entries {
		if entry.Title.EN == "" || entry.Title.AR == "" {
			t.Fatalf("entry %s missing a localized title", entry.Name)
		}
	}
}
