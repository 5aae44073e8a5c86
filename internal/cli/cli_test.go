package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

func writeTempDoc(t *testing.T, doc *template.Template) string {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func validCLIDoc() *template.Template {
	return &template.Template{
		Title: template.LocalizedText{EN: "Oil Check", AR: "فحص الزيت"},
		Sections: []template.Section{
			{
				ID:    "section_1",
				Label: template.LocalizedText{EN: "Fryers", AR: "المقالي"},
				Fields: []template.Field{
					{Key: "fryer_id", Label: template.LocalizedText{EN: "Fryer", AR: "القلاية"}},
				},
			},
		},
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := Root()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommandOK(t *testing.T) {
	path := writeTempDoc(t, validCLIDoc())
	out, err := runCommand(t, "validate", path)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "ok") {
		t.Fatalf("output = %q", out)
	}
}

func TestValidateCommandReportsErrors(t *testing.T) {
	doc := validCLIDoc()
	doc.Title.AR = ""
	path := writeTempDoc(t, doc)

	out, err := runCommand(t, "validate", path)
	if err == nil {
		t.Fatalf("expected failure, got:\n%s", out)
	}
	if !strings.Contains(out, "title.ar") {
		t.Fatalf("output missing title.ar key:\n%s", out)
	}
}

func TestRecommendCommand(t *testing.T) {
	doc := validCLIDoc()
	doc.Title.EN = "Daily Wastage Report"
	path := writeTempDoc(t, doc)

	out, err := runCommand(t, "recommend", path)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "[high]") {
		t.Fatalf("expected a high priority suggestion:\n%s", out)
	}
}

func TestCatalogListCommand(t *testing.T) {
	out, err := runCommand(t, "catalog", "list")
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	if !strings.Contains(out, "daily-wastage-report") {
		t.Fatalf("output missing catalog entry:\n%s", out)
	}
}

func TestCatalogShowCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	if _, err := runCommand(t, "catalog", "show", "leave-request-form", "--out", outPath); err != nil {
		t.Fatalf("catalog show: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc template.Template
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if doc.Title.EN != "Leave Request Form" {
		t.Fatalf("title = %q", doc.Title.EN)
	}
}

func TestPreviewCommand(t *testing.T) {
	path := writeTempDoc(t, validCLIDoc())
	outPath := filepath.Join(t.TempDir(), "out.html")

	if _, err := runCommand(t, "preview", path, "--locale", "ar", "--out", outPath); err != nil {
		t.Fatalf("preview: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `dir="rtl"`) {
		t.Fatalf("arabic preview missing rtl")
	}
}

func TestExportCommand(t *testing.T) {
	path := writeTempDoc(t, validCLIDoc())
	outPath := filepath.Join(t.TempDir(), "schema.json")

	if _, err := runCommand(t, "export", path, "--out", outPath); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	if schema["type"] != "object" {
		t.Fatalf("schema type = %v", schema["type"])
	}
}

func TestReadDocumentYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	content := "title:\n  en: Oil Check\n  ar: فحص الزيت\nsections: []\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := readDocument(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if doc.Title.EN != "Oil Check" {
		t.Fatalf("title = %q", doc.Title.EN)
	}
}
