package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// readDocument loads a document from a JSON or YAML file, normalized for
// editing. The format follows the file extension, defaulting to JSON.
func readDocument(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc template.Template
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return normalize.ForLoad(&doc), nil
}

// writeDocument writes a document as indented JSON, save-normalized, to the
// given path or stdout when path is empty or "-".
func writeDocument(path string, doc *template.Template) error {
	data, err := json.MarshalIndent(normalize.ForSave(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return writeOutput(path, append(data, '\n'))
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
