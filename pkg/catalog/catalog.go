// Package catalog ships the built-in ready-made templates. Entries are
// bilingual documents embedded as YAML; loading one produces a fresh deep
// copy with newly generated section and field identifiers so two documents
// started from the same entry never collide.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// ErrNotFound is returned by Load and Describe for an unknown entry name.
var ErrNotFound = errors.New("catalog: entry not found")

// Entry describes one ready-made template without exposing its document.
type Entry struct {
	Name        string                 `json:"name"`
	Title       template.LocalizedText `json:"title"`
	Description template.LocalizedText `json:"description"`
	Sections    int                    `json:"sections"`
}

type catalog struct {
	once    sync.Once
	err     error
	entries map[string]*template.Template
	names   []string
}

var builtin catalog

func (c *catalog) load() error {
	c.once.Do(func() {
		c.entries = make(map[string]*template.Template)
		c.err = fs.WalkDir(templatesFS(), "templates", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := fs.ReadFile(templatesFS(), path)
			if err != nil {
				return fmt.Errorf("catalog: read %s: %w", path, err)
			}
			var doc template.Template
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("catalog: parse %s: %w", path, err)
			}
			name := entryName(d.Name())
			c.entries[name] = &doc
			c.names = append(c.names, name)
			return nil
		})
		sort.Strings(c.names)
	})
	return c.err
}

// Names lists the built-in entries in sorted order.
func Names() []string {
	if err := builtin.load(); err != nil {
		return nil
	}
	out := make([]string, len(builtin.names))
	copy(out, builtin.names)
	return out
}

// Describe returns the metadata for one entry.
func Describe(name string) (Entry, error) {
	if err := builtin.load(); err != nil {
		return Entry{}, err
	}
	doc, ok := builtin.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Entry{
		Name:        name,
		Title:       doc.Title,
		Description: doc.Description,
		Sections:    len(doc.Sections),
	}, nil
}

// List returns metadata for every entry, ordered by name.
func List() ([]Entry, error) {
	if err := builtin.load(); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(builtin.names))
	for _, name := range builtin.names {
		entry, err := Describe(name)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// Load returns a working copy of the named entry: rekeyed with fresh
// identifiers, normalized, and safe to mutate. Passing a nil KeyGenerator
// uses the default timestamped generator.
func Load(name string, keys template.KeyGenerator) (*template.Template, error) {
	if err := builtin.load(); err != nil {
		return nil, err
	}
	doc, ok := builtin.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return normalize.ForLoad(normalize.Rekey(doc, keys)), nil
}

func entryName(filename string) string {
	const ext = ".yaml"
	if len(filename) > len(ext) && filename[len(filename)-len(ext):] == ext {
		return filename[:len(filename)-len(ext)]
	}
	return filename
}
