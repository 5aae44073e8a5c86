package catalog

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.yaml
var embeddedEntries embed.FS

// TemplatesFS exposes the embedded catalog bundle for consumers that want to
// inspect or re-serve the raw YAML.
func TemplatesFS() fs.FS {
	return embeddedEntries
}

func templatesFS() fs.FS {
	return embeddedEntries
}
