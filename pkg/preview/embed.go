package preview

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded preview templates so callers can extend
// or replace them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func templatesFS() fs.FS {
	return embeddedTemplates
}
