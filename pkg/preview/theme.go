package preview

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formtemplate/pkg/template"
)

// documentTheme builds the renderer theme for a document, merging the
// document's own color scheme into any caller-provided configuration. The
// document's branding wins only where the caller left a variable unset.
func documentTheme(doc *template.Template, cfg *theme.RendererConfig) *theme.RendererConfig {
	out := &theme.RendererConfig{Theme: "formtemplate", Variant: "light"}
	if cfg != nil {
		out.Theme = cfg.Theme
		out.Variant = cfg.Variant
		out.Partials = cfg.Partials
		out.Tokens = cfg.Tokens
		out.AssetURL = cfg.AssetURL
		out.CSSVars = copyStringMap(cfg.CSSVars)
	}
	if out.CSSVars == nil {
		out.CSSVars = make(map[string]string)
	}

	colors := doc.PDFStyle.Colors
	setIfAbsent(out.CSSVars, "--ft-color-primary", doc.PDFStyle.Branding.PrimaryColor, colors.Primary)
	setIfAbsent(out.CSSVars, "--ft-color-secondary", doc.PDFStyle.Branding.SecondaryColor, colors.Secondary)
	setIfAbsent(out.CSSVars, "--ft-color-text", colors.Text)
	setIfAbsent(out.CSSVars, "--ft-color-background", colors.Background)
	setIfAbsent(out.CSSVars, "--ft-color-border", colors.Border)
	setIfAbsent(out.CSSVars, "--ft-font-family", doc.PDFStyle.FontFamily)
	return out
}

func setIfAbsent(vars map[string]string, key string, candidates ...string) {
	if vars[key] != "" {
		return
	}
	for _, candidate := range candidates {
		if candidate != "" {
			vars[key] = candidate
			return
		}
	}
}

// cssVarsStyle flattens the theme variables into a :root block, sorted so
// output is stable.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
