// Package cli implements the formtemplate command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "0.1.0"

// Root builds the formtemplate command.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formtemplate",
		Short: "Work with bilingual form-template documents",
		Long: `formtemplate validates, transforms, previews, and serves bilingual
form-template documents.

Documents are JSON or YAML files describing sections, fields, layout, and
print styling in English and Arabic. The serve command exposes the same
documents over a /form-templates HTTP API.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		validateCmd(),
		recommendCmd(),
		previewCmd(),
		exportCmd(),
		catalogCmd(),
		newCmd(),
		serveCmd(),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("formtemplate version %s\n", Version)
		},
	}
}
