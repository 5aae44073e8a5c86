package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		locale string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a document as a standalone HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			html, err := preview.HTML(doc, preview.Options{Locale: locale})
			if err != nil {
				return err
			}
			return writeOutput(out, []byte(html))
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "en", "Locale to render, en or ar")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the HTML (default stdout)")
	return cmd
}
