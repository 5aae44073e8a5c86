package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/pkg/export"
)

func exportCmd() *cobra.Command {
	var (
		out       string
		asOpenAPI bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Derive the submission schema for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if asOpenAPI {
				spec, err := export.Document(doc)
				if err != nil {
					return err
				}
				data, err = json.MarshalIndent(spec, "", "  ")
				if err != nil {
					return fmt.Errorf("encode openapi document: %w", err)
				}
			} else {
				data, err = export.SubmissionSchemaJSON(doc)
				if err != nil {
					return err
				}
			}
			return writeOutput(out, append(data, '\n'))
		},
	}

	cmd.Flags().BoolVar(&asOpenAPI, "openapi", false, "Emit a full OpenAPI document instead of the bare schema")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the schema (default stdout)")
	return cmd
}
