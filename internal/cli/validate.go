package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/pkg/template"
	"github.com/goliatone/go-formtemplate/pkg/validate"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a document for missing bilingual labels and empty structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			result := validate.Check(doc, template.NewKeyGenerator())
			if len(result.Errors) == 0 {
				cmd.Println("ok")
				return nil
			}

			keys := make([]string, 0, len(result.Errors))
			for key := range result.Errors {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				cmd.Printf("%s: %s\n", key, result.Errors[key])
			}
			return fmt.Errorf("%d validation errors", len(result.Errors))
		},
	}
}
