package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/pkg/catalog"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the built-in ready-made templates",
	}
	cmd.AddCommand(catalogListCmd(), catalogShowCmd())
	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := catalog.List()
			if err != nil {
				return err
			}
			for _, entry := range entries {
				cmd.Printf("%-28s %s / %s (%d sections)\n",
					entry.Name, entry.Title.EN, entry.Title.AR, entry.Sections)
			}
			return nil
		},
	}
}

func catalogShowCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a ready-made template as a working document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := catalog.Load(args[0], nil)
			if err != nil {
				return err
			}
			return writeDocument(out, doc)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the document (default stdout)")
	return cmd
}
