package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/pkg/recommend"
)

func recommendCmd() *cobra.Command {
	var (
		apply bool
		out   string
	)

	cmd := &cobra.Command{
		Use:   "recommend <file>",
		Short: "Suggest layout and styling improvements for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			recs := recommend.Recommend(doc)
			if len(recs) == 0 {
				cmd.Println("no recommendations")
				return nil
			}
			for _, rec := range recs {
				marker := " "
				if !rec.Actionable() {
					marker = "~"
				}
				cmd.Printf("%s [%s] %s: %s\n", marker, rec.Priority, rec.Title, rec.Description)
			}

			if !apply {
				return nil
			}
			for _, rec := range recs {
				if rec.Actionable() {
					doc = rec.Apply(doc)
				}
			}
			return writeDocument(out, doc)
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Apply every actionable recommendation")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the transformed document (default stdout)")
	return cmd
}
