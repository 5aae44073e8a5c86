package cli

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formtemplate/pkg/catalog"
	"github.com/goliatone/go-formtemplate/pkg/mutate"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

func newCmd() *cobra.Command {
	var (
		from string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a document interactively or from a catalog entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from != "" {
				doc, err := catalog.Load(from, nil)
				if err != nil {
					return err
				}
				return writeDocument(out, doc)
			}
			doc, err := promptDocument()
			if err != nil {
				return err
			}
			return writeDocument(out, doc)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start from a catalog entry instead of prompting")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Where to write the document (default stdout)")
	return cmd
}

func promptDocument() (*template.Template, error) {
	var answers struct {
		TitleEN          string
		TitleAR          string
		Department       string
		RequiresApproval bool
	}

	questions := []*survey.Question{
		{
			Name:     "titleEN",
			Prompt:   &survey.Input{Message: "Title (English):"},
			Validate: survey.Required,
		},
		{
			Name:     "titleAR",
			Prompt:   &survey.Input{Message: "Title (Arabic):"},
			Validate: survey.Required,
		},
		{
			Name:   "department",
			Prompt: &survey.Input{Message: "Department:", Default: template.DepartmentAll},
		},
		{
			Name:   "requiresApproval",
			Prompt: &survey.Confirm{Message: "Requires approval?"},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return nil, err
	}

	editor := mutate.NewEditor(&template.Template{
		Title:              template.LocalizedText{EN: answers.TitleEN, AR: answers.TitleAR},
		TemplateDepartment: answers.Department,
		RequiresApproval:   answers.RequiresApproval,
	})

	for {
		addSection := false
		if err := survey.AskOne(&survey.Confirm{Message: "Add a section?", Default: true}, &addSection); err != nil {
			return nil, err
		}
		if !addSection {
			break
		}
		if err := promptSection(editor); err != nil {
			return nil, err
		}
	}
	return editor.Template(), nil
}

func promptSection(editor *mutate.Editor) error {
	var labelEN, labelAR string
	if err := survey.AskOne(&survey.Input{Message: "Section label (English):"}, &labelEN, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	if err := survey.AskOne(&survey.Input{Message: "Section label (Arabic):"}, &labelAR, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	editor.AddSection()
	section := editor.Selected()
	if err := editor.UpdateSection(section, "label.en", labelEN); err != nil {
		return err
	}
	if err := editor.UpdateSection(section, "label.ar", labelAR); err != nil {
		return err
	}

	for {
		addField := false
		if err := survey.AskOne(&survey.Confirm{Message: "Add a field?", Default: true}, &addField); err != nil {
			return err
		}
		if !addField {
			return nil
		}
		if err := promptField(editor, section); err != nil {
			return err
		}
	}
}

func promptField(editor *mutate.Editor, section int) error {
	var answers struct {
		LabelEN  string
		LabelAR  string
		Type     string
		Required bool
	}

	questions := []*survey.Question{
		{
			Name:     "labelEN",
			Prompt:   &survey.Input{Message: "Field label (English):"},
			Validate: survey.Required,
		},
		{
			Name:     "labelAR",
			Prompt:   &survey.Input{Message: "Field label (Arabic):"},
			Validate: survey.Required,
		},
		{
			Name: "type",
			Prompt: &survey.Select{
				Message: "Field type:",
				Options: []string{
					string(template.FieldTypeText),
					string(template.FieldTypeTextarea),
					string(template.FieldTypeNumber),
					string(template.FieldTypeBoolean),
					string(template.FieldTypeSelect),
					string(template.FieldTypeDate),
					string(template.FieldTypeTime),
					string(template.FieldTypeDatetime),
					string(template.FieldTypeFile),
				},
				Default: string(template.FieldTypeText),
			},
		},
		{
			Name:   "required",
			Prompt: &survey.Confirm{Message: "Required?"},
		},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	fieldIndex := len(editor.Template().Sections[section].Fields)
	editor.AddField(section)

	if err := editor.UpdateField(section, fieldIndex, "label.en", answers.LabelEN); err != nil {
		return err
	}
	if err := editor.UpdateField(section, fieldIndex, "label.ar", answers.LabelAR); err != nil {
		return err
	}
	if err := editor.UpdateField(section, fieldIndex, "type", answers.Type); err != nil {
		return err
	}
	if answers.Required {
		return editor.UpdateField(section, fieldIndex, "required", true)
	}
	return nil
}
