// Package export derives machine-readable schemas from a form-template
// document. The submission schema describes the payload a filled-in form
// produces: one object per visible section keyed by section id, with table
// sections expressed as row arrays.
package export

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
)

// SubmissionSchema builds the OpenAPI schema for a submission against doc.
// Hidden sections and fields are left out; a section in table mode with
// dynamic rows becomes an array of row objects keyed by column bindings.
func SubmissionSchema(doc *template.Template) (*openapi3.Schema, error) {
	if doc == nil {
		return nil, errors.New("export: document is required")
	}
	doc = normalize.Normalize(doc)

	root := openapi3.NewObjectSchema()
	root.Title = doc.Title.EN
	root.Description = doc.Description.EN

	for _, section := range doc.Sections {
		if !template.BoolValue(section.Visible, true) {
			continue
		}
		if section.ID == "" {
			return nil, fmt.Errorf("export: section %q has no id", section.Label.EN)
		}
		schema, required, err := sectionSchema(section)
		if err != nil {
			return nil, err
		}
		if schema == nil {
			continue
		}
		root.Properties[section.ID] = schema.NewRef()
		if required {
			root.Required = append(root.Required, section.ID)
		}
	}
	return root, nil
}

// SubmissionSchemaJSON is SubmissionSchema marshaled to JSON.
func SubmissionSchemaJSON(doc *template.Template) ([]byte, error) {
	schema, err := SubmissionSchema(doc)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode schema: %w", err)
	}
	return data, nil
}

// Document wraps the submission schema in a minimal OpenAPI document with a
// single submit operation, ready to feed to other OpenAPI tooling.
func Document(doc *template.Template) (*openapi3.T, error) {
	schema, err := SubmissionSchema(doc)
	if err != nil {
		return nil, err
	}

	title := doc.Title.EN
	if title == "" {
		title = "Form Submission"
	}

	body := openapi3.NewRequestBody().
		WithRequired(true).
		WithJSONSchema(schema)

	op := openapi3.NewOperation()
	op.OperationID = "submitForm"
	op.Summary = "Submit a filled-in form"
	op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	op.AddResponse(201, openapi3.NewResponse().WithDescription("Submission accepted"))
	op.AddResponse(422, openapi3.NewResponse().WithDescription("Submission rejected"))

	spec := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(),
	}
	spec.Paths.Set("/submissions", &openapi3.PathItem{Post: op})
	return spec, nil
}

// sectionSchema returns the schema for one section plus whether any of its
// fields are required. A nil schema means the section contributes nothing,
// for example a decorative header with no inputs.
func sectionSchema(section template.Section) (*openapi3.Schema, bool, error) {
	if tableMode(section) {
		return tableSchema(section)
	}

	obj := openapi3.NewObjectSchema()
	obj.Title = section.Label.EN

	anyRequired := false
	for _, field := range section.Fields {
		if !template.BoolValue(field.Visible, true) {
			continue
		}
		if field.Key == "" {
			return nil, false, fmt.Errorf("export: field %q in section %q has no key", field.Label.EN, section.ID)
		}
		obj.Properties[field.Key] = fieldSchema(field).NewRef()
		if field.Required {
			obj.Required = append(obj.Required, field.Key)
			anyRequired = true
		}
	}
	if len(obj.Properties) == 0 {
		return nil, false, nil
	}
	return obj, anyRequired, nil
}

func tableMode(section template.Section) bool {
	layout := section.AdvancedLayout
	return layout.LayoutType == template.LayoutTable &&
		layout.Table != nil && layout.Table.Enabled && len(layout.Table.Columns) > 0
}

// tableSchema describes a table section as an array of rows. Columns bound
// to a field reuse that field's schema so enums and requiredness carry over.
func tableSchema(section template.Section) (*openapi3.Schema, bool, error) {
	table := section.AdvancedLayout.Table
	fields := make(map[string]template.Field, len(section.Fields))
	for _, field := range section.Fields {
		fields[field.Key] = field
	}

	row := openapi3.NewObjectSchema()
	anyRequired := false
	for _, col := range table.Columns {
		key := col.FieldKey
		if key == "" {
			key = col.ID
		}
		if key == "" {
			return nil, false, fmt.Errorf("export: column %q in section %q has no binding", col.Label.EN, section.ID)
		}
		if field, ok := fields[col.FieldKey]; ok {
			row.Properties[key] = fieldSchema(field).NewRef()
			if field.Required {
				row.Required = append(row.Required, key)
				anyRequired = true
			}
			continue
		}
		row.Properties[key] = columnSchema(col).NewRef()
	}

	arr := openapi3.NewArraySchema()
	arr.Title = section.Label.EN
	arr.Items = row.NewRef()
	if !table.DynamicRows && table.NumberOfRows > 0 {
		n := uint64(table.NumberOfRows)
		arr.MaxItems = &n
	}
	return arr, anyRequired, nil
}

func fieldSchema(field template.Field) *openapi3.Schema {
	var schema *openapi3.Schema
	switch field.Type {
	case template.FieldTypeNumber:
		schema = openapi3.NewFloat64Schema()
	case template.FieldTypeBoolean:
		schema = openapi3.NewBoolSchema()
	case template.FieldTypeDate:
		schema = openapi3.NewStringSchema().WithFormat("date")
	case template.FieldTypeTime:
		schema = openapi3.NewStringSchema().WithFormat("time")
	case template.FieldTypeDatetime:
		schema = openapi3.NewDateTimeSchema()
	case template.FieldTypeFile:
		schema = openapi3.NewStringSchema().WithFormat("binary")
	case template.FieldTypeSelect:
		schema = openapi3.NewStringSchema()
		if len(field.Options) > 0 {
			values := make([]any, 0, len(field.Options))
			for _, opt := range field.Options {
				values = append(values, opt.EN)
			}
			schema = schema.WithEnum(values...)
		}
	default:
		schema = openapi3.NewStringSchema()
	}
	schema.Title = field.Label.EN
	return schema
}

func columnSchema(col template.Column) *openapi3.Schema {
	schema := fieldSchema(template.Field{Type: col.FieldType})
	schema.Title = col.Label.EN
	return schema
}
