package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	santhosh "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaResource = "numwidget.schema.json"

// GenerateSchema generates the JSON Schema for numwidget.yml by reflecting
// the typed configuration. Extensions are allowed as additional properties.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		Anonymous:                  true,
		FieldNameTag:               "yaml",
	}

	// Mirrors Config without the inline Extensions map.
	type BaseConfig struct {
		Name    string      `yaml:"name,omitempty" jsonschema:"description=Name of the configuration"`
		Version string      `yaml:"version" jsonschema:"description=Configuration version such as 1.0,oneof_type=string;number"`
		TUI     *TUIConfig  `yaml:"tui,omitempty" jsonschema:"description=Interactive view settings"`
		Demo    *DemoConfig `yaml:"demo,omitempty" jsonschema:"description=Demo and render command settings"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "numwidget configuration"
	schema.Description = "Schema for numwidget.yml and numwidget.toml."

	return json.MarshalIndent(schema, "", "  ")
}

// SchemaValidator validates raw configuration documents against the
// generated schema.
type SchemaValidator struct {
	schema *santhosh.Schema
}

var compiledSchema = sync.OnceValues(func() (*santhosh.Schema, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}

	compiler := santhosh.NewCompiler()
	if err := compiler.AddResource(schemaResource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return schema, nil
})

// NewSchemaValidator returns a validator backed by the process-wide compiled schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate validates a decoded YAML/TOML document.
func (v *SchemaValidator) Validate(configData interface{}) error {
	// Round-trip through JSON so numbers and maps have the shapes the
	// validator expects.
	jsonData, err := json.Marshal(configData)
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON for validation: %w", err)
	}

	var dataToValidate interface{}
	if err := json.Unmarshal(jsonData, &dataToValidate); err != nil {
		return fmt.Errorf("failed to unmarshal JSON for validation: %w", err)
	}

	if err := v.schema.Validate(dataToValidate); err != nil {
		if validationErr, ok := err.(*santhosh.ValidationError); ok {
			var messages []string
			collectErrors(validationErr, &messages)
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(messages, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// collectErrors recursively collects all validation errors into a slice
func collectErrors(err *santhosh.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
