package config

import (
	"bytes"
	_ "embed"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/zerr"
)

const schemaURL = "https://go.trai.ch/tapresolver/schema/config.json"

//go:embed schema.json
var schemaJSON []byte

// Validator implements ports.SchemaValidator with a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded config schema.
func NewValidator() (*Validator, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse config schema")
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, doc); err != nil {
		return nil, zerr.Wrap(err, "failed to add config schema")
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to compile config schema")
	}

	return &Validator{schema: schema}, nil
}

// Validate checks cfg against the schema.
func (v *Validator) Validate(cfg domain.Config) error {
	// The validator expects JSON-decoded values, YAML decoding produces ints.
	data, err := json.Marshal(cfg)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSchemaViolation.Error())
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return zerr.Wrap(err, domain.ErrSchemaViolation.Error())
	}

	if err := v.schema.Validate(inst); err != nil {
		return zerr.Wrap(err, domain.ErrSchemaViolation.Error())
	}
	return nil
}
