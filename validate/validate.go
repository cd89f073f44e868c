// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package validate checks generated OpenAPI documents.
//
// Two checks run: the encoded document is loaded and validated structurally
// with kin-openapi, and the examples of every component schema are validated
// against that schema with a JSON Schema draft-04 validator.
package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/taskdocs/document"
)

var (
	// ErrInvalidDocument indicates the document is not a valid OpenAPI 3.0 document.
	ErrInvalidDocument = errors.New("invalid OpenAPI document")

	// ErrInvalidExample indicates a component schema example does not match its schema.
	ErrInvalidExample = errors.New("example does not match schema")
)

// Engine validates OpenAPI documents.
type Engine struct{}

// New creates a new validation engine.
func New() *Engine {
	return &Engine{}
}

// Validate runs the structural and example checks on doc.
func (e *Engine) Validate(ctx context.Context, doc *document.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err = e.ValidateJSON(ctx, data); err != nil {
		return err
	}

	return e.ValidateExamples(ctx, doc)
}

// ValidateJSON loads an encoded document (JSON or YAML) and validates its structure.
func (e *Engine) ValidateJSON(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	t, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("%w: load: %w", ErrInvalidDocument, err)
	}
	if err = t.Validate(loader.Context); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ValidateExamples validates the property examples of each component schema.
// Properties without an example are skipped. Every failing schema is reported.
func (e *Engine) ValidateExamples(ctx context.Context, doc *document.Document) error {
	if doc.Components == nil {
		return nil
	}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(doc.Components.Schemas)) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := validateExamples(name, doc.Components.Schemas[name]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// validateExamples compiles the schema of one component and validates an
// instance assembled from its property examples.
func validateExamples(name string, s *document.Schema) error {
	schemaDoc, instance := exampleSchema(s)
	if len(instance) == 0 {
		return nil
	}

	url := "https://taskdocs.local/components/schemas/" + name + ".json"
	sch, err := compile(url, schemaDoc)
	if err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}

	inst, err := toJSONValue(instance)
	if err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}

	if err = sch.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w: %s at %s: %w", ErrInvalidExample, name, strings.Join(failedLocations(verr), ", "), err)
		}

		return fmt.Errorf("%w: %s: %w", ErrInvalidExample, name, err)
	}

	return nil
}

// exampleSchema builds a draft-04 object schema and the matching example instance.
// Only properties with an example are required, so missing examples never fail.
func exampleSchema(s *document.Schema) (map[string]any, map[string]any) {
	props := make(map[string]any, len(s.Properties))
	instance := make(map[string]any, len(s.Properties))
	var required []any

	for _, pname := range slices.Sorted(maps.Keys(s.Properties)) {
		p := s.Properties[pname]

		ps := map[string]any{}
		switch {
		case p.Type != "" && p.Nullable:
			ps["type"] = []any{p.Type, "null"}
		case p.Type != "":
			ps["type"] = p.Type
		}
		props[pname] = ps

		if p.Example != nil {
			instance[pname] = p.Example
			required = append(required, pname)
		}
	}

	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return schema, instance
}

// compile compiles a single schema resource with a fresh draft-04 compiler.
func compile(url string, schemaDoc map[string]any) (*jsonschema.Schema, error) {
	doc, err := toJSONValue(schemaDoc)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft4)
	if err = c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return sch, nil
}

// toJSONValue normalizes v into the value space the validator expects.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}

// failedLocations returns the instance locations of the leaf errors, e.g. "/completed".
func failedLocations(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		return []string{"/" + strings.Join(verr.InstanceLocation, "/")}
	}

	var out []string
	for _, c := range verr.Causes {
		out = append(out, failedLocations(c)...)
	}

	return out
}
