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

// Package document defines the OpenAPI 3.0 object model produced by the generator.
//
// The types carry JSON tags in OpenAPI field order, so encoding a [Document]
// yields a valid OpenAPI 3.0 document. A Document is treated as immutable once
// generated.
package document

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Version is the OpenAPI version emitted in the "openapi" field.
const Version = "3.0.0"

// SchemaRefPrefix is the JSON pointer prefix of component schema references.
const SchemaRefPrefix = "#/components/schemas/"

// Document is the root OpenAPI 3.0 object.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Tags       []*Tag               `json:"tags,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Server is a server URL and optional description.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PathItem holds the operations available on a single path.
type PathItem struct {
	Get        *Operation   `json:"get,omitempty"`
	Put        *Operation   `json:"put,omitempty"`
	Post       *Operation   `json:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty"`
	Options    *Operation   `json:"options,omitempty"`
	Head       *Operation   `json:"head,omitempty"`
	Patch      *Operation   `json:"patch,omitempty"`
	Trace      *Operation   `json:"trace,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	Tags        []string             `json:"tags,omitempty"`
	Summary     string               `json:"summary,omitempty"`
	Description string               `json:"description,omitempty"`
	OperationID string               `json:"operationId,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses"`
	Deprecated  bool                 `json:"deprecated,omitempty"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

// RequestBody describes a request body.
type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty"`
	Content     map[string]*MediaType `json:"content"`
}

// Response describes a single response.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// MediaType binds a schema to a content type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Components holds reusable schemas.
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty"`
}

// Schema is the OpenAPI 3.0 subset of JSON Schema used for shapes.
type Schema struct {
	Ref         string             `json:"$ref,omitempty"`
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Example     any                `json:"example,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// NormalizeValue returns v in the form a decoded document holds: the value
// is passed through its JSON encoding, numbers become [json.Number] and
// structs become maps. A nil v stays nil.
func NormalizeValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err = dec.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// RefTo returns a schema referencing the named component schema.
func RefTo(name string) *Schema {
	return &Schema{Ref: SchemaRefPrefix + name}
}

// RefName returns the component name a reference points to, or "" if s is not a component reference.
func (s *Schema) RefName() string {
	if s == nil {
		return ""
	}
	name, ok := strings.CutPrefix(s.Ref, SchemaRefPrefix)
	if !ok {
		return ""
	}

	return name
}

// Operation returns the operation for a lower-case method, or nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch strings.ToLower(method) {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	case "trace":
		return p.Trace
	default:
		return nil
	}
}

// SetOperation stores op under method. It reports false for unknown methods.
func (p *PathItem) SetOperation(method string, op *Operation) bool {
	switch strings.ToLower(method) {
	case "get":
		p.Get = op
	case "put":
		p.Put = op
	case "post":
		p.Post = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	case "patch":
		p.Patch = op
	case "trace":
		p.Trace = op
	default:
		return false
	}

	return true
}

// Operation returns the operation at path and method, or nil.
func (d *Document) Operation(method, path string) *Operation {
	if d == nil {
		return nil
	}

	return d.Paths[path].Operation(method)
}

// Resolve follows a component reference. Inline schemas are returned unchanged;
// a dangling reference returns nil.
func (d *Document) Resolve(s *Schema) *Schema {
	name := s.RefName()
	if name == "" {
		return s
	}
	if d == nil || d.Components == nil {
		return nil
	}

	return d.Components.Schemas[name]
}

// OperationCount returns the number of operations across all paths.
func (d *Document) OperationCount() int {
	n := 0
	for _, item := range d.Paths {
		for _, m := range []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"} {
			if item.Operation(m) != nil {
				n++
			}
		}
	}

	return n
}
