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

package registry

import (
	"fmt"
	"regexp"
)

// Kind is the primitive JSON Schema type of a shape field.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindString
	KindNumber
	KindInteger
	KindBoolean
)

// String returns the JSON Schema type name, or "" for [KindUnknown].
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	default:
		return ""
	}
}

// Valid reports whether k resolves to a JSON Schema primitive type.
func (k Kind) Valid() bool {
	return k.String() != ""
}

// Field describes one property of a [Shape].
type Field struct {
	Name        string
	Kind        Kind
	Description string

	// Example is emitted verbatim as the property's example value.
	// A nil Example emits no example.
	Example any

	// Optional fields are left out of the schema's required list.
	Optional bool

	// Nullable fields accept null in addition to Kind.
	Nullable bool
}

// Shape is a named structural description of a JSON object.
//
// Fields keep their declared order; the order drives the schema's required list.
type Shape struct {
	Name        string
	Description string
	Fields      []Field
}

// Required returns the names of non-optional fields in declared order.
func (s Shape) Required() []string {
	var out []string
	for _, f := range s.Fields {
		if !f.Optional {
			out = append(out, f.Name)
		}
	}

	return out
}

// ShapeHandle refers to a shape by its registered name.
//
// Handles are returned by [Registry.Define] and can also be created with [Ref].
// A handle does not guarantee the shape exists; references are resolved during generation.
type ShapeHandle struct {
	name string
}

// Ref returns a handle for the shape registered under name.
func Ref(name string) ShapeHandle {
	return ShapeHandle{name: name}
}

// Name returns the referenced shape name.
func (h ShapeHandle) Name() string {
	return h.name
}

// IsZero reports whether the handle references nothing.
func (h ShapeHandle) IsZero() bool {
	return h.name == ""
}

// validComponentName matches OpenAPI component keys: ^[a-zA-Z0-9\.\-_]+$
var validComponentName = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// validate checks the shape invariants.
func (s Shape) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidShape)
	}
	if !validComponentName.MatchString(s.Name) {
		return fmt.Errorf("%w: name '%s' must match pattern [a-zA-Z0-9._-]+", ErrInvalidShape, s.Name)
	}
	if len(s.Fields) == 0 {
		return fmt.Errorf("%w: shape '%s' has no fields", ErrInvalidShape, s.Name)
	}

	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s.fields[%d] has no name", ErrInvalidField, s.Name, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s.%s appears multiple times", ErrInvalidField, s.Name, f.Name)
		}
		seen[f.Name] = true

		if !f.Kind.Valid() {
			return fmt.Errorf("%w: %s.%s has no primitive type", ErrInvalidField, s.Name, f.Name)
		}
	}

	return nil
}

// clone returns a deep copy so later edits to the caller's slice cannot reach the registry.
func (s Shape) clone() Shape {
	out := s
	out.Fields = append([]Field(nil), s.Fields...)

	return out
}
