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

// Package codec encodes generated documents to bytes and decodes them back.
//
// Encoders and decoders are registered by [Type]. The built-in codecs are:
//
//   - yaml: block-style YAML in document field order
//   - json: two-space indented JSON
//
// Both codecs honor the json struct tags of the document model, so decoding
// the output of Encode yields a value equal to the input.
//
//	enc, err := codec.GetEncoder(codec.TypeYAML)
//	data, err := enc.Encode(doc)
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Type represents a codec type identifier.
type Type string

// ErrUnknownType indicates no codec is registered under the requested type.
var ErrUnknownType = errors.New("codec: unknown type")

// Encoder converts Go values into encoded byte representations.
// Implementations must be safe for concurrent use.
type Encoder interface {
	// Encode converts the value v into an encoded byte slice.
	Encode(v any) ([]byte, error)
}

// Decoder converts encoded byte representations into Go values.
// Implementations must be safe for concurrent use.
type Decoder interface {
	// Decode converts the encoded data into the value pointed to by v.
	Decode(data []byte, v any) error
}

// ParseType maps a format name such as "yaml", "yml" or "json" to its Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return TypeYAML, nil
	case "json":
		return TypeJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// TypeFromPath returns the codec type implied by a file extension.
func TypeFromPath(path string) (Type, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownType, path)
	}

	return ParseType(ext)
}
