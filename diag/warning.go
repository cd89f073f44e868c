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

// Package diag provides diagnostic types for document generation.
//
// Warnings are advisory and never stop generation. Anything that must stop
// generation is an error.
package diag

import (
	"fmt"
	"strings"
)

// WarningCode identifies a specific warning type.
type WarningCode string

// String returns the code as a string.
func (c WarningCode) String() string {
	return string(c)
}

const (
	// WarnUnreferencedShape indicates a defined shape no route references; it is left out of components.
	WarnUnreferencedShape WarningCode = "UNREFERENCED_SHAPE"

	// WarnMissingExample indicates a shape field declares no example value.
	WarnMissingExample WarningCode = "MISSING_EXAMPLE"

	// WarnUndeclaredTag indicates an operation uses a tag missing from the top-level tag list.
	WarnUndeclaredTag WarningCode = "UNDECLARED_TAG"
)

// Warning is an informational, non-fatal issue found during generation.
type Warning struct {
	// Code is the machine-readable identifier.
	Code WarningCode

	// Path is a JSON pointer to the affected element, e.g. "#/components/schemas/Task".
	Path string

	// Message is a human-readable description.
	Message string
}

// New creates a warning.
func New(code WarningCode, path, msg string) Warning {
	return Warning{Code: code, Path: path, Message: msg}
}

// String returns "[CODE] path: message".
func (w Warning) String() string {
	if w.Path == "" {
		return fmt.Sprintf("[%s] %s", w.Code, w.Message)
	}

	return fmt.Sprintf("[%s] %s: %s", w.Code, w.Path, w.Message)
}

// Warnings is a collection of Warning with helper methods.
type Warnings []Warning

// Has returns true if any warning matches the given code.
func (ws Warnings) Has(code WarningCode) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}

	return false
}

// Filter returns warnings matching any of the given codes.
func (ws Warnings) Filter(codes ...WarningCode) Warnings {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[WarningCode]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	result := make(Warnings, 0, len(ws))
	for _, w := range ws {
		if _, ok := set[w.Code]; ok {
			result = append(result, w)
		}
	}

	return result
}

// Codes returns the unique warning codes in order of first appearance.
func (ws Warnings) Codes() []WarningCode {
	seen := make(map[WarningCode]struct{}, len(ws))
	codes := make([]WarningCode, 0, len(ws))
	for _, w := range ws {
		if _, ok := seen[w.Code]; !ok {
			seen[w.Code] = struct{}{}
			codes = append(codes, w.Code)
		}
	}

	return codes
}

// String returns one warning per line.
func (ws Warnings) String() string {
	if len(ws) == 0 {
		return "no warnings"
	}
	lines := make([]string, 0, len(ws))
	for _, w := range ws {
		lines = append(lines, w.String())
	}

	return strings.Join(lines, "\n")
}
