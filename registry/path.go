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
	"strings"
)

// validParameterNamePattern validates parameter names: ^[a-zA-Z0-9._-]+$
var validParameterNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidatePath validates a route path.
//
// Both router-style (:param) and OpenAPI-style ({param}) parameters are accepted.
//
// Validation checks:
//   - Non-empty path
//   - Path starts with '/'
//   - Parameter names match [a-zA-Z0-9._-]+
//   - Properly paired braces in {param} syntax
//   - No duplicate path parameters
func ValidatePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}

	if !strings.HasPrefix(path, "/") {
		return ErrPathNoLeadingSlash
	}

	params := make(map[string]bool)
	for seg := range strings.SplitSeq(path, "/") {
		if seg == "" {
			continue
		}

		var paramName string

		if after, ok := strings.CutPrefix(seg, ":"); ok {
			paramName = after
			if !validParameterNamePattern.MatchString(paramName) {
				return fmt.Errorf("%w: parameter name '%s' must match pattern [a-zA-Z0-9._-]+", ErrPathInvalidParameter, paramName)
			}
		}

		if strings.Contains(seg, "{") || strings.Contains(seg, "}") {
			if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
				return fmt.Errorf("%w: mismatched braces in segment '%s'", ErrPathInvalidParameter, seg)
			}

			paramName = strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
			if !validParameterNamePattern.MatchString(paramName) {
				return fmt.Errorf("%w: parameter name '%s' must match pattern [a-zA-Z0-9._-]+", ErrPathInvalidParameter, paramName)
			}
		}

		if paramName != "" {
			if params[paramName] {
				return fmt.Errorf("%w: '%s' appears multiple times", ErrPathDuplicateParameter, paramName)
			}
			params[paramName] = true
		}
	}

	return nil
}

// NormalizePath converts router-style :param segments to OpenAPI {param} segments.
func NormalizePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		if after, found := strings.CutPrefix(part, ":"); found {
			parts[i] = "{" + after + "}"
		}
	}

	return strings.Join(parts, "/")
}

// PathParams returns the parameter names of a path in order of appearance.
func PathParams(p string) []string {
	var out []string
	for seg := range strings.SplitSeq(NormalizePath(p), "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			out = append(out, seg[1:len(seg)-1])
		}
	}

	return out
}
