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

import "errors"

// Shape Errors (returned by Define)
var (
	// ErrDuplicateShape indicates a shape with the same name is already defined.
	ErrDuplicateShape = errors.New("registry: duplicate shape")

	// ErrInvalidShape indicates the shape itself is malformed (empty or invalid name, no fields).
	ErrInvalidShape = errors.New("registry: invalid shape")

	// ErrInvalidField indicates a field has no name, a duplicate name, or an unresolvable kind.
	ErrInvalidField = errors.New("registry: invalid field")
)

// Route Errors (returned by RegisterRoute)
var (
	// ErrDuplicateRoute indicates the (method, path) pair is already registered.
	ErrDuplicateRoute = errors.New("registry: duplicate route")

	// ErrInvalidMethod indicates the HTTP method is not one OpenAPI can describe.
	ErrInvalidMethod = errors.New("registry: invalid method")

	// ErrInvalidPath indicates the route path failed validation.
	ErrInvalidPath = errors.New("registry: invalid path")

	// ErrInvalidResponse indicates a response status code outside 100-599, or a 204 with a body.
	ErrInvalidResponse = errors.New("registry: invalid response status")
)

// Reference Errors (returned by Resolve, surfaced during generation)
var (
	// ErrUndefinedShape indicates a route references a shape that is not defined.
	ErrUndefinedShape = errors.New("registry: undefined shape")
)

// Path Errors (wrapped by ErrInvalidPath)
var (
	ErrPathEmpty              = errors.New("path cannot be empty")
	ErrPathNoLeadingSlash     = errors.New("path must start with '/'")
	ErrPathDuplicateParameter = errors.New("duplicate path parameter")
	ErrPathInvalidParameter   = errors.New("invalid path parameter format")
)
