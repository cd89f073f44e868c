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
	"maps"
	"net/http"
	"slices"
	"strings"
)

// Methods lists the HTTP methods an OpenAPI 3.0 path item can hold, lower-case.
var Methods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// DefaultContentType is used for request and response bodies when none is set.
const DefaultContentType = "application/json"

// Route binds an HTTP method and path to request and response shapes.
type Route struct {
	Method      string
	Path        string
	Summary     string
	Description string
	Tags        []string

	// OperationID overrides the identifier derived from method and path.
	OperationID string
	Deprecated  bool

	// Request is the optional request body.
	Request *Body

	// Responses maps HTTP status codes to responses.
	// A route without responses is documented with a bare 200.
	Responses map[int]Response
}

// Body describes a request body.
type Body struct {
	Description string
	ContentType string
	Shape       ShapeHandle
}

// Response describes one response of a route. A zero Shape documents a response without a body.
// A 204 response must not have a Shape.
type Response struct {
	Description string
	ContentType string
	Shape       ShapeHandle
}

// Key identifies a route by lower-case method and normalized path.
type Key struct {
	Method string
	Path   string
}

// String returns "METHOD /path".
func (k Key) String() string {
	return strings.ToUpper(k.Method) + " " + k.Path
}

// Key returns the uniqueness key of the route.
func (r Route) Key() Key {
	return Key{Method: strings.ToLower(r.Method), Path: NormalizePath(r.Path)}
}

// References returns the handles of every shape the route uses, request first,
// then responses in ascending status order.
func (r Route) References() []ShapeHandle {
	var out []ShapeHandle
	if r.Request != nil && !r.Request.Shape.IsZero() {
		out = append(out, r.Request.Shape)
	}
	for _, status := range r.Statuses() {
		if h := r.Responses[status].Shape; !h.IsZero() {
			out = append(out, h)
		}
	}

	return out
}

// Statuses returns the declared response status codes in ascending order.
func (r Route) Statuses() []int {
	return slices.Sorted(maps.Keys(r.Responses))
}

// validate checks method, path and response status codes.
func (r Route) validate() error {
	if !slices.Contains(Methods, strings.ToLower(r.Method)) {
		return fmt.Errorf("%w: '%s'", ErrInvalidMethod, r.Method)
	}
	if err := ValidatePath(r.Path); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	for status, resp := range r.Responses {
		if status < 100 || status > 599 {
			return fmt.Errorf("%w: %d on %s", ErrInvalidResponse, status, r.Key())
		}
		if status == http.StatusNoContent && !resp.Shape.IsZero() {
			return fmt.Errorf("%w: %d on %s cannot have a body", ErrInvalidResponse, status, r.Key())
		}
	}

	return nil
}

// clone returns a copy with the method lower-cased and slices/maps detached from the caller.
func (r Route) clone() Route {
	out := r
	out.Method = strings.ToLower(r.Method)
	out.Tags = append([]string(nil), r.Tags...)
	if r.Request != nil {
		req := *r.Request
		out.Request = &req
	}
	out.Responses = make(map[int]Response, len(r.Responses))
	maps.Copy(out.Responses, r.Responses)

	return out
}
