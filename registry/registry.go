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

// Package registry holds the shape definitions and route descriptors an OpenAPI
// document is generated from.
//
// A [Registry] is populated once with [Registry.Define] and [Registry.RegisterRoute]
// and then only read. Failed registrations never modify the registry.
//
//	reg := registry.New()
//	task, err := reg.Define(registry.Shape{
//	    Name: "Task",
//	    Fields: []registry.Field{
//	        {Name: "id", Kind: registry.KindString, Example: "1212121"},
//	    },
//	})
//	err = reg.RegisterRoute(registry.Route{
//	    Method:    "get",
//	    Path:      "/api/tasks",
//	    Responses: map[int]registry.Response{200: {Description: "OK", Shape: task}},
//	})
package registry

import (
	"fmt"
)

// Registry stores shapes and routes in definition order.
// The zero value is an empty registry ready to use.
//
// Concurrency: Registry is NOT safe for concurrent mutation. Populate it from a
// single goroutine; once populated it may be read concurrently.
type Registry struct {
	shapes     []Shape
	shapeIndex map[string]int
	routes     []Route
	routeIndex map[Key]int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		shapeIndex: map[string]int{},
		routeIndex: map[Key]int{},
	}
}

// Define registers a shape and returns a handle to it.
//
// Returns [ErrDuplicateShape] if a shape with the same name exists, or
// [ErrInvalidShape] / [ErrInvalidField] if the shape is malformed.
func (r *Registry) Define(s Shape) (ShapeHandle, error) {
	if err := s.validate(); err != nil {
		return ShapeHandle{}, err
	}
	if _, exists := r.shapeIndex[s.Name]; exists {
		return ShapeHandle{}, fmt.Errorf("%w: '%s'", ErrDuplicateShape, s.Name)
	}
	if r.shapeIndex == nil {
		r.shapeIndex = map[string]int{}
	}

	r.shapeIndex[s.Name] = len(r.shapes)
	r.shapes = append(r.shapes, s.clone())

	return Ref(s.Name), nil
}

// MustDefine is like [Registry.Define] but panics on error.
// Use it for static declaration tables.
func (r *Registry) MustDefine(s Shape) ShapeHandle {
	h, err := r.Define(s)
	if err != nil {
		panic(err)
	}

	return h
}

// RegisterRoute registers a route descriptor.
//
// Returns [ErrDuplicateRoute] if the (method, path) pair is already registered,
// [ErrInvalidMethod] or [ErrInvalidPath] if the route is malformed. Shape references
// are not checked here; see [Registry.Resolve].
func (r *Registry) RegisterRoute(route Route) error {
	if err := route.validate(); err != nil {
		return err
	}

	key := route.Key()
	if _, exists := r.routeIndex[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
	}
	if r.routeIndex == nil {
		r.routeIndex = map[Key]int{}
	}

	r.routeIndex[key] = len(r.routes)
	r.routes = append(r.routes, route.clone())

	return nil
}

// MustRegisterRoute is like [Registry.RegisterRoute] but panics on error.
func (r *Registry) MustRegisterRoute(route Route) {
	if err := r.RegisterRoute(route); err != nil {
		panic(err)
	}
}

// Shape returns the shape registered under name.
func (r *Registry) Shape(name string) (Shape, bool) {
	i, ok := r.shapeIndex[name]
	if !ok {
		return Shape{}, false
	}

	return r.shapes[i].clone(), true
}

// Resolve returns the shape a handle refers to, or [ErrUndefinedShape].
func (r *Registry) Resolve(h ShapeHandle) (Shape, error) {
	s, ok := r.Shape(h.Name())
	if !ok {
		return Shape{}, fmt.Errorf("%w: '%s'", ErrUndefinedShape, h.Name())
	}

	return s, nil
}

// Shapes returns all shapes in definition order.
func (r *Registry) Shapes() []Shape {
	out := make([]Shape, 0, len(r.shapes))
	for _, s := range r.shapes {
		out = append(out, s.clone())
	}

	return out
}

// Routes returns all routes in registration order.
func (r *Registry) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, rt.clone())
	}

	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	return len(r.routes)
}
