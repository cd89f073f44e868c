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

package taskdocs

import (
	"context"
	"fmt"

	"rivaas.dev/taskdocs/internal/build"
	"rivaas.dev/taskdocs/registry"
	"rivaas.dev/taskdocs/validate"
)

// Shared validator instance for all generation
var sharedValidator = validate.New()

// Generate produces the OpenAPI document for every route in reg.
//
// Generate has no side effects: identical metadata and registry contents give
// structurally identical documents. It fails with a configuration error when a
// route references an undefined shape ([registry.ErrUndefinedShape]), when two
// routes share an operation ID ([ErrDuplicateOperationID]) or when reg holds no
// routes ([ErrNoRoutes]). With validation enabled, an invalid document fails
// with [ErrSpecValidationFailed].
//
// Example:
//
//	reg, err := taskdocs.InitRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := taskdocs.MustNew().Generate(ctx, reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Document.OperationCount())
func (a *API) Generate(ctx context.Context, reg *registry.Registry) (*Result, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	doc, warns, err := createBuilder(a).Build(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI document: %w", err)
	}

	if a.ValidateSpec {
		if err := sharedValidator.Validate(ctx, doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSpecValidationFailed, err)
		}
	}

	return &Result{
		Document: doc,
		Warnings: warns,
	}, nil
}

// createBuilder creates a Builder from API.
func createBuilder(a *API) *build.Builder {
	b := build.NewBuilder(a.Info)

	for _, srv := range a.Servers {
		b.AddServer(srv.URL, srv.Description)
	}
	for _, tag := range a.Tags {
		b.AddTag(tag.Name, tag.Description)
	}

	return b
}
