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
	"errors"

	"rivaas.dev/taskdocs/internal/build"
)

// Configuration Errors (returned by New and Validate)
var (
	// ErrTitleRequired indicates the API title is missing.
	ErrTitleRequired = errors.New("taskdocs: title is required")

	// ErrVersionRequired indicates the API version is missing.
	ErrVersionRequired = errors.New("taskdocs: version is required")

	// ErrServerURLRequired indicates a server was added without a URL.
	ErrServerURLRequired = errors.New("taskdocs: server URL is required")

	// ErrTagNameRequired indicates a tag was added without a name.
	ErrTagNameRequired = errors.New("taskdocs: tag name is required")
)

// Generation Errors (returned by Generate)
var (
	// ErrDuplicateOperationID indicates two routes resolve to the same operation ID.
	ErrDuplicateOperationID = build.ErrDuplicateOperationID

	// ErrNoRoutes indicates Generate was called with an empty registry.
	ErrNoRoutes = build.ErrNoRoutes

	// ErrUnencodableExample indicates a field example has no JSON form.
	ErrUnencodableExample = build.ErrUnencodableExample

	// ErrNilRegistry indicates Generate was called without a registry.
	ErrNilRegistry = errors.New("taskdocs: registry is nil")
)

// Validation Errors (when WithValidation enabled)
var (
	// ErrSpecValidationFailed indicates the generated document failed validation.
	ErrSpecValidationFailed = errors.New("taskdocs: generated document failed validation")
)

// Write Errors (returned by WriteDocument)
var (
	// ErrNilDocument indicates WriteDocument was called without a document.
	ErrNilDocument = errors.New("taskdocs: document is nil")
)
