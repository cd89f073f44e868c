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
	"fmt"

	"rivaas.dev/taskdocs/document"
)

// Default metadata of the generated document.
const (
	DefaultTitle       = "My API"
	DefaultVersion     = "1.0.0"
	DefaultDescription = "This is the API"
)

// API holds the metadata of the generated document.
//
// Create instances with [New] or [MustNew]. Routes and shapes are not part of
// the API; they come from the registry passed to [API.Generate].
type API struct {
	// Info contains API metadata (title, version, description).
	Info document.Info

	// Servers lists available server URLs for the API.
	Servers []document.Server

	// Tags provides additional metadata for operations.
	Tags []document.Tag

	// ValidateSpec enables validation of the generated document.
	// Enabling it adds the cost of an encode and a schema compile per Generate.
	ValidateSpec bool
}

// Option configures an [API] using the functional options pattern.
type Option func(*API)

// New creates a new [API] with the given options.
//
// It applies default values and validates the configuration. Returns an error
// if validation fails (e.g., an empty title or a server without URL).
//
// Example:
//
//	api, err := taskdocs.New(
//	    taskdocs.WithTitle("Task API", "1.0.0"),
//	    taskdocs.WithServer("v1", ""),
//	    taskdocs.WithValidation(true),
//	)
func New(opts ...Option) (*API, error) {
	api := &API{
		Info: document.Info{
			Title:       DefaultTitle,
			Version:     DefaultVersion,
			Description: DefaultDescription,
		},
	}

	for _, opt := range opts {
		opt(api)
	}

	if err := api.Validate(); err != nil {
		return nil, err
	}

	return api, nil
}

// MustNew creates a new [API] and panics if validation fails.
func MustNew(opts ...Option) *API {
	api, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return api
}

// Validate checks if the [API] is valid.
//
// Validation is automatically called by [New] and [MustNew].
func (a *API) Validate() error {
	if a.Info.Title == "" {
		return ErrTitleRequired
	}
	if a.Info.Version == "" {
		return ErrVersionRequired
	}
	for i, server := range a.Servers {
		if server.URL == "" {
			return fmt.Errorf("taskdocs: server[%d]: %w", i, ErrServerURLRequired)
		}
	}
	for i, tag := range a.Tags {
		if tag.Name == "" {
			return fmt.Errorf("taskdocs: tag[%d]: %w", i, ErrTagNameRequired)
		}
	}

	return nil
}

// WithTitle sets the API title and version.
//
// Example:
//
//	taskdocs.WithTitle("Task API", "2.1.0")
func WithTitle(title, version string) Option {
	return func(a *API) {
		a.Info.Title = title
		a.Info.Version = version
	}
}

// WithDescription sets the description of the Info object.
func WithDescription(desc string) Option {
	return func(a *API) {
		a.Info.Description = desc
	}
}

// WithServer adds a server URL to the document.
//
// Can be called multiple times. The URL may be relative, such as "v1".
//
// Example:
//
//	taskdocs.WithServer("https://api.example.com", "Production"),
//	taskdocs.WithServer("v1", ""),
func WithServer(url, desc string) Option {
	return func(a *API) {
		a.Servers = append(a.Servers, document.Server{URL: url, Description: desc})
	}
}

// WithTag adds a top-level tag.
//
// Once any tag is declared, operations using undeclared tags are reported as warnings.
func WithTag(name, desc string) Option {
	return func(a *API) {
		a.Tags = append(a.Tags, document.Tag{Name: name, Description: desc})
	}
}

// WithValidation enables or disables validation of the generated document.
//
// When enabled, the document is checked against the OpenAPI 3.0 structure and
// every component example is checked against its schema. Default: false.
func WithValidation(enabled bool) Option {
	return func(a *API) {
		a.ValidateSpec = enabled
	}
}
