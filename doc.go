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

// Package taskdocs generates the OpenAPI 3.0 document of the Task API and
// writes it to disk.
//
// Generation is split into three explicit steps so the first two can be tested
// without touching the filesystem:
//
//	reg, err := taskdocs.InitRegistry()
//	if err != nil {
//	    return err
//	}
//
//	api := taskdocs.MustNew(
//	    taskdocs.WithServer("v1", ""),
//	    taskdocs.WithValidation(true),
//	)
//	result, err := api.Generate(ctx, reg)
//	if err != nil {
//	    return err
//	}
//
//	err = taskdocs.WriteDocument(ctx, result.Document, taskdocs.DefaultOutputPath, codec.TypeYAML)
//
// # Registry
//
// [InitRegistry] declares the Task and CreateTask shapes and the GET and POST
// routes on /api/tasks. Other APIs can be described by populating a
// [registry.Registry] directly.
//
// # Errors
//
// Configuration errors (dangling shape references, duplicate operation IDs, an
// empty registry) fail [API.Generate] before anything is written. Filesystem
// errors fail [WriteDocument] and leave the destination untouched.
//
// # Validation
//
// With [WithValidation], the generated document is checked against the OpenAPI
// 3.0 structure and each component example is checked against its schema.
package taskdocs
