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
	"rivaas.dev/taskdocs/diag"
	"rivaas.dev/taskdocs/document"
)

// Result contains the generated document and any warnings.
type Result struct {
	// Document is the generated OpenAPI document.
	// Callers must treat it as read-only.
	Document *document.Document

	// Warnings contains informational, non-fatal issues.
	//
	// Example:
	//
	//	for _, w := range result.Warnings {
	//	    log.Printf("[%s] %s", w.Code, w.Message)
	//	}
	Warnings diag.Warnings
}
