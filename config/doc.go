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

// Package config loads the optional taskdocs project file.
//
// The project file lives in the working directory and may be named
// taskdocs.yaml, taskdocs.yml, taskdocs.toml or taskdocs.json. Its values are
// layered over [Defaults], bound into a [Project] and validated. Without a
// project file, the defaults describe the standard run: the Task API document
// written to public/openapi-docs.yml.
//
// # Example
//
//	# taskdocs.yaml
//	output:
//	  path: docs/openapi.json
//	info:
//	  title: Tasks
//	  version: 2.0.0
//	log:
//	  level: debug
//
// Loading:
//
//	p, err := config.Load(ctx, ".")
//	if err != nil {
//	    var cerr *config.Error
//	    if errors.As(err, &cerr) {
//	        log.Printf("bad %s in %s", cerr.Field, cerr.Source)
//	    }
//	}
//
// Routes and shapes are never configurable.
package config
