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

// Package logging provides structured logging for the taskdocs command.
//
// A [Logger] wraps [log/slog] with one of three handlers: JSON, key=value
// text, or a colored console format for terminals.
//
//	logger := logging.MustNew(
//	    logging.WithTextHandler(),
//	    logging.WithDebugLevel(),
//	)
//	logger.Info("document written", "path", "public/openapi-docs.yml")
//
// Loggers are not registered as the slog default.
package logging
