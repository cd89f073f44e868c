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

	"rivaas.dev/taskdocs/codec"
	"rivaas.dev/taskdocs/document"
	"rivaas.dev/taskdocs/dumper"
)

// DefaultOutputPath is where the command writes the document, relative to the working directory.
const DefaultOutputPath = "public/openapi-docs.yml"

// WriteDocument encodes doc in the given format and writes it to path.
//
// The write replaces any existing file atomically. The destination directory
// must exist; a missing or unwritable directory fails with a [*dumper.Error]
// and leaves nothing behind.
func WriteDocument(ctx context.Context, doc *document.Document, path string, format codec.Type) error {
	if doc == nil {
		return ErrNilDocument
	}

	enc, err := codec.GetEncoder(format)
	if err != nil {
		return err
	}

	return dumper.NewFile(path, enc).Dump(ctx, doc)
}

// ReadDocument decodes a document in the given format.
func ReadDocument(data []byte, format codec.Type) (*document.Document, error) {
	dec, err := codec.GetDecoder(format)
	if err != nil {
		return nil, err
	}

	var doc document.Document
	if err := dec.Decode(data, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
