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

//go:build !integration

package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/taskdocs/document"
)

func taskDocument() *document.Document {
	ok := func(ref string) map[string]*document.Response {
		return map[string]*document.Response{
			"200": {Description: "OK", Content: map[string]*document.MediaType{
				"application/json": {Schema: document.RefTo(ref)},
			}},
		}
	}

	return &document.Document{
		OpenAPI: document.Version,
		Info:    &document.Info{Title: "My API", Description: "This is the API", Version: "1.0.0"},
		Servers: []*document.Server{{URL: "v1"}},
		Paths: map[string]*document.PathItem{
			"/api/tasks": {
				Get: &document.Operation{Tags: []string{"task"}, OperationID: "getApiTasks", Responses: ok("Task")},
				Post: &document.Operation{
					Tags:        []string{"task"},
					OperationID: "createApiTask",
					RequestBody: &document.RequestBody{Required: true, Content: map[string]*document.MediaType{
						"application/json": {Schema: document.RefTo("CreateTask")},
					}},
					Responses: ok("Task"),
				},
			},
		},
		Components: &document.Components{Schemas: map[string]*document.Schema{
			"Task": {
				Type: "object",
				Properties: map[string]*document.Schema{
					"id":        {Type: "string", Example: "1212121"},
					"name":      {Type: "string", Example: "Example Task"},
					"completed": {Type: "boolean", Example: false},
				},
				Required: []string{"id", "name", "completed"},
			},
			"CreateTask": {
				Type:       "object",
				Properties: map[string]*document.Schema{"name": {Type: "string", Example: "Example Task"}},
				Required:   []string{"name"},
			},
		}},
	}
}

func TestEngine_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, New().Validate(context.Background(), taskDocument()))
}

func TestEngine_Validate_missingOpenAPIVersion(t *testing.T) {
	t.Parallel()

	doc := taskDocument()
	doc.OpenAPI = ""

	err := New().Validate(context.Background(), doc)
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestEngine_ValidateJSON_malformed(t *testing.T) {
	t.Parallel()

	err := New().ValidateJSON(context.Background(), []byte("{not json"))
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestEngine_ValidateExamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*document.Document)
		wantErr string
	}{
		{
			name: "wrong type",
			mutate: func(d *document.Document) {
				d.Components.Schemas["Task"].Properties["completed"].Example = "yes"
			},
			wantErr: "Task at /completed",
		},
		{
			name: "integer example on string",
			mutate: func(d *document.Document) {
				d.Components.Schemas["CreateTask"].Properties["name"].Example = 42
			},
			wantErr: "CreateTask at /name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := taskDocument()
			tt.mutate(doc)

			err := New().ValidateExamples(context.Background(), doc)
			require.ErrorIs(t, err, ErrInvalidExample)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestEngine_ValidateExamples_nullableAndMissing(t *testing.T) {
	t.Parallel()

	doc := taskDocument()
	task := doc.Components.Schemas["Task"]
	task.Properties["id"].Example = nil
	task.Properties["note"] = &document.Schema{Type: "string", Nullable: true}

	require.NoError(t, New().ValidateExamples(context.Background(), doc))
	require.NoError(t, New().ValidateExamples(context.Background(), &document.Document{}))
}

func TestEngine_Validate_canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Validate(ctx, taskDocument())
	require.ErrorIs(t, err, context.Canceled)
}
