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

package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_MarshalJSON_fieldNames(t *testing.T) {
	t.Parallel()

	doc := &Document{
		OpenAPI: Version,
		Info:    &Info{Title: "My API", Version: "1.0.0"},
		Paths: map[string]*PathItem{
			"/api/tasks": {
				Get: &Operation{
					OperationID: "getApiTasks",
					Responses: map[string]*Response{
						"200": {Description: "OK", Content: map[string]*MediaType{
							"application/json": {Schema: RefTo("Task")},
						}},
					},
				},
			},
		},
		Components: &Components{Schemas: map[string]*Schema{
			"Task": {Type: "object", Properties: map[string]*Schema{
				"completed": {Type: "boolean", Example: false},
			}},
		}},
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "3.0.0", m["openapi"])
	assert.NotContains(t, m, "servers")
	get := m["paths"].(map[string]any)["/api/tasks"].(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "getApiTasks", get["operationId"])

	schema := get["responses"].(map[string]any)["200"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["schema"].(map[string]any)
	assert.Equal(t, "#/components/schemas/Task", schema["$ref"])

	completed := m["components"].(map[string]any)["schemas"].(map[string]any)["Task"].(map[string]any)["properties"].(map[string]any)["completed"].(map[string]any)
	assert.Equal(t, false, completed["example"], "false examples must survive omitempty")
}

func TestDocument_Resolve(t *testing.T) {
	t.Parallel()

	task := &Schema{Type: "object"}
	doc := &Document{Components: &Components{Schemas: map[string]*Schema{"Task": task}}}

	assert.Same(t, task, doc.Resolve(RefTo("Task")))
	assert.Nil(t, doc.Resolve(RefTo("Missing")))

	inline := &Schema{Type: "string"}
	assert.Same(t, inline, doc.Resolve(inline))
}

func TestSchema_RefName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Task", RefTo("Task").RefName())
	assert.Empty(t, (&Schema{Ref: "other.yaml#/Task"}).RefName())
	assert.Empty(t, (*Schema)(nil).RefName())
}

func TestPathItem_SetOperation(t *testing.T) {
	t.Parallel()

	item := &PathItem{}
	op := &Operation{Summary: "x"}

	assert.True(t, item.SetOperation("POST", op))
	assert.Same(t, op, item.Operation("post"))
	assert.Nil(t, item.Operation("get"))
	assert.False(t, item.SetOperation("fetch", op))

	doc := &Document{Paths: map[string]*PathItem{"/a": item}}
	assert.Same(t, op, doc.Operation("post", "/a"))
	assert.Nil(t, doc.Operation("post", "/missing"))
	assert.Equal(t, 1, doc.OperationCount())
}
