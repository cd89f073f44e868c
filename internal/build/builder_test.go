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

package build

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/taskdocs/diag"
	"rivaas.dev/taskdocs/document"
	"rivaas.dev/taskdocs/registry"
)

func taskRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()
	task := reg.MustDefine(registry.Shape{
		Name: "Task",
		Fields: []registry.Field{
			{Name: "id", Kind: registry.KindString, Example: "1212121"},
			{Name: "name", Kind: registry.KindString, Example: "Example Task"},
			{Name: "completed", Kind: registry.KindBoolean, Example: false},
		},
	})
	create := reg.MustDefine(registry.Shape{
		Name:   "CreateTask",
		Fields: []registry.Field{{Name: "name", Kind: registry.KindString, Example: "Example Task"}},
	})
	reg.MustRegisterRoute(registry.Route{
		Method:    "get",
		Path:      "/api/tasks",
		Tags:      []string{"task"},
		Responses: map[int]registry.Response{200: {Description: "OK", Shape: task}},
	})
	reg.MustRegisterRoute(registry.Route{
		Method:    "post",
		Path:      "/api/tasks",
		Tags:      []string{"task"},
		Request:   &registry.Body{Shape: create},
		Responses: map[int]registry.Response{200: {Description: "OK", Shape: task}},
	})

	return reg
}

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	b := NewBuilder(document.Info{Title: "My API", Version: "1.0.0"}).AddServer("v1", "")
	doc, warns, err := b.Build(context.Background(), taskRegistry(t))
	require.NoError(t, err)
	assert.Empty(t, warns)

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Equal(t, "My API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "v1", doc.Servers[0].URL)
	assert.Nil(t, doc.Tags)

	require.Len(t, doc.Paths, 1)
	item := doc.Paths["/api/tasks"]
	require.NotNil(t, item)
	require.NotNil(t, item.Get)
	require.NotNil(t, item.Post)
	assert.Equal(t, 2, doc.OperationCount())

	assert.Equal(t, "getApiTasks", item.Get.OperationID)
	assert.Equal(t, "createApiTask", item.Post.OperationID)
	assert.Equal(t, []string{"task"}, item.Get.Tags)
	assert.Nil(t, item.Get.RequestBody)

	getSchema := item.Get.Responses["200"].Content["application/json"].Schema
	assert.Equal(t, "#/components/schemas/Task", getSchema.Ref)

	body := item.Post.RequestBody
	require.NotNil(t, body)
	assert.True(t, body.Required)
	created := doc.Resolve(body.Content["application/json"].Schema)
	require.NotNil(t, created)
	assert.Equal(t, []string{"name"}, created.Required)

	require.NotNil(t, doc.Components)
	assert.Len(t, doc.Components.Schemas, 2)
	task := doc.Components.Schemas["Task"]
	assert.Equal(t, "object", task.Type)
	assert.Equal(t, []string{"id", "name", "completed"}, task.Required)
	assert.Equal(t, "boolean", task.Properties["completed"].Type)
	assert.Equal(t, false, task.Properties["completed"].Example)
	assert.Equal(t, "1212121", task.Properties["id"].Example)
}

func TestBuilder_Build_deterministic(t *testing.T) {
	t.Parallel()

	b := NewBuilder(document.Info{Title: "My API", Version: "1.0.0"})
	first, _, err := b.Build(context.Background(), taskRegistry(t))
	require.NoError(t, err)
	second, _, err := b.Build(context.Background(), taskRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuilder_Build_emptyRegistry(t *testing.T) {
	t.Parallel()

	_, _, err := NewBuilder(document.Info{}).Build(context.Background(), registry.New())
	require.ErrorIs(t, err, ErrNoRoutes)
}

func TestBuilder_Build_danglingReference(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustRegisterRoute(registry.Route{
		Method:    "get",
		Path:      "/api/tasks",
		Responses: map[int]registry.Response{200: {Shape: registry.Ref("Task")}},
	})

	doc, _, err := NewBuilder(document.Info{}).Build(context.Background(), reg)
	require.ErrorIs(t, err, registry.ErrUndefinedShape)
	assert.ErrorContains(t, err, "GET /api/tasks")
	assert.Nil(t, doc)
}

func TestBuilder_Build_duplicateOperationID(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustRegisterRoute(registry.Route{Method: "get", Path: "/a", OperationID: "listThings"})
	reg.MustRegisterRoute(registry.Route{Method: "get", Path: "/b", OperationID: "listThings"})

	_, _, err := NewBuilder(document.Info{}).Build(context.Background(), reg)
	require.ErrorIs(t, err, ErrDuplicateOperationID)
	assert.ErrorContains(t, err, "listThings")
}

func TestBuilder_Build_derivedOperationIDCollision(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustRegisterRoute(registry.Route{Method: "post", Path: "/api/tasks"})
	reg.MustRegisterRoute(registry.Route{Method: "post", Path: "/api/task"})

	_, _, err := NewBuilder(document.Info{}).Build(context.Background(), reg)
	require.ErrorIs(t, err, ErrDuplicateOperationID)
	assert.ErrorContains(t, err, "createApiTask")

	renamed := registry.New()
	renamed.MustRegisterRoute(registry.Route{Method: "post", Path: "/api/tasks"})
	renamed.MustRegisterRoute(registry.Route{Method: "post", Path: "/api/task", OperationID: "createSingleTask"})

	doc, _, err := NewBuilder(document.Info{}).Build(context.Background(), renamed)
	require.NoError(t, err)
	assert.Equal(t, "createApiTask", doc.Operation("post", "/api/tasks").OperationID)
	assert.Equal(t, "createSingleTask", doc.Operation("post", "/api/task").OperationID)
}

func TestBuilder_Build_unreferencedShape(t *testing.T) {
	t.Parallel()

	reg := taskRegistry(t)
	reg.MustDefine(registry.Shape{Name: "Orphan", Fields: []registry.Field{{Name: "x", Kind: registry.KindInteger, Example: 1}}})

	doc, warns, err := NewBuilder(document.Info{}).Build(context.Background(), reg)
	require.NoError(t, err)
	assert.NotContains(t, doc.Components.Schemas, "Orphan")
	require.True(t, warns.Has(diag.WarnUnreferencedShape))
	assert.Equal(t, "#/components/schemas/Orphan", warns.Filter(diag.WarnUnreferencedShape)[0].Path)
}

func TestBuilder_Build_missingExampleAndUndeclaredTag(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	item := reg.MustDefine(registry.Shape{Name: "Item", Fields: []registry.Field{{Name: "id", Kind: registry.KindString}}})
	reg.MustRegisterRoute(registry.Route{
		Method:    "get",
		Path:      "/items",
		Tags:      []string{"items"},
		Responses: map[int]registry.Response{200: {Shape: item}},
	})

	_, warns, err := NewBuilder(document.Info{}).AddTag("task", "").Build(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, []diag.WarningCode{diag.WarnUndeclaredTag, diag.WarnMissingExample}, warns.Codes())
	assert.Equal(t, "#/paths/~1items/get", warns.Filter(diag.WarnUndeclaredTag)[0].Path)
}

func TestBuilder_Build_pathParamsAndDefaults(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustRegisterRoute(registry.Route{Method: "delete", Path: "/api/tasks/:id"})
	reg.MustRegisterRoute(registry.Route{
		Method:    "put",
		Path:      "/api/tasks/{id}",
		Responses: map[int]registry.Response{204: {}},
	})

	doc, _, err := NewBuilder(document.Info{}).Build(context.Background(), reg)
	require.NoError(t, err)

	item := doc.Paths["/api/tasks/{id}"]
	require.NotNil(t, item)

	del := item.Delete
	require.NotNil(t, del)
	assert.Equal(t, "deleteApiTaskById", del.OperationID)
	require.Len(t, del.Parameters, 1)
	assert.Equal(t, &document.Parameter{Name: "id", In: "path", Required: true, Schema: &document.Schema{Type: "string"}}, del.Parameters[0])
	assert.Equal(t, "OK", del.Responses["200"].Description)

	put := item.Put
	require.NotNil(t, put)
	assert.Equal(t, "No Content", put.Responses["204"].Description)
	assert.Nil(t, put.Responses["204"].Content)
	assert.Nil(t, doc.Components)
}

func TestBuilder_Build_canceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewBuilder(document.Info{}).Build(ctx, taskRegistry(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateOperationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"get", "/api/tasks", "getApiTasks"},
		{"post", "/api/tasks", "createApiTask"},
		{"get", "/api/tasks/{id}", "getApiTaskById"},
		{"patch", "/api/tasks/{id}", "updateApiTaskById"},
		{"put", "/categories/{categoryId}", "replaceCategoryByCategoryId"},
		{"get", "/", "getRoot"},
		{"trace", "/debug", "traceDebug"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, generateOperationID(tt.method, tt.path))
		})
	}
}
