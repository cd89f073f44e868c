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
	"net/http"

	"rivaas.dev/taskdocs/registry"
)

// Shape names of the Task API.
const (
	TaskShape       = "Task"
	CreateTaskShape = "CreateTask"
)

// TasksPath is the collection path of the Task API.
const TasksPath = "/api/tasks"

// TaskTag groups the Task API operations.
const TaskTag = "task"

// TaskFields returns the fields of the Task response shape.
func TaskFields() []registry.Field {
	return []registry.Field{
		{Name: "id", Kind: registry.KindString, Example: "1212121"},
		{Name: "name", Kind: registry.KindString, Example: "Example Task"},
		{Name: "completed", Kind: registry.KindBoolean, Example: false},
	}
}

// CreateTaskFields returns the fields of the task creation request shape.
func CreateTaskFields() []registry.Field {
	return []registry.Field{
		{Name: "name", Kind: registry.KindString, Example: "Example Task"},
	}
}

// InitRegistry returns a registry populated with the Task API: the Task and
// CreateTask shapes, GET /api/tasks and POST /api/tasks.
//
// Each call returns a new registry.
func InitRegistry() (*registry.Registry, error) {
	reg := registry.New()

	task, err := reg.Define(registry.Shape{Name: TaskShape, Fields: TaskFields()})
	if err != nil {
		return nil, err
	}
	createTask, err := reg.Define(registry.Shape{Name: CreateTaskShape, Fields: CreateTaskFields()})
	if err != nil {
		return nil, err
	}

	routes := []registry.Route{
		{
			Method:      http.MethodGet,
			Path:        TasksPath,
			Tags:        []string{TaskTag},
			Summary:     "タスク取得",
			Description: "登録されているタスクを返却します",
			Responses: map[int]registry.Response{
				http.StatusOK: {Description: "タスクの取得成功", Shape: task},
			},
		},
		{
			Method:      http.MethodPost,
			Path:        TasksPath,
			Tags:        []string{TaskTag},
			Summary:     "タスク登録",
			Description: "タスクを登録します",
			Request:     &registry.Body{Shape: createTask},
			Responses: map[int]registry.Response{
				http.StatusOK: {Description: "タスクの取得成功", Shape: task},
			},
		},
	}
	for _, r := range routes {
		if err := reg.RegisterRoute(r); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
