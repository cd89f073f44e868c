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

package taskdocs_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"rivaas.dev/taskdocs"
	"rivaas.dev/taskdocs/codec"
	"rivaas.dev/taskdocs/document"
)

func propertyNames(s *document.Schema) []string {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}

	return names
}

var _ = Describe("Taskdocs Integration", Label("integration"), func() {
	var (
		ctx context.Context
		dir string
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		dir, err = os.MkdirTemp("", "taskdocs-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	generate := func(opts ...taskdocs.Option) *document.Document {
		reg, err := taskdocs.InitRegistry()
		Expect(err).NotTo(HaveOccurred())

		result, err := taskdocs.MustNew(opts...).Generate(ctx, reg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Warnings).To(BeEmpty())

		return result.Document
	}

	Describe("Document Pipeline", func() {
		It("should write the Task API document and read it back unchanged", func() {
			Expect(os.Mkdir(filepath.Join(dir, "public"), 0o755)).To(Succeed())
			out := filepath.Join(dir, taskdocs.DefaultOutputPath)

			doc := generate(taskdocs.WithServer("v1", ""), taskdocs.WithValidation(true))
			Expect(taskdocs.WriteDocument(ctx, doc, out, codec.TypeYAML)).To(Succeed())

			data, err := os.ReadFile(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(HavePrefix("openapi: 3.0.0\ninfo:\n"))
			Expect(string(data)).To(ContainSubstring("$ref: '#/components/schemas/Task'"))
			Expect(string(data)).To(ContainSubstring("$ref: '#/components/schemas/CreateTask'"))

			got, err := taskdocs.ReadDocument(data, codec.TypeYAML)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(doc))

			get := got.Operation("get", taskdocs.TasksPath)
			Expect(get).NotTo(BeNil())
			task := got.Resolve(get.Responses["200"].Content["application/json"].Schema)
			Expect(task).NotTo(BeNil())
			Expect(propertyNames(task)).To(ConsistOf("id", "name", "completed"))
			Expect(task.Required).To(Equal([]string{"id", "name", "completed"}))

			post := got.Operation("post", taskdocs.TasksPath)
			Expect(post).NotTo(BeNil())
			Expect(post.RequestBody).NotTo(BeNil())
			create := got.Resolve(post.RequestBody.Content["application/json"].Schema)
			Expect(create).NotTo(BeNil())
			Expect(propertyNames(create)).To(ConsistOf("name"))
		})

		It("should write JSON with the same content", func() {
			out := filepath.Join(dir, "openapi-docs.json")

			doc := generate()
			Expect(taskdocs.WriteDocument(ctx, doc, out, codec.TypeJSON)).To(Succeed())

			data, err := os.ReadFile(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(HavePrefix("{\n  \"openapi\": \"3.0.0\""))

			got, err := taskdocs.ReadDocument(data, codec.TypeJSON)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(doc))
		})
	})

	Describe("Filesystem Failures", func() {
		It("should fail without creating a file when the directory is missing", func() {
			out := filepath.Join(dir, taskdocs.DefaultOutputPath)

			err := taskdocs.WriteDocument(ctx, generate(), out, codec.TypeYAML)
			Expect(err).To(MatchError(fs.ErrNotExist))

			_, statErr := os.Stat(filepath.Dir(out))
			Expect(statErr).To(MatchError(fs.ErrNotExist))
		})

		It("should leave an existing document untouched when encoding fails", func() {
			out := filepath.Join(dir, "openapi-docs.yml")
			Expect(os.WriteFile(out, []byte("openapi: 3.0.0\n"), 0o644)).To(Succeed())

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			err := taskdocs.WriteDocument(canceled, generate(), out, codec.TypeYAML)
			Expect(err).To(MatchError(context.Canceled))

			data, err := os.ReadFile(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("openapi: 3.0.0\n"))

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})
})
