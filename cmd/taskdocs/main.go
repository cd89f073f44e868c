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

// Command taskdocs writes the OpenAPI document of the Task API to
// public/openapi-docs.yml and exits non-zero on the first error.
//
// An optional taskdocs.yaml, taskdocs.yml, taskdocs.toml or taskdocs.json in
// the working directory overrides the output, the document metadata and
// logging. Routes and shapes are fixed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"rivaas.dev/taskdocs"
	"rivaas.dev/taskdocs/config"
	"rivaas.dev/taskdocs/logging"
)

const serviceName = "taskdocs"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, ".", os.Stderr); err != nil {
		cancel()
		os.Exit(1)
	}
}

// run loads the project in dir, generates the document and writes it.
// Every outcome is logged to w.
func run(ctx context.Context, dir string, w io.Writer) error {
	project, err := config.Load(ctx, dir)
	if err != nil {
		logging.MustNew(logging.WithTextHandler(), logging.WithOutput(w), logging.WithServiceName(serviceName)).
			Error("failed to load project", "error", err)
		return err
	}

	logger, err := newLogger(project.Log, w)
	if err != nil {
		return err
	}

	if err := generate(ctx, dir, project, logger); err != nil {
		logger.Error("failed to generate OpenAPI document", "error", err)
		return err
	}

	return nil
}

func newLogger(cfg config.Log, w io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	return logging.New(
		logging.WithHandlerType(logging.HandlerType(cfg.Handler)),
		logging.WithOutput(w),
		logging.WithLevel(level),
		logging.WithServiceName(serviceName),
	)
}

func generate(ctx context.Context, dir string, project *config.Project, logger *logging.Logger) error {
	logger.Debug("project loaded", "source", project.Source)

	api, err := taskdocs.New(apiOptions(project)...)
	if err != nil {
		return err
	}

	reg, err := taskdocs.InitRegistry()
	if err != nil {
		return err
	}

	result, err := api.Generate(ctx, reg)
	if err != nil {
		return err
	}
	for _, warn := range result.Warnings {
		logger.Warn(warn.Message, "code", warn.Code.String(), "path", warn.Path)
	}
	logger.Info("OpenAPI document generated",
		"paths", len(result.Document.Paths),
		"operations", result.Document.OperationCount(),
		"validated", api.ValidateSpec,
	)

	format, err := project.OutputType()
	if err != nil {
		return fmt.Errorf("output %s: %w", project.Output.Path, err)
	}

	out := project.Output.Path
	if !filepath.IsAbs(out) {
		out = filepath.Join(dir, out)
	}
	if err := taskdocs.WriteDocument(ctx, result.Document, out, format); err != nil {
		return err
	}
	logger.Info("OpenAPI document written", "path", out, "format", string(format))

	return nil
}

func apiOptions(project *config.Project) []taskdocs.Option {
	opts := []taskdocs.Option{
		taskdocs.WithTitle(project.Info.Title, project.Info.Version),
		taskdocs.WithDescription(project.Info.Description),
		taskdocs.WithValidation(project.Validate),
	}
	for _, s := range project.Servers {
		opts = append(opts, taskdocs.WithServer(s.URL, s.Description))
	}
	for _, t := range project.Tags {
		opts = append(opts, taskdocs.WithTag(t.Name, t.Description))
	}

	return opts
}
