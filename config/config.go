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

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"rivaas.dev/taskdocs/codec"
)

// SourceDefaults is the Source reported when no project file was found.
const SourceDefaults = "defaults"

// FileNames lists the project file names searched for, in order.
var FileNames = []string{"taskdocs.yaml", "taskdocs.yml", "taskdocs.toml", "taskdocs.json"}

// Project holds the settings of one generator run.
type Project struct {
	Output   Output   `config:"output"`
	Info     Info     `config:"info"`
	Servers  []Server `config:"servers" validate:"dive"`
	Tags     []Tag    `config:"tags" validate:"dive"`
	Validate bool     `config:"validate"`
	Log      Log      `config:"log"`

	// Source is the file the project was loaded from, or [SourceDefaults].
	Source string `config:"-"`
}

// Output configures where and how the document is written.
type Output struct {
	Path string `config:"path" validate:"required"`

	// Format overrides the format implied by the Path extension.
	Format string `config:"format" validate:"omitempty,oneof=yaml yml json"`
}

// Info is the document's info object.
type Info struct {
	Title       string `config:"title" validate:"required"`
	Version     string `config:"version" validate:"required"`
	Description string `config:"description"`
}

// Server is one entry of the document's server list.
type Server struct {
	URL         string `config:"url" validate:"required"`
	Description string `config:"description"`
}

// Tag is one top-level tag definition.
type Tag struct {
	Name        string `config:"name" validate:"required"`
	Description string `config:"description"`
}

// Log configures the command's logger.
type Log struct {
	Level   string `config:"level" validate:"oneof=debug info warn error"`
	Handler string `config:"handler" validate:"oneof=json text console"`
}

// Defaults returns the settings used when no project file is present.
func Defaults() map[string]any {
	return map[string]any{
		"output": map[string]any{
			"path": "public/openapi-docs.yml",
		},
		"info": map[string]any{
			"title":       "My API",
			"version":     "1.0.0",
			"description": "This is the API",
		},
		"servers": []any{
			map[string]any{"url": "v1"},
		},
		"validate": true,
		"log": map[string]any{
			"level":   "info",
			"handler": "text",
		},
	}
}

// OutputType returns the codec type of the output file.
func (p *Project) OutputType() (codec.Type, error) {
	if p.Output.Format != "" {
		return codec.ParseType(p.Output.Format)
	}

	return codec.TypeFromPath(p.Output.Path)
}

// Load looks for a project file in dir and returns the resulting settings.
// Without a project file, the defaults are returned unchanged.
func Load(ctx context.Context, dir string) (*Project, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(ctx, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, NewError(path, "read", err)
		}
	}

	return build(SourceDefaults, nil)
}

// LoadFile loads the project file at path, layered over the defaults.
func LoadFile(ctx context.Context, path string) (*Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decode, err := detectFormat(path)
	if err != nil {
		return nil, NewError(path, "decode", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(path, "read", err)
	}

	var values map[string]any
	if err = decode(data, &values); err != nil {
		return nil, NewError(path, "decode", err)
	}

	return build(path, values)
}

// build merges values over the defaults, binds and validates the result.
func build(source string, values map[string]any) (*Project, error) {
	merged := Defaults()
	if err := merge(merged, normalizeMapKeys(values)); err != nil {
		return nil, NewError(source, "merge", err)
	}

	p := &Project{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           p,
	})
	if err != nil {
		return nil, NewError(source, "bind", fmt.Errorf("failed to create decoder: %w", err))
	}
	if err = decoder.Decode(merged); err != nil {
		return nil, NewError(source, "bind", err)
	}
	p.Source = source

	if err = validate(source, p); err != nil {
		return nil, err
	}

	return p, nil
}

// structValidator checks the bound project; field names follow the config tags.
var structValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("config")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	return v
}()

func validate(source string, p *Project) error {
	err := structValidator.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.TrimPrefix(fe.Namespace(), "Project.")

		return NewFieldError(source, field, "validate", fmt.Errorf("failed on the '%s' rule", fe.Tag()))
	}

	return NewError(source, "validate", err)
}
