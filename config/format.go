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
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// ErrUnsupportedFormat indicates a project file extension with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported project file format")

// decodeFunc decodes raw file content into a generic map.
type decodeFunc func(data []byte, v *map[string]any) error

// extensionFormats maps file extensions to decoders for automatic format detection.
var extensionFormats = map[string]decodeFunc{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".json": decodeJSON,
	".toml": decodeTOML,
}

// detectFormat returns the decoder for a file based on its extension.
func detectFormat(path string) (decodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if dec, ok := extensionFormats[ext]; ok {
		return dec, nil
	}

	return nil, fmt.Errorf("%w: cannot detect format from extension %q", ErrUnsupportedFormat, ext)
}

func decodeYAML(data []byte, v *map[string]any) error {
	return yaml.Unmarshal(data, v)
}

func decodeJSON(data []byte, v *map[string]any) error {
	return json.Unmarshal(data, v)
}

func decodeTOML(data []byte, v *map[string]any) error {
	return toml.Unmarshal(data, v)
}
