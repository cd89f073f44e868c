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

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeYAML is a constant representing the "yaml" encoding type.
const TypeYAML Type = "yaml"

func init() {
	RegisterEncoder(TypeYAML, YAMLCodec{})
	RegisterDecoder(TypeYAML, YAMLCodec{})
}

// YAMLCodec encodes values as block-style YAML.
//
// Values go through their JSON form first, so json struct tags and field order
// carry over. Strings that would re-parse as another type ("200", "false",
// "1212121") are quoted.
type YAMLCodec struct{}

// Encode converts v into YAML with two-space indentation.
func (YAMLCodec) Encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal intermediate JSON: %w", err)
	}

	var node yaml.Node
	if err = yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("failed to parse intermediate JSON: %w", err)
	}
	plain(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(&node); err != nil {
		return nil, err
	}
	if err = enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decode unmarshals YAML data into the value pointed to by v, honoring json struct tags.
func (YAMLCodec) Decode(data []byte, v any) error {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return err
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("yaml content has no JSON form: %w", err)
	}

	return decodeJSON(raw, v)
}

// plain clears the flow and quoting styles inherited from JSON.
// The encoder re-quotes scalars whose !!str tag would otherwise be lost.
func plain(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plain(c)
	}
}
