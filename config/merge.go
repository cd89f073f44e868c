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
	"strings"

	"dario.cat/mergo"
)

// merge layers src over dst. Nested tables are merged key by key; any other
// value in src, lists included, replaces the value in dst.
func merge(dst, src map[string]any) error {
	leaves := make(map[string]any, len(src))
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			if err := merge(dstMap, srcMap); err != nil {
				return err
			}
			continue
		}
		leaves[k] = v
	}

	return mergo.Map(&dst, leaves, mergo.WithOverride)
}

// normalizeMapKeys recursively converts all map keys to lowercase for case-insensitive merging.
func normalizeMapKeys(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	normalized := make(map[string]any, len(m))
	for k, v := range m {
		normalized[strings.ToLower(k)] = normalizeValue(v)
	}

	return normalized
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeMapKeys(t)
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = normalizeMapKeys(m)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}
